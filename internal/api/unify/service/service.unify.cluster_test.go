// Package unifysvc - Test Clusterer greedy và biến thể convergence pass.
package unifysvc

import (
	"fmt"
	"testing"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
)

// Ba đơn tạo chuỗi transitive: A-B trùng sđt, B-C trùng email, A-C không có gì chung.
func chainOrders() (a, b, c ordermodels.SalesOrder) {
	a = ordermodels.SalesOrder{OrderID: "A", Phone: "0891234567"}
	b = ordermodels.SalesOrder{OrderID: "B", Phone: "0891234567", Email: "somchai@example.com"}
	c = ordermodels.SalesOrder{OrderID: "C", Email: "somchai@example.com"}
	return a, b, c
}

// đếm order_id trong toàn bộ kết quả, kiểm tra phân hoạch không mất không trùng
func orderIDCounts(clusters []Cluster) map[string]int {
	counts := map[string]int{}
	for _, cl := range clusters {
		for i := range cl {
			counts[cl[i].OrderID]++
		}
	}
	return counts
}

func TestCluster_PhanHoachKhongMatKhongTrung(t *testing.T) {
	cl := NewClusterer(newTestMatcher(), false)
	orders := make([]ordermodels.SalesOrder, 0, 6)
	for i := 0; i < 6; i++ {
		orders = append(orders, ordermodels.SalesOrder{
			OrderID: fmt.Sprintf("o-%d", i),
			Phone:   fmt.Sprintf("08112233%02d", i),
		})
	}
	clusters := cl.Cluster(orders)
	counts := orderIDCounts(clusters)
	if len(counts) != 6 {
		t.Fatalf("phải có đủ 6 order_id trong kết quả, got %d", len(counts))
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("đơn %s xuất hiện %d lần, phải đúng 1 lần", id, n)
		}
	}
}

func TestCluster_GomTheoSdtChung(t *testing.T) {
	cl := NewClusterer(newTestMatcher(), false)
	orders := []ordermodels.SalesOrder{
		{OrderID: "A", Phone: "0891234567"},
		{OrderID: "B", ShippingPhone: "+66891234567"},
		{OrderID: "C", Phone: "0899999999"},
	}
	clusters := cl.Cluster(orders)
	if len(clusters) != 2 {
		t.Fatalf("muốn 2 cluster, got %d", len(clusters))
	}
	if len(clusters[0]) != 2 {
		t.Errorf("cluster đầu phải chứa A và B, got %d đơn", len(clusters[0]))
	}
}

func TestCluster_ChuoiTransitive_ThuTuThuanLoi(t *testing.T) {
	// Thứ tự A, B, C: B vào cluster của A (trùng sđt), C vào cùng cluster vì match B.
	cl := NewClusterer(newTestMatcher(), false)
	a, b, c := chainOrders()
	clusters := cl.Cluster([]ordermodels.SalesOrder{a, b, c})
	if len(clusters) != 1 {
		t.Errorf("thứ tự A,B,C phải ra 1 cluster, got %d", len(clusters))
	}
}

func TestCluster_ChuoiTransitive_ThuTuBatLoi_GreedyTach(t *testing.T) {
	// Thứ tự A, C, B: C không match A nên mở cluster riêng; B vào cluster của A
	// trước khi kịp thấy C. Greedy một pass chấp nhận kết quả phụ thuộc thứ tự này.
	cl := NewClusterer(newTestMatcher(), false)
	a, b, c := chainOrders()
	clusters := cl.Cluster([]ordermodels.SalesOrder{a, c, b})
	if len(clusters) != 2 {
		t.Errorf("greedy một pass với thứ tự A,C,B phải ra 2 cluster, got %d", len(clusters))
	}
}

func TestCluster_ChuoiTransitive_ConvergencePassGopLai(t *testing.T) {
	cl := NewClusterer(newTestMatcher(), true)
	a, b, c := chainOrders()
	clusters := cl.Cluster([]ordermodels.SalesOrder{a, c, b})
	if len(clusters) != 1 {
		t.Errorf("convergence pass phải gộp chuỗi A-B-C về 1 cluster, got %d", len(clusters))
	}
	counts := orderIDCounts(clusters)
	for _, id := range []string{"A", "B", "C"} {
		if counts[id] != 1 {
			t.Errorf("đơn %s phải xuất hiện đúng 1 lần sau convergence, got %d", id, counts[id])
		}
	}
}

func TestCluster_InputRong(t *testing.T) {
	cl := NewClusterer(newTestMatcher(), false)
	if clusters := cl.Cluster(nil); len(clusters) != 0 {
		t.Errorf("input rỗng phải ra 0 cluster, got %d", len(clusters))
	}
}
