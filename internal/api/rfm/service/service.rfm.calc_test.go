// Package rfmsvc - Test thang điểm RFM, bảng segment và Compute.
package rfmsvc

import (
	"testing"
	"time"

	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
)

func TestRScore_Bien(t *testing.T) {
	cases := []struct {
		days float64
		want int
	}{
		{0, 5}, {7, 5}, {8, 4}, {30, 4}, {31, 3}, {90, 3}, {91, 2}, {180, 2}, {181, 1},
	}
	for _, c := range cases {
		if got := RScore(c.days); got != c.want {
			t.Errorf("RScore(%v) = %d, muốn %d", c.days, got, c.want)
		}
	}
}

func TestFScore_Bien(t *testing.T) {
	cases := []struct {
		orders int
		want   int
	}{
		{1, 1}, {2, 2}, {3, 3}, {4, 3}, {5, 4}, {9, 4}, {10, 5},
	}
	for _, c := range cases {
		if got := FScore(c.orders); got != c.want {
			t.Errorf("FScore(%d) = %d, muốn %d", c.orders, got, c.want)
		}
	}
}

func TestMScore_Bien(t *testing.T) {
	cases := []struct {
		amount float64
		want   int
	}{
		{0, 1}, {999.99, 1}, {1000, 2}, {2000, 3}, {5000, 4}, {10000, 5},
	}
	for _, c := range cases {
		if got := MScore(c.amount); got != c.want {
			t.Errorf("MScore(%v) = %d, muốn %d", c.amount, got, c.want)
		}
	}
}

func TestSegment_BangPhanLoai(t *testing.T) {
	cases := []struct {
		r, f, m int
		want    string
	}{
		{5, 5, 5, "Champion"},
		{4, 4, 4, "Champion"},
		{3, 4, 1, "Loyal Customers"},
		{4, 3, 5, "Potential Loyalist"},
		{5, 1, 1, "Promising"},
		{5, 1, 5, "New Customers"},
		{3, 2, 1, "Need Attention"},
		{2, 2, 1, "About to Sleep"},
		{1, 5, 5, "Can't Lose"},
		{2, 3, 1, "About to Sleep"},
		{1, 3, 1, "At Risk"},
		{1, 1, 1, "Hibernating"},
		{3, 1, 1, "Regular Customer"},
	}
	for _, c := range cases {
		if got := Segment(c.r, c.f, c.m); got != c.want {
			t.Errorf("Segment(%d,%d,%d) = %q, muốn %q", c.r, c.f, c.m, got, c.want)
		}
	}
}

func TestCompute_TinhDiemVaBoQuaNgayHong(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	p := &unifymodels.CustomerProfile{
		Orders: []unifymodels.ProfileOrder{
			{OrderID: "1", OrderDate: "2026-01-05 10:00:00", GrandTotal: 1500},
			{OrderID: "2", OrderDate: "không phải ngày", GrandTotal: 9999},
			{OrderID: "3", OrderDate: "2026-01-01 08:30:00", GrandTotal: 600},
		},
	}
	rfm := Compute(p, now)
	if rfm == nil {
		t.Fatal("Compute trả về nil dù có ngày parse được")
	}
	// Amount chỉ cộng các đơn parse được ngày; total_orders đếm tất cả
	if rfm.TotalAmount != 2100 {
		t.Errorf("TotalAmount = %v, muốn 2100 (bỏ đơn ngày hỏng)", rfm.TotalAmount)
	}
	if rfm.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, muốn 3", rfm.TotalOrders)
	}
	if rfm.LatestOrderDate != "2026-01-05 10:00:00" {
		t.Errorf("LatestOrderDate = %q", rfm.LatestOrderDate)
	}
	// 5 ngày từ đơn gần nhất -> R=5; 3 đơn -> F=3; 2100 -> M=3
	if rfm.RScore != 5 || rfm.FScore != 3 || rfm.MScore != 3 {
		t.Errorf("điểm = (%d,%d,%d), muốn (5,3,3)", rfm.RScore, rfm.FScore, rfm.MScore)
	}
	if rfm.Segment != Segment(5, 3, 3) {
		t.Errorf("Segment = %q không khớp bảng phân loại", rfm.Segment)
	}
	if rfm.SnapshotDate != "2026-01-10 12:00:00" {
		t.Errorf("SnapshotDate = %q", rfm.SnapshotDate)
	}
}

func TestCompute_HoTroRFC3339(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	p := &unifymodels.CustomerProfile{
		Orders: []unifymodels.ProfileOrder{
			{OrderID: "1", OrderDate: "2026-01-08T09:00:00Z", GrandTotal: 100},
		},
	}
	if rfm := Compute(p, now); rfm == nil {
		t.Error("ngày RFC3339 phải parse được qua fallback")
	}
}

func TestCompute_KhongCoDonHoacKhongParseDuoc(t *testing.T) {
	now := time.Now()
	if rfm := Compute(&unifymodels.CustomerProfile{}, now); rfm != nil {
		t.Error("profile không có đơn phải trả nil")
	}
	p := &unifymodels.CustomerProfile{
		Orders: []unifymodels.ProfileOrder{{OrderID: "1", OrderDate: "hỏng"}},
	}
	if rfm := Compute(p, now); rfm != nil {
		t.Error("profile toàn ngày hỏng phải trả nil")
	}
}
