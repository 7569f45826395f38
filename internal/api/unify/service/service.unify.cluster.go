// Clusterer - gom đơn hàng thành cluster theo Matcher.
// Greedy online single-link: đơn mới vào cluster đầu tiên có ít nhất một
// thành viên match; không match cluster nào thì mở cluster mới.
//
// Biến thể hai pass (bật qua EnableConvergencePass) chạy thêm vòng gộp
// cluster-pair lặp đến điểm bất động, cho kết quả gần transitive closure
// và không phụ thuộc thứ tự input, đổi lại chi phí quét lại tệ hơn O(k^2).
// Mặc định tắt: chuỗi A-B, C-B (A không match thẳng C) khi đó có thể tách
// thành hai cluster tùy thứ tự xử lý.
package unifysvc

import (
	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
)

// Cluster một nhóm đơn hàng tin là của cùng một khách.
type Cluster []ordermodels.SalesOrder

// Clusterer phân hoạch tập đơn hàng thành các cluster.
type Clusterer struct {
	matcher               *Matcher
	EnableConvergencePass bool
}

// NewClusterer tạo Clusterer.
func NewClusterer(matcher *Matcher, convergencePass bool) *Clusterer {
	return &Clusterer{matcher: matcher, EnableConvergencePass: convergencePass}
}

// matchesCluster true nếu order match với bất kỳ thành viên nào của cluster.
func (c *Clusterer) matchesCluster(order *ordermodels.SalesOrder, cluster Cluster) bool {
	for i := range cluster {
		if c.matcher.IsSameCustomer(order, &cluster[i]) {
			return true
		}
	}
	return false
}

// Cluster phân hoạch orders. Bất biến: mỗi đơn nằm trong đúng một cluster,
// không mất không trùng. Duyệt theo thứ tự input, quét cluster theo thứ tự tạo.
func (c *Clusterer) Cluster(orders []ordermodels.SalesOrder) []Cluster {
	clusters := make([]Cluster, 0)
	for i := range orders {
		placed := false
		for j := range clusters {
			if c.matchesCluster(&orders[i], clusters[j]) {
				clusters[j] = append(clusters[j], orders[i])
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, Cluster{orders[i]})
		}
	}
	if c.EnableConvergencePass {
		clusters = c.converge(clusters)
	}
	return clusters
}

// clustersMatch true nếu tồn tại một cặp thành viên chéo match nhau.
func (c *Clusterer) clustersMatch(a, b Cluster) bool {
	for i := range a {
		if c.matchesCluster(&a[i], b) {
			return true
		}
	}
	return false
}

// converge gộp lặp các cặp cluster có thành viên chéo match,
// dừng khi một vòng quét trọn vẹn không tạo ra merge nào.
func (c *Clusterer) converge(clusters []Cluster) []Cluster {
	for {
		merged := false
		for i := 0; i < len(clusters) && !merged; i++ {
			for j := i + 1; j < len(clusters); j++ {
				if c.clustersMatch(clusters[i], clusters[j]) {
					clusters[i] = append(clusters[i], clusters[j]...)
					clusters = append(clusters[:j], clusters[j+1:]...)
					merged = true
					break
				}
			}
		}
		if !merged {
			return clusters
		}
	}
}
