// Package rfmsvc - Chấm điểm RFM và phân segment cho profile khách hàng.
// Thang điểm và bảng segment theo mô hình BentoWeb.
package rfmsvc

import (
	"math"
	"time"

	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
)

// Layout ngày giờ trong order_date và snapshot_date.
const DateLayout = "2006-01-02 15:04:05"

// RScore điểm recency theo số ngày từ đơn gần nhất.
func RScore(daysSinceLastOrder float64) int {
	switch {
	case daysSinceLastOrder <= 7:
		return 5
	case daysSinceLastOrder <= 30:
		return 4
	case daysSinceLastOrder <= 90:
		return 3
	case daysSinceLastOrder <= 180:
		return 2
	default:
		return 1
	}
}

// FScore điểm frequency theo tổng số đơn.
func FScore(totalOrders int) int {
	switch {
	case totalOrders >= 10:
		return 5
	case totalOrders >= 5:
		return 4
	case totalOrders >= 3:
		return 3
	case totalOrders >= 2:
		return 2
	default:
		return 1
	}
}

// MScore điểm monetary theo tổng chi tiêu.
func MScore(totalAmount float64) int {
	switch {
	case totalAmount >= 10000:
		return 5
	case totalAmount >= 5000:
		return 4
	case totalAmount >= 2000:
		return 3
	case totalAmount >= 1000:
		return 2
	default:
		return 1
	}
}

// Segment bảng phân segment BentoWeb, xét theo thứ tự, rule khớp đầu tiên thắng.
func Segment(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return "Champion"
	case r >= 3 && f >= 4:
		return "Loyal Customers"
	case r >= 4 && f >= 2 && f <= 3:
		return "Potential Loyalist"
	case r >= 4 && f <= 2 && m <= 2:
		return "Promising"
	case r == 5 && f == 1:
		return "New Customers"
	case r == 3 && f >= 2 && f <= 3:
		return "Need Attention"
	case (r == 2 || r == 3) && f >= 2:
		return "About to Sleep"
	case r <= 2 && f >= 4 && m >= 4:
		return "Can't Lose"
	case r <= 2 && f >= 3:
		return "At Risk"
	case (r == 1 || r == 2) && (f == 1 || f == 2):
		return "Hibernating"
	case r == 1 && f == 1:
		return "Lost"
	default:
		return "Regular Customer"
	}
}

// parseOrderDate parse order_date theo layout chuẩn, fallback RFC3339.
func parseOrderDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Compute chấm điểm RFM cho một profile tại thời điểm now.
// Trả về nil khi profile không có đơn nào parse được ngày (bỏ qua, không lỗi).
func Compute(profile *unifymodels.CustomerProfile, now time.Time) *unifymodels.ProfileRfm {
	if len(profile.Orders) == 0 {
		return nil
	}

	var latest time.Time
	totalAmount := 0.0
	parsed := 0
	for _, o := range profile.Orders {
		t, ok := parseOrderDate(o.OrderDate)
		if !ok {
			continue
		}
		parsed++
		if t.After(latest) {
			latest = t
		}
		totalAmount += o.GrandTotal
	}
	if parsed == 0 {
		return nil
	}

	daysSinceLast := math.Floor(now.Sub(latest.UTC()).Hours() / 24)
	totalOrders := len(profile.Orders)

	r := RScore(daysSinceLast)
	f := FScore(totalOrders)
	m := MScore(totalAmount)

	return &unifymodels.ProfileRfm{
		LatestOrderDate: latest.Format(DateLayout),
		TotalAmount:     math.Round(totalAmount*100) / 100,
		TotalOrders:     totalOrders,
		RScore:          r,
		FScore:          f,
		MScore:          m,
		Segment:         Segment(r, f, m),
		SnapshotDate:    now.UTC().Format(DateLayout),
	}
}
