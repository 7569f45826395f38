// Package unifysvc - Test Matcher hai tầng.
package unifysvc

import (
	"testing"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
)

func defaultMatchConfig() MatchConfig {
	return MatchConfig{
		NameStrong:     90,
		NameWeak:       85,
		AddrStrong:     88,
		AddrWeak:       80,
		ScoreThreshold: 5,
	}
}

func newTestMatcher() *Matcher {
	return NewMatcher(NewSequenceScorer(), defaultMatchConfig())
}

func TestIsSameCustomer_Tang1_TrungSdt(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{Phone: "0891234567", Firstname: "A"}
	b := &ordermodels.SalesOrder{ShippingPhone: "+66891234567", Firstname: "Hoàn toàn khác"}
	if !m.IsSameCustomer(a, b) {
		t.Error("hai đơn trùng sđt chuẩn hóa phải match bất kể tên")
	}
}

func TestIsSameCustomer_Tang1_TrungEmail(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{Email: "Somchai@Example.com"}
	b := &ordermodels.SalesOrder{ShippingEmail: "somchai@example.com"}
	if !m.IsSameCustomer(a, b) {
		t.Error("hai đơn trùng email chuẩn hóa phải match")
	}
}

func TestIsSameCustomer_Tang1_TrungMemberID(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{MemberID: "m-001"}
	b := &ordermodels.SalesOrder{MemberID: "m-001"}
	if !m.IsSameCustomer(a, b) {
		t.Error("hai đơn cùng member_id phải match")
	}
	// member_id rỗng không bao giờ được coi là trùng
	c := &ordermodels.SalesOrder{Firstname: "X"}
	d := &ordermodels.SalesOrder{Firstname: "Y"}
	if m.IsSameCustomer(c, d) {
		t.Error("member_id rỗng cả hai vế không được match")
	}
}

func TestIsSameCustomer_Tang1_TrungShopeeUserID(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{ShopeeInfo: &ordermodels.ShopeeInfo{ShopeeUserID: "sp-9"}}
	b := &ordermodels.SalesOrder{ShopeeInfo: &ordermodels.ShopeeInfo{ShopeeUserID: "sp-9"}}
	if !m.IsSameCustomer(a, b) {
		t.Error("hai đơn cùng shopee_user_id phải match")
	}
}

func TestIsSameCustomer_Tang1_TrungSocialID(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{Social: []ordermodels.SocialRef{{Platform: "LINE", SocialID: "U123"}}}
	b := &ordermodels.SalesOrder{Social: []ordermodels.SocialRef{{Platform: "LINE", SocialID: "U123"}}}
	if !m.IsSameCustomer(a, b) {
		t.Error("hai đơn cùng social_id phải match")
	}
}

func TestIsSameCustomer_Tang2_TenManhDiaChiManh(t *testing.T) {
	m := newTestMatcher()
	a := &ordermodels.SalesOrder{
		Firstname:        "Somchai",
		Lastname:         "Jaidee",
		ShippingAddress1: "123 Sukhumvit Rd",
		ShippingProvince: "Bangkok",
	}
	b := &ordermodels.SalesOrder{
		Firstname:        "Somchai",
		Lastname:         "Jaidee",
		ShippingAddress1: "123 Sukhumvit Rd",
		ShippingProvince: "Bangkok",
	}
	if !m.IsSameCustomer(a, b) {
		t.Error("tên mạnh + địa chỉ mạnh phải match")
	}
}

func TestIsSameCustomer_Tang2_ChiTenGiongKhongDu(t *testing.T) {
	m := newTestMatcher()
	// Tên identical (+3) nhưng không địa chỉ, không sđt: 3 < threshold 5
	a := &ordermodels.SalesOrder{Firstname: "Somchai", Lastname: "Jaidee"}
	b := &ordermodels.SalesOrder{Firstname: "Somchai", Lastname: "Jaidee"}
	if m.IsSameCustomer(a, b) {
		t.Error("chỉ trùng tên không được match (3 điểm < ngưỡng 5)")
	}
}

func TestIsSameCustomer_Tang2_TenManhCong4SoCuoi(t *testing.T) {
	m := newTestMatcher()
	// Tên identical (+3) + địa chỉ yếu không có + trùng 4 số cuối (+1) = 4 < 5
	a := &ordermodels.SalesOrder{Firstname: "Somchai", Lastname: "Jaidee", Phone: "0811114567"}
	b := &ordermodels.SalesOrder{Firstname: "Somchai", Lastname: "Jaidee", Phone: "0822224567"}
	if m.IsSameCustomer(a, b) {
		t.Error("tên + 4 số cuối = 4 điểm, chưa đủ ngưỡng 5")
	}
	// Thêm địa chỉ identical (+2) vào là đủ 6 điểm
	a.ShippingAddress1 = "99 Rama IV"
	b.ShippingAddress1 = "99 Rama IV"
	if !m.IsSameCustomer(a, b) {
		t.Error("tên + địa chỉ + 4 số cuối = 6 điểm phải match")
	}
}

func TestSharedLast4_BoSoNganHon4(t *testing.T) {
	if sharedLast4([]string{"123"}, []string{"123"}) {
		t.Error("số ngắn hơn 4 ký tự không được xét 4 số cuối")
	}
	if !sharedLast4([]string{"811114567"}, []string{"822224567"}) {
		t.Error("hai số trùng 4 số cuối phải được nhận ra")
	}
}
