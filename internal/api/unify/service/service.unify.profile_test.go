// Package unifysvc - Test Synthesizer: chọn tên, derive id, tổng hợp profile.
package unifysvc

import (
	"testing"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
)

func TestChooseBestName_TanSuatCaoNhatThang(t *testing.T) {
	names := []string{"Somchai Jaidee", "Somchai Jaidee", "somchai_j"}
	if got := ChooseBestName(names); got != "Somchai Jaidee" {
		t.Errorf("ChooseBestName = %q, muốn tên xuất hiện nhiều nhất", got)
	}
}

func TestChooseBestName_HoaUuTienTenSach(t *testing.T) {
	// Hòa tần suất: "Shopee Buyer" chứa noise keyword nên thua
	names := []string{"John Doe", "John Doe", "Shopee Buyer", "Shopee Buyer"}
	if got := ChooseBestName(names); got != "John Doe" {
		t.Errorf("ChooseBestName = %q, muốn John Doe (tên không noise thắng khi hòa)", got)
	}
}

func TestChooseBestName_Rong(t *testing.T) {
	if got := ChooseBestName(nil); got != "" {
		t.Errorf("danh sách rỗng phải trả rỗng, got %q", got)
	}
}

func TestFreqChoice_HoaUuTienChuoiDaiHon(t *testing.T) {
	addrs := []string{"123 Sukhumvit", "123 Sukhumvit Rd, Bangkok"}
	if got := freqChoice(addrs); got != "123 Sukhumvit Rd, Bangkok" {
		t.Errorf("freqChoice = %q, muốn địa chỉ dài hơn khi hòa tần suất", got)
	}
}

func TestRankByFrequency_GiuThuTuGapDauKhiHoa(t *testing.T) {
	got := rankByFrequency([]string{"b", "a", "a", "c"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("rankByFrequency = %v, muốn [a b c]", got)
	}
}

func TestDeriveCustomerID_UuTienMemberID(t *testing.T) {
	cluster := Cluster{
		{OrderID: "1", ExternMemberID: "ext-9"},
		{OrderID: "2", MemberID: "m-5", Social: []ordermodels.SocialRef{{WsisID: "w-1"}}},
	}
	if got := DeriveCustomerID(cluster); got != "m-5" {
		t.Errorf("DeriveCustomerID = %q, member_id phải thắng extern và wsis", got)
	}
}

func TestDeriveCustomerID_FallbackExternRoiWsis(t *testing.T) {
	cluster := Cluster{{OrderID: "1", ExternMemberID: "ext-9", Social: []ordermodels.SocialRef{{WsisID: "w-1"}}}}
	if got := DeriveCustomerID(cluster); got != "ext-9" {
		t.Errorf("DeriveCustomerID = %q, muốn ext-9", got)
	}
	cluster = Cluster{{OrderID: "1", Social: []ordermodels.SocialRef{{WsisID: "w-1"}}}}
	if got := DeriveCustomerID(cluster); got != "w-1" {
		t.Errorf("DeriveCustomerID = %q, muốn w-1", got)
	}
}

func TestDeriveCustomerID_KhongPhuThuocThuTu(t *testing.T) {
	a := ordermodels.SalesOrder{OrderID: "1", Phone: "0891234567", Firstname: "Somchai"}
	b := ordermodels.SalesOrder{OrderID: "2", Email: "somchai@example.com", Firstname: "somchai"}
	id1 := DeriveCustomerID(Cluster{a, b})
	id2 := DeriveCustomerID(Cluster{b, a})
	if id1 != id2 {
		t.Errorf("đảo thứ tự cluster phải cho cùng id: %q != %q", id1, id2)
	}
	if id1 == "" {
		t.Error("id không được rỗng")
	}
}

func TestDeriveCustomerID_FallbackOrderID(t *testing.T) {
	// Cluster không có bất kỳ dữ liệu định danh nào vẫn phải ra id ổn định
	id1 := DeriveCustomerID(Cluster{{OrderID: "z-2"}, {OrderID: "z-1"}})
	id2 := DeriveCustomerID(Cluster{{OrderID: "z-1"}, {OrderID: "z-2"}})
	if id1 == "" || id1 != id2 {
		t.Errorf("fallback order_id phải deterministic: %q vs %q", id1, id2)
	}
}

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{nil, 0},
		{float64(150.5), 150.5},
		{int32(200), 200},
		{"99.90", 99.9},
		{" 120 ", 120},
		{"abc", 0},
		{[]string{"x"}, 0},
	}
	for _, c := range cases {
		if got := coerceAmount(c.in); got != c.want {
			t.Errorf("coerceAmount(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}

func TestSynthesize_DonThieuOrderIDVanDongGopDinhDanh(t *testing.T) {
	s := NewSynthesizer("provider-test")
	cluster := Cluster{
		{OrderID: "ord-1", Phone: "0891234567", Firstname: "Somchai", Lastname: "Jaidee", GrandTotal: "150.50", CreatedDate: "2026-01-02 10:00:00"},
		{OrderID: "", Phone: "0891234567", Email: "somchai@example.com"},
	}
	p := s.Synthesize(cluster)
	if len(p.Orders) != 1 {
		t.Fatalf("đơn thiếu order_id phải bị loại khỏi Orders, got %d", len(p.Orders))
	}
	if p.Orders[0].GrandTotal != 150.5 {
		t.Errorf("GrandTotal = %v, muốn 150.5", p.Orders[0].GrandTotal)
	}
	if len(p.Emails) != 1 || p.Emails[0].Email != "somchai@example.com" {
		t.Errorf("email từ đơn thiếu order_id vẫn phải vào profile, got %v", p.Emails)
	}
	if p.ProviderID != "provider-test" {
		t.Errorf("ProviderID = %q", p.ProviderID)
	}
}

func TestSynthesize_PrimaryPhoneTheoTanSuat(t *testing.T) {
	s := NewSynthesizer("p")
	cluster := Cluster{
		{OrderID: "1", Phone: "0811111111"},
		{OrderID: "2", Phone: "0822222222"},
		{OrderID: "3", Phone: "0822222222"},
	}
	p := s.Synthesize(cluster)
	if len(p.Phones) != 2 {
		t.Fatalf("muốn 2 sđt, got %d", len(p.Phones))
	}
	if p.Phones[0].PhoneNumber != "+66822222222" || !p.Phones[0].IsPrimary {
		t.Errorf("sđt tần suất cao nhất phải đứng đầu và là primary, got %+v", p.Phones[0])
	}
	if p.Phones[1].IsPrimary {
		t.Error("chỉ phần tử đầu được là primary")
	}
}

func TestCollectSources_DedupVaNguonTongHop(t *testing.T) {
	cluster := Cluster{
		{
			OrderID:    "1",
			ChannelID:  "ch-1",
			OrderFrom:  ordermodels.OrderFromShopee,
			ShopeeInfo: &ordermodels.ShopeeInfo{ShopeeUserID: "sp-1", ShopeeUserName: "shop_user"},
		},
		{
			OrderID:    "2",
			ChannelID:  "ch-1",
			OrderFrom:  ordermodels.OrderFromShopee,
			ShopeeInfo: &ordermodels.ShopeeInfo{ShopeeUserID: "sp-1", ShopeeUserName: "shop_user"},
			Social:     []ordermodels.SocialRef{{Platform: "LINE", SocialID: "U1", WsisID: "w1"}},
		},
	}
	sources := collectSources(cluster)
	if len(sources) != 2 {
		t.Fatalf("muốn 2 source (SHOPEE dedup + LINE), got %d: %+v", len(sources), sources)
	}
	if sources[0].Platform != "SHOPEE" || sources[0].SocialID != "sp-1" {
		t.Errorf("source đầu phải là SHOPEE sp-1, got %+v", sources[0])
	}
}

func TestCollectSources_LazadaThieuInfoVanCoSource(t *testing.T) {
	cluster := Cluster{
		{OrderID: "1", OrderFrom: ordermodels.OrderFromLazada},
		{OrderID: "2", OrderFrom: ordermodels.OrderFromLazada},
	}
	sources := collectSources(cluster)
	if len(sources) != 1 {
		t.Fatalf("đơn Lazada thiếu lazada_info vẫn phải sinh 1 source LAZADA sau dedup, got %d: %+v", len(sources), sources)
	}
	if sources[0].Platform != "LAZADA" || sources[0].SocialID != "" {
		t.Errorf("source = %+v", sources[0])
	}
}

func TestCollectNotes_DedupTheoNoteIDVaBoField(t *testing.T) {
	cluster := Cluster{
		{OrderID: "1", Notes: []ordermodels.OrderNote{{"note_id": "n1", "text": "VIP"}}},
		{OrderID: "2", Notes: []ordermodels.OrderNote{{"note_id": "n1", "text": "VIP"}, {"note_id": "n2", "text": "COD only"}}},
	}
	notes := collectNotes(cluster)
	if len(notes) != 2 {
		t.Fatalf("muốn 2 note sau dedup, got %d", len(notes))
	}
	for _, n := range notes {
		if _, ok := n["note_id"]; ok {
			t.Errorf("note_id phải bị bỏ khỏi bản ghi profile, got %v", n)
		}
	}
}

func TestCollectAddresses_DedupVaBoRong(t *testing.T) {
	cluster := Cluster{
		{OrderID: "1", ShippingAddress1: "123 Sukhumvit", ShippingProvince: "Bangkok"},
		{OrderID: "2", ShippingAddress1: "123 Sukhumvit", ShippingProvince: "Bangkok"},
		{OrderID: "3"},
	}
	addrs := collectAddresses(cluster)
	if len(addrs) != 1 {
		t.Fatalf("muốn 1 địa chỉ sau dedup (đơn không địa chỉ bị bỏ), got %d", len(addrs))
	}
	if addrs[0].Full != "123 Sukhumvit, Bangkok" {
		t.Errorf("Full = %q", addrs[0].Full)
	}
}
