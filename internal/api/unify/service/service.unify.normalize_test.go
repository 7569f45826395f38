// Package unifysvc - Test chuẩn hóa sđt/email và trích xuất tên, địa chỉ.
package unifysvc

import (
	"reflect"
	"testing"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
)

func TestNormalizePhone_CacDangThaiLan(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"0891234567", "891234567"},
		{"089-123-4567", "891234567"},
		{"+66891234567", "891234567"},
		{"66891234567", "891234567"},
		{"0066891234567", "891234567"},
		{"089 123 4567", "891234567"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.raw); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, muốn %q", c.raw, got, c.want)
		}
	}
}

func TestNormalizePhone_BiMaskTraVeRong(t *testing.T) {
	if got := NormalizePhone("089***4567"); got != "" {
		t.Errorf("sđt bị mask phải trả về rỗng, got %q", got)
	}
}

func TestToDisplayPhone(t *testing.T) {
	if got := ToDisplayPhone("891234567"); got != "+66891234567" {
		t.Errorf("ToDisplayPhone = %q, muốn +66891234567", got)
	}
	if got := ToDisplayPhone(""); got != "" {
		t.Errorf("ToDisplayPhone rỗng phải trả rỗng, got %q", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Somchai@Example.COM "); got != "somchai@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
	if got := NormalizeEmail("no@email.com"); got != "" {
		t.Errorf("email placeholder phải trả về rỗng, got %q", got)
	}
	if got := NormalizeEmail("NO@EMAIL.COM"); got != "" {
		t.Errorf("email placeholder viết hoa phải trả về rỗng, got %q", got)
	}
}

func TestBuildNames_GomVaLoaiTenMask(t *testing.T) {
	o := &ordermodels.SalesOrder{
		Firstname:         "Somchai",
		Lastname:          "Jaidee",
		ShippingFirstname: "Somchai",
		ShippingLastname:  "Jaidee",
		LazadaInfo: &ordermodels.LazadaInfo{
			CustomerFirstName: "S****i",
			CustomerLastName:  "J.",
		},
		ShopeeInfo: &ordermodels.ShopeeInfo{
			ShopeeUserName: "somchai_j",
		},
	}
	got := BuildNames(o)
	want := []string{"Somchai Jaidee", "somchai_j"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildNames = %v, muốn %v (tên mask bị loại, dedup giữ thứ tự)", got, want)
	}
}

func TestBuildNames_LoaiTenChuaGachNgang(t *testing.T) {
	o := &ordermodels.SalesOrder{Firstname: "-", Lastname: ""}
	if got := BuildNames(o); len(got) != 0 {
		t.Errorf("tên chứa gạch ngang phải bị loại, got %v", got)
	}
}

func TestBuildAddress_BoFieldRong(t *testing.T) {
	o := &ordermodels.SalesOrder{
		ShippingAddress1: "123 Sukhumvit Rd",
		ShippingDistrict: "Watthana",
		ShippingProvince: "Bangkok",
		ShippingZipcode:  "10110",
	}
	want := "123 Sukhumvit Rd, Watthana, Bangkok, 10110"
	if got := BuildAddress(o); got != want {
		t.Errorf("BuildAddress = %q, muốn %q", got, want)
	}
	if got := BuildAddress(&ordermodels.SalesOrder{}); got != "" {
		t.Errorf("đơn không có địa chỉ phải trả rỗng, got %q", got)
	}
}

func TestPhonesOf_DedupVaBoMask(t *testing.T) {
	o := &ordermodels.SalesOrder{
		Phone:         "0891234567",
		ShippingPhone: "+66891234567",
		LineShoppingInfo: &ordermodels.LineShoppingInfo{
			PhoneNumber: "089***4567",
		},
	}
	got := PhonesOf(o)
	if !reflect.DeepEqual(got, []string{"891234567"}) {
		t.Errorf("PhonesOf = %v, muốn [891234567]", got)
	}
}

func TestEmailsOf_BoPlaceholder(t *testing.T) {
	o := &ordermodels.SalesOrder{
		Email:         "no@email.com",
		ShippingEmail: "Somchai@example.com",
	}
	got := EmailsOf(o)
	if !reflect.DeepEqual(got, []string{"somchai@example.com"}) {
		t.Errorf("EmailsOf = %v, muốn [somchai@example.com]", got)
	}
}
