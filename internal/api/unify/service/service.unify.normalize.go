// Package unifysvc - Engine gộp khách hàng: chuẩn hóa, trích xuất định danh,
// so khớp, gom cụm và tổng hợp profile. Toàn bộ phần lõi là hàm thuần,
// không I/O; mọi truy cập Mongo nằm ở service orchestration.
package unifysvc

import (
	"regexp"
	"strings"

	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	"github.com/NareeyaChenu/rfm-project/internal/utility"
)

// Ký tự che trong dữ liệu từ marketplace (sđt/tên bị mask thành 089***1234).
const maskChar = "*"

// Email placeholder các kênh điền khi khách không cho email thật.
const placeholderEmail = "no@email.com"

var nonDigitRe = regexp.MustCompile(`\D+`)

// NormalizePhone chuẩn hóa sđt Thái về dạng local digits trần (không +66, không 0 đầu).
// Giá trị bị mask trả về chuỗi rỗng và không bao giờ được dùng làm khóa match.
func NormalizePhone(raw string) string {
	if raw == "" || strings.Contains(raw, maskChar) {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	// Prefix quốc tế trước (00..66..), rồi mã nước, rồi số 0 đầu
	digits = strings.TrimPrefix(digits, "00")
	digits = strings.TrimPrefix(digits, "66")
	digits = strings.TrimPrefix(digits, "0")
	return digits
}

// ToDisplayPhone chuyển local digits sang dạng hiển thị +66.
func ToDisplayPhone(localDigits string) string {
	if localDigits == "" {
		return ""
	}
	return "+66" + localDigits
}

// NormalizeEmail trim + lowercase; email placeholder coi như không có.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == placeholderEmail {
		return ""
	}
	return email
}

// BuildNames gom các tên khả dĩ của khách từ 5 nguồn trên đơn:
// liên hệ chính, người nhận, khách Lazada, người nhận LINE Shopping,
// display name Shopee. Tên chứa ký tự mask hoặc gạch ngang bị loại
// (dấu hiệu tên bị che/cắt). Kết quả dedup giữ thứ tự.
func BuildNames(o *ordermodels.SalesOrder) []string {
	type pair struct{ first, last string }
	pairs := []pair{
		{o.Firstname, o.Lastname},
		{o.ShippingFirstname, o.ShippingLastname},
	}
	if o.LazadaInfo != nil {
		pairs = append(pairs, pair{o.LazadaInfo.CustomerFirstName, o.LazadaInfo.CustomerLastName})
	}
	if o.LineShoppingInfo != nil {
		pairs = append(pairs, pair{o.LineShoppingInfo.RecipientName, ""})
	}
	if o.ShopeeInfo != nil {
		pairs = append(pairs, pair{o.ShopeeInfo.ShopeeUserName, ""})
	}

	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		first := strings.TrimSpace(p.first)
		last := strings.TrimSpace(p.last)
		name := first
		if first != "" && last != "" {
			name = first + " " + last
		} else if last != "" {
			name = last
		}
		if name == "" {
			continue
		}
		if strings.Contains(name, maskChar) || strings.Contains(name, "-") {
			continue
		}
		names = append(names, name)
	}
	return utility.Unique(names)
}

// BuildAddress ghép các sub-field địa chỉ giao hàng thành một chuỗi,
// bỏ field rỗng, nối bằng ", ".
func BuildAddress(o *ordermodels.SalesOrder) string {
	fields := []string{
		o.ShippingAddress1,
		o.ShippingAddress2,
		o.ShippingSubdistrict,
		o.ShippingDistrict,
		o.ShippingProvince,
		o.ShippingZipcode,
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}

// PhonesOf trả về các sđt đã chuẩn hóa của đơn (phone, shipping_phone,
// phoneNumber của LINE Shopping), dedup giữ thứ tự, bỏ rỗng.
func PhonesOf(o *ordermodels.SalesOrder) []string {
	raws := []string{o.Phone, o.ShippingPhone}
	if o.LineShoppingInfo != nil {
		raws = append(raws, o.LineShoppingInfo.PhoneNumber)
	}
	phones := make([]string, 0, len(raws))
	for _, r := range raws {
		if p := NormalizePhone(r); p != "" {
			phones = append(phones, p)
		}
	}
	return utility.Unique(phones)
}

// EmailsOf trả về các email đã chuẩn hóa của đơn, cùng pattern với PhonesOf.
func EmailsOf(o *ordermodels.SalesOrder) []string {
	raws := []string{o.Email, o.ShippingEmail}
	if o.LineShoppingInfo != nil {
		raws = append(raws, o.LineShoppingInfo.Email)
	}
	emails := make([]string, 0, len(raws))
	for _, r := range raws {
		if e := NormalizeEmail(r); e != "" {
			emails = append(emails, e)
		}
	}
	return utility.Unique(emails)
}

// SocialIDsOf trả về tập social_id trên các social ref của đơn.
func SocialIDsOf(o *ordermodels.SalesOrder) map[string]struct{} {
	ids := make(map[string]struct{}, len(o.Social))
	for _, s := range o.Social {
		if s.SocialID != "" {
			ids[s.SocialID] = struct{}{}
		}
	}
	return ids
}

// ShopeeUserIDOf trả về shopee_user_id của đơn, rỗng nếu không có.
func ShopeeUserIDOf(o *ordermodels.SalesOrder) string {
	if o.ShopeeInfo == nil {
		return ""
	}
	return o.ShopeeInfo.ShopeeUserID
}
