// Package models - SalesOrder thuộc domain Order (sales_orders).
// Dữ liệu đơn hàng thô từ các kênh bán (Shopee, Lazada, LINE Shopping, web),
// là input duy nhất của engine gộp khách hàng. Collection này chỉ đọc.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mã kênh bán trong order_from.
const (
	OrderFromLazada       = 12 // Lazada
	OrderFromShopee       = 16 // Shopee
	OrderFromLineShopping = 21 // LINE Shopping
)

// OrderStatusCancelled - đơn đã hủy, loại khỏi export.
const OrderStatusCancelled = 4

// OrderProduct sản phẩm trong đơn. Field tên trên document thô là "name",
// sang profile mới đổi thành product_name.
type OrderProduct struct {
	ProductID string `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	Sku       string `json:"sku,omitempty" bson:"sku,omitempty"`
}

// ShopeeInfo thông tin kênh Shopee gắn trên đơn.
type ShopeeInfo struct {
	ShopeeUserID   string `json:"shopee_user_id,omitempty" bson:"shopee_user_id,omitempty"`
	ShopeeUserName string `json:"shopee_user_name,omitempty" bson:"shopee_user_name,omitempty"`
}

// LazadaInfo thông tin kênh Lazada gắn trên đơn.
// Tên khách bên Lazada nằm ở customer_first_name/customer_last_name.
type LazadaInfo struct {
	LazadaUserID      string `json:"lazada_user_id,omitempty" bson:"lazada_user_id,omitempty"`
	LazadaUserName    string `json:"lazada_user_name,omitempty" bson:"lazada_user_name,omitempty"`
	CustomerFirstName string `json:"customer_first_name,omitempty" bson:"customer_first_name,omitempty"`
	CustomerLastName  string `json:"customer_last_name,omitempty" bson:"customer_last_name,omitempty"`
}

// LineShoppingInfo thông tin kênh LINE Shopping gắn trên đơn.
// Field giữ nguyên casing của payload gốc (recipientName, phoneNumber).
type LineShoppingInfo struct {
	RecipientName string `json:"recipientName,omitempty" bson:"recipientName,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
}

// LineInfo thông tin tài khoản LINE chat gắn trên đơn.
type LineInfo struct {
	LineUserID   string `json:"line_user_id,omitempty" bson:"line_user_id,omitempty"`
	LineUserName string `json:"line_user_name,omitempty" bson:"line_user_name,omitempty"`
}

// SocialRef tham chiếu mạng xã hội của khách trên đơn.
// Được enrich thêm từ members khi đơn có member_id.
type SocialRef struct {
	Platform    string `json:"platform,omitempty" bson:"platform,omitempty"` // FACEBOOK | LINE | INSTAGRAM | SHOPEE | LAZADA | LINE SHOPPING
	ChannelName string `json:"channel_name,omitempty" bson:"channel_name,omitempty"`
	SocialID    string `json:"social_id,omitempty" bson:"social_id,omitempty"`
	SocialName  string `json:"social_name,omitempty" bson:"social_name,omitempty"`
	WsisID      string `json:"wsis_id,omitempty" bson:"wsis_id,omitempty"`
}

// OrderNote ghi chú trên đơn. Ngoài note_id các field còn lại tự do,
// giữ nguyên khi gom vào profile.
type OrderNote map[string]interface{}

// SalesOrder đơn hàng thô (sales_orders).
type SalesOrder struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Định danh đơn
	OrderID       string `json:"order_id,omitempty" bson:"order_id,omitempty" index:"single:1"`
	OrderFrom     int    `json:"order_from" bson:"order_from" index:"single:1"`
	OrderStatusID int    `json:"order_status_id" bson:"order_status_id" index:"compound:order_status_created"`
	ChannelID     string `json:"channel_id,omitempty" bson:"channel_id,omitempty"`

	// Hai field ngày cùng tồn tại trên document gốc: date_created dùng để
	// lọc export theo khoảng ngày, created_date là ngày đơn ghi vào profile.
	DateCreated string `json:"date_created,omitempty" bson:"date_created,omitempty" index:"single:1,compound:order_status_created"` // "YYYY-MM-DD HH:MM:SS"
	CreatedDate string `json:"created_date,omitempty" bson:"created_date,omitempty"`

	// Thông tin khách trên đơn
	Firstname string `json:"firstname,omitempty" bson:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty" bson:"lastname,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`

	// Thông tin giao hàng
	ShippingFirstname   string `json:"shipping_firstname,omitempty" bson:"shipping_firstname,omitempty"`
	ShippingLastname    string `json:"shipping_lastname,omitempty" bson:"shipping_lastname,omitempty"`
	ShippingPhone       string `json:"shipping_phone,omitempty" bson:"shipping_phone,omitempty"`
	ShippingEmail       string `json:"shipping_email,omitempty" bson:"shipping_email,omitempty"`
	ShippingAddress1    string `json:"shipping_address_1,omitempty" bson:"shipping_address_1,omitempty"`
	ShippingAddress2    string `json:"shipping_address_2,omitempty" bson:"shipping_address_2,omitempty"`
	ShippingSubdistrict string `json:"shipping_subdistrict,omitempty" bson:"shipping_subdistrict,omitempty"`
	ShippingDistrict    string `json:"shipping_district,omitempty" bson:"shipping_district,omitempty"`
	ShippingProvince    string `json:"shipping_province,omitempty" bson:"shipping_province,omitempty"`
	ShippingZipcode     string `json:"shipping_zipcode,omitempty" bson:"shipping_zipcode,omitempty"`

	// Liên kết membership
	MemberID       string `json:"member_id,omitempty" bson:"member_id,omitempty" index:"single:1"`
	ExternMemberID string `json:"extern_member_id,omitempty" bson:"extern_member_id,omitempty"`

	// GrandTotal để interface{} vì nguồn trả lẫn string và number; coerce khi tổng hợp.
	GrandTotal interface{}    `json:"grand_total,omitempty" bson:"grand_total,omitempty"`
	Products   []OrderProduct `json:"products,omitempty" bson:"products,omitempty"`

	// Thông tin theo kênh
	ShopeeInfo       *ShopeeInfo       `json:"shopee_info,omitempty" bson:"shopee_info,omitempty"`
	LazadaInfo       *LazadaInfo       `json:"lazada_info,omitempty" bson:"lazada_info,omitempty"`
	LineShoppingInfo *LineShoppingInfo `json:"line_shopping_info,omitempty" bson:"line_shopping_info,omitempty"`
	LineInfo         *LineInfo         `json:"line_info,omitempty" bson:"line_info,omitempty"`

	// Enrichment (gắn thêm sau khi export, không ghi lại vào collection)
	Social []SocialRef `json:"social,omitempty" bson:"social,omitempty"`
	Tags   []string    `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes  []OrderNote `json:"notes,omitempty" bson:"notes,omitempty"`

	ProviderID string `json:"provider_id,omitempty" bson:"provider_id,omitempty"`
}
