// Package models - CustomerProfile thuộc domain Unify (crm_customer_profiles).
// Hồ sơ khách hàng đã gộp: một document cho một khách thật, tổng hợp từ
// một cluster đơn hàng. Luôn build lại nguyên vẹn từ cluster, không update lẻ field.
package models

// ProfilePhone số điện thoại đã chuẩn hóa dạng hiển thị (+66...),
// xếp theo tần suất xuất hiện, số gặp nhiều nhất là primary.
type ProfilePhone struct {
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	IsPrimary   bool   `json:"is_primary" bson:"is_primary"`
}

// ProfileEmail email đã chuẩn hóa, xếp theo tần suất như ProfilePhone.
type ProfileEmail struct {
	Email     string `json:"email" bson:"email"`
	IsPrimary bool   `json:"is_primary" bson:"is_primary"`
}

// ProfileSource một kênh/mạng xã hội đã thấy khách xuất hiện.
// Dedup theo cặp (platform, social_id), giữ lần gặp đầu tiên.
type ProfileSource struct {
	ChannelID   string `json:"channel_id,omitempty" bson:"channel_id,omitempty"`
	Platform    string `json:"platform,omitempty" bson:"platform,omitempty"`
	ChannelName string `json:"channel_name,omitempty" bson:"channel_name,omitempty"`
	WsisID      string `json:"wsis_id,omitempty" bson:"wsis_id,omitempty"`
	SocialName  string `json:"social_name,omitempty" bson:"social_name,omitempty"`
	SocialID    string `json:"social_id,omitempty" bson:"social_id,omitempty"`
}

// ProfileProduct dòng sản phẩm trong order summary.
type ProfileProduct struct {
	ProductID   string `json:"product_id,omitempty" bson:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty" bson:"product_name,omitempty"`
	Sku         string `json:"sku,omitempty" bson:"sku,omitempty"`
}

// ProfileOrder tóm tắt một đơn trong profile. Chỉ đơn có order_id mới
// được ghi vào đây; đơn thiếu order_id vẫn đóng góp vào các aggregate khác.
type ProfileOrder struct {
	OrderID    string           `json:"order_id" bson:"order_id"`
	OrderFrom  int              `json:"order_from" bson:"order_from"`
	OrderDate  string           `json:"order_date,omitempty" bson:"order_date,omitempty"`
	Products   []ProfileProduct `json:"products,omitempty" bson:"products,omitempty"`
	GrandTotal float64          `json:"grand_total" bson:"grand_total"`
}

// ProfileAddress địa chỉ giao hàng có cấu trúc của một đơn,
// dedup theo bộ đầy đủ các sub-field.
type ProfileAddress struct {
	Line1       string `json:"line1,omitempty" bson:"line1,omitempty"`
	Line2       string `json:"line2,omitempty" bson:"line2,omitempty"`
	Subdistrict string `json:"subdistrict,omitempty" bson:"subdistrict,omitempty"`
	District    string `json:"district,omitempty" bson:"district,omitempty"`
	Province    string `json:"province,omitempty" bson:"province,omitempty"`
	Zipcode     string `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Full        string `json:"full,omitempty" bson:"full,omitempty"`
}

// ProfileRfm kết quả chấm điểm RFM ghi lên profile, tính lại mỗi lần chạy.
type ProfileRfm struct {
	LatestOrderDate string  `json:"latest_order_date" bson:"latest_order_date"`
	TotalAmount     float64 `json:"total_amount" bson:"total_amount"`
	TotalOrders     int     `json:"total_orders" bson:"total_orders"`
	RScore          int     `json:"r_score" bson:"r_score"`
	FScore          int     `json:"f_score" bson:"f_score"`
	MScore          int     `json:"m_score" bson:"m_score"`
	Segment         string  `json:"segment" bson:"segment"`
	SnapshotDate    string  `json:"snapshot_date" bson:"snapshot_date"`
}

// CustomerProfile hồ sơ khách đã gộp (crm_customer_profiles).
// _id là customer_id ổn định: member_id > extern_member_id > wsis_id >
// uuid5 từ thuộc tính định danh đã sort.
type CustomerProfile struct {
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	FullName string `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`

	Phones    []ProfilePhone   `json:"phones,omitempty" bson:"phones,omitempty"`
	Emails    []ProfileEmail   `json:"emails,omitempty" bson:"emails,omitempty"`
	Sources   []ProfileSource  `json:"sources,omitempty" bson:"sources,omitempty"`
	Orders    []ProfileOrder   `json:"orders,omitempty" bson:"orders,omitempty"`
	Addresses []ProfileAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`

	Tags  []string                 `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes []map[string]interface{} `json:"notes,omitempty" bson:"notes,omitempty"`

	Rfm *ProfileRfm `json:"rfm,omitempty" bson:"rfm,omitempty"`

	ProviderID string `json:"provider_id,omitempty" bson:"provider_id,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
