// Package models - RfmHistory (rfm_history). Mỗi lần chấm điểm ghi một
// snapshot để xem biến động segment theo thời gian.
package models

// RfmHistory snapshot điểm RFM của một khách tại một thời điểm.
type RfmHistory struct {
	ID string `json:"id,omitempty" bson:"_id,omitempty"` // uuid4

	CustomerID   string `json:"customer_id" bson:"customer_id" index:"single:1"`
	SnapshotDate string `json:"snapshot_date" bson:"snapshot_date" index:"single:1"`

	RScore  int    `json:"r_score" bson:"r_score"`
	FScore  int    `json:"f_score" bson:"f_score"`
	MScore  int    `json:"m_score" bson:"m_score"`
	Segment string `json:"segment" bson:"segment"`

	CreatedDate  string `json:"created_date,omitempty" bson:"created_date,omitempty"`
	ModifiedDate string `json:"modified_date,omitempty" bson:"modified_date,omitempty"`
}
