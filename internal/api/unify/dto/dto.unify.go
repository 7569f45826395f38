// Package dto - DTO cho domain Unify.
package dto

// UnifyRunInput yêu cầu chạy gộp khách hàng.
// From/To dạng "YYYY-MM-DD"; DryRun chỉ tính toán, không ghi profile.
type UnifyRunInput struct {
	From   string `json:"from" validate:"required,datetime=2006-01-02"`
	To     string `json:"to" validate:"required,datetime=2006-01-02"`
	DryRun bool   `json:"dryRun,omitempty"`
}

// UnifyRunResponse tóm tắt một lần chạy.
type UnifyRunResponse struct {
	RunID         string `json:"runId"`
	Trigger       string `json:"trigger"`
	Status        string `json:"status"`
	DryRun        bool   `json:"dryRun"`
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`
	OrderCount    int    `json:"orderCount"`
	ClusterCount  int    `json:"clusterCount"`
	ProfileCount  int    `json:"profileCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	DurationMs    int64  `json:"durationMs"`
	Error         string `json:"error,omitempty"`
	StartedAt     int64  `json:"startedAt"`
	FinishedAt    int64  `json:"finishedAt,omitempty"`
}

// CustomerListQuery tham số phân trang danh sách profile.
type CustomerListQuery struct {
	Page    int64  `query:"page"`
	Limit   int64  `query:"limit"`
	Segment string `query:"segment" validate:"omitempty,no_xss"` // lọc theo rfm.segment, bỏ trống lấy tất cả
}

// RfmRecalculateResponse kết quả rescore RFM.
type RfmRecalculateResponse struct {
	ScoredProfiles int `json:"scoredProfiles"`
}
