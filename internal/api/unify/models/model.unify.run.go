// Package models - UnifyRun (unify_runs). Nhật ký từng lần chạy gộp
// để API trả về lịch sử và worker biết lần chạy gần nhất.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái một lần chạy.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Nguồn kích hoạt.
const (
	RunTriggerAPI    = "api"
	RunTriggerWorker = "worker"
)

// UnifyRun một lần chạy gộp khách hàng.
type UnifyRun struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	RunID   string `json:"run_id" bson:"run_id" index:"unique"`
	Trigger string `json:"trigger" bson:"trigger"` // api | worker
	Status  string `json:"status" bson:"status"`
	DryRun  bool   `json:"dry_run" bson:"dry_run"`

	// Khoảng ngày export (dạng "YYYY-MM-DD")
	FromDate string `json:"from_date" bson:"from_date"`
	ToDate   string `json:"to_date" bson:"to_date"`

	// Kết quả
	OrderCount    int    `json:"order_count" bson:"order_count"`
	ClusterCount  int    `json:"cluster_count" bson:"cluster_count"`
	ProfileCount  int    `json:"profile_count" bson:"profile_count"`
	UpsertedCount int64  `json:"upserted_count" bson:"upserted_count"`
	DurationMs    int64  `json:"duration_ms" bson:"duration_ms"`
	Error         string `json:"error,omitempty" bson:"error,omitempty"`

	StartedAt  int64 `json:"started_at" bson:"started_at" index:"single:1"`
	FinishedAt int64 `json:"finished_at,omitempty" bson:"finished_at,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
