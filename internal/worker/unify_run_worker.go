// Package worker - UnifyRunWorker chạy gộp khách hàng định kỳ.
// Mỗi chu kỳ chạy full pipeline trên cửa sổ đơn hàng N ngày gần nhất,
// profile luôn build lại nguyên vẹn nên chạy lại không gây trùng lặp.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	unifysvc "github.com/NareeyaChenu/rfm-project/internal/api/unify/service"
	"github.com/NareeyaChenu/rfm-project/config"
	"github.com/NareeyaChenu/rfm-project/internal/logger"
)

// UnifyRunWorker worker chạy gộp khách hàng theo chu kỳ.
type UnifyRunWorker struct {
	runService *unifysvc.UnifyRunService
	interval   time.Duration // Khoảng cách giữa các lần chạy (vd: 24h)
	windowDays int           // Cửa sổ đơn hàng mỗi lần chạy (ngày)
}

// NewUnifyRunWorker tạo worker mới từ config.
func NewUnifyRunWorker(cfg *config.Configuration) (*UnifyRunWorker, error) {
	runService, err := unifysvc.NewUnifyRunService(cfg)
	if err != nil {
		return nil, err
	}
	interval := time.Duration(cfg.UnifyRunInterval) * time.Hour
	if interval < time.Hour {
		interval = 24 * time.Hour
	}
	windowDays := cfg.UnifyRunWindowDay
	if windowDays <= 0 {
		windowDays = 90
	}
	return &UnifyRunWorker{
		runService: runService,
		interval:   interval,
		windowDays: windowDays,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *UnifyRunWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":   w.interval.String(),
		"windowDays": w.windowDays,
	}).Info("🔗 [UNIFY_RUN] Starting Unify Run Worker...")

	// Chạy ngay lần đầu sau 1 phút (tránh chạy lúc startup)
	time.Sleep(time.Minute)
	w.runOnce(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("🔗 [UNIFY_RUN] Unify Run Worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx, log)
		}
	}
}

// runOnce chạy một lần gộp trên cửa sổ windowDays ngày gần nhất.
func (w *UnifyRunWorker) runOnce(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🔗 [UNIFY_RUN] Panic khi xử lý, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	now := time.Now()
	from := now.AddDate(0, 0, -w.windowDays).Format("2006-01-02")
	to := now.Format("2006-01-02")

	run, err := w.runService.Run(ctx, from, to, false, unifymodels.RunTriggerWorker)
	if err != nil {
		log.WithError(err).Error("🔗 [UNIFY_RUN] Lần chạy gộp thất bại")
		return
	}
	log.WithFields(map[string]interface{}{
		"runId":    run.RunID,
		"orders":   run.OrderCount,
		"clusters": run.ClusterCount,
		"profiles": run.ProfileCount,
		"duration": (time.Duration(run.DurationMs) * time.Millisecond).String(),
	}).Info("🔗 [UNIFY_RUN] Hoàn tất lần chạy gộp")
}
