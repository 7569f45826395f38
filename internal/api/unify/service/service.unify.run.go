// UnifyRunService - orchestration một lần chạy gộp khách hàng:
// export đơn -> enrich membership -> cluster -> synthesize profile ->
// chấm RFM -> persist -> ghi nhật ký run -> email báo cáo.
// Mỗi thời điểm chỉ một run được chạy.
package unifysvc

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/NareeyaChenu/rfm-project/config"
	basemodels "github.com/NareeyaChenu/rfm-project/internal/api/base/models"
	basesvc "github.com/NareeyaChenu/rfm-project/internal/api/base/service"
	ordersvc "github.com/NareeyaChenu/rfm-project/internal/api/order/service"
	rfmsvc "github.com/NareeyaChenu/rfm-project/internal/api/rfm/service"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"
	"github.com/NareeyaChenu/rfm-project/internal/notification"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Số profile lớn nhất đưa vào báo cáo email.
const reportTopProfiles = 5

// UnifyRunService chạy và tra cứu các lần gộp khách hàng.
type UnifyRunService struct {
	cfg      *config.Configuration
	runs     *basesvc.BaseServiceMongoImpl[unifymodels.UnifyRun]
	export   *ordersvc.OrderExportService
	enrich   *ordersvc.MemberEnrichService
	profiles *CustomerProfileService
	rfm      *rfmsvc.RfmService

	clusterer   *Clusterer
	synthesizer *Synthesizer

	running atomic.Bool
}

// NewUnifyRunService khởi tạo service và toàn bộ engine từ config.
func NewUnifyRunService(cfg *config.Configuration) (*UnifyRunService, error) {
	runColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.UnifyRuns)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.UnifyRuns, common.ErrNotFound)
	}
	export, err := ordersvc.NewOrderExportService()
	if err != nil {
		return nil, err
	}
	enrich, err := ordersvc.NewMemberEnrichService()
	if err != nil {
		return nil, err
	}
	profiles, err := NewCustomerProfileService()
	if err != nil {
		return nil, err
	}
	rfm, err := rfmsvc.NewRfmService()
	if err != nil {
		return nil, err
	}

	matcher := NewMatcher(NewScorer(cfg.EngineScorerBackend), MatchConfigFrom(cfg))
	return &UnifyRunService{
		cfg:         cfg,
		runs:        basesvc.NewBaseServiceMongo[unifymodels.UnifyRun](runColl),
		export:      export,
		enrich:      enrich,
		profiles:    profiles,
		rfm:         rfm,
		clusterer:   NewClusterer(matcher, cfg.EngineConvergencePass),
		synthesizer: NewSynthesizer(cfg.ProviderID),
	}, nil
}

// Run chạy một lần gộp cho khoảng ngày [from, to]. dryRun chỉ tính toán,
// không ghi profile và lịch sử RFM. Đang có run khác thì trả ErrRunInProgress.
func (s *UnifyRunService) Run(ctx context.Context, from, to string, dryRun bool, trigger string) (*unifymodels.UnifyRun, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, common.ErrRunInProgress
	}
	defer s.running.Store(false)

	log := logger.WithModule("unify")
	started := time.Now()

	run := unifymodels.UnifyRun{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		Status:    unifymodels.RunStatusRunning,
		DryRun:    dryRun,
		FromDate:  from,
		ToDate:    to,
		StartedAt: started.UnixMilli(),
	}
	run, err := s.runs.InsertOne(ctx, run)
	if err != nil {
		return nil, err
	}
	log.Infof("Bắt đầu run %s (%s .. %s, trigger=%s, dryRun=%v)", run.RunID, from, to, trigger, dryRun)

	result, runErr := s.execute(ctx, &run)
	finished := time.Now()
	run.DurationMs = finished.Sub(started).Milliseconds()
	run.FinishedAt = finished.UnixMilli()
	if runErr != nil {
		run.Status = unifymodels.RunStatusFailed
		run.Error = runErr.Error()
	} else {
		run.Status = unifymodels.RunStatusCompleted
	}

	update := bson.M{"$set": bson.M{
		"status":         run.Status,
		"error":          run.Error,
		"order_count":    run.OrderCount,
		"cluster_count":  run.ClusterCount,
		"profile_count":  run.ProfileCount,
		"upserted_count": run.UpsertedCount,
		"duration_ms":    run.DurationMs,
		"finished_at":    run.FinishedAt,
	}}
	if _, err := s.runs.UpdateOne(ctx, bson.M{"run_id": run.RunID}, update, nil); err != nil {
		log.Warnf("Không cập nhật được nhật ký run %s: %v", run.RunID, err)
	}

	logger.LogRun(run.RunID, trigger, map[string]interface{}{
		"from":     from,
		"to":       to,
		"dry_run":  dryRun,
		"status":   run.Status,
		"orders":   run.OrderCount,
		"profiles": run.ProfileCount,
	})

	if runErr != nil {
		log.Errorf("Run %s thất bại: %v", run.RunID, runErr)
		return &run, common.NewError(common.ErrCodeEngineRun, "Chạy gộp khách hàng thất bại", common.StatusInternalServerError, runErr.Error())
	}

	log.Infof("Run %s hoàn tất: %d đơn -> %d cluster -> %d profile (%s)",
		run.RunID, run.OrderCount, run.ClusterCount, run.ProfileCount, finished.Sub(started).Round(time.Millisecond))

	if result != nil && !dryRun {
		result.Duration = finished.Sub(started)
		if err := notification.SendRunReport(s.cfg, result); err != nil {
			log.Warnf("Không gửi được báo cáo run %s: %v", run.RunID, err)
		}
	}
	return &run, nil
}

// execute phần thân của run, tách riêng để Run gom việc ghi nhật ký một chỗ.
func (s *UnifyRunService) execute(ctx context.Context, run *unifymodels.UnifyRun) (*notification.RunReport, error) {
	orders, err := s.export.ExportWindow(ctx, run.FromDate, run.ToDate)
	if err != nil {
		return nil, err
	}
	run.OrderCount = len(orders)
	if len(orders) == 0 {
		return nil, nil
	}

	if err := s.enrich.EnrichOrders(ctx, orders); err != nil {
		return nil, err
	}

	clusters := s.clusterer.Cluster(orders)
	run.ClusterCount = len(clusters)

	now := time.Now().UTC()
	synthesized := make([]*unifymodels.CustomerProfile, 0, len(clusters))
	for _, cluster := range clusters {
		synthesized = append(synthesized, s.synthesizer.Synthesize(cluster))
	}
	run.ProfileCount = len(synthesized)

	history := s.rfm.ScoreInMemory(synthesized, now)

	if !run.DryRun {
		docs := make([]unifymodels.CustomerProfile, 0, len(synthesized))
		for _, p := range synthesized {
			docs = append(docs, *p)
		}
		written, err := s.profiles.SaveAll(ctx, docs)
		if err != nil {
			return nil, err
		}
		run.UpsertedCount = written
		if err := s.rfm.SaveHistory(ctx, history); err != nil {
			return nil, err
		}
	}

	return s.buildReport(run, synthesized), nil
}

// buildReport dựng số liệu báo cáo email, kèm nhãn các profile nhiều đơn nhất.
func (s *UnifyRunService) buildReport(run *unifymodels.UnifyRun, profiles []*unifymodels.CustomerProfile) *notification.RunReport {
	sorted := make([]*unifymodels.CustomerProfile, len(profiles))
	copy(sorted, profiles)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Orders) > len(sorted[j].Orders)
	})

	top := make([]string, 0, reportTopProfiles)
	for _, p := range sorted {
		if len(top) >= reportTopProfiles {
			break
		}
		name := p.FullName
		if name == "" {
			name = p.ID
		}
		top = append(top, fmt.Sprintf("%s (%d đơn)", name, len(p.Orders)))
	}

	return &notification.RunReport{
		RunID:        run.RunID,
		FromDate:     run.FromDate,
		ToDate:       run.ToDate,
		OrderCount:   run.OrderCount,
		ClusterCount: run.ClusterCount,
		ProfileCount: run.ProfileCount,
		Duration:     time.Duration(run.DurationMs) * time.Millisecond,
		TopProfiles:  top,
	}
}

// ListRuns trả về các run gần nhất, mới trước.
func (s *UnifyRunService) ListRuns(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[unifymodels.UnifyRun], error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}})
	return s.runs.FindWithPagination(ctx, bson.M{}, page, limit, opts)
}
