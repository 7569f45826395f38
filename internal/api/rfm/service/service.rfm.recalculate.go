// RfmService - chấm điểm RFM cho profile: in-memory trong pipeline gộp
// và rescore toàn bộ collection qua API.
package rfmsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/NareeyaChenu/rfm-project/internal/api/base/service"
	rfmmodels "github.com/NareeyaChenu/rfm-project/internal/api/rfm/models"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// RfmService chấm điểm RFM và ghi snapshot lịch sử.
type RfmService struct {
	profiles *basesvc.BaseServiceMongoImpl[unifymodels.CustomerProfile]
	history  *basesvc.BaseServiceMongoImpl[rfmmodels.RfmHistory]
}

// NewRfmService tạo RfmService mới.
func NewRfmService() (*RfmService, error) {
	profileColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CustomerProfiles)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CustomerProfiles, common.ErrNotFound)
	}
	historyColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RfmHistory)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RfmHistory, common.ErrNotFound)
	}
	return &RfmService{
		profiles: basesvc.NewBaseServiceMongo[unifymodels.CustomerProfile](profileColl),
		history:  basesvc.NewBaseServiceMongo[rfmmodels.RfmHistory](historyColl),
	}, nil
}

// historyEntry dựng snapshot lịch sử từ rfm vừa tính.
func historyEntry(customerID string, rfm *unifymodels.ProfileRfm) rfmmodels.RfmHistory {
	return rfmmodels.RfmHistory{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		SnapshotDate: rfm.SnapshotDate,
		RScore:       rfm.RScore,
		FScore:       rfm.FScore,
		MScore:       rfm.MScore,
		Segment:      rfm.Segment,
		CreatedDate:  rfm.SnapshotDate,
		ModifiedDate: rfm.SnapshotDate,
	}
}

// ScoreInMemory chấm điểm cho danh sách profile chưa persist (pipeline gộp),
// gắn kết quả vào profile.Rfm và trả về các snapshot lịch sử tương ứng.
// Profile không có đơn hoặc không parse được ngày thì bỏ qua.
func (s *RfmService) ScoreInMemory(profiles []*unifymodels.CustomerProfile, now time.Time) []rfmmodels.RfmHistory {
	entries := make([]rfmmodels.RfmHistory, 0, len(profiles))
	for _, p := range profiles {
		rfm := Compute(p, now)
		if rfm == nil {
			continue
		}
		p.Rfm = rfm
		entries = append(entries, historyEntry(p.ID, rfm))
	}
	return entries
}

// SaveHistory ghi các snapshot lịch sử xuống rfm_history.
func (s *RfmService) SaveHistory(ctx context.Context, entries []rfmmodels.RfmHistory) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := s.history.InsertMany(ctx, entries)
	return err
}

// RecalculateAll rescore toàn bộ profile đã lưu, update profile.rfm và
// append lịch sử. Trả về số profile đã chấm điểm.
func (s *RfmService) RecalculateAll(ctx context.Context) (int, error) {
	log := logger.WithModule("rfm")
	now := time.Now().UTC()

	const pageSize = int64(500)
	scored := 0
	var entries []rfmmodels.RfmHistory

	page := int64(1)
	for {
		result, err := s.profiles.FindWithPagination(ctx, bson.M{}, page, pageSize, nil)
		if err != nil {
			return scored, err
		}
		if len(result.Items) == 0 {
			break
		}
		for i := range result.Items {
			p := &result.Items[i]
			rfm := Compute(p, now)
			if rfm == nil {
				continue
			}
			update := bson.M{"$set": bson.M{
				"rfm":       rfm,
				"updatedAt": now.UnixMilli(),
			}}
			if _, err := s.profiles.UpdateOne(ctx, bson.M{"_id": p.ID}, update, nil); err != nil {
				return scored, err
			}
			entries = append(entries, historyEntry(p.ID, rfm))
			scored++
		}
		if page >= result.TotalPage {
			break
		}
		page++
	}

	if err := s.SaveHistory(ctx, entries); err != nil {
		return scored, err
	}
	log.Infof("Đã chấm điểm RFM cho %d profile, ghi %d snapshot lịch sử", scored, len(entries))
	return scored, nil
}
