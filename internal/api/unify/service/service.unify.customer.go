// CustomerProfileService - đọc và ghi crm_customer_profiles.
package unifysvc

import (
	"context"
	"fmt"

	basemodels "github.com/NareeyaChenu/rfm-project/internal/api/base/models"
	basesvc "github.com/NareeyaChenu/rfm-project/internal/api/base/service"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerProfileService thao tác trên profile khách đã gộp.
type CustomerProfileService struct {
	*basesvc.BaseServiceMongoImpl[unifymodels.CustomerProfile]
}

// NewCustomerProfileService tạo CustomerProfileService mới.
func NewCustomerProfileService() (*CustomerProfileService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CustomerProfiles)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CustomerProfiles, common.ErrNotFound)
	}
	return &CustomerProfileService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[unifymodels.CustomerProfile](coll),
	}, nil
}

// GetByID trả về một profile theo customer id.
func (s *CustomerProfileService) GetByID(ctx context.Context, customerID string) (unifymodels.CustomerProfile, error) {
	return s.FindOne(ctx, bson.M{"_id": customerID}, nil)
}

// List trả về danh sách profile phân trang, mới cập nhật trước,
// lọc theo segment RFM nếu có.
func (s *CustomerProfileService) List(ctx context.Context, page, limit int64, segment string) (*basemodels.PaginateResult[unifymodels.CustomerProfile], error) {
	filter := bson.M{}
	if segment != "" {
		filter["rfm.segment"] = segment
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// SaveAll upsert toàn bộ profile theo _id. Trả về số document đã ghi.
func (s *CustomerProfileService) SaveAll(ctx context.Context, profiles []unifymodels.CustomerProfile) (int64, error) {
	if len(profiles) == 0 {
		return 0, nil
	}
	return s.UpsertMany(ctx, func(p unifymodels.CustomerProfile) interface{} {
		return bson.M{"_id": p.ID}
	}, profiles)
}
