// Package ordersvc - Service đọc đơn hàng từ sales_orders.
// Chỉ đọc: export theo khoảng ngày và enrich social/tags từ membership.
package ordersvc

import (
	"context"
	"fmt"

	basesvc "github.com/NareeyaChenu/rfm-project/internal/api/base/service"
	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderExportService export đơn hàng theo khoảng ngày, phân trang theo batch.
type OrderExportService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.SalesOrder]
	batchSize int64
}

// NewOrderExportService tạo OrderExportService mới.
func NewOrderExportService() (*OrderExportService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SalesOrders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.SalesOrders, common.ErrNotFound)
	}
	batch := int64(global.MongoDB_ServerConfig.ExportBatchSize)
	if batch <= 0 {
		batch = 100
	}
	return &OrderExportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.SalesOrder](coll),
		batchSize:            batch,
	}, nil
}

// windowFilter dựng filter cho khoảng ngày [from, to] (dạng "YYYY-MM-DD"),
// mở rộng ra đầu/cuối ngày. Đơn đã hủy (order_status_id = 4) bị loại.
func windowFilter(from, to string) bson.M {
	return bson.M{
		"$and": bson.A{
			bson.M{"date_created": bson.M{"$gte": from + " 00:00:00"}},
			bson.M{"date_created": bson.M{"$lte": to + " 23:59:59"}},
		},
		"order_status_id": bson.M{"$ne": ordermodels.OrderStatusCancelled},
	}
}

// CountWindow đếm số đơn trong khoảng ngày.
func (s *OrderExportService) CountWindow(ctx context.Context, from, to string) (int64, error) {
	return s.CountDocuments(ctx, windowFilter(from, to))
}

// ExportWindow trả về toàn bộ đơn trong khoảng ngày, đọc theo từng batch
// cho tới khi đủ số lượng đã đếm. Đếm trước rồi mới phân trang, giống
// pipeline export gốc.
func (s *OrderExportService) ExportWindow(ctx context.Context, from, to string) ([]ordermodels.SalesOrder, error) {
	log := logger.WithModule("order")

	filter := windowFilter(from, to)
	total, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		log.Infof("Không có đơn hàng trong khoảng %s .. %s", from, to)
		return nil, nil
	}
	log.Infof("Tổng số đơn cần export: %d (%s .. %s)", total, from, to)

	orders := make([]ordermodels.SalesOrder, 0, total)
	var skip int64
	for skip < total {
		opts := options.Find().
			SetSort(bson.D{{Key: "date_created", Value: 1}}).
			SetSkip(skip).
			SetLimit(s.batchSize)
		batch, err := s.Find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		log.Debugf("Batch skip=%d: %d đơn", skip, len(batch))
		orders = append(orders, batch...)
		skip += s.batchSize
	}
	return orders, nil
}
