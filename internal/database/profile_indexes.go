// Package database - Index bổ sung cho profile khách hàng (nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NareeyaChenu/rfm-project/internal/global"
)

// CreateProfileAdditionalIndexes tạo các index trên nested field của crm_customer_profiles.
// Gọi sau CreateIndexes cho các collection report.
func CreateProfileAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	profiles := db.Collection(global.MongoDB_ColNames.CustomerProfiles)

	// rfm.segment: lọc danh sách khách hàng theo segment
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "rfm.segment", Value: 1},
		},
		Options: options.Index().SetName("profile_rfm_segment").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// phones.phone_number multikey: tra cứu profile theo số điện thoại
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "phones.phone_number", Value: 1},
		},
		Options: options.Index().SetName("profile_phone_number"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// emails.email multikey: tra cứu profile theo email
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "emails.email", Value: 1},
		},
		Options: options.Index().SetName("profile_email"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sources.social_id: tra cứu profile theo social id của kênh
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sources.social_id", Value: 1},
		},
		Options: options.Index().SetName("profile_source_social_id").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// (updatedAt, _id): phân trang ổn định cho danh sách khách hàng
	if _, err := profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "updatedAt", Value: -1},
			{Key: "_id", Value: 1},
		},
		Options: options.Index().SetName("profile_updated_at_id"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
