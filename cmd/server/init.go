package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/NareeyaChenu/rfm-project/config"
	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	rfmmodels "github.com/NareeyaChenu/rfm-project/internal/api/rfm/models"
	unifymodels "github.com/NareeyaChenu/rfm-project/internal/api/unify/models"
	"github.com/NareeyaChenu/rfm-project/internal/database"
	"github.com/NareeyaChenu/rfm-project/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Database data: dữ liệu nguồn từ các kênh bán
	global.MongoDB_ColNames.SalesOrders = "sales_orders"
	global.MongoDB_ColNames.Members = "members"
	global.MongoDB_ColNames.MemberTags = "member_tags"
	global.MongoDB_ColNames.MemberChannels = "member_channels"

	// Database report: kết quả gộp và điểm RFM
	global.MongoDB_ColNames.CustomerProfiles = "crm_customer_profiles"
	global.MongoDB_ColNames.RfmHistory = "rfm_history"
	global.MongoDB_ColNames.UnifyRuns = "unify_runs"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection
	dataDB := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName_Data)
	database.CreateIndexes(context.TODO(), dataDB.Collection(global.MongoDB_ColNames.SalesOrders), ordermodels.SalesOrder{})
	database.CreateIndexes(context.TODO(), dataDB.Collection(global.MongoDB_ColNames.Members), ordermodels.Member{})
	database.CreateIndexes(context.TODO(), dataDB.Collection(global.MongoDB_ColNames.MemberTags), ordermodels.MemberTag{})
	database.CreateIndexes(context.TODO(), dataDB.Collection(global.MongoDB_ColNames.MemberChannels), ordermodels.MemberChannel{})

	reportDB := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName_Report)
	database.CreateIndexes(context.TODO(), reportDB.Collection(global.MongoDB_ColNames.CustomerProfiles), unifymodels.CustomerProfile{})
	database.CreateIndexes(context.TODO(), reportDB.Collection(global.MongoDB_ColNames.RfmHistory), rfmmodels.RfmHistory{})
	database.CreateIndexes(context.TODO(), reportDB.Collection(global.MongoDB_ColNames.UnifyRuns), unifymodels.UnifyRun{})

	// Index trên nested field không khai báo được qua model tags
	if err := database.CreateProfileAdditionalIndexes(context.TODO(), reportDB); err != nil {
		logrus.Errorf("Failed to create additional profile indexes: %v", err)
	}
}
