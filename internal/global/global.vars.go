package global

import (
	validator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/NareeyaChenu/rfm-project/config"
	"github.com/NareeyaChenu/rfm-project/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	SalesOrders      string // Tên collection cho đơn hàng từ các kênh bán
	Members          string // Tên collection cho thành viên
	MemberTags       string // Tên collection cho tag của thành viên
	MemberChannels   string // Tên collection cho kênh liên kết của thành viên
	CustomerProfiles string // Tên collection cho hồ sơ khách hàng đã gộp
	RfmHistory       string // Tên collection cho lịch sử RFM snapshot
	UnifyRuns        string // Tên collection cho các lần chạy gộp khách hàng
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
