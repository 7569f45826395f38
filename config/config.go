package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Bao gồm cấu hình cơ sở dữ liệu, server và các tham số của engine gộp khách hàng.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName_Data   string `env:"MONGODB_DBNAME_DATA,required"`              // Tên cơ sở dữ liệu chứa đơn hàng và member
	MongoDB_DBName_Report string `env:"MONGODB_DBNAME_REPORT,required"`            // Tên cơ sở dữ liệu chứa profile và rfm_history
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Engine gộp khách hàng
	ProviderID            string `env:"PROVIDER_ID" envDefault:"9d68882715c24e71942e0a9d020fe963"` // Provider gắn vào mỗi profile
	EngineNameStrong      int    `env:"ENGINE_NAME_STRONG" envDefault:"90"`                        // Ngưỡng tên mạnh (điểm similarity 0-100)
	EngineNameWeak        int    `env:"ENGINE_NAME_WEAK" envDefault:"85"`                          // Ngưỡng tên yếu
	EngineAddrStrong      int    `env:"ENGINE_ADDR_STRONG" envDefault:"88"`                        // Ngưỡng địa chỉ mạnh
	EngineAddrWeak        int    `env:"ENGINE_ADDR_WEAK" envDefault:"80"`                          // Ngưỡng địa chỉ yếu
	EngineScoreThreshold  int    `env:"ENGINE_SCORE_THRESHOLD" envDefault:"5"`                     // Tổng điểm tối thiểu để coi là cùng một khách
	EngineConvergencePass bool   `env:"ENGINE_CONVERGENCE_PASS" envDefault:"false"`                // Bật vòng gộp cluster lặp đến điểm bất động
	EngineScorerBackend   string `env:"ENGINE_SCORER_BACKEND" envDefault:"strutil"`                // Backend similarity: strutil | sequence
	ExportBatchSize       int    `env:"EXPORT_BATCH_SIZE" envDefault:"100"`                        // Số đơn hàng mỗi trang khi export

	// Worker chạy định kỳ
	UnifyRunInterval  int `env:"UNIFY_RUN_INTERVAL_HOURS" envDefault:"24"` // Khoảng cách giữa các lần chạy (giờ)
	UnifyRunWindowDay int `env:"UNIFY_RUN_WINDOW_DAYS" envDefault:"90"`    // Cửa sổ đơn hàng mỗi lần chạy (ngày)

	// Email báo cáo sau mỗi lần chạy (optional - bỏ trống để tắt)
	SMTPHost      string `env:"SMTP_HOST"`                    // SMTP host
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`   // SMTP port
	SMTPUsername  string `env:"SMTP_USERNAME"`                // SMTP username
	SMTPPassword  string `env:"SMTP_PASSWORD"`                // SMTP password
	ReportFrom    string `env:"REPORT_FROM"`                  // Địa chỉ gửi báo cáo
	ReportTo      string `env:"REPORT_TO"`                    // Danh sách nhận báo cáo (phân cách bởi dấu phẩy)
	ReportName    string `env:"REPORT_NAME" envDefault:"CRM"` // Tên hiển thị người gửi
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
