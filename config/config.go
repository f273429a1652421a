package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin kết nối cơ sở dữ liệu và các api key mẫu
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`                                        // Chế độ khởi tạo (seed dữ liệu mẫu)
	Address               string `env:"ADDRESS" envDefault:":8080" validate:"required"`                     // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required" validate:"required,uri"`            // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required" validate:"required"`                        // Tên cơ sở dữ liệu catalog
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*" validate:"required"`                    // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`                          // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100" validate:"gte=0"`                   // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60" validate:"gt=0"`                  // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`                               // Bật/tắt rate limiting

	// Các api key mẫu được tạo session lúc khởi động, mỗi key gắn một nhóm quyền.
	// Để trống để không tạo key tương ứng.
	ApiKey_Read   string `env:"API_KEY_READ" envDefault:"example_read" validate:"omitempty,no_xss"`     // Quyền READ (GET, HEAD)
	ApiKey_Create string `env:"API_KEY_CREATE" envDefault:"example_create" validate:"omitempty,no_xss"` // Quyền CREATE (POST)
	ApiKey_Update string `env:"API_KEY_UPDATE" envDefault:"example_update" validate:"omitempty,no_xss"` // Quyền UPDATE (PUT, PATCH)
	ApiKey_Delete string `env:"API_KEY_DELETE" envDefault:"example_delete" validate:"omitempty,no_xss"` // Quyền DELETE (DELETE)
	ApiKey_All    string `env:"API_KEY_ALL" envDefault:"example_all" validate:"omitempty,no_xss"`       // Tất cả các quyền

	// Seed dữ liệu mẫu khi INITMODE=true và collection còn trống
	Seed_CategoryCount int `env:"SEED_CATEGORY_COUNT" envDefault:"2" validate:"gte=0"` // Số category mẫu
	Seed_ItemCount     int `env:"SEED_ITEM_COUNT" envDefault:"20" validate:"gte=0"`    // Số item mẫu
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
