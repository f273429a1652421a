package global

import (
	"ware_catalog/config"
	"ware_catalog/internal/database"
	"ware_catalog/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	Categories string // Tên collection cho danh mục vật tư
	Items      string // Tên collection cho vật tư
}

// Các biến toàn cục
var Validate *validator.Validate                    // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                   // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration      // Cấu hình của server
var MongoDB_ColNames MongoDB_Catalog_CollectionName // Tên các collection
var MongoDB_Bridge database.Bridge                  // Gateway thao tác document store

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
