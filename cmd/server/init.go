package main

import (
	"github.com/sirupsen/logrus"

	"ware_catalog/config"
	"ware_catalog/internal/database"
	"ware_catalog/internal/global"
)

// InitGlobal khởi tạo các biến dùng chung của ứng dụng theo đúng thứ tự:
// tên collection, validator, config rồi mới đến kết nối database
// (bridge cần config đã load xong).
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initColNames khởi tạo tên các collection của catalog
func initColNames() {
	global.MongoDB_ColNames.Categories = "catalog_categories"
	global.MongoDB_ColNames.Items = "catalog_items"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator và đăng ký các custom validation rules
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ file env theo GO_ENV.
// Cấu hình được validate bằng các rule khai báo trên struct trước khi dùng.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatal("Failed to load configuration")
	}

	if err := global.Validate.Struct(global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.Info("Initialized config")
}

// initDatabase_MongoDB kết nối MongoDB và dựng bridge cho các orchestrator
func initDatabase_MongoDB() {
	session, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	global.MongoDB_Session = session
	global.MongoDB_Bridge = database.NewMongoBridge(session, global.MongoDB_ServerConfig.MongoDB_DBName, global.RegistryCollections)

	logrus.Info("Initialized MongoDB session and bridge")
}
