package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ware_catalog/internal/api/catalog/models"
	"ware_catalog/internal/api/middleware"
	"ware_catalog/internal/database"
	"ware_catalog/internal/global"
)

// categoryDocument chuyển seed category sang document theo đúng tên field bson
func categoryDocument(category models.Category) database.Document {
	return database.Document{
		"name":        category.Name,
		"parent_name": category.ParentName,
	}
}

// itemDocument chuyển seed item sang document theo đúng tên field bson
func itemDocument(item models.Item) database.Document {
	return database.Document{
		"serial_number": item.SerialNumber,
		"name":          item.Name,
		"description":   item.Description,
		"category":      item.Category,
		"price":         item.Price,
		"location": database.Document{
			"room":     item.Location.Room,
			"bookcase": item.Location.Bookcase,
			"shelf":    item.Location.Shelf,
			"cuvette":  item.Location.Cuvette,
			"column":   item.Location.Column,
			"row":      item.Location.Row,
		},
	}
}

// InitDefaultData tạo session cho các api key mẫu và seed dữ liệu mẫu
// khi chạy ở chế độ khởi tạo (INITMODE=true).
func InitDefaultData() {
	initAuthSessions()
	initSampleData()
}

// initAuthSessions đăng ký các api key mẫu từ config vào AuthManager.
// Key để trống trong config sẽ bị bỏ qua.
func initAuthSessions() {
	cfg := global.MongoDB_ServerConfig
	manager := middleware.GetAuthManager()

	keys := []struct {
		key         string
		permissions []string
	}{
		{cfg.ApiKey_Read, []string{"READ"}},
		{cfg.ApiKey_Create, []string{"CREATE"}},
		{cfg.ApiKey_Update, []string{"UPDATE"}},
		{cfg.ApiKey_Delete, []string{"DELETE"}},
		{cfg.ApiKey_All, []string{"READ", "CREATE", "UPDATE", "DELETE"}},
	}

	for _, entry := range keys {
		if entry.key == "" {
			continue
		}
		if manager.CreateSession(entry.key, entry.permissions) {
			logrus.Infof("Auth session created for permissions %v", entry.permissions)
		} else {
			logrus.Warnf("Auth session for permissions %v was not created (duplicate key?)", entry.permissions)
		}
	}
}

// initSampleData seed danh mục và vật tư mẫu khi INITMODE=true
// và cả hai collection chưa tồn tại trong database.
func initSampleData() {
	cfg := global.MongoDB_ServerConfig
	if !cfg.InitMode {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := global.MongoDB_Bridge.CollectionNames(ctx)
	if err != nil {
		logrus.Errorf("Failed to list collections, skip seeding: %v", err)
		return
	}
	for _, name := range names {
		if name == global.MongoDB_ColNames.Categories || name == global.MongoDB_ColNames.Items {
			logrus.Info("Catalog collections already exist, skip seeding")
			return
		}
	}

	categoryCount := cfg.Seed_CategoryCount
	if categoryCount < 1 {
		categoryCount = 1
	}
	itemCount := cfg.Seed_ItemCount

	categories := make([]database.Document, 0, categoryCount)
	for i := 1; i <= categoryCount; i++ {
		seed := models.Category{
			Name:       fmt.Sprintf("Category_%d", i),
			ParentName: "",
		}
		if err := global.Validate.Struct(seed); err != nil {
			logrus.Errorf("Invalid seed category %s: %v", seed.Name, err)
			continue
		}
		categories = append(categories, categoryDocument(seed))
	}

	items := make([]database.Document, 0, itemCount)
	for i := 1; i <= itemCount; i++ {
		seed := models.Item{
			SerialNumber: uuid.NewString(),
			Name:         fmt.Sprintf("Item_%d", i),
			Description:  fmt.Sprintf("Sample catalog item number %d", i),
			Category:     fmt.Sprintf("Category_%d", rand.Intn(categoryCount)+1),
			Price:        float64(rand.Intn(10) + 1),
			Location: models.ItemLocation{
				Room:     rand.Intn(5) + 1,
				Bookcase: rand.Intn(10) + 1,
				Shelf:    rand.Intn(6) + 1,
				Cuvette:  rand.Intn(4) + 1,
				Column:   rand.Intn(8) + 1,
				Row:      rand.Intn(8) + 1,
			},
		}
		if err := global.Validate.Struct(seed); err != nil {
			logrus.Errorf("Invalid seed item %s: %v", seed.SerialNumber, err)
			continue
		}
		items = append(items, itemDocument(seed))
	}

	if err := global.MongoDB_Bridge.InsertMany(ctx, global.MongoDB_ColNames.Categories, categories); err != nil {
		logrus.Errorf("Failed to seed categories: %v", err)
		return
	}
	if err := global.MongoDB_Bridge.InsertMany(ctx, global.MongoDB_ColNames.Items, items); err != nil {
		logrus.Errorf("Failed to seed items: %v", err)
		return
	}

	logrus.Infof("Seeded %d categories and %d items", len(categories), len(items))
}
