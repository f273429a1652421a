package catalogsvc

import (
	"context"

	"ware_catalog/internal/api/catalog/models"
	"ware_catalog/internal/database"
	"ware_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// ItemService là orchestrator cho các mutation trên vật tư.
// Invariant: serial_number là khóa duy nhất (tính cả batch hiện tại),
// category tham chiếu phải tồn tại và phải là danh mục lá, price không âm.
type ItemService struct {
	bridge      database.Bridge
	categoryCol string
	itemCol     string
}

// NewItemService tạo ItemService trên một Bridge và tên các collection
func NewItemService(bridge database.Bridge, categoryCol string, itemCol string) *ItemService {
	return &ItemService{
		bridge:      bridge,
		categoryCol: categoryCol,
		itemCol:     itemCol,
	}
}

// Fetch trả về các vật tư theo danh sách serial number
func (s *ItemService) Fetch(ctx context.Context, serials []string) ([]database.Document, error) {
	return s.bridge.Find(ctx, s.itemCol, bson.M{"serial_number": bson.M{"$in": serials}}, 0, -1)
}

// CreateBatch thêm lần lượt từng vật tư, mỗi record một transaction
func (s *ItemService) CreateBatch(ctx context.Context, records []database.Document) []models.OperationStatus {
	seen := make(map[string]bool, len(records))
	statuses := make([]models.OperationStatus, 0, len(records))

	for _, record := range records {
		serial, status := s.createOne(ctx, record, seen)
		if serial != "" {
			seen[serial] = true
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// createOne xử lý một record create trong transaction riêng
func (s *ItemService) createOne(ctx context.Context, record database.Document, seen map[string]bool) (string, models.OperationStatus) {
	serial := stringField(record, "serial_number")

	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.bridge.FindOne(txCtx, s.itemCol, bson.M{"serial_number": serial})
		if err != nil {
			return err
		}
		if existing != nil || seen[serial] {
			status = models.Failure(serial, MsgSerialExists)
			return nil
		}

		if category := stringField(record, "category"); len(category) > 0 {
			if failed, err := s.checkCategory(txCtx, serial, category); err != nil {
				return err
			} else if failed != nil {
				status = *failed
				return nil
			}
		}

		if price, ok := numberValue(record["price"]); ok && price < 0 {
			status = models.Failure(serial, MsgInvalidPrice)
			return nil
		}

		if err := s.bridge.InsertOne(txCtx, s.itemCol, record); err != nil {
			return err
		}

		status = models.Success(serial, MsgItemAdded)
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("serial_number", serial).Error("Item create failed")
		// Record lỗi storage chưa ghi gì, không được tính vào seen
		return "", models.Failure(serial, MsgStorageFault)
	}

	return serial, status
}

// UpdateBatch áp change lên lần lượt từng vật tư.
// Dùng chung cho PUT và PATCH, spec cấu trúc đã phân biệt hai trường hợp.
func (s *ItemService) UpdateBatch(ctx context.Context, records []database.Document) []models.OperationStatus {
	statuses := make([]models.OperationStatus, 0, len(records))
	for _, record := range records {
		statuses = append(statuses, s.updateOne(ctx, record))
	}
	return statuses
}

// updateOne xử lý một record update trong transaction riêng
func (s *ItemService) updateOne(ctx context.Context, record database.Document) models.OperationStatus {
	serial := stringField(record, "serial_number")

	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		change := changeField(record)
		if len(change) == 0 {
			status = models.Failure(serial, MsgNoModification)
			return nil
		}

		if category, ok := change["category"].(string); ok && len(category) > 0 {
			if failed, err := s.checkCategory(txCtx, serial, category); err != nil {
				return err
			} else if failed != nil {
				status = *failed
				return nil
			}
		}

		if rawPrice, ok := change["price"]; ok {
			if price, ok := numberValue(rawPrice); ok && price < 0 {
				status = models.Failure(serial, MsgInvalidPrice)
				return nil
			}
		}

		modified, err := s.bridge.UpdateOne(txCtx, s.itemCol, bson.M{"serial_number": serial}, bson.M{"$set": change})
		if err != nil {
			return err
		}
		if modified > 0 {
			status = models.Success(serial, MsgItemUpdated)
		} else {
			status = models.Failure(serial, MsgNoModification)
		}
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("serial_number", serial).Error("Item update failed")
		return models.Failure(serial, MsgStorageFault)
	}

	return status
}

// DeleteBatch xóa lần lượt từng vật tư theo serial number
func (s *ItemService) DeleteBatch(ctx context.Context, serials []string) []models.OperationStatus {
	seen := make(map[string]bool, len(serials))
	statuses := make([]models.OperationStatus, 0, len(serials))

	for _, serial := range serials {
		statuses = append(statuses, s.deleteOne(ctx, serial, seen))
		seen[serial] = true
	}
	return statuses
}

// deleteOne xử lý xóa một vật tư trong transaction riêng
func (s *ItemService) deleteOne(ctx context.Context, serial string, seen map[string]bool) models.OperationStatus {
	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		if seen[serial] {
			status = models.Failure(serial, MsgSerialDeleted)
			return nil
		}

		deleted, err := s.bridge.DeleteMany(txCtx, s.itemCol, bson.M{"serial_number": bson.M{"$in": []string{serial}}})
		if err != nil {
			return err
		}
		if deleted > 0 {
			status = models.Success(serial, MsgItemDeleted)
		} else {
			status = models.Failure(serial, MsgItemDeleteFailed)
		}
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("serial_number", serial).Error("Item delete failed")
		return models.Failure(serial, MsgStorageFault)
	}

	return status
}

// checkCategory kiểm tra category tồn tại và là danh mục lá.
// Trả về OperationStatus thất bại nếu vi phạm, nil nếu hợp lệ.
func (s *ItemService) checkCategory(ctx context.Context, serial string, categoryName string) (*models.OperationStatus, error) {
	category, err := s.bridge.FindOne(ctx, s.categoryCol, bson.M{"name": categoryName})
	if err != nil {
		return nil, err
	}
	if category == nil {
		failed := models.Failure(serial, MsgCategoryNotExists)
		return &failed, nil
	}

	// Danh mục đang có con là danh mục cha, không gắn vật tư được
	child, err := s.bridge.FindOne(ctx, s.categoryCol, bson.M{"parent_name": categoryName})
	if err != nil {
		return nil, err
	}
	if child != nil {
		failed := models.Failure(serial, MsgCategoryIsParent)
		return &failed, nil
	}

	return nil, nil
}
