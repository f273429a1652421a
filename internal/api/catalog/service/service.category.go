package catalogsvc

import (
	"context"

	"ware_catalog/internal/api/catalog/models"
	"ware_catalog/internal/database"
	"ware_catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// CategoryService là orchestrator cho các mutation trên danh mục.
// Các invariant được kiểm tra trong cùng transaction với write:
//   - name là khóa duy nhất (tính cả các record đứng trước trong batch)
//   - parent phải tồn tại và không được là chính nó
//   - danh mục đang giữ vật tư không bao giờ được làm parent
//   - xóa danh mục cha sẽ cascade xóa parent_name của các danh mục con
type CategoryService struct {
	bridge      database.Bridge
	categoryCol string
	itemCol     string
}

// NewCategoryService tạo CategoryService trên một Bridge và tên các collection
func NewCategoryService(bridge database.Bridge, categoryCol string, itemCol string) *CategoryService {
	return &CategoryService{
		bridge:      bridge,
		categoryCol: categoryCol,
		itemCol:     itemCol,
	}
}

// Fetch trả về các danh mục theo danh sách tên
func (s *CategoryService) Fetch(ctx context.Context, names []string) ([]database.Document, error) {
	return s.bridge.Find(ctx, s.categoryCol, bson.M{"name": bson.M{"$in": names}}, 0, -1)
}

// CreateBatch thêm lần lượt từng danh mục, mỗi record một transaction.
// Record thất bại không ảnh hưởng các record còn lại.
func (s *CategoryService) CreateBatch(ctx context.Context, records []database.Document) []models.OperationStatus {
	seen := make(map[string]bool, len(records))
	statuses := make([]models.OperationStatus, 0, len(records))

	for _, record := range records {
		name, status := s.createOne(ctx, record, seen)
		if name != "" {
			seen[name] = true
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// createOne xử lý một record create trong transaction riêng
func (s *CategoryService) createOne(ctx context.Context, record database.Document, seen map[string]bool) (string, models.OperationStatus) {
	name := stringField(record, "name")
	if len(name) < 1 {
		return "", models.Failure("", MsgNameRequired)
	}

	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.bridge.FindOne(txCtx, s.categoryCol, bson.M{"name": name})
		if err != nil {
			return err
		}
		if existing != nil || seen[name] {
			status = models.Failure(name, MsgNameExists)
			return nil
		}

		// Danh mục đang giữ vật tư không được nhận con mới
		if parent := stringField(record, "parent_name"); len(parent) > 0 {
			item, err := s.bridge.FindOne(txCtx, s.itemCol, bson.M{"category": parent})
			if err != nil {
				return err
			}
			if item != nil {
				status = models.Failure(name, MsgParentHasItems)
				return nil
			}
		}

		if err := s.bridge.InsertOne(txCtx, s.categoryCol, record); err != nil {
			return err
		}

		status = models.Success(name, MsgCategoryAdded)
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("name", name).Error("Category create failed")
		// Record lỗi storage chưa ghi gì, không được tính vào seen
		return "", models.Failure(name, MsgStorageFault)
	}

	return name, status
}

// UpdateBatch áp change lên lần lượt từng danh mục.
// Dùng chung cho PUT (change đầy đủ) và PATCH (change một phần),
// khác biệt nằm ở spec cấu trúc đã kiểm tra trước đó.
func (s *CategoryService) UpdateBatch(ctx context.Context, records []database.Document) []models.OperationStatus {
	statuses := make([]models.OperationStatus, 0, len(records))
	for _, record := range records {
		statuses = append(statuses, s.updateOne(ctx, record))
	}
	return statuses
}

// updateOne xử lý một record update trong transaction riêng
func (s *CategoryService) updateOne(ctx context.Context, record database.Document) models.OperationStatus {
	name := stringField(record, "name")
	if len(name) < 1 {
		return models.Failure("", MsgNameMissing)
	}

	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.bridge.FindOne(txCtx, s.categoryCol, bson.M{"name": name})
		if err != nil {
			return err
		}
		if existing == nil {
			status = models.Failure(name, MsgNameNotExists)
			return nil
		}

		change := changeField(record)
		if len(change) == 0 {
			status = models.Failure(name, MsgNoModification)
			return nil
		}

		if parent, ok := change["parent_name"].(string); ok && len(parent) > 0 {
			if parent == name {
				status = models.Failure(name, MsgSelfParent)
				return nil
			}

			parentCategory, err := s.bridge.FindOne(txCtx, s.categoryCol, bson.M{"name": parent})
			if err != nil {
				return err
			}
			if parentCategory == nil {
				status = models.Failure(name, MsgParentNotExists)
				return nil
			}

			// Danh mục giữ vật tư không bao giờ được làm parent
			item, err := s.bridge.FindOne(txCtx, s.itemCol, bson.M{"category": parent})
			if err != nil {
				return err
			}
			if item != nil {
				status = models.Failure(name, MsgParentCantBeParent)
				return nil
			}
		}

		modified, err := s.bridge.UpdateOne(txCtx, s.categoryCol, bson.M{"name": name}, bson.M{"$set": change})
		if err != nil {
			return err
		}
		if modified > 0 {
			status = models.Success(name, MsgCategoryChanged)
		} else {
			status = models.Failure(name, MsgNoModification)
		}
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("name", name).Error("Category update failed")
		return models.Failure(name, MsgStorageFault)
	}

	return status
}

// DeleteBatch xóa lần lượt từng danh mục theo tên
func (s *CategoryService) DeleteBatch(ctx context.Context, names []string) []models.OperationStatus {
	statuses := make([]models.OperationStatus, 0, len(names))
	for _, name := range names {
		statuses = append(statuses, s.deleteOne(ctx, name))
	}
	return statuses
}

// deleteOne xử lý xóa một danh mục trong transaction riêng.
// Trước khi xóa, parent_name của mọi danh mục con được clear về rỗng (cascade).
func (s *CategoryService) deleteOne(ctx context.Context, name string) models.OperationStatus {
	var status models.OperationStatus

	err := s.bridge.WithTransaction(ctx, func(txCtx context.Context) error {
		category, err := s.bridge.FindOne(txCtx, s.categoryCol, bson.M{"name": name})
		if err != nil {
			return err
		}
		if category == nil {
			status = models.Failure(name, MsgNameAbsent)
			return nil
		}

		childNames, err := s.childCategoryNames(txCtx, name)
		if err != nil {
			return err
		}

		item, err := s.bridge.FindOne(txCtx, s.itemCol, bson.M{"category": name})
		if err != nil {
			return err
		}
		if item != nil {
			status = models.Failure(name, MsgCategoryHasItems)
			return nil
		}

		if len(childNames) > 0 {
			modified, err := s.bridge.UpdateMany(txCtx, s.categoryCol,
				bson.M{"name": bson.M{"$in": childNames}},
				bson.M{"$set": bson.M{"parent_name": ""}})
			if err != nil {
				return err
			}
			if modified <= 0 {
				status = models.Failure(name, MsgCategoryCantDelete)
				return nil
			}
		}

		deleted, err := s.bridge.DeleteMany(txCtx, s.categoryCol, bson.M{"name": name})
		if err != nil {
			return err
		}
		if deleted > 0 {
			status = models.Success(name, MsgCategoryDeleted)
		} else {
			status = models.Failure(name, MsgCategoryNotDeleted)
		}
		return nil
	})
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("name", name).Error("Category delete failed")
		return models.Failure(name, MsgStorageFault)
	}

	return status
}

// childCategoryNames trả về tên các danh mục con trực tiếp của một danh mục
func (s *CategoryService) childCategoryNames(ctx context.Context, name string) ([]string, error) {
	children, err := s.bridge.Find(ctx, s.categoryCol, bson.M{"parent_name": name}, 0, -1)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(children))
	for _, child := range children {
		if childName := stringField(child, "name"); childName != "" {
			names = append(names, childName)
		}
	}
	return names, nil
}
