package database

import (
	"context"

	"ware_catalog/internal/common"
	"ware_catalog/internal/logger"
	"ware_catalog/internal/registry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document là một bản ghi dạng dynamic lấy từ document store.
// Catalog làm việc trên payload động (partial update, field tùy chọn)
// nên gateway trả về map thay vì struct cố định.
type Document = map[string]interface{}

// Bridge là gateway hẹp giữa orchestrator và document store.
// Contract: mọi method trả về error tường minh khi storage gặp sự cố.
// FindOne trả về (nil, nil) khi không có document khớp filter - "không tìm thấy"
// và "storage fault" là hai trạng thái tách biệt, orchestrator không được
// suy diễn fault từ kết quả rỗng.
type Bridge interface {
	// Find trả về các documents khớp filter trong cửa sổ skip/limit.
	// limit < 0 nghĩa là không giới hạn.
	Find(ctx context.Context, collection string, filter interface{}, skip int64, limit int64) ([]Document, error)

	// FindOne trả về document đầu tiên khớp filter, (nil, nil) nếu không có.
	FindOne(ctx context.Context, collection string, filter interface{}) (Document, error)

	// InsertOne chèn một document.
	InsertOne(ctx context.Context, collection string, doc Document) error

	// InsertMany chèn nhiều documents.
	InsertMany(ctx context.Context, collection string, docs []Document) error

	// UpdateOne cập nhật document đầu tiên khớp filter, trả về số document bị thay đổi.
	UpdateOne(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error)

	// UpdateMany cập nhật tất cả documents khớp filter, trả về số document bị thay đổi.
	UpdateMany(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error)

	// DeleteMany xóa tất cả documents khớp filter, trả về số document bị xóa.
	DeleteMany(ctx context.Context, collection string, filter interface{}) (int64, error)

	// CollectionNames liệt kê tên các collection hiện có trong database.
	CollectionNames(ctx context.Context) ([]string, error)

	// WithTransaction chạy fn trong một transaction. fn trả về error thì
	// transaction bị abort, ngược lại commit. Context truyền vào fn đã được
	// gắn session, mọi thao tác Bridge bên trong fn phải dùng context đó.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoBridge là implementation của Bridge trên MongoDB driver.
// Collection handles được resolve qua registry dùng chung, handle chưa đăng ký
// sẽ được tạo từ client và đăng ký cho các lần truy cập sau.
type MongoBridge struct {
	client      *mongo.Client
	dbName      string
	collections *registry.Registry[*mongo.Collection]
}

// NewMongoBridge tạo một MongoBridge từ client, tên database và registry collection.
func NewMongoBridge(client *mongo.Client, dbName string, collections *registry.Registry[*mongo.Collection]) *MongoBridge {
	return &MongoBridge{
		client:      client,
		dbName:      dbName,
		collections: collections,
	}
}

// collection trả về handle của collection theo tên qua registry
func (b *MongoBridge) collection(name string) *mongo.Collection {
	col, err := b.collections.GetOrCreate(name, func() (*mongo.Collection, error) {
		return b.client.Database(b.dbName).Collection(name), nil
	})
	if err != nil {
		// Chỉ xảy ra khi name rỗng, fallback thẳng về client
		logger.GetErrorLogger().WithError(err).WithField("collection", name).Error("Collection lookup failed")
		return b.client.Database(b.dbName).Collection(name)
	}
	return col
}

// Find trả về các documents khớp filter trong cửa sổ skip/limit
func (b *MongoBridge) Find(ctx context.Context, collection string, filter interface{}, skip int64, limit int64) ([]Document, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit >= 0 {
		opts.SetLimit(limit)
	}

	cursor, err := b.collection(collection).Find(ctx, filter, opts)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("Find failed")
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []Document
	if err := cursor.All(ctx, &results); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("Find decode failed")
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOne trả về document đầu tiên khớp filter, (nil, nil) nếu không có
func (b *MongoBridge) FindOne(ctx context.Context, collection string, filter interface{}) (Document, error) {
	var result Document
	err := b.collection(collection).FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("FindOne failed")
		return nil, common.ConvertMongoError(err)
	}
	return result, nil
}

// InsertOne chèn một document
func (b *MongoBridge) InsertOne(ctx context.Context, collection string, doc Document) error {
	if _, err := b.collection(collection).InsertOne(ctx, doc); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("InsertOne failed")
		return common.ConvertMongoError(err)
	}
	return nil
}

// InsertMany chèn nhiều documents
func (b *MongoBridge) InsertMany(ctx context.Context, collection string, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}
	payload := make([]interface{}, len(docs))
	for i, doc := range docs {
		payload[i] = doc
	}
	if _, err := b.collection(collection).InsertMany(ctx, payload); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("InsertMany failed")
		return common.ConvertMongoError(err)
	}
	return nil
}

// UpdateOne cập nhật document đầu tiên khớp filter
func (b *MongoBridge) UpdateOne(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error) {
	result, err := b.collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("UpdateOne failed")
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// UpdateMany cập nhật tất cả documents khớp filter
func (b *MongoBridge) UpdateMany(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error) {
	result, err := b.collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("UpdateMany failed")
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// DeleteMany xóa tất cả documents khớp filter
func (b *MongoBridge) DeleteMany(ctx context.Context, collection string, filter interface{}) (int64, error) {
	result, err := b.collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("collection", collection).Error("DeleteMany failed")
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// CollectionNames liệt kê tên các collection hiện có trong database
func (b *MongoBridge) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := b.client.Database(b.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("ListCollectionNames failed")
		return nil, common.ConvertMongoError(err)
	}
	return names, nil
}

// WithTransaction chạy fn trong một transaction của MongoDB.
// Mỗi record trong một batch mutation chạy qua đây một lần, vì vậy
// check-then-act (existence check rồi write) là atomic theo từng record.
func (b *MongoBridge) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := b.client.StartSession()
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("StartSession failed")
		return common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		// Lỗi domain từ fn được giữ nguyên để orchestrator phân loại,
		// chỉ lỗi driver mới được convert
		if _, ok := err.(*common.Error); ok {
			return err
		}
		return common.ConvertMongoError(err)
	}
	return nil
}
