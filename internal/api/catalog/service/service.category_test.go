package catalogsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ware_catalog/internal/database"
)

const (
	testCategoryCol = "catalog_categories"
	testItemCol     = "catalog_items"
)

func newCategoryService(bridge *fakeBridge) *CategoryService {
	return NewCategoryService(bridge, testCategoryCol, testItemCol)
}

func category(name string, parent string) database.Document {
	return database.Document{"name": name, "parent_name": parent}
}

func TestCategoryCreateBatch_DuplicateNameInBatch(t *testing.T) {
	bridge := newFakeBridge()
	service := newCategoryService(bridge)

	statuses := service.CreateBatch(context.Background(), []database.Document{
		category("bearings", ""),
		category("bearings", ""),
	})

	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Status, "Record đầu phải thành công")
	assert.Equal(t, MsgCategoryAdded, statuses[0].Message)
	assert.False(t, statuses[1].Status, "Record trùng tên trong batch phải thất bại")
	assert.Equal(t, MsgNameExists, statuses[1].Message)
	assert.Equal(t, 1, bridge.count(testCategoryCol, map[string]interface{}{"name": "bearings"}),
		"Store chỉ được giữ một bản ghi")
}

func TestCategoryCreateBatch_FaultedRecordNotCountedAsSeen(t *testing.T) {
	bridge := newFakeBridge()
	bridge.failNextTx = 1
	service := newCategoryService(bridge)

	statuses := service.CreateBatch(context.Background(), []database.Document{
		category("bearings", ""),
		category("bearings", ""),
	})

	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgStorageFault, statuses[0].Message)
	assert.True(t, statuses[1].Status,
		"Record lỗi storage chưa ghi gì, record sau cùng tên phải tạo được")
	assert.Equal(t, MsgCategoryAdded, statuses[1].Message)
	assert.Equal(t, 1, bridge.count(testCategoryCol, map[string]interface{}{"name": "bearings"}))
}

func TestCategoryCreate_NameRequired(t *testing.T) {
	bridge := newFakeBridge()
	service := newCategoryService(bridge)

	statuses := service.CreateBatch(context.Background(), []database.Document{
		{"parent_name": ""},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, "", statuses[0].ID)
	assert.Equal(t, MsgNameRequired, statuses[0].Message)
}

func TestCategoryCreate_ParentWithItemsRejected(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""))
	bridge.seed(testItemCol, database.Document{"serial_number": "SN-001", "category": "bearings"})
	service := newCategoryService(bridge)

	statuses := service.CreateBatch(context.Background(), []database.Document{
		category("ball-bearings", "bearings"),
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status, "Danh mục giữ vật tư không được nhận con mới")
	assert.Equal(t, MsgParentHasItems, statuses[0].Message)
	assert.Equal(t, 0, bridge.count(testCategoryCol, map[string]interface{}{"name": "ball-bearings"}),
		"Record bị từ chối không được ghi vào store")
}

func TestCategoryUpdate_NotExists(t *testing.T) {
	bridge := newFakeBridge()
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{"parent_name": "tools"}},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgNameNotExists, statuses[0].Message)
}

func TestCategoryUpdate_SelfParentRejected(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""))
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{"parent_name": "bearings"}},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgSelfParent, statuses[0].Message)
}

func TestCategoryUpdate_ParentNotExists(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""))
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{"parent_name": "tools"}},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgParentNotExists, statuses[0].Message)
}

func TestCategoryUpdate_ParentWithItemsRejected(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""), category("tools", ""))
	bridge.seed(testItemCol, database.Document{"serial_number": "SN-001", "category": "tools"})
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{"parent_name": "tools"}},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status, "Danh mục giữ vật tư không được làm parent")
	assert.Equal(t, MsgParentCantBeParent, statuses[0].Message)
}

func TestCategoryUpdate_Success(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""), category("tools", ""))
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{"parent_name": "tools"}},
	})

	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Status)
	assert.Equal(t, MsgCategoryChanged, statuses[0].Message)
	assert.Equal(t, 1, bridge.count(testCategoryCol, map[string]interface{}{"name": "bearings", "parent_name": "tools"}),
		"Parent mới phải được ghi vào store")
}

func TestCategoryUpdate_EmptyChange(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""))
	service := newCategoryService(bridge)

	statuses := service.UpdateBatch(context.Background(), []database.Document{
		{"name": "bearings", "change": map[string]interface{}{}},
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgNoModification, statuses[0].Message)
}

func TestCategoryDelete_BlockedByAssignedItems(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""))
	bridge.seed(testItemCol, database.Document{"serial_number": "SN-001", "category": "bearings"})
	service := newCategoryService(bridge)

	statuses := service.DeleteBatch(context.Background(), []string{"bearings"})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status, "Danh mục đang giữ vật tư không được xóa")
	assert.Equal(t, MsgCategoryHasItems, statuses[0].Message)
	assert.Equal(t, 1, bridge.count(testCategoryCol, map[string]interface{}{"name": "bearings"}),
		"Danh mục phải còn nguyên trong store")
}

func TestCategoryDelete_CascadeClearsChildren(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol,
		category("tools", ""),
		category("hand-tools", "tools"),
		category("power-tools", "tools"),
	)
	service := newCategoryService(bridge)

	statuses := service.DeleteBatch(context.Background(), []string{"tools"})

	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Status)
	assert.Equal(t, MsgCategoryDeleted, statuses[0].Message)
	assert.Equal(t, 0, bridge.count(testCategoryCol, map[string]interface{}{"name": "tools"}),
		"Danh mục cha phải bị xóa")
	assert.Equal(t, 2, bridge.count(testCategoryCol, map[string]interface{}{"parent_name": ""}),
		"Các danh mục con phải được clear parent_name")
	assert.Equal(t, 0, bridge.count(testCategoryCol, map[string]interface{}{"parent_name": "tools"}),
		"Không danh mục nào còn trỏ về parent đã xóa")
}

func TestCategoryDelete_NotExists(t *testing.T) {
	bridge := newFakeBridge()
	service := newCategoryService(bridge)

	statuses := service.DeleteBatch(context.Background(), []string{"bearings"})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status)
	assert.Equal(t, MsgNameAbsent, statuses[0].Message)
}

func TestCategoryCreate_StorageFault(t *testing.T) {
	bridge := newFakeBridge()
	bridge.forcedErr = errors.New("connection reset")
	service := newCategoryService(bridge)

	statuses := service.CreateBatch(context.Background(), []database.Document{
		category("bearings", ""),
	})

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Status, "Storage fault phải trả về thất bại cho record")
	assert.Equal(t, MsgStorageFault, statuses[0].Message)
}

func TestCategoryFetch(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testCategoryCol, category("bearings", ""), category("tools", ""), category("seals", ""))
	service := newCategoryService(bridge)

	categories, err := service.Fetch(context.Background(), []string{"bearings", "seals"})

	require.NoError(t, err)
	assert.Len(t, categories, 2, "Fetch phải trả về đúng các danh mục theo tên")
}
