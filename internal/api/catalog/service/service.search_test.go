package catalogsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildItemSearch_RangeAndEquality(t *testing.T) {
	filter := BuildItemSearch(map[string]string{
		"min_price":         "2",
		"location_bookcase": "3",
	})

	expected := bson.M{
		"price":             bson.M{"$gte": 2.0},
		"location.bookcase": bson.M{"$in": []interface{}{3}},
	}
	assert.Equal(t, expected, filter, "Field range dùng $gte, field vị trí dùng dot-path")
}

func TestBuildItemSearch_EqualityList(t *testing.T) {
	filter := BuildItemSearch(map[string]string{
		"serial_number": "SN-001,SN-002",
	})

	expected := bson.M{
		"serial_number": bson.M{"$in": []interface{}{"SN-001", "SN-002"}},
	}
	assert.Equal(t, expected, filter, "Danh sách phân cách bởi dấu phẩy phải thành $in")
}

func TestBuildItemSearch_RangeOverridesEquality(t *testing.T) {
	filter := BuildItemSearch(map[string]string{
		"price":     "5",
		"min_price": "2",
		"max_price": "8",
	})

	expected := bson.M{
		"price": bson.M{"$gte": 2.0, "$lte": 8.0},
	}
	assert.Equal(t, expected, filter, "min_/max_ phải được ưu tiên hơn giá trị trực tiếp")
}

func TestBuildItemSearch_UnparseableNumericSkipped(t *testing.T) {
	filter := BuildItemSearch(map[string]string{
		"min_price":     "abc",
		"location_room": "xyz",
	})

	assert.Empty(t, filter, "Giá trị số không parse được không sinh predicate")
}

func TestBuildItemSearch_EmptyParams(t *testing.T) {
	assert.Empty(t, BuildItemSearch(map[string]string{}))
	assert.Empty(t, BuildItemSearch(map[string]string{"skip": "0", "limit": "10"}),
		"skip/limit không phải predicate")
}

func TestHasUnknownSearchParams(t *testing.T) {
	assert.False(t, HasUnknownSearchParams(map[string]string{
		"name": "bearing", "min_price": "1", "skip": "0", "limit": "5", "api_key": "k",
	}), "Các param được hỗ trợ không bị coi là lạ")

	assert.True(t, HasUnknownSearchParams(map[string]string{"color": "red"}),
		"Param ngoài tập hỗ trợ phải bị phát hiện")

	assert.True(t, HasUnknownSearchParams(map[string]string{"min_serial_number": "SN"}),
		"min_/max_ chỉ hợp lệ với range field")
}

func TestParseSkipLimit(t *testing.T) {
	skip, limit, err := ParseSkipLimit("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), skip, "Skip mặc định là 0")
	assert.Equal(t, int64(-1), limit, "Limit mặc định là không giới hạn")

	skip, limit, err = ParseSkipLimit("2.9", "10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), skip, "Giá trị thập phân phải truncate về int")
	assert.Equal(t, int64(10), limit)

	_, _, err = ParseSkipLimit("abc", "")
	assert.Error(t, err, "Skip không phải số phải báo lỗi")

	_, _, err = ParseSkipLimit("", "xyz")
	assert.Error(t, err, "Limit không phải số phải báo lỗi")
}

func TestItemSearch_FilterAndWindow(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testItemCol,
		item("SN-001", "bearings", 1.0),
		item("SN-002", "bearings", 3.0),
		item("SN-003", "bearings", 5.0),
		item("SN-004", "seals", 7.0),
	)
	service := newItemService(bridge)

	filter := BuildItemSearch(map[string]string{"category": "bearings", "min_price": "2"})
	results, err := service.Search(context.Background(), filter, 0, -1)
	require.NoError(t, err)
	assert.Len(t, results, 2, "Filter kết hợp equality và range phải khớp đúng vật tư")

	results, err = service.Search(context.Background(), filter, 1, -1)
	require.NoError(t, err)
	assert.Len(t, results, 1, "Skip phải cắt bớt đầu danh sách")

	results, err = service.Search(context.Background(), bson.M{}, 0, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2, "Limit phải giới hạn số kết quả")
}

func TestItemFetch(t *testing.T) {
	bridge := newFakeBridge()
	bridge.seed(testItemCol, item("SN-001", "bearings", 1.0), item("SN-002", "bearings", 3.0))
	service := newItemService(bridge)

	items, err := service.Fetch(context.Background(), []string{"SN-002"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SN-002", items[0]["serial_number"])
}
