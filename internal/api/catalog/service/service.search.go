package catalogsvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ware_catalog/internal/database"

	"go.mongodb.org/mongo-driver/bson"
)

// searchField mô tả một query param được search hỗ trợ:
// tên param, đường dẫn field trong document (dot-notation cho sub-document)
// và cách dịch giá trị.
type searchField struct {
	param   string
	path    string
	ranged  bool // có hỗ trợ min_/max_ không
	numeric bool // giá trị là số (range field luôn là số)
	integer bool // ép về số nguyên (các field vị trí)
}

// itemSearchFields là tập field cố định mà GET /search/items hiểu được
var itemSearchFields = []searchField{
	{param: "serial_number", path: "serial_number"},
	{param: "name", path: "name"},
	{param: "category", path: "category"},
	{param: "price", path: "price", ranged: true, numeric: true},
	{param: "location_room", path: "location.room", ranged: true, numeric: true, integer: true},
	{param: "location_bookcase", path: "location.bookcase", ranged: true, numeric: true, integer: true},
	{param: "location_shelf", path: "location.shelf", ranged: true, numeric: true, integer: true},
	{param: "location_cuvette", path: "location.cuvette", ranged: true, numeric: true, integer: true},
	{param: "location_column", path: "location.column", ranged: true, numeric: true, integer: true},
	{param: "location_row", path: "location.row", ranged: true, numeric: true, integer: true},
}

// BuildItemSearch dịch flat query params thành filter MongoDB trên collection vật tư.
//   - Field equality nhận danh sách phân cách bởi dấu phẩy -> $in
//   - Field range nhận min_<field>/max_<field> -> $gte/$lte (ưu tiên hơn giá trị trực tiếp)
//   - Giá trị không parse được bị bỏ qua, không sinh predicate
//
// Hàm pure, không I/O.
func BuildItemSearch(params map[string]string) bson.M {
	query := bson.M{}

	for _, field := range itemSearchFields {
		if field.ranged {
			if bounds := rangeBounds(params, field); len(bounds) > 0 {
				query[field.path] = bounds
				continue
			}
		}

		if values := equalityValues(params[field.param], field); len(values) > 0 {
			query[field.path] = bson.M{"$in": values}
		}
	}

	return query
}

// HasUnknownSearchParams báo caller truyền param không thuộc tập field hỗ trợ.
// Filter rỗng kèm param lạ nghĩa là client tìm theo kiểu không tồn tại.
func HasUnknownSearchParams(params map[string]string) bool {
	recognized := map[string]bool{
		"skip":    true,
		"limit":   true,
		"api_key": true,
	}
	for _, field := range itemSearchFields {
		recognized[field.param] = true
		if field.ranged {
			recognized["min_"+field.param] = true
			recognized["max_"+field.param] = true
		}
	}

	for param := range params {
		if !recognized[param] {
			return true
		}
	}
	return false
}

// rangeBounds dựng $gte/$lte từ min_/max_ của một range field
func rangeBounds(params map[string]string, field searchField) bson.M {
	bounds := bson.M{}

	if raw, ok := params["min_"+field.param]; ok && raw != "" {
		if value, ok := parseNumber(raw, field.integer); ok {
			bounds["$gte"] = value
		}
	}
	if raw, ok := params["max_"+field.param]; ok && raw != "" {
		if value, ok := parseNumber(raw, field.integer); ok {
			bounds["$lte"] = value
		}
	}

	return bounds
}

// equalityValues dựng danh sách giá trị $in từ một param phân cách bởi dấu phẩy
func equalityValues(raw string, field searchField) []interface{} {
	if raw == "" {
		return nil
	}

	var values []interface{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if field.numeric {
			value, ok := parseNumber(part, field.integer)
			if !ok {
				continue
			}
			values = append(values, value)
		} else {
			values = append(values, part)
		}
	}
	return values
}

// parseNumber parse chuỗi số, ép về int khi integer=true (truncate phần thập phân)
func parseNumber(raw string, integer bool) (interface{}, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, false
	}
	if integer {
		return int(value), true
	}
	return value, true
}

// Search chạy một filter đã dựng sẵn trên collection vật tư.
// Đường đọc không dùng transaction.
func (s *ItemService) Search(ctx context.Context, filter bson.M, skip int64, limit int64) ([]database.Document, error) {
	return s.bridge.Find(ctx, s.itemCol, filter, skip, limit)
}

// ParseSkipLimit parse cửa sổ kết quả của search.
// Mặc định skip=0, limit=-1 (không giới hạn). Giá trị là chuỗi số,
// chấp nhận dạng thập phân và truncate về int.
func ParseSkipLimit(skipRaw string, limitRaw string) (int64, int64, error) {
	skip := int64(0)
	limit := int64(-1)

	if skipRaw != "" {
		value, err := strconv.ParseFloat(skipRaw, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid skip value %q: %w", skipRaw, err)
		}
		skip = int64(value)
	}
	if limitRaw != "" {
		value, err := strconv.ParseFloat(limitRaw, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid limit value %q: %w", limitRaw, err)
		}
		limit = int64(value)
	}

	return skip, limit, nil
}
