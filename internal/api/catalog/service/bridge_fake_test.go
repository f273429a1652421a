package catalogsvc

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"ware_catalog/internal/database"
)

// fakeBridge là implementation in-memory của database.Bridge cho test.
// Hỗ trợ đúng tập filter mà orchestrator dùng: equality, $in, $gte, $lte
// trên field top-level hoặc dot-path, và update dạng {"$set": {...}}.
// Khi forcedErr được set, mọi thao tác storage trả về lỗi đó.
// failNextTx > 0 làm N transaction kế tiếp fail ngay, các transaction sau chạy bình thường.
type fakeBridge struct {
	collections map[string][]database.Document
	forcedErr   error
	failNextTx  int
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{
		collections: make(map[string][]database.Document),
	}
}

// seed chèn documents trực tiếp, không qua Bridge API
func (b *fakeBridge) seed(collection string, docs ...database.Document) {
	b.collections[collection] = append(b.collections[collection], docs...)
}

// count trả về số documents khớp filter, dùng để assert trạng thái store
func (b *fakeBridge) count(collection string, filter interface{}) int {
	count := 0
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) {
			count++
		}
	}
	return count
}

func (b *fakeBridge) Find(ctx context.Context, collection string, filter interface{}, skip int64, limit int64) ([]database.Document, error) {
	if b.forcedErr != nil {
		return nil, b.forcedErr
	}

	var results []database.Document
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) {
			results = append(results, doc)
		}
	}

	if skip > 0 {
		if skip >= int64(len(results)) {
			return nil, nil
		}
		results = results[skip:]
	}
	if limit >= 0 && limit < int64(len(results)) {
		results = results[:limit]
	}
	return results, nil
}

func (b *fakeBridge) FindOne(ctx context.Context, collection string, filter interface{}) (database.Document, error) {
	if b.forcedErr != nil {
		return nil, b.forcedErr
	}
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) {
			return doc, nil
		}
	}
	return nil, nil
}

func (b *fakeBridge) InsertOne(ctx context.Context, collection string, doc database.Document) error {
	if b.forcedErr != nil {
		return b.forcedErr
	}
	b.collections[collection] = append(b.collections[collection], doc)
	return nil
}

func (b *fakeBridge) InsertMany(ctx context.Context, collection string, docs []database.Document) error {
	if b.forcedErr != nil {
		return b.forcedErr
	}
	b.collections[collection] = append(b.collections[collection], docs...)
	return nil
}

func (b *fakeBridge) UpdateOne(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error) {
	if b.forcedErr != nil {
		return 0, b.forcedErr
	}
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) {
			if applySet(doc, update) {
				return 1, nil
			}
			return 0, nil
		}
	}
	return 0, nil
}

func (b *fakeBridge) UpdateMany(ctx context.Context, collection string, filter interface{}, update interface{}) (int64, error) {
	if b.forcedErr != nil {
		return 0, b.forcedErr
	}
	var modified int64
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) && applySet(doc, update) {
			modified++
		}
	}
	return modified, nil
}

func (b *fakeBridge) DeleteMany(ctx context.Context, collection string, filter interface{}) (int64, error) {
	if b.forcedErr != nil {
		return 0, b.forcedErr
	}
	var kept []database.Document
	var deleted int64
	for _, doc := range b.collections[collection] {
		if matchesFilter(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	b.collections[collection] = kept
	return deleted, nil
}

func (b *fakeBridge) CollectionNames(ctx context.Context) ([]string, error) {
	if b.forcedErr != nil {
		return nil, b.forcedErr
	}
	names := make([]string, 0, len(b.collections))
	for name := range b.collections {
		names = append(names, name)
	}
	return names, nil
}

func (b *fakeBridge) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if b.failNextTx > 0 {
		b.failNextTx--
		return errors.New("transaction aborted")
	}
	if b.forcedErr != nil {
		return b.forcedErr
	}
	return fn(ctx)
}

// matchesFilter đánh giá filter trên một document
func matchesFilter(doc database.Document, filter interface{}) bool {
	conditions := asMap(filter)
	if conditions == nil {
		return true
	}

	for path, condition := range conditions {
		value, found := lookupPath(doc, path)
		if !matchesCondition(value, found, condition) {
			return false
		}
	}
	return true
}

// matchesCondition đánh giá một điều kiện ($in/$gte/$lte hoặc equality) trên một giá trị
func matchesCondition(value interface{}, found bool, condition interface{}) bool {
	if operators := asMap(condition); operators != nil {
		for op, operand := range operators {
			switch op {
			case "$in":
				if !containsValue(operand, value, found) {
					return false
				}
			case "$gte":
				left, leftOk := asNumber(value)
				right, rightOk := asNumber(operand)
				if !found || !leftOk || !rightOk || left < right {
					return false
				}
			case "$lte":
				left, leftOk := asNumber(value)
				right, rightOk := asNumber(operand)
				if !found || !leftOk || !rightOk || left > right {
					return false
				}
			default:
				return false
			}
		}
		return true
	}

	return found && looseEqual(value, condition)
}

// containsValue kiểm tra value nằm trong danh sách operand của $in
func containsValue(operand interface{}, value interface{}, found bool) bool {
	if !found {
		return false
	}
	list := reflect.ValueOf(operand)
	if list.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < list.Len(); i++ {
		if looseEqual(value, list.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// lookupPath đọc giá trị theo dot-path trong document lồng nhau
func lookupPath(doc database.Document, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var current interface{} = doc
	for _, part := range parts {
		node := asMap(current)
		if node == nil {
			return nil, false
		}
		value, ok := node[part]
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// applySet áp {"$set": {...}} lên document, trả về true nếu có field thay đổi
func applySet(doc database.Document, update interface{}) bool {
	updateMap := asMap(update)
	if updateMap == nil {
		return false
	}
	change := asMap(updateMap["$set"])
	if change == nil {
		return false
	}

	modified := false
	for field, value := range change {
		if existing, ok := doc[field]; !ok || !reflect.DeepEqual(existing, value) {
			doc[field] = value
			modified = true
		}
	}
	return modified
}

// asMap ép một giá trị về map[string]interface{} (bson.M cũng là map này)
func asMap(value interface{}) map[string]interface{} {
	if value == nil {
		return nil
	}
	reflected := reflect.ValueOf(value)
	if reflected.Kind() != reflect.Map {
		return nil
	}
	result := make(map[string]interface{}, reflected.Len())
	for _, key := range reflected.MapKeys() {
		name, ok := key.Interface().(string)
		if !ok {
			return nil
		}
		result[name] = reflected.MapIndex(key).Interface()
	}
	return result
}

// asNumber normalize các kiểu số về float64 để so sánh
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// looseEqual so sánh hai giá trị, coi các kiểu số là tương đương
func looseEqual(a interface{}, b interface{}) bool {
	if aNum, ok := asNumber(a); ok {
		if bNum, ok := asNumber(b); ok {
			return aNum == bNum
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
