// Package validation cung cấp bộ kiểm tra cấu trúc đệ quy cho payload động.
// Mỗi mutation endpoint khai báo một Spec mô tả các field được phép,
// kiểu của chúng và field nào bắt buộc; payload không khớp Spec sẽ bị
// từ chối trước khi orchestrator chạy.
package validation

import "math"

// Kind là kiểu primitive mà một field có thể mang.
//
// Payload đi qua encoding/json nên mọi số đều là float64;
// KindInt chấp nhận float64 có giá trị nguyên, KindFloat chấp nhận
// mọi float64. Các kiểu Go gốc (int, int64, float32) cũng được chấp nhận
// để Spec dùng được với dữ liệu không qua JSON (seed data, tests).
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String trả về tên kiểu để echo vào thông báo lỗi cấu trúc
func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// FieldRule là rule cho một field: hoặc primitive Kind, hoặc một Spec lồng nhau.
// Nested != nil nghĩa là rule lồng nhau, khi đó Kind bị bỏ qua.
type FieldRule struct {
	Kind     Kind
	Nested   Spec
	Required bool
}

// Spec ánh xạ tên field sang rule của nó
type Spec map[string]FieldRule

// Primitive tạo rule cho một field kiểu primitive
func Primitive(kind Kind, required bool) FieldRule {
	return FieldRule{Kind: kind, Required: required}
}

// Nested tạo rule cho một field là sub-document
func Nested(spec Spec, required bool) FieldRule {
	return FieldRule{Nested: spec, Required: required}
}

// CheckStructure kiểm tra một danh sách records theo spec.
// Trả về true chỉ khi MỌI record thỏa mãn MỌI rule VÀ không chứa
// field nào ngoài spec (số field đã kiểm tra phải bằng tổng số key
// của record, field optional vắng mặt không được tính).
// Hàm này không bao giờ panic ra ngoài, lỗi nội bộ được coi là
// validation thất bại.
func CheckStructure(records []map[string]interface{}, spec Spec) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	if spec == nil {
		return false
	}

	for _, record := range records {
		if record == nil {
			return false
		}
		if !checkRecord(record, spec) {
			return false
		}
	}
	return true
}

// checkRecord kiểm tra một record theo spec với key-count matching
func checkRecord(record map[string]interface{}, spec Spec) bool {
	checked := 0

	for field, rule := range spec {
		value, present := record[field]
		if !present {
			if rule.Required {
				return false
			}
			// Optional vắng mặt: bỏ qua, không tính vào checked
			continue
		}

		if rule.Nested != nil {
			subRecord, isMap := value.(map[string]interface{})
			if !isMap {
				return false
			}
			if !checkRecord(subRecord, rule.Nested) {
				return false
			}
		} else if !matchKind(value, rule.Kind) {
			return false
		}

		checked++
	}

	// Record có key ngoài spec thì checked < len(record)
	return checked == len(record)
}

// matchKind kiểm tra runtime type của value khớp với Kind
func matchKind(value interface{}, kind Kind) bool {
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindInt:
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return v == math.Trunc(v) && !math.IsInf(v, 0) && !math.IsNaN(v)
		default:
			return false
		}
	case KindFloat:
		switch value.(type) {
		case float32, float64, int, int32, int64:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// Describe trả về bản mô tả phẳng của spec để echo lại cho client
// khi payload sai cấu trúc. Field lồng nhau được mô tả đệ quy.
func (s Spec) Describe() map[string]interface{} {
	out := make(map[string]interface{}, len(s))
	for field, rule := range s {
		if rule.Nested != nil {
			out[field] = rule.Nested.Describe()
		} else {
			name := rule.Kind.String()
			if !rule.Required {
				name += " (optional)"
			}
			out[field] = name
		}
	}
	return out
}
