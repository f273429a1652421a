package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// itemSpec mô phỏng spec của một vật tư với location lồng nhau
func itemSpec() Spec {
	return Spec{
		"serial_number": Primitive(KindString, true),
		"name":          Primitive(KindString, true),
		"description":   Primitive(KindString, false),
		"category":      Primitive(KindString, false),
		"price":         Primitive(KindFloat, true),
		"location": Nested(Spec{
			"room":     Primitive(KindInt, true),
			"bookcase": Primitive(KindInt, true),
			"shelf":    Primitive(KindInt, true),
			"cuvette":  Primitive(KindInt, true),
			"column":   Primitive(KindInt, true),
			"row":      Primitive(KindInt, true),
		}, true),
	}
}

// decode parse JSON thành record giống hệt payload từ request body
func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var record map[string]interface{}
	err := json.Unmarshal([]byte(raw), &record)
	assert.NoError(t, err, "JSON mẫu phải parse được")
	return record
}

func TestCheckStructure_ValidRecord(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"name": "Bearing 6204",
		"description": "Ball bearing",
		"category": "bearings",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6}
	}`)

	assert.True(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"Record hợp lệ phải pass")
}

func TestCheckStructure_OptionalAbsent(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"name": "Bearing 6204",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6}
	}`)

	assert.True(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"Field optional vắng mặt không được làm fail")
}

func TestCheckStructure_MissingRequired(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6}
	}`)

	assert.False(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"Thiếu field bắt buộc phải fail")
}

func TestCheckStructure_ExtraField(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"name": "Bearing 6204",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6},
		"unknown_field": "x"
	}`)

	assert.False(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"Field ngoài spec phải fail (key-count matching)")
}

func TestCheckStructure_TypeMismatch(t *testing.T) {
	record := decode(t, `{
		"serial_number": 12345,
		"name": "Bearing 6204",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6}
	}`)

	assert.False(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"serial_number kiểu số phải fail")
}

func TestCheckStructure_NestedTypeMismatch(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"name": "Bearing 6204",
		"price": 2.5,
		"location": {"room": "one", "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6}
	}`)

	assert.False(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"room kiểu chuỗi phải fail")
}

func TestCheckStructure_NestedExtraField(t *testing.T) {
	record := decode(t, `{
		"serial_number": "SN-001",
		"name": "Bearing 6204",
		"price": 2.5,
		"location": {"room": 1, "bookcase": 2, "shelf": 3, "cuvette": 4, "column": 5, "row": 6, "floor": 7}
	}`)

	assert.False(t, CheckStructure([]map[string]interface{}{record}, itemSpec()),
		"Field lạ trong sub-document phải fail")
}

func TestCheckStructure_IntAcceptsIntegralFloat(t *testing.T) {
	// JSON numbers decode thành float64, KindInt phải chấp nhận giá trị nguyên
	record := decode(t, `{"room": 3}`)
	spec := Spec{"room": Primitive(KindInt, true)}

	assert.True(t, CheckStructure([]map[string]interface{}{record}, spec))

	fractional := decode(t, `{"room": 3.5}`)
	assert.False(t, CheckStructure([]map[string]interface{}{fractional}, spec),
		"Giá trị thập phân không phải int")
}

func TestCheckStructure_FloatAcceptsWholeNumber(t *testing.T) {
	record := decode(t, `{"price": 5}`)
	spec := Spec{"price": Primitive(KindFloat, true)}

	assert.True(t, CheckStructure([]map[string]interface{}{record}, spec),
		"price nguyên vẫn là số hợp lệ cho KindFloat")
}

func TestCheckStructure_BatchOneBadRecordFailsAll(t *testing.T) {
	good := decode(t, `{"name": "A", "parent_name": ""}`)
	bad := decode(t, `{"name": "B"}`)
	spec := Spec{
		"name":        Primitive(KindString, true),
		"parent_name": Primitive(KindString, true),
	}

	assert.True(t, CheckStructure([]map[string]interface{}{good}, spec))
	assert.False(t, CheckStructure([]map[string]interface{}{good, bad}, spec),
		"Một record sai làm cả batch fail")
}

func TestCheckStructure_NilInputs(t *testing.T) {
	spec := Spec{"name": Primitive(KindString, true)}

	assert.False(t, CheckStructure([]map[string]interface{}{nil}, spec))
	assert.False(t, CheckStructure([]map[string]interface{}{{"name": "A"}}, nil))
	assert.True(t, CheckStructure(nil, spec), "Batch rỗng không có record nào vi phạm")
}

func TestCheckStructure_Idempotent(t *testing.T) {
	record := decode(t, `{"name": "A", "parent_name": ""}`)
	spec := Spec{
		"name":        Primitive(KindString, true),
		"parent_name": Primitive(KindString, true),
	}

	for i := 0; i < 3; i++ {
		assert.True(t, CheckStructure([]map[string]interface{}{record}, spec),
			"Validate lại record hợp lệ phải luôn true")
	}
}

func TestSpec_Describe(t *testing.T) {
	spec := Spec{
		"name":        Primitive(KindString, true),
		"description": Primitive(KindString, false),
		"location": Nested(Spec{
			"room": Primitive(KindInt, true),
		}, true),
	}

	described := spec.Describe()
	assert.Equal(t, "str", described["name"])
	assert.Equal(t, "str (optional)", described["description"])

	nested, ok := described["location"].(map[string]interface{})
	assert.True(t, ok, "location phải được mô tả đệ quy")
	assert.Equal(t, "int", nested["room"])
}
