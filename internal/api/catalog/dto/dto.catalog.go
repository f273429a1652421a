// Package dto - đặc tả cấu trúc payload cho các mutation endpoint của catalog.
// Mỗi endpoint khai báo một validation.Spec; payload không khớp spec bị từ chối
// với HTTP 400 trước khi orchestrator chạy.
package dto

import (
	"ware_catalog/internal/validation"
)

// locationSpec tạo spec cho sub-document location.
// required áp cho từng field con (PUT bắt buộc đủ, PATCH cho phép thiếu).
func locationSpec(required bool) validation.Spec {
	return validation.Spec{
		"room":     validation.Primitive(validation.KindInt, required),
		"bookcase": validation.Primitive(validation.KindInt, required),
		"shelf":    validation.Primitive(validation.KindInt, required),
		"cuvette":  validation.Primitive(validation.KindInt, required),
		"column":   validation.Primitive(validation.KindInt, required),
		"row":      validation.Primitive(validation.KindInt, required),
	}
}

// CategoryCreateSpec - POST /category
func CategoryCreateSpec() validation.Spec {
	return validation.Spec{
		"name":        validation.Primitive(validation.KindString, true),
		"parent_name": validation.Primitive(validation.KindString, true),
	}
}

// CategoryReplaceSpec - PUT /category, mọi field của change bắt buộc
func CategoryReplaceSpec() validation.Spec {
	return validation.Spec{
		"name": validation.Primitive(validation.KindString, true),
		"change": validation.Nested(validation.Spec{
			"parent_name": validation.Primitive(validation.KindString, true),
		}, true),
	}
}

// CategoryMergeSpec - PATCH /category, các field của change tùy chọn
func CategoryMergeSpec() validation.Spec {
	return validation.Spec{
		"name": validation.Primitive(validation.KindString, true),
		"change": validation.Nested(validation.Spec{
			"parent_name": validation.Primitive(validation.KindString, false),
		}, false),
	}
}

// ItemCreateSpec - POST /item
func ItemCreateSpec() validation.Spec {
	return validation.Spec{
		"serial_number": validation.Primitive(validation.KindString, true),
		"name":          validation.Primitive(validation.KindString, true),
		"description":   validation.Primitive(validation.KindString, true),
		"category":      validation.Primitive(validation.KindString, true),
		"price":         validation.Primitive(validation.KindFloat, true),
		"location":      validation.Nested(locationSpec(true), true),
	}
}

// ItemReplaceSpec - PUT /item, change phải chứa đủ mọi field
func ItemReplaceSpec() validation.Spec {
	return validation.Spec{
		"serial_number": validation.Primitive(validation.KindString, true),
		"change": validation.Nested(validation.Spec{
			"name":        validation.Primitive(validation.KindString, true),
			"description": validation.Primitive(validation.KindString, true),
			"category":    validation.Primitive(validation.KindString, true),
			"price":       validation.Primitive(validation.KindFloat, true),
			"location":    validation.Nested(locationSpec(true), true),
		}, true),
	}
}

// ItemMergeSpec - PATCH /item, change chỉ chứa các field muốn sửa
func ItemMergeSpec() validation.Spec {
	return validation.Spec{
		"serial_number": validation.Primitive(validation.KindString, true),
		"change": validation.Nested(validation.Spec{
			"name":        validation.Primitive(validation.KindString, false),
			"description": validation.Primitive(validation.KindString, false),
			"category":    validation.Primitive(validation.KindString, false),
			"price":       validation.Primitive(validation.KindFloat, false),
			"location":    validation.Nested(locationSpec(false), false),
		}, true),
	}
}
