package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("serial_number", validateSerialNumber)
	_ = Validate.RegisterValidation("catalog_name", validateCatalogName)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// serialNumberPattern cho phép chữ, số, gạch ngang và gạch dưới
var serialNumberPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validateSerialNumber kiểm tra định dạng serial number của vật tư
func validateSerialNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	return serialNumberPattern.MatchString(value)
}

// validateCatalogName kiểm tra tên danh mục / vật tư không rỗng sau khi trim
func validateCatalogName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
