// Package basehdl cung cấp các helper dùng chung cho mọi handler:
// envelope response thống nhất, SafeHandler chống panic và
// xác định ngôn ngữ của client.
package basehdl

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"ware_catalog/internal/common"
	"ware_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// Language xác định ngôn ngữ ưa thích của client từ header Accept-Language.
// Chỉ lấy tag đầu tiên, bỏ phần quality (;q=...). Không có header thì
// dùng ngôn ngữ mặc định.
func Language(c fiber.Ctx) string {
	header := c.Get("Accept-Language")
	if header == "" {
		return common.DefaultLanguage
	}

	first := strings.Split(header, ",")[0]
	first = strings.TrimSpace(strings.Split(first, ";")[0])
	if first == "" {
		return common.DefaultLanguage
	}
	return first
}

// Envelope trả về response theo format thống nhất của API:
//
//	{
//	  "response": {"code": <http code>, "status": <http status text>},
//	  "status":   {"success": <bool>, "code": <internal code>, "message": <localized>},
//	  "timestamp": <unix seconds>,
//	  "result":   <payload>
//	}
//
// httpCode không hợp lệ bị hạ xuống 500 để không bao giờ trả về
// envelope thiếu status text.
func Envelope(c fiber.Ctx, language string, httpCode int, success bool, internalCode int, result interface{}) error {
	statusText := common.HTTPStatusText(httpCode)
	if statusText == "" {
		httpCode = common.StatusInternalServerError
		statusText = common.HTTPStatusText(httpCode)
		success = false
	}

	if result == nil {
		result = []interface{}{}
	}

	return JSONResponse(c, httpCode, fiber.Map{
		"response": fiber.Map{
			"code":   httpCode,
			"status": statusText,
		},
		"status": fiber.Map{
			"success": success,
			"code":    internalCode,
			"message": common.StatusMessage(language, internalCode),
		},
		"timestamp": time.Now().Unix(),
		"result":    result,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
// Chi tiết panic chỉ được ghi log, không lộ ra ngoài.
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Handler panic recovered")
			debug.PrintStack()

			_ = Envelope(c, Language(c), common.StatusInternalServerError, false, common.CodeNone, nil)
		}
	}()
	return handler()
}
