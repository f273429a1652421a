// Package cataloghdl - handler HTTP cho domain catalog.
// Handler chỉ lo framing: parse request, kiểm tra cấu trúc payload,
// gọi orchestrator và đóng gói envelope. Mọi logic nghiệp vụ nằm ở service.
package cataloghdl

import (
	"encoding/json"
	"strings"

	basehdl "ware_catalog/internal/api/base/handler"
	"ware_catalog/internal/common"
	"ware_catalog/internal/database"
	"ware_catalog/internal/validation"

	"github.com/gofiber/fiber/v3"
)

// parseBatch parse body thành danh sách record động.
// Body không phải JSON array là lỗi framing, không phải lỗi cấu trúc.
// JSON null unmarshal thành slice nil mà không có lỗi, vẫn không phải danh sách.
func parseBatch(body []byte) ([]database.Document, bool) {
	var records []database.Document
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, false
	}
	if records == nil {
		return nil, false
	}
	return records, true
}

// keysFromRequest gom danh sách khóa từ query param (phân cách bởi dấu phẩy)
// hoặc từ path param khi query không có
func keysFromRequest(c fiber.Ctx, queryParam string, pathParam string) []string {
	raw := c.Query(queryParam)

	var keys []string
	if raw != "" {
		for _, part := range strings.Split(raw, ",") {
			keys = append(keys, part)
		}
	}

	if len(keys) == 0 {
		if value := c.Params(pathParam); value != "" {
			keys = []string{value}
		}
	}

	return keys
}

// checkedBatch parse body và kiểm tra cấu trúc theo spec.
// Khi ok=false thì response lỗi đã được ghi, caller trả về resp là xong.
func checkedBatch(c fiber.Ctx, language string, spec validation.Spec) (records []database.Document, ok bool, resp error) {
	records, ok = parseBatch(c.Body())
	if !ok {
		return nil, false, basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeBodyMustBeList, nil)
	}

	if !validation.CheckStructure(records, spec) {
		return nil, false, basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeNone, fiber.Map{
			"message":            "Bad structure.",
			"required_structure": spec.Describe(),
		})
	}

	return records, true, nil
}
