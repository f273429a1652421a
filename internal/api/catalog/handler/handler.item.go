package cataloghdl

import (
	"fmt"

	basehdl "ware_catalog/internal/api/base/handler"
	"ware_catalog/internal/api/catalog/dto"
	catalogsvc "ware_catalog/internal/api/catalog/service"
	"ware_catalog/internal/common"
	"ware_catalog/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ItemHandler xử lý các endpoint /item
type ItemHandler struct {
	ItemService *catalogsvc.ItemService
}

// NewItemHandler tạo ItemHandler trên bridge toàn cục
func NewItemHandler() (*ItemHandler, error) {
	if global.MongoDB_Bridge == nil {
		return nil, fmt.Errorf("storage bridge is not initialized")
	}

	return &ItemHandler{
		ItemService: catalogsvc.NewItemService(
			global.MongoDB_Bridge,
			global.MongoDB_ColNames.Categories,
			global.MongoDB_ColNames.Items,
		),
	}, nil
}

// Get - GET /item[/:serial_number], serial nhận qua path param hoặc query ?serial_number=a,b,c
func (h *ItemHandler) Get(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		serials := keysFromRequest(c, "serial_number", "serial_number")
		if len(serials) == 0 {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeMissingSerial, nil)
		}

		items, err := h.ItemService.Fetch(c.Context(), serials)
		if err != nil {
			return basehdl.Envelope(c, language, common.StatusInternalServerError, false, common.CodeNone, nil)
		}

		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, items)
	})
}

// Post - POST /item, body là danh sách vật tư cần thêm
func (h *ItemHandler) Post(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.ItemCreateSpec())
		if !ok {
			return resp
		}

		statuses := h.ItemService.CreateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Put - PUT /item, change phải chứa đầy đủ các field
func (h *ItemHandler) Put(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.ItemReplaceSpec())
		if !ok {
			return resp
		}

		statuses := h.ItemService.UpdateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Patch - PATCH /item, change chỉ chứa các field muốn sửa
func (h *ItemHandler) Patch(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.ItemMergeSpec())
		if !ok {
			return resp
		}

		statuses := h.ItemService.UpdateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Delete - DELETE /item[/:serial_number]
func (h *ItemHandler) Delete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		serials := keysFromRequest(c, "serial_number", "serial_number")
		if len(serials) == 0 {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeMissingSerial, nil)
		}

		statuses := h.ItemService.DeleteBatch(c.Context(), serials)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}
