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

// CategoryHandler xử lý các endpoint /category
type CategoryHandler struct {
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo CategoryHandler trên bridge toàn cục
func NewCategoryHandler() (*CategoryHandler, error) {
	if global.MongoDB_Bridge == nil {
		return nil, fmt.Errorf("storage bridge is not initialized")
	}

	return &CategoryHandler{
		CategoryService: catalogsvc.NewCategoryService(
			global.MongoDB_Bridge,
			global.MongoDB_ColNames.Categories,
			global.MongoDB_ColNames.Items,
		),
	}, nil
}

// Get - GET /category[/:name], tên nhận qua path param hoặc query ?name=a,b,c
func (h *CategoryHandler) Get(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		names := keysFromRequest(c, "name", "name")
		if len(names) == 0 {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeMissingCategory, nil)
		}

		categories, err := h.CategoryService.Fetch(c.Context(), names)
		if err != nil {
			return basehdl.Envelope(c, language, common.StatusInternalServerError, false, common.CodeNone, nil)
		}

		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, categories)
	})
}

// Post - POST /category, body là danh sách danh mục cần thêm
func (h *CategoryHandler) Post(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.CategoryCreateSpec())
		if !ok {
			return resp
		}

		statuses := h.CategoryService.CreateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Put - PUT /category, change phải chứa đầy đủ các field
func (h *CategoryHandler) Put(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.CategoryReplaceSpec())
		if !ok {
			return resp
		}

		statuses := h.CategoryService.UpdateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Patch - PATCH /category, change chỉ chứa các field muốn sửa
func (h *CategoryHandler) Patch(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		records, ok, resp := checkedBatch(c, language, dto.CategoryMergeSpec())
		if !ok {
			return resp
		}

		statuses := h.CategoryService.UpdateBatch(c.Context(), records)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}

// Delete - DELETE /category[/:name], tên nhận qua path param hoặc query ?name=a,b,c
func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)

		names := keysFromRequest(c, "name", "name")
		if len(names) == 0 {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeMissingCategory, nil)
		}

		statuses := h.CategoryService.DeleteBatch(c.Context(), names)
		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, statuses)
	})
}
