package cataloghdl

import (
	"fmt"

	basehdl "ware_catalog/internal/api/base/handler"
	catalogsvc "ware_catalog/internal/api/catalog/service"
	"ware_catalog/internal/common"
	"ware_catalog/internal/global"

	"github.com/gofiber/fiber/v3"
)

// SearchHandler xử lý GET /search/items
type SearchHandler struct {
	ItemService *catalogsvc.ItemService
}

// NewSearchHandler tạo SearchHandler trên bridge toàn cục
func NewSearchHandler() (*SearchHandler, error) {
	if global.MongoDB_Bridge == nil {
		return nil, fmt.Errorf("storage bridge is not initialized")
	}

	return &SearchHandler{
		ItemService: catalogsvc.NewItemService(
			global.MongoDB_Bridge,
			global.MongoDB_ColNames.Categories,
			global.MongoDB_ColNames.Items,
		),
	}, nil
}

// Items - GET /search/items, dịch flat query params thành filter trên vật tư.
// Không có predicate nào được nhận ra mà client lại truyền param lạ
// thì đó là kiểu tìm kiếm không hỗ trợ.
func (h *SearchHandler) Items(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		language := basehdl.Language(c)
		params := c.Queries()

		filter := catalogsvc.BuildItemSearch(params)
		if len(filter) == 0 && catalogsvc.HasUnknownSearchParams(params) {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeInvalidSearchType, nil)
		}

		skip, limit, err := catalogsvc.ParseSkipLimit(c.Query("skip"), c.Query("limit"))
		if err != nil {
			return basehdl.Envelope(c, language, common.StatusBadRequest, false, common.CodeInvalidSearchType, nil)
		}

		items, err := h.ItemService.Search(c.Context(), filter, skip, limit)
		if err != nil {
			return basehdl.Envelope(c, language, common.StatusInternalServerError, false, common.CodeNone, nil)
		}

		return basehdl.Envelope(c, language, common.StatusOK, true, common.CodeSuccess, items)
	})
}
