// Package router đăng ký các route thuộc domain catalog: categories, items, search.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "ware_catalog/internal/api/catalog/handler"
	"ware_catalog/internal/api/middleware"
	apirouter "ware_catalog/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Mọi route đi qua AuthMiddleware trước khi body được parse.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}
	itemHandler, err := cataloghdl.NewItemHandler()
	if err != nil {
		return fmt.Errorf("tạo ItemHandler: %w", err)
	}
	searchHandler, err := cataloghdl.NewSearchHandler()
	if err != nil {
		return fmt.Errorf("tạo SearchHandler: %w", err)
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}

	// Category routes
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "GET", "", auth, categoryHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "HEAD", "", auth, categoryHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "GET", "/:name", auth, categoryHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "HEAD", "/:name", auth, categoryHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "POST", "", auth, categoryHandler.Post)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "PUT", "", auth, categoryHandler.Put)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "PATCH", "", auth, categoryHandler.Patch)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "DELETE", "", auth, categoryHandler.Delete)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "DELETE", "/:name", auth, categoryHandler.Delete)

	// Item routes
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "GET", "", auth, itemHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "HEAD", "", auth, itemHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "GET", "/:serial_number", auth, itemHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "HEAD", "/:serial_number", auth, itemHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "POST", "", auth, itemHandler.Post)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "PUT", "", auth, itemHandler.Put)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "PATCH", "", auth, itemHandler.Patch)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "DELETE", "", auth, itemHandler.Delete)
	apirouter.RegisterRouteWithMiddleware(v1, "/item", "DELETE", "/:serial_number", auth, itemHandler.Delete)

	// Search routes
	apirouter.RegisterRouteWithMiddleware(v1, "/search", "GET", "/items", auth, searchHandler.Items)

	return nil
}
