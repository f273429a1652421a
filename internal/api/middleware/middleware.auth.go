// Package middleware chứa các middleware dùng chung của API.
// Auth ở đây là bảng ánh xạ api key -> nhóm quyền, được seed lúc khởi động.
package middleware

import (
	"sync"
	"time"

	basehdl "ware_catalog/internal/api/base/handler"
	"ware_catalog/internal/common"
	"ware_catalog/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// Các nhóm quyền và những HTTP method mà mỗi nhóm cho phép
var permissionMethods = map[string][]string{
	"READ":   {"GET", "HEAD"},
	"CREATE": {"POST"},
	"UPDATE": {"PUT", "PATCH"},
	"DELETE": {"DELETE"},
}

// session là một api key đã đăng ký cùng các nhóm quyền của nó
type session struct {
	Start       time.Time
	Permissions []string
}

// AuthManager quản lý bảng session của các api key.
// Thread-safe, dùng chung cho toàn bộ ứng dụng qua GetAuthManager.
type AuthManager struct {
	sessions map[string]session
	mu       sync.RWMutex
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về singleton instance của AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			sessions: make(map[string]session),
		}
	})
	return authManagerInstance
}

// CreateSession đăng ký một api key với danh sách nhóm quyền.
// Trả về false nếu key đã tồn tại hoặc có nhóm quyền không hợp lệ.
func (m *AuthManager) CreateSession(key string, permissions []string) bool {
	if key == "" || len(permissions) == 0 {
		return false
	}
	for _, permission := range permissions {
		if _, ok := permissionMethods[permission]; !ok {
			return false
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[key]; exists {
		return false
	}

	m.sessions[key] = session{
		Start:       time.Now(),
		Permissions: permissions,
	}
	return true
}

// IsAuthorized kiểm tra key có tồn tại và có nhóm quyền nào cho phép method không
func (m *AuthManager) IsAuthorized(key string, method string) bool {
	if key == "" {
		return false
	}

	m.mu.RLock()
	sess, exists := m.sessions[key]
	m.mu.RUnlock()

	if !exists {
		return false
	}

	for _, permission := range sess.Permissions {
		for _, allowed := range permissionMethods[permission] {
			if allowed == method {
				return true
			}
		}
	}
	return false
}

// AuthMiddleware xác thực request trước khi body được parse.
// Key lấy từ header Authorization, không có thì lấy query param api_key.
// Request không có quyền bị chặn với HTTP 401.
func AuthMiddleware() fiber.Handler {
	manager := GetAuthManager()

	return func(c fiber.Ctx) error {
		key := c.Get("Authorization")
		if key == "" {
			key = c.Query("api_key")
		}

		if !manager.IsAuthorized(key, c.Method()) {
			logger.GetAppLogger().WithField("method", c.Method()).WithField("path", c.Path()).Warn("Unauthorized request")
			return basehdl.Envelope(c, common.DefaultLanguage, common.StatusUnauthorized, false, common.CodeNone, nil)
		}

		return c.Next()
	}
}
