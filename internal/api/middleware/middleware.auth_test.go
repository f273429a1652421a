package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAuthManager() *AuthManager {
	return &AuthManager{sessions: make(map[string]session)}
}

func TestCreateSession(t *testing.T) {
	manager := newAuthManager()

	assert.True(t, manager.CreateSession("key-read", []string{"READ"}),
		"Key hợp lệ phải tạo được session")
	assert.False(t, manager.CreateSession("key-read", []string{"CREATE"}),
		"Key trùng không được tạo lại")
	assert.False(t, manager.CreateSession("", []string{"READ"}),
		"Key rỗng phải bị từ chối")
	assert.False(t, manager.CreateSession("key-bad", []string{"ADMIN"}),
		"Nhóm quyền không tồn tại phải bị từ chối")
	assert.False(t, manager.CreateSession("key-none", nil),
		"Session không có quyền nào là vô nghĩa")
}

func TestIsAuthorized(t *testing.T) {
	manager := newAuthManager()
	manager.CreateSession("key-read", []string{"READ"})
	manager.CreateSession("key-write", []string{"CREATE", "UPDATE"})
	manager.CreateSession("key-all", []string{"READ", "CREATE", "UPDATE", "DELETE"})

	assert.True(t, manager.IsAuthorized("key-read", "GET"))
	assert.True(t, manager.IsAuthorized("key-read", "HEAD"), "READ phải cho phép cả HEAD")
	assert.False(t, manager.IsAuthorized("key-read", "POST"), "READ không được phép POST")

	assert.True(t, manager.IsAuthorized("key-write", "POST"))
	assert.True(t, manager.IsAuthorized("key-write", "PUT"))
	assert.True(t, manager.IsAuthorized("key-write", "PATCH"), "UPDATE phải cho phép cả PATCH")
	assert.False(t, manager.IsAuthorized("key-write", "DELETE"))

	assert.True(t, manager.IsAuthorized("key-all", "DELETE"))
	assert.False(t, manager.IsAuthorized("key-unknown", "GET"), "Key chưa đăng ký phải bị chặn")
	assert.False(t, manager.IsAuthorized("", "GET"), "Key rỗng phải bị chặn")
}
