package cataloghdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch_ValidArray(t *testing.T) {
	records, ok := parseBatch([]byte(`[{"name": "bearings", "parent_name": ""}]`))

	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "bearings", records[0]["name"])
}

func TestParseBatch_EmptyArray(t *testing.T) {
	records, ok := parseBatch([]byte(`[]`))

	assert.True(t, ok, "Danh sách rỗng vẫn là danh sách hợp lệ")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseBatch_NullBody(t *testing.T) {
	records, ok := parseBatch([]byte(`null`))

	assert.False(t, ok, "Body null không phải danh sách")
	assert.Nil(t, records)
}

func TestParseBatch_NonArrayBody(t *testing.T) {
	_, ok := parseBatch([]byte(`{"name": "bearings"}`))
	assert.False(t, ok, "Object đơn lẻ không phải danh sách")

	_, ok = parseBatch([]byte(`"bearings"`))
	assert.False(t, ok, "Chuỗi không phải danh sách")

	_, ok = parseBatch([]byte(`not json`))
	assert.False(t, ok, "Body không phải JSON phải bị từ chối")
}
