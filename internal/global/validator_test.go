package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ware_catalog/internal/api/catalog/models"
)

func TestInitValidator_CustomRules(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate, "InitValidator phải gán validator toàn cục")

	assert.NoError(t, Validate.Var("Bearing 6204", "no_xss"))
	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"),
		"Chuỗi chứa pattern nguy hiểm phải bị từ chối")

	assert.NoError(t, Validate.Var("SN-001_A", "serial_number"))
	assert.Error(t, Validate.Var("SN 001", "serial_number"),
		"Serial chứa khoảng trắng phải bị từ chối")
	assert.Error(t, Validate.Var("", "serial_number"),
		"Serial rỗng phải bị từ chối")

	assert.NoError(t, Validate.Var("bearings", "catalog_name"))
	assert.Error(t, Validate.Var("   ", "catalog_name"),
		"Tên toàn khoảng trắng phải bị từ chối")
}

func TestValidate_ItemStruct(t *testing.T) {
	InitValidator()

	valid := models.Item{
		SerialNumber: "SN-001",
		Name:         "Bearing 6204",
		Description:  "Ball bearing",
		Category:     "bearings",
		Price:        2.5,
		Location:     models.ItemLocation{Room: 1, Bookcase: 2, Shelf: 3, Cuvette: 4, Column: 5, Row: 6},
	}
	assert.NoError(t, Validate.Struct(valid), "Vật tư hợp lệ phải pass")

	badSerial := valid
	badSerial.SerialNumber = "SN 001"
	assert.Error(t, Validate.Struct(badSerial), "Serial sai định dạng phải bị từ chối")

	badPrice := valid
	badPrice.Price = -1
	assert.Error(t, Validate.Struct(badPrice), "Giá âm phải bị từ chối")

	badName := valid
	badName.Name = "<script>alert(1)</script>"
	assert.Error(t, Validate.Struct(badName), "Tên chứa script phải bị từ chối")
}

func TestValidate_CategoryStruct(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(models.Category{Name: "bearings", ParentName: ""}))
	assert.Error(t, Validate.Struct(models.Category{Name: "   ", ParentName: ""}),
		"Tên danh mục toàn khoảng trắng phải bị từ chối")
}
