// Package models - các kiểu dữ liệu của domain catalog (catalog_categories, catalog_items).
// Payload mutation đi vào dưới dạng map động (partial update), các struct ở đây
// dùng cho seed data và response có cấu trúc cố định.
package models

// Category là một danh mục vật tư. Danh mục có parent_name rỗng là danh mục gốc.
// Phân cấp tối đa hai tầng: danh mục con không bao giờ được làm parent.
type Category struct {
	Name       string `json:"name" bson:"name" validate:"required,catalog_name,no_xss"`    // Tên danh mục, khóa duy nhất
	ParentName string `json:"parent_name" bson:"parent_name" validate:"omitempty,no_xss"`  // Tên danh mục cha, rỗng = gốc
}

// ItemLocation là vị trí vật lý của vật tư trong kho
type ItemLocation struct {
	Room     int `json:"room" bson:"room" validate:"gte=0"`
	Bookcase int `json:"bookcase" bson:"bookcase" validate:"gte=0"`
	Shelf    int `json:"shelf" bson:"shelf" validate:"gte=0"`
	Cuvette  int `json:"cuvette" bson:"cuvette" validate:"gte=0"`
	Column   int `json:"column" bson:"column" validate:"gte=0"`
	Row      int `json:"row" bson:"row" validate:"gte=0"`
}

// Item là một vật tư trong catalog. Chỉ gắn được vào danh mục lá.
type Item struct {
	SerialNumber string       `json:"serial_number" bson:"serial_number" validate:"required,serial_number"` // Khóa duy nhất
	Name         string       `json:"name" bson:"name" validate:"required,catalog_name,no_xss"`
	Description  string       `json:"description" bson:"description" validate:"no_xss"`
	Category     string       `json:"category" bson:"category" validate:"omitempty,no_xss"` // Rỗng = chưa phân loại
	Price        float64      `json:"price" bson:"price" validate:"gte=0"`                  // Không âm
	Location     ItemLocation `json:"location" bson:"location"`
}

// OperationStatus là kết quả của một record trong batch mutation.
// Mỗi record đầu vào sinh đúng một OperationStatus, giữ nguyên thứ tự.
type OperationStatus struct {
	ID      string `json:"id"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// Success tạo OperationStatus thành công
func Success(id string, message string) OperationStatus {
	return OperationStatus{ID: id, Status: true, Message: message}
}

// Failure tạo OperationStatus thất bại
func Failure(id string, message string) OperationStatus {
	return OperationStatus{ID: id, Status: false, Message: message}
}
