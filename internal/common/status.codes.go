package common

import "net/http"

// Internal status codes - mã trạng thái nội bộ của API, độc lập với HTTP status.
// Mỗi mã có message được localize theo ngôn ngữ của client (Accept-Language).
const (
	CodeNone              = 0    // Không có message
	CodeSuccess           = 1200 // Request hoàn thành
	CodeMissingSerial     = 1401 // Thiếu serial number
	CodeNoItemRemoved     = 1402 // Không có item nào bị xóa
	CodeBodyMustBeList    = 1403 // Body phải là một mảng
	CodeMissingCategory   = 1404 // Thiếu tên category
	CodeNoCategoryRemoved = 1405 // Không có category nào bị xóa
	CodeInvalidSearchType = 1406 // Kiểu tìm kiếm không hợp lệ
)

// DefaultLanguage là ngôn ngữ fallback khi client không gửi Accept-Language
// hoặc gửi ngôn ngữ không được hỗ trợ.
const DefaultLanguage = "en-EN"

// statusMessages chứa message đã localize cho từng internal code.
var statusMessages = map[int]map[string]string{
	CodeSuccess: {
		"en-EN": "Request done.",
		"vi-VN": "Yêu cầu đã được thực hiện.",
	},
	CodeMissingSerial: {
		"en-EN": "Serial number(s) must be provided.",
		"vi-VN": "Cần cung cấp số serial.",
	},
	CodeNoItemRemoved: {
		"en-EN": "No item has been removed.",
		"vi-VN": "Không có vật tư nào bị xóa.",
	},
	CodeBodyMustBeList: {
		"en-EN": "The input data must be provided in the form of a list.",
		"vi-VN": "Dữ liệu đầu vào phải ở dạng danh sách.",
	},
	CodeMissingCategory: {
		"en-EN": "Category name(s) must be provided.",
		"vi-VN": "Cần cung cấp tên danh mục.",
	},
	CodeNoCategoryRemoved: {
		"en-EN": "No categories have been removed.",
		"vi-VN": "Không có danh mục nào bị xóa.",
	},
	CodeInvalidSearchType: {
		"en-EN": "Wrong search type provided.",
		"vi-VN": "Kiểu tìm kiếm không hợp lệ.",
	},
}

// StatusMessage trả về message đã localize của một internal code.
// Code không tồn tại hoặc ngôn ngữ không hỗ trợ sẽ fallback về en-EN,
// cuối cùng là chuỗi rỗng (giữ nguyên code cho client tự xử lý).
func StatusMessage(language string, code int) string {
	messages, ok := statusMessages[code]
	if !ok {
		return ""
	}
	if message, ok := messages[language]; ok {
		return message
	}
	if message, ok := messages[DefaultLanguage]; ok {
		return message
	}
	return ""
}

// HTTPStatusText trả về text chuẩn của một HTTP status code.
// Code không hợp lệ trả về chuỗi rỗng để caller downgrade về 500.
func HTTPStatusText(code int) string {
	return http.StatusText(code)
}
