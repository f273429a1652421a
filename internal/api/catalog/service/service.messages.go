// Package catalogsvc - orchestrator mutation và search cho domain catalog.
// Mỗi record trong batch chạy trong một transaction riêng; kết quả trả về
// là danh sách OperationStatus giữ nguyên thứ tự đầu vào.
package catalogsvc

// Thông báo trạng thái per-record trả về cho client.
// Giữ nguyên tiếng Anh vì đây là một phần contract của API.
const (
	MsgCategoryAdded      = "Category added to database."
	MsgCategoryChanged    = "Category changed."
	MsgCategoryDeleted    = "Category deleted."
	MsgCategoryNotDeleted = "Category not deleted."
	MsgCategoryCantDelete = "Category cannot be deleted."
	MsgCategoryHasItems   = "Category cannot be deleted, because have items assigned."
	MsgNameExists         = "Name already exist."
	MsgNameNotExists      = "Name not exists."
	MsgNameAbsent         = "Name does not exist."
	MsgNameRequired       = "Need to provide name."
	MsgNameMissing        = "Missing name."
	MsgSelfParent         = "Cannot set same category as parent."
	MsgParentNotExists    = "Parent category not exists."
	MsgParentCantBeParent = "Category cannot be parent."
	MsgParentHasItems     = "Parent category cannot have assigned items."

	MsgItemAdded          = "Item added to database."
	MsgItemUpdated        = "Item updated."
	MsgItemDeleted        = "Item deleted from database."
	MsgItemDeleteFailed   = "Delete action failed."
	MsgSerialExists       = "Serial number already exist."
	MsgSerialDeleted      = "Serial number already deleted."
	MsgCategoryNotExists  = "Category does not exist."
	MsgCategoryIsParent   = "Choose other category than parent."
	MsgInvalidPrice       = "Price must be greater than 0."
	MsgNoModification     = "No modifications were made."

	// MsgStorageFault báo storage fault cho record, tách biệt với các
	// thất bại domain ở trên (record có thể retry được)
	MsgStorageFault = "Database error."
)
