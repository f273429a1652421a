package catalogsvc

// stringField lấy field dạng chuỗi từ một record động, "" nếu thiếu hoặc sai kiểu
func stringField(record map[string]interface{}, field string) string {
	if value, ok := record[field].(string); ok {
		return value
	}
	return ""
}

// changeField lấy sub-document "change" của một record update, nil nếu thiếu
func changeField(record map[string]interface{}) map[string]interface{} {
	if change, ok := record["change"].(map[string]interface{}); ok {
		return change
	}
	return nil
}

// numberValue đọc một giá trị số động về float64.
// Payload qua JSON luôn là float64, các kiểu int chỉ gặp ở seed data và tests.
func numberValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
