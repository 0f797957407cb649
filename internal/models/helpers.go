package models

// StringPtr возвращает указатель на копию строки.
func StringPtr(s string) *string {
	return &s
}

// Int64Ptr возвращает указатель на копию числа.
func Int64Ptr(v int64) *int64 {
	return &v
}
