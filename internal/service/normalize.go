package service

import "strings"

// optionalString превращает пустую строку в отсутствие значения.
func optionalString(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
