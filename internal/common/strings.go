package common

import "strings"

// UnknownStr is the placeholder for values outside a closed enumeration.
const UnknownStr = "unknown"

// Canon lowercases and trims an identifier for case-insensitive comparison.
func Canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
