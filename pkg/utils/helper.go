package utils

import "strconv"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseBoolPtr converts a query parameter to *bool. Returns nil when the
// parameter was absent so callers can tell "not supplied" from "false".
func ParseBoolPtr(value string) *bool {
	if value == "" {
		return nil
	}

	b := value == "true"
	return &b
}
