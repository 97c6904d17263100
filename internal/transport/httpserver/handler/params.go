package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// parseUintParam parses a positive integer path or query parameter.
func parseUintParam(value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("value is required")
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(parsed), nil
}

// parseOptionalUintParam returns 0 for an absent value.
func parseOptionalUintParam(value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return parseUintParam(value)
}
