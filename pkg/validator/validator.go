package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// AnyBlank reports whether at least one of the values is empty after trimming.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func ParseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("value cannot be empty")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return n, nil
}

func ParsePositiveInt(raw string) (int, error) {
	n, err := ParseInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("value must be at least 1, got %d", n)
	}
	return n, nil
}
