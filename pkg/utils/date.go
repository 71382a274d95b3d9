package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const rangeSeparator = " to "

var ErrInvalidDateRange = errors.New("invalid date range")

// ParseDate converte YYYY-MM-DD. Texto vazio devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDateRange aceita "YYYY-MM-DD to YYYY-MM-DD" ou apenas a data inicial
func ParseDateRange(value string) (start *time.Time, end *time.Time, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil, nil
	}

	startStr, endStr, hasEnd := strings.Cut(value, rangeSeparator)
	if hasEnd && strings.TrimSpace(endStr) == "" {
		return nil, nil, fmt.Errorf("%w: %q, use 'YYYY-MM-DD to YYYY-MM-DD'", ErrInvalidDateRange, value)
	}

	start, err = ParseDate(startStr)
	if err != nil || start == nil {
		return nil, nil, fmt.Errorf("%w: %q, use 'YYYY-MM-DD to YYYY-MM-DD'", ErrInvalidDateRange, value)
	}

	if hasEnd {
		end, err = ParseDate(endStr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q, use 'YYYY-MM-DD to YYYY-MM-DD'", ErrInvalidDateRange, value)
		}
		if start.After(*end) {
			return nil, nil, fmt.Errorf("%w: data inicial posterior à final", ErrInvalidDateRange)
		}
	}

	return start, end, nil
}
