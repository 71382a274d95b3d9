package domain

import (
	"fmt"
	"strings"
)

type AnalyticsLevel string

const (
	AnalyticsLevelBasic AnalyticsLevel = "basic"
	AnalyticsLevelFull  AnalyticsLevel = "full"
)

// ParseAnalyticsLevel converte o texto recebido em um nível de análise válido
func ParseAnalyticsLevel(s string) (AnalyticsLevel, error) {
	switch AnalyticsLevel(strings.ToLower(strings.TrimSpace(s))) {
	case AnalyticsLevelBasic:
		return AnalyticsLevelBasic, nil
	case AnalyticsLevelFull:
		return AnalyticsLevelFull, nil
	default:
		return "", fmt.Errorf("%w: %q (use basic ou full)", ErrInvalidAnalyticsLevel, s)
	}
}
