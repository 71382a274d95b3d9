package domain

import "time"

// FlashReportFilters restringe as linhas buscadas na origem. Campos nil não filtram.
type FlashReportFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Cashier   string     `json:"cashier,omitempty"`
}
