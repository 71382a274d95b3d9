// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord representa uma linha agregada por operador, data, período e caixa
type SalesRecord struct {
	UserName      string          `json:"user_name"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	SalesPeriod   string          `json:"sales_period"`
	Register      string          `json:"register"`
	SalesVat      decimal.Decimal `json:"sales_vat"`
	SalesVI       decimal.Decimal `json:"sales_vi"` // Vendas com imposto incluso
	Cost          decimal.Decimal `json:"cost"`
	Trans         int64           `json:"trans"`
	MarginPercent decimal.Decimal `json:"margin_percent"` // Escala 0-100, calculada na origem
}

// Base devolve o registro de vendas sem campos derivados
func (r SalesRecord) Base() SalesRecord {
	return r
}

// SalesRow é implementado por qualquer linha que carregue um SalesRecord
type SalesRow interface {
	Base() SalesRecord
}
