package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
)

func newTestRepository(placeholder squirrel.PlaceholderFormat) *cashierSalesRepository {
	return &cashierSalesRepository{
		placeholder:   placeholder,
		invoicesTable: "tblInvoices",
		usersTable:    "tblUsers",
	}
}

func TestBuildListQuery(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		repo     *cashierSalesRepository
		filters  domain.FlashReportFilters
		validate func(t *testing.T, query string, args []interface{})
	}{
		{
			name:    "Sem filtros",
			repo:    newTestRepository(squirrel.Dollar),
			filters: domain.FlashReportFilters{},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
				assert.Contains(t, query, "FROM tblInvoices i INNER JOIN tblUsers u ON i.UserID = u.UserID")
				assert.Contains(t, query, "GROUP BY u.UserName, i.InvoiceDate, i.SalesPeriod, i.Register")
				assert.Contains(t, query, "HAVING SUM(i.SaletotalVI) > 0")
				assert.Contains(t, query, "ORDER BY i.InvoiceDate DESC")
			},
		},
		{
			name:    "Todos os filtros com placeholder do Postgres",
			repo:    newTestRepository(squirrel.Dollar),
			filters: domain.FlashReportFilters{StartDate: &start, EndDate: &end, Cashier: "ana"},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "WHERE i.InvoiceDate >= $1 AND i.InvoiceDate < $2 AND u.UserName = $3")
				require.Len(t, args, 3)
				assert.Equal(t, start, args[0])
				assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), args[1], "o dia final entra inteiro")
				assert.Equal(t, "ana", args[2])
			},
		},
		{
			name:    "Apenas operador com placeholder do SQL Server",
			repo:    newTestRepository(squirrel.AtP),
			filters: domain.FlashReportFilters{Cashier: "bia"},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "WHERE u.UserName = @p1")
				assert.Equal(t, []interface{}{"bia"}, args)
			},
		},
		{
			name:    "Tabelas configuradas e placeholder do MySQL",
			repo:    &cashierSalesRepository{placeholder: squirrel.Question, invoicesTable: "pos.invoices", usersTable: "pos.users"},
			filters: domain.FlashReportFilters{EndDate: &end},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "FROM pos.invoices i INNER JOIN pos.users u")
				assert.Contains(t, query, "WHERE i.InvoiceDate < ?")
				assert.Len(t, args, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.repo.buildListQuery(tt.filters)
			require.NoError(t, err)
			tt.validate(t, query, args)
		})
	}
}

func validSalesRow() salesRow {
	return salesRow{
		UserName:      sql.NullString{String: "ana", Valid: true},
		InvoiceDate:   sql.NullTime{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		SalesPeriod:   sql.NullString{String: "P1", Valid: true},
		SalesVat:      decimal.NewNullDecimal(decimal.RequireFromString("15")),
		SalesVI:       decimal.NewNullDecimal(decimal.RequireFromString("115")),
		Cost:          decimal.NewNullDecimal(decimal.RequireFromString("80")),
		Register:      sql.NullString{String: "R01", Valid: true},
		Trans:         sql.NullInt64{Int64: 3, Valid: true},
		MarginPercent: decimal.NewNullDecimal(decimal.RequireFromString("30.43")),
	}
}

func TestSalesRow_ToSalesRecord(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(raw *salesRow)
		field   string
		wantErr bool
	}{
		{name: "Linha completa", mutate: func(raw *salesRow) {}},
		{name: "Período nulo vira vazio", mutate: func(raw *salesRow) { raw.SalesPeriod = sql.NullString{} }},
		{name: "Imposto nulo", mutate: func(raw *salesRow) { raw.SalesVat = decimal.NullDecimal{} }, field: "sales_vat", wantErr: true},
		{name: "Venda nula", mutate: func(raw *salesRow) { raw.SalesVI = decimal.NullDecimal{} }, field: "sales_vi", wantErr: true},
		{name: "Custo nulo", mutate: func(raw *salesRow) { raw.Cost = decimal.NullDecimal{} }, field: "cost", wantErr: true},
		{name: "Transações nulas", mutate: func(raw *salesRow) { raw.Trans = sql.NullInt64{} }, field: "trans", wantErr: true},
		{name: "Margem nula", mutate: func(raw *salesRow) { raw.MarginPercent = decimal.NullDecimal{} }, field: "margin_percent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validSalesRow()
			tt.mutate(&raw)

			record, err := raw.toSalesRecord(4)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "ana", record.UserName)
				assert.Equal(t, int64(3), record.Trans)
				assert.True(t, record.SalesVI.Equal(decimal.NewFromInt(115)))
				return
			}

			var missing *domain.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, 4, missing.Row)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}
