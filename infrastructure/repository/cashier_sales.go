// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/infrastructure/database/sqldb"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

// ErrDatabase identifica falhas de conexão ou de execução no banco de vendas
var ErrDatabase = errors.New("database error")

type CashierSalesRepository interface {
	ListCashierSales(ctx context.Context, filters domain.FlashReportFilters) ([]domain.SalesRecord, error)
}

type cashierSalesRepository struct {
	conn          sqldb.Queryer
	placeholder   squirrel.PlaceholderFormat
	invoicesTable string
	usersTable    string
	timeout       time.Duration
}

func NewCashierSalesRepository(conn sqldb.Conn, cfg config.Database) CashierSalesRepository {
	return &cashierSalesRepository{
		conn:          conn,
		placeholder:   conn.Placeholder(),
		invoicesTable: cfg.InvoicesTable,
		usersTable:    cfg.UsersTable,
		timeout:       cfg.QueryTimeout(),
	}
}

// salesRow recebe as colunas agregadas antes da validação dos nulos
type salesRow struct {
	UserName      sql.NullString
	InvoiceDate   sql.NullTime
	SalesPeriod   sql.NullString
	SalesVat      decimal.NullDecimal
	SalesVI       decimal.NullDecimal
	Cost          decimal.NullDecimal
	Register      sql.NullString
	Trans         sql.NullInt64
	MarginPercent decimal.NullDecimal
}

// buildListQuery monta a agregação por operador, data, período e caixa.
// O fim do período é exclusivo no dia seguinte para incluir o dia inteiro.
func (r *cashierSalesRepository) buildListQuery(filters domain.FlashReportFilters) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Select(
			"u.UserName",
			"i.InvoiceDate",
			"i.SalesPeriod",
			"SUM(i.SaleVat) AS SalesVat",
			"SUM(i.SaletotalVI) AS SalesVI",
			"SUM(i.SaleCost) AS Cost",
			"i.Register",
			"COUNT(i.InvoiceNo) AS Trans",
			"ROUND(((SUM(i.SaletotalVI) - SUM(i.SaleCost)) / NULLIF(SUM(i.SaletotalVI), 0)) * 100, 2) AS MarginPercent",
		).
		From(r.invoicesTable + " i").
		InnerJoin(r.usersTable + " u ON i.UserID = u.UserID")

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"i.InvoiceDate": *filters.StartDate})
	}
	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"i.InvoiceDate": filters.EndDate.AddDate(0, 0, 1)})
	}
	if filters.Cashier != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"u.UserName": filters.Cashier})
	}

	return queryBuilder.
		GroupBy("u.UserName", "i.InvoiceDate", "i.SalesPeriod", "i.Register").
		Having("SUM(i.SaletotalVI) > 0").
		OrderBy("i.InvoiceDate DESC").
		PlaceholderFormat(r.placeholder).
		ToSql()
}

func (r *cashierSalesRepository) ListCashierSales(ctx context.Context, filters domain.FlashReportFilters) ([]domain.SalesRecord, error) {
	query, args, err := r.buildListQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, r.databaseError(ctx, "erro ao executar a query", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		var raw salesRow
		err := rows.Scan(
			&raw.UserName,
			&raw.InvoiceDate,
			&raw.SalesPeriod,
			&raw.SalesVat,
			&raw.SalesVI,
			&raw.Cost,
			&raw.Register,
			&raw.Trans,
			&raw.MarginPercent,
		)
		if err != nil {
			return nil, r.databaseError(ctx, "erro ao escanear linha de vendas", err)
		}

		record, err := raw.toSalesRecord(len(records))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, r.databaseError(ctx, "erro durante a iteração de linhas", err)
	}

	log.ForContext(ctx).WithField("rows", len(records)).Debug("Vendas por operador carregadas")

	return records, nil
}

func (r *cashierSalesRepository) databaseError(ctx context.Context, message string, err error) error {
	logger := log.ForContext(ctx).WithError(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		logger = logger.WithField("pg_code", string(pqErr.Code))
	}
	logger.Error(message)

	return fmt.Errorf("%w: %s: %w", ErrDatabase, message, err)
}

// toSalesRecord converte a linha lida, recusando colunas numéricas nulas.
// Operador e data nulos chegam vazios e são recusados pelo enriquecimento.
func (raw salesRow) toSalesRecord(row int) (domain.SalesRecord, error) {
	numeric := []struct {
		field string
		value decimal.NullDecimal
	}{
		{"sales_vat", raw.SalesVat},
		{"sales_vi", raw.SalesVI},
		{"cost", raw.Cost},
		{"margin_percent", raw.MarginPercent},
	}
	for _, column := range numeric {
		if !column.value.Valid {
			return domain.SalesRecord{}, &domain.MissingFieldError{Row: row, Field: column.field}
		}
	}
	if !raw.Trans.Valid {
		return domain.SalesRecord{}, &domain.MissingFieldError{Row: row, Field: "trans"}
	}

	return domain.SalesRecord{
		UserName:      raw.UserName.String,
		InvoiceDate:   raw.InvoiceDate.Time,
		SalesPeriod:   raw.SalesPeriod.String,
		Register:      raw.Register.String,
		SalesVat:      raw.SalesVat.Decimal,
		SalesVI:       raw.SalesVI.Decimal,
		Cost:          raw.Cost.Decimal,
		Trans:         raw.Trans.Int64,
		MarginPercent: raw.MarginPercent.Decimal,
	}, nil
}
