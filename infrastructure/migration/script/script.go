// Script de desenvolvimento: cria as tabelas de vendas num PostgreSQL local e
// popula notas fiscais de demonstração para os últimos dias.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashier-flash-report/infrastructure/database/sqldb"
	"github.com/vfg2006/cashier-flash-report/internal/config"
	"github.com/vfg2006/cashier-flash-report/pkg/log"
)

const (
	invoiceNoLength = 10
	characters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seedDays        = 14
)

var (
	cashiers  = []string{"ana.souza", "bruno.lima", "carla.mendes", "diego.rocha"}
	registers = []string{"CX01", "CX02", "CX03"}
	periods   = []string{"MORNING", "AFTERNOON"}

	vatRate = decimal.RequireFromString("0.15")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tblUsers (
		UserID   SERIAL PRIMARY KEY,
		UserName VARCHAR(60) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS tblInvoices (
		InvoiceNo   VARCHAR(20) PRIMARY KEY,
		UserID      INTEGER NOT NULL REFERENCES tblUsers (UserID),
		InvoiceDate DATE NOT NULL,
		SalesPeriod VARCHAR(20) NOT NULL,
		Register    VARCHAR(20) NOT NULL,
		SaleVat     NUMERIC(14, 2) NOT NULL,
		SaletotalVI NUMERIC(14, 2) NOT NULL,
		SaleCost    NUMERIC(14, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_date ON tblInvoices (InvoiceDate)`,
}

type invoice struct {
	No       string
	UserID   int
	Date     time.Time
	Period   string
	Register string
	Vat      decimal.Decimal
	TotalVI  decimal.Decimal
	Cost     decimal.Decimal
}

func generateInvoiceNo() string {
	id, _ := gonanoid.Generate(characters, invoiceNoLength)
	return id
}

func createSchema(ctx context.Context, conn sqldb.Conn) error {
	for _, statement := range schema {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar o schema: %w", err)
		}
	}
	logrus.Info("Schema de vendas criado")
	return nil
}

func insertUsers(ctx context.Context, tx *sql.Tx) (map[string]int, error) {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tblUsers (UserName) VALUES ($1)
		ON CONFLICT (UserName) DO UPDATE SET UserName = EXCLUDED.UserName RETURNING UserID`)
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar statement para tblUsers: %w", err)
	}
	defer stmt.Close()

	users := make(map[string]int, len(cashiers))
	for _, name := range cashiers {
		var id int
		if err := stmt.QueryRowContext(ctx, name).Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao inserir operador %s: %w", name, err)
		}
		users[name] = id
	}

	logrus.Infof("%d operadores garantidos", len(users))
	return users, nil
}

// buildInvoices gera notas determinísticas: cada operador trabalha num caixa fixo
// e alterna os períodos ao longo dos dias
func buildInvoices(users map[string]int, today time.Time, rng *rand.Rand) []invoice {
	var invoices []invoice
	for day := seedDays; day >= 1; day-- {
		date := today.AddDate(0, 0, -day)

		for i, name := range cashiers {
			period := periods[(i+day)%len(periods)]
			count := 5 + rng.IntN(16)

			for range count {
				total := decimal.NewFromInt(int64(1000 + rng.IntN(50000))).Shift(-2)
				marginPct := decimal.NewFromInt(int64(10 + rng.IntN(35)))
				cost := total.Mul(decimal.NewFromInt(100).Sub(marginPct)).Div(decimal.NewFromInt(100)).Round(2)
				vat := total.Sub(total.Div(decimal.NewFromInt(1).Add(vatRate))).Round(2)

				invoices = append(invoices, invoice{
					No:       generateInvoiceNo(),
					UserID:   users[name],
					Date:     date,
					Period:   period,
					Register: registers[i%len(registers)],
					Vat:      vat,
					TotalVI:  total,
					Cost:     cost,
				})
			}
		}
	}

	return invoices
}

// insertInvoices para na primeira falha: no PostgreSQL a transação fica abortada
// e as inserções seguintes falhariam do mesmo jeito
func insertInvoices(ctx context.Context, tx *sql.Tx, invoices []invoice) error {
	logrus.Infof("Iniciando inserção de %d notas fiscais...", len(invoices))
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tblInvoices
		(InvoiceNo, UserID, InvoiceDate, SalesPeriod, Register, SaleVat, SaletotalVI, SaleCost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para tblInvoices: %w", err)
	}
	defer stmt.Close()

	for i, inv := range invoices {
		_, err := stmt.ExecContext(ctx, inv.No, inv.UserID, inv.Date, inv.Period, inv.Register, inv.Vat, inv.TotalVI, inv.Cost)
		if err != nil {
			return fmt.Errorf("erro ao inserir nota [%d/%d] %s: %w", i+1, len(invoices), inv.No, err)
		}
		if i > 0 && i%100 == 0 {
			logrus.Debugf("Progresso: %d/%d notas processadas", i+1, len(invoices))
		}
	}

	logrus.Infof("Inserção de %d notas concluída em %v", len(invoices), time.Since(startTime))
	return nil
}

func seed(ctx context.Context, conn sqldb.Conn, today time.Time) error {
	if err := createSchema(ctx, conn); err != nil {
		return err
	}

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		users, err := insertUsers(ctx, tx)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewPCG(42, uint64(today.Unix())))
		return insertInvoices(ctx, tx, buildInvoices(users, today, rng))
	})
	if err != nil {
		return err
	}

	var total int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM tblInvoices").Scan(&total); err != nil {
		return fmt.Errorf("erro ao contar as notas: %w", err)
	}
	logrus.Infof("tblInvoices possui %d notas", total)

	return nil
}

func main() {
	log.Setup("info", nil)
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar a configuração")
	}
	if cfg.Database.Driver != config.DriverPostgres {
		logrus.WithField("driver", cfg.Database.Driver).Fatal("O script de desenvolvimento suporta apenas postgres")
	}

	ctx := context.Background()

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := seed(ctx, conn, today); err != nil {
		logrus.WithError(err).Error("Carga de demonstração revertida")
		return
	}

	logrus.Info("Carga de demonstração concluída")
}
