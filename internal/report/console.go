package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cashier-flash-report/internal/domain"
	"github.com/vfg2006/cashier-flash-report/internal/usecases/analyzing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultTitle    = "Cashier Flash Report"
	DefaultRowLimit = 50
	emptyMessage    = "No data found for the selected filters."
	undefinedValue  = "n/a"
)

type ConsoleOptions struct {
	Title    string
	RowLimit int // Linhas exibidas; zero ou negativo usa DefaultRowLimit
}

var printer = message.NewPrinter(language.English)

// RenderConsole escreve a tabela das primeiras linhas e o painel de totais
func RenderConsole(w io.Writer, rows []domain.EnrichedRecord, summary *domain.FlashReportSummary, opts ConsoleOptions) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	limit := opts.RowLimit
	if limit <= 0 {
		limit = DefaultRowLimit
	}
	shown := rows
	if len(shown) > limit {
		shown = shown[:limit]
	}

	fmt.Fprintf(w, "%s\n\n", title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Cashier\tDate\tRegister\tSales (VI)\tCost\tTrans\tMargin %\tATV\t")

	anomalies := 0
	for _, row := range shown {
		margin := printer.Sprintf("%.2f%%", row.MarginPercent.Round(2).InexactFloat64())
		if row.MarginPercent.LessThan(analyzing.MarginAnomalyThreshold) {
			margin += " *"
			anomalies++
		} else {
			margin += "  "
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t\n",
			row.UserName,
			row.InvoiceDate.Format(time.DateOnly),
			row.Register,
			money(row.SalesVI),
			money(row.Cost),
			row.Trans,
			margin,
			nullMoney(row.ATV),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(shown) < len(rows) {
		fmt.Fprintf(w, "\nShowing %d of %d rows.\n", len(shown), len(rows))
	}
	if anomalies > 0 {
		fmt.Fprintf(w, "\n* margin below %s%%\n", analyzing.MarginAnomalyThreshold.String())
	}

	if summary == nil {
		summary = analyzing.Summarize(rows)
	}
	return renderSummary(w, summary)
}

func renderSummary(w io.Writer, summary *domain.FlashReportSummary) error {
	_, err := fmt.Fprintf(w, "\nReport Summary\nTOTALS\nSales VI: %s | Cost: %s | GP: %s\nTransactions: %s | Avg Margin: %s | Avg ATV: %s\n",
		money(summary.TotalSalesVI),
		money(summary.TotalCost),
		money(summary.TotalGrossProfit),
		printer.Sprintf("%d", summary.TotalTransactions),
		printer.Sprintf("%.2f%%", summary.OverallMarginPercent.Round(2).InexactFloat64()),
		money(summary.OverallATV),
	)
	return err
}

func money(value decimal.Decimal) string {
	return printer.Sprintf("$%.2f", value.Round(2).InexactFloat64())
}

func nullMoney(value decimal.NullDecimal) string {
	if !value.Valid {
		return undefinedValue
	}
	return money(value.Decimal)
}
