package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cleared-dev/cashview/internal/model"
)

// WindowDays is the length of the lookback window.
const WindowDays = 90

// DefaultFileName is the report file written when no path is given.
const DefaultFileName = "report_spending_by_category.json"

const dateFormat = "2006-01-02"

// operationDateFormats are the accepted operation date layouts, day first.
var operationDateFormats = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Report is the spend for one category over the lookback window.
type Report struct {
	Category     string
	From         time.Time
	To           time.Time
	Transactions []model.Transaction
	Total        decimal.Decimal
}

// SpendingByCategory selects the transactions of category whose operation
// date falls in [refDate-90d, refDate], both ends inclusive. An empty refDate
// means today. Rows with unparseable dates are skipped.
func SpendingByCategory(log zerolog.Logger, txns []model.Transaction, category, refDate string) (Report, error) {
	return spendingByCategory(log, txns, category, refDate, time.Now())
}

func spendingByCategory(log zerolog.Logger, txns []model.Transaction, category, refDate string, now time.Time) (Report, error) {
	ref := truncateDay(now)
	if refDate != "" {
		parsed, err := time.Parse(dateFormat, refDate)
		if err != nil {
			return Report{}, fmt.Errorf("parsing report date %q: %w", refDate, err)
		}
		ref = parsed
	}

	rep := Report{
		Category:     titleCase(category),
		From:         ref.AddDate(0, 0, -WindowDays),
		To:           ref,
		Transactions: []model.Transaction{},
		Total:        decimal.Zero,
	}

	log.Info().Str("category", rep.Category).Str("from", rep.From.Format(dateFormat)).Str("to", rep.To.Format(dateFormat)).Msg("building category report")

	for i, t := range txns {
		if titleCase(t.Category) != rep.Category {
			continue
		}
		opDate, err := ParseOperationDate(t.OperationDate)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping transaction with unparseable date")
			continue
		}
		if opDate.Before(rep.From) || opDate.After(rep.To) {
			continue
		}

		row := t
		row.OperationDate = opDate.Format(dateFormat)
		rep.Transactions = append(rep.Transactions, row)

		amount, err := t.AmountTransactionRUB.Decimal()
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("amount excluded from report total")
			continue
		}
		rep.Total = rep.Total.Add(amount)
	}

	log.Info().Int("count", len(rep.Transactions)).Str("category", rep.Category).Msg("category report built")
	return rep, nil
}

// ParseOperationDate parses a day-first statement date and drops the time of
// day. Spreadsheet date cells arrive as raw serial numbers ("45736.5").
func ParseOperationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range operationDateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return truncateDay(d), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if d, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return truncateDay(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized operation date %q", s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func titleCase(s string) string {
	return cases.Title(language.Russian).String(strings.TrimSpace(s))
}

// Save writes rows to path as an indented JSON array, creating the parent
// directory if needed.
func Save(path string, rows []model.Transaction) error {
	if rows == nil {
		rows = []model.Transaction{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
