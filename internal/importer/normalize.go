package importer

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/cashview/internal/model"
)

// FieldMapping binds one statement column to a Transaction field. A column
// absent from the row leaves the field at its zero value.
type FieldMapping struct {
	Label string
	Field string
	set   func(txn *model.Transaction, v string) error
}

// Fields is the column table for the bank's statement export, in output order.
var Fields = []FieldMapping{
	text("Дата операции", "operation_date", func(t *model.Transaction, v string) { t.OperationDate = v }),
	text("Дата платежа", "payment_date", func(t *model.Transaction, v string) { t.PaymentDate = v }),
	text("Статус", "state", func(t *model.Transaction, v string) { t.State = v }),
	text("Номер карты", "last_digits", func(t *model.Transaction, v string) { t.LastDigits = v }),
	amount("Сумма операции", "amount_transaction", func(t *model.Transaction, v model.Amount) { t.AmountTransaction = v }),
	text("Валюта операции", "currency", func(t *model.Transaction, v string) { t.Currency = v }),
	amount("Сумма платежа", "amount_transaction_rub", func(t *model.Transaction, v model.Amount) { t.AmountTransactionRUB = v }),
	text("Валюта платежа", "account_currency", func(t *model.Transaction, v string) { t.AccountCurrency = v }),
	amount("Кэшбэк", "cashback", func(t *model.Transaction, v model.Amount) { t.Cashback = v }),
	text("Категория", "category", func(t *model.Transaction, v string) { t.Category = v }),
	text("MCC", "transaction_code", func(t *model.Transaction, v string) { t.TransactionCode = v }),
	{Label: "Бонусы (включая кэшбэк)", Field: "benefit", set: setBenefit},
	amount("Округление на инвесткопилку", "amount_to_piggy", func(t *model.Transaction, v model.Amount) { t.AmountToPiggy = v }),
	text("Описание", "description", func(t *model.Transaction, v string) { t.Description = v }),
	amount("Сумма операции с округлением", "amount_rounded", func(t *model.Transaction, v model.Amount) { t.AmountRounded = v }),
}

func text(label, field string, assign func(*model.Transaction, string)) FieldMapping {
	return FieldMapping{Label: label, Field: field, set: func(t *model.Transaction, v string) error {
		assign(t, v)
		return nil
	}}
}

func amount(label, field string, assign func(*model.Transaction, model.Amount)) FieldMapping {
	return FieldMapping{Label: label, Field: field, set: func(t *model.Transaction, v string) error {
		assign(t, model.Amount(v))
		return nil
	}}
}

// setBenefit truncates fractional bonus values toward zero ("5.0" -> 5).
func setBenefit(t *model.Transaction, v string) error {
	if v == "" {
		return nil
	}
	d, err := model.Amount(v).Decimal()
	if err != nil {
		return fmt.Errorf("benefit: %w", err)
	}
	t.Benefit = int(d.IntPart())
	return nil
}

// NormalizeRow maps one row through Fields.
func NormalizeRow(row Row) (model.Transaction, error) {
	var txn model.Transaction
	for _, f := range Fields {
		v, ok := row[f.Label]
		if !ok {
			continue
		}
		if err := f.set(&txn, v); err != nil {
			return model.Transaction{}, err
		}
	}
	return txn, nil
}

// Normalize maps rows to transactions. Rows that fail coercion are logged
// with their raw content and dropped.
func Normalize(log zerolog.Logger, rows []Row) []model.Transaction {
	txns := make([]model.Transaction, 0, len(rows))
	for i, row := range rows {
		txn, err := NormalizeRow(row)
		if err != nil {
			log.Error().Err(err).Int("index", i).Interface("raw", row).Msg("dropping malformed transaction")
			continue
		}
		txns = append(txns, txn)
	}
	return txns
}
