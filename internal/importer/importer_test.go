package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/cashview/internal/logger"
	"github.com/cleared-dev/cashview/internal/model"
)

var statementHeader = []any{
	"Дата операции", "Дата платежа", "Номер карты", "Статус", "Сумма операции",
	"Валюта операции", "Сумма платежа", "Валюта платежа", "Кэшбэк", "Категория",
	"MCC", "Описание", "Бонусы (включая кэшбэк)", "Округление на инвесткопилку",
	"Сумма операции с округлением",
}

func writeXLSX(t *testing.T, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]any{statementHeader}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "operations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := writeXLSX(t,
		[]any{"31.12.2021 16:44:00", "31.12.2021", "*7197", "OK", "-160.89", "RUB", "-160.89", "RUB", "", "Супермаркеты", "5411", "Колхоз", "3", "0", "160.89"},
		[]any{"30.12.2021 17:50:30", "30.12.2021", "", "OK", "5046", "RUB", "5046", "RUB", "", "Пополнения", "", "Пополнение через Газпромбанк", "0", "0", "5046"},
	)

	txns := Load(zerolog.Nop(), path)
	require.Len(t, txns, 2)

	first := txns[0]
	assert.Equal(t, "31.12.2021 16:44:00", first.OperationDate)
	assert.Equal(t, "31.12.2021", first.PaymentDate)
	assert.Equal(t, "*7197", first.LastDigits)
	assert.Equal(t, "OK", first.State)
	assert.Equal(t, model.Amount("-160.89"), first.AmountTransactionRUB)
	assert.Equal(t, "Супермаркеты", first.Category)
	assert.Equal(t, "5411", first.TransactionCode)
	assert.Equal(t, "Колхоз", first.Description)
	assert.Equal(t, 3, first.Benefit)

	assert.Empty(t, txns[1].LastDigits)
	assert.Equal(t, "Пополнения", txns[1].Category)
}

func TestLoad_XLSXNumberFormats(t *testing.T) {
	path := writeXLSX(t,
		[]any{"31.12.2021 16:44:00", "31.12.2021", "*7197", "OK", "-5046", "RUB", "", "RUB", "", "Пополнения", "", "Перевод", ""},
	)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "G2", 5046.0))
	require.NoError(t, f.SetCellValue("Sheet1", "M2", 1250.0))
	require.NoError(t, f.SetCellStyle("Sheet1", "G2", "G2", thousands))
	require.NoError(t, f.SetCellStyle("Sheet1", "M2", "M2", thousands))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	txns := Load(zerolog.Nop(), path)
	require.Len(t, txns, 1)

	spent, err := txns[0].AmountTransactionRUB.Decimal()
	require.NoError(t, err)
	assert.Equal(t, "5046", spent.String())
	assert.Equal(t, 1250, txns[0].Benefit)
}

func TestLoad_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	txns := Load(logger.NewWithWriter(&buf), filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
	assert.Contains(t, buf.String(), "statement file not found")
}

func TestLoad_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	var buf bytes.Buffer
	txns := Load(logger.NewWithWriter(&buf), path)
	assert.Empty(t, txns)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.pdf")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	assert.Empty(t, Load(zerolog.Nop(), path))
}

func TestLoad_CSVSemicolon(t *testing.T) {
	content := "Дата операции;Номер карты;Сумма платежа;Категория;Описание;Бонусы (включая кэшбэк)\n" +
		"01.03.2025 10:00:00;*1234;-250,50;Фастфуд;Кафе \"Ромашка\";2\n" +
		";;;;;\n" +
		"02.03.2025 11:00:00;*1234;-99;Транспорт;Метро;0\n"
	path := filepath.Join(t.TempDir(), "operations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	txns := Load(zerolog.Nop(), path)
	require.Len(t, txns, 2)
	assert.Equal(t, `Кафе "Ромашка"`, txns[0].Description)
	assert.Equal(t, model.Amount("-250,50"), txns[0].AmountTransactionRUB)
	assert.Equal(t, 2, txns[0].Benefit)
	assert.Equal(t, "Метро", txns[1].Description)
}

func TestCSVReader_Comma(t *testing.T) {
	rows, err := (&CSVReader{}).Read(strings.NewReader("\ufeffОписание,Кэшбэк\nКафе,5\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Кафе", rows[0]["Описание"])
	assert.Equal(t, "5", rows[0]["Кэшбэк"])
}

func TestCSVReader_HeaderOnly(t *testing.T) {
	rows, err := (&CSVReader{}).Read(strings.NewReader("Описание,Кэшбэк\n"))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestNormalizeRow_MissingLabels(t *testing.T) {
	txn, err := NormalizeRow(Row{"Описание": "Такси"})
	require.NoError(t, err)
	assert.Equal(t, model.Transaction{Description: "Такси"}, txn)
}

func TestNormalizeRow_FractionalBenefit(t *testing.T) {
	txn, err := NormalizeRow(Row{"Бонусы (включая кэшбэк)": "5.0"})
	require.NoError(t, err)
	assert.Equal(t, 5, txn.Benefit)
}

func TestNormalize_DropsBadBenefit(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{
		{"Описание": "ok", "Бонусы (включая кэшбэк)": "1"},
		{"Описание": "bad", "Бонусы (включая кэшбэк)": "много"},
		{"Описание": "also ok"},
	}

	txns := Normalize(logger.NewWithWriter(&buf), rows)
	require.Len(t, txns, 2)
	assert.Equal(t, "ok", txns[0].Description)
	assert.Equal(t, "also ok", txns[1].Description)

	assert.Contains(t, buf.String(), "dropping malformed transaction")
	assert.Contains(t, buf.String(), `"index":1`)
	assert.Contains(t, buf.String(), "много")
}

func TestFields_Table(t *testing.T) {
	assert.Len(t, Fields, 15)
	seen := make(map[string]bool)
	for _, f := range Fields {
		assert.False(t, seen[f.Label], "duplicate label %s", f.Label)
		seen[f.Label] = true
	}
	assert.Equal(t, "operation_date", Fields[0].Field)
	assert.Equal(t, "amount_rounded", Fields[len(Fields)-1].Field)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("XLSX"))
	assert.NotNil(t, r.ForPath("/tmp/Operations.CSV"))
	assert.Nil(t, r.ForPath("/tmp/operations"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{}) })
}
