package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount holds a money cell as it appeared in the statement. Parsing is
// deferred so that a bad cell only affects the operations that read it.
type Amount string

// Decimal parses the cell. An empty cell is zero. "1 234,56", "1,234.56" and
// "1234.56" are all accepted.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := a.normalized()
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", string(a), err)
	}
	return d, nil
}

// IsNumeric reports whether the cell parses as a number.
func (a Amount) IsNumeric() bool {
	_, err := a.Decimal()
	return err == nil
}

// MarshalJSON emits a bare number for numeric cells and a string otherwise.
func (a Amount) MarshalJSON() ([]byte, error) {
	d, err := a.Decimal()
	if err != nil {
		return json.Marshal(string(a))
	}
	return []byte(d.String()), nil
}

// UnmarshalJSON accepts either a number or a string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) normalized() string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, strings.TrimSpace(string(a)))

	// A single comma without a dot is a decimal separator ("160,89");
	// otherwise commas group thousands ("1,234.56", "1,234,567").
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return strings.Replace(s, ",", ".", 1)
	}
	return strings.ReplaceAll(s, ",", "")
}
