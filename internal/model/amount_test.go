package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountDecimal(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{"", "0"},
		{"160.89", "160.89"},
		{"-160,89", "-160.89"},
		{"1 234,50", "1234.5"},
		{"1\u00a0000", "1000"},
		{"  42 ", "42"},
		{"5,046.00", "5046"},
		{"-1,234.56", "-1234.56"},
		{"1,234,567", "1234567"},
	}
	for _, tt := range tests {
		d, err := tt.in.Decimal()
		require.NoError(t, err, "Decimal(%q)", tt.in)
		assert.Equal(t, tt.want, d.String(), "Decimal(%q)", tt.in)
	}
}

func TestAmountDecimal_NotNumeric(t *testing.T) {
	_, err := Amount("abc").Decimal()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
	assert.False(t, Amount("abc").IsNumeric())
	assert.True(t, Amount("").IsNumeric())
}

func TestAmountMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}{A: "-1,5", B: "n/a", C: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":-1.5,"b":"n/a","c":0}`, string(out))
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var got struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":100.5,"b":"7","c":null}`), &got))
	assert.Equal(t, Amount("100.5"), got.A)
	assert.Equal(t, Amount("7"), got.B)
	assert.Equal(t, Amount(""), got.C)
}
