package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain dollar price", text: "$29.99", want: "29.99"},
		{name: "labelled total", text: "Item total: $55.97", want: "55.97"},
		{name: "thousands separator", text: "$1,299.99", want: "1299.99"},
		{name: "no symbol", text: "9.99", want: "9.99"},
		{name: "whole number", text: "$15", want: "15"},
		{name: "zero", text: "$0.00", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPrice(tt.text)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ExtractPrice(%q) = %s, want %s", tt.text, got, tt.want)
		})
	}
}

func TestExtractPrice_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "no digits", text: "free shipping"},
		{name: "two decimal points", text: "$1.2.3"},
		{name: "lone dot", text: "$."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPrice(tt.text)
			require.Error(t, err)
			assert.True(t, xerrors.IsCode(err, xerrors.CodeMalformedPrice),
				"want MALFORMED_PRICE, got %v", err)
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tie rounds up", in: "2.005", want: "2.01"},
		{name: "tie rounds up not to even", in: "2.675", want: "2.68"},
		{name: "tax example", in: "4.4776", want: "4.48"},
		{name: "already two places", in: "55.97", want: "55.97"},
		{name: "rounds down", in: "10.994", want: "10.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Round2(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestRound2_Idempotent(t *testing.T) {
	for _, raw := range []string{"0", "0.005", "2.675", "29.99", "4.4776", "123456.789"} {
		d := decimal.RequireFromString(raw)
		once := Round2(d)
		twice := Round2(once)
		assert.True(t, once.Equal(twice), "Round2 not idempotent for %s: %s vs %s", raw, once, twice)
	}
}
