package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bits-and-blooms/bloom/v3"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront-orders/internal/domain/coupon"
)

const validLine = `{"code":" save10 ","discount_type":"percentage","discount_value":10,` +
	`"min_purchase":"250.50","usage_limit":5,"valid_from":"2026-01-01T00:00:00Z",` +
	`"valid_until":"2026-12-31T23:59:59Z","note":"ignored"}`

func TestParseRecord(t *testing.T) {
	rec, err := parseRecord([]byte(validLine))
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", rec.Code)
	assert.Equal(t, coupon.DiscountPercentage, rec.DiscountType)
	assert.True(t, decimal.NewFromInt(10).Equal(rec.DiscountValue))
	assert.True(t, decimal.RequireFromString("250.50").Equal(rec.MinPurchase))
	assert.Equal(t, 5, rec.UsageLimit)
	assert.Equal(t, coupon.StatusActive, rec.Status)
	assert.Equal(t, 2026, rec.ValidFrom.Year())
}

func TestParseRecord_Invalid(t *testing.T) {
	window := `"valid_from":"2026-01-01T00:00:00Z","valid_until":"2026-02-01T00:00:00Z"`
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "malformed json", line: `{"code":`, want: ""},
		{name: "missing code", line: `{"discount_type":"flat","discount_value":5,` + window + `}`, want: "code is required"},
		{name: "unknown type", line: `{"code":"A","discount_type":"free_lowest","discount_value":5,` + window + `}`, want: "unsupported discount type"},
		{name: "negative value", line: `{"code":"A","discount_type":"flat","discount_value":-1,` + window + `}`, want: "must not be negative"},
		{name: "percentage above 100", line: `{"code":"A","discount_type":"percentage","discount_value":101,` + window + `}`, want: "above 100"},
		{name: "no window", line: `{"code":"A","discount_type":"flat","discount_value":5}`, want: "validity window"},
		{
			name: "inverted window",
			line: `{"code":"A","discount_type":"flat","discount_value":5,"valid_from":"2026-03-01T00:00:00Z","valid_until":"2026-02-01T00:00:00Z"}`,
			want: "precedes",
		},
		{name: "bad timestamp", line: `{"code":"A","discount_type":"flat","discount_value":5,"valid_from":"yesterday"}`, want: "valid_from"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRecord([]byte(tt.line))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func writeGzip(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func couponLine(code, value string) string {
	return `{"code":"` + code + `","discount_type":"flat","discount_value":` + value +
		`,"valid_from":"2026-01-01T00:00:00Z","valid_until":"2026-12-31T00:00:00Z"}`
}

func TestReadFile(t *testing.T) {
	path := writeGzip(t, t.TempDir(), "a.jsonl.gz",
		couponLine("ONE", "1"),
		"",
		"not json",
		couponLine("TWO", "2"),
	)

	var got []string
	var invalid []*lineError
	err := readFile(context.Background(), path,
		func(rec couponRecord) { got = append(got, rec.Code) },
		func(e *lineError) { invalid = append(invalid, e) },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ONE", "TWO"}, got)
	require.Len(t, invalid, 1)
	assert.Equal(t, 3, invalid[0].Line)
	assert.Contains(t, invalid[0].Error(), "a.jsonl.gz:3:")
}

func TestReadFile_NotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.jsonl.gz")
	require.NoError(t, os.WriteFile(path, []byte(couponLine("ONE", "1")), 0o600))

	err := readFile(context.Background(), path, func(couponRecord) {}, func(*lineError) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip reader")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeGzip(t, dir, "1.jsonl.gz", couponLine("A", "1"), couponLine("B", "2"))
	second := writeGzip(t, dir, "2.jsonl.gz", couponLine("C", "3"), couponLine("A", "9"), "garbage")

	t.Run("lenient", func(t *testing.T) {
		records, err := loadFiles(context.Background(), []string{first, second}, false)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "A", records[0].Code)
		assert.True(t, decimal.NewFromInt(9).Equal(records[0].DiscountValue), "last definition wins")
		assert.Equal(t, "B", records[1].Code)
		assert.Equal(t, "C", records[2].Code)
	})
	t.Run("strict", func(t *testing.T) {
		_, err := loadFiles(context.Background(), []string{first, second}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2.jsonl.gz:3")
	})
}

func TestPartition(t *testing.T) {
	filter := bloom.NewWithEstimates(minBloomItems, bloomFPR)
	filter.AddString("EXISTING")

	records := []couponRecord{{Code: "EXISTING"}, {Code: "NEW-1"}, {Code: "NEW-2"}}
	fresh, suspects := partition(filter, records)

	require.Len(t, suspects, 1)
	assert.Equal(t, "EXISTING", suspects[0].Code)
	assert.Len(t, fresh, 2)
}
