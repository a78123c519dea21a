package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatCSV, false)

	err := r.Write(
		[]string{"category", "total_sales"},
		[][]any{
			{"Bikes", 1234.5},
			{"Accessories", 99.0},
		},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "category,total_sales", lines[0])
	assert.Equal(t, "Bikes,1234.5", lines[1])
	assert.Equal(t, "Accessories,99", lines[2])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatTable, false)

	err := r.Write(
		[]string{"country", "total_customers"},
		[][]any{{"Germany", 42}},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "(1 rows)")
}

func TestWriteUnknownFormat(t *testing.T) {
	r := New(&bytes.Buffer{}, "xml", false)
	err := r.Write([]string{"a"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestFormatValue(t *testing.T) {
	born := time.Date(1987, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "VIP", formatValue("VIP"))
	assert.Equal(t, "1987-06-15", formatValue(born))
	assert.Equal(t, "1987-06-15", formatValue(&born))
	assert.Equal(t, "", formatValue((*time.Time)(nil)))
	assert.Equal(t, "150", formatValue(150.0))
	assert.Equal(t, "33.33", formatValue(33.33))
	assert.Equal(t, "7", formatValue(7))
}
