//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package render writes query results as text tables or CSV.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Renderer writes tabular results to an output stream.
type Renderer struct {
	out      io.Writer
	format   string
	useColor bool
}

// New creates a renderer for the given format ("table" or "csv").
func New(out io.Writer, format string, useColor bool) *Renderer {
	return &Renderer{
		out:      out,
		format:   format,
		useColor: useColor,
	}
}

// Write renders the columns and rows in the configured format.
func (r *Renderer) Write(columns []string, rows [][]any) error {
	switch r.format {
	case FormatCSV:
		return r.writeCSV(columns, rows)
	case FormatTable:
		r.writeTable(columns, rows)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", r.format)
	}
}

func (r *Renderer) writeTable(columns []string, rows [][]any) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(columns)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		table.Append(cells)
	}
	table.Render()

	summary := fmt.Sprintf("(%d rows)", len(rows))
	if r.useColor {
		summary = color.CyanString(summary)
	}
	fmt.Fprintln(r.out, summary)
}

func (r *Renderer) writeCSV(columns []string, rows [][]any) error {
	w := csv.NewWriter(r.out)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// formatValue renders a cell. Dates print without a time component,
// floats without trailing zeros.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02")
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}
