package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// printer writes coloured status lines and tables.
type printer struct {
	out    io.Writer
	errOut io.Writer

	success *color.Color
	failure *color.Color
	info    *color.Color
	warn    *color.Color
	header  *color.Color
}

func newPrinter(out, errOut io.Writer) *printer {
	return &printer{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		header:  color.New(color.FgWhite, color.Bold),
	}
}

func (p *printer) Success(format string, a ...interface{}) {
	p.success.Fprintf(p.out, "✓ "+format+"\n", a...)
}

func (p *printer) Error(format string, a ...interface{}) {
	p.failure.Fprintf(p.errOut, "✗ "+format+"\n", a...)
}

func (p *printer) Info(format string, a ...interface{}) {
	p.info.Fprintf(p.out, format+"\n", a...)
}

func (p *printer) Warn(format string, a ...interface{}) {
	p.warn.Fprintf(p.out, "⚠ "+format+"\n", a...)
}

func (p *printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *table) Render(p *printer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	for i, h := range t.headers {
		p.header.Fprint(p.out, pad(h, widths[i])+"  ")
	}
	fmt.Fprintln(p.out)
	for i := range t.headers {
		fmt.Fprint(p.out, strings.Repeat("-", widths[i])+"  ")
	}
	fmt.Fprintln(p.out)
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprint(p.out, pad(cell, widths[i])+"  ")
			}
		}
		fmt.Fprintln(p.out)
	}
}

// pad counts runes so "đ" and Vietnamese names line up.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
