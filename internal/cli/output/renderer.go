// Package output renders command results as tables, JSON, YAML or plain text.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Mode selects an output format.
type Mode string

// Output modes.
const (
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
	ModePlain Mode = "plain"
)

// Result is one command result. Header and Rows feed the table and plain
// modes; Data is marshalled as-is by the JSON and YAML modes.
type Result struct {
	Title  string
	Header []string
	Rows   [][]string
	Data   any
}

// Renderer writes Results to out in one Mode.
type Renderer struct {
	out  io.Writer
	mode Mode
}

// NewRenderer returns a Renderer. Unknown modes fall back to ModeTable.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeTable, ModeJSON, ModeYAML, ModePlain:
	default:
		mode = ModeTable
	}
	return &Renderer{out: out, mode: mode}
}

// Mode returns the effective output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Render writes res in the renderer's mode.
func (r *Renderer) Render(res Result) error {
	switch r.mode {
	case ModeJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res.Data)
	case ModeYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(res.Data); err != nil {
			return err
		}
		return enc.Close()
	case ModePlain:
		return r.plain(res)
	default:
		return r.table(res)
	}
}

func (r *Renderer) table(res Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	if res.Title != "" {
		t.SetTitle(res.Title)
	}
	if len(res.Header) > 0 {
		t.AppendHeader(toRow(res.Header))
	}
	for _, row := range res.Rows {
		t.AppendRow(toRow(row))
	}
	t.Render()
	return nil
}

// plain writes one tab-separated line per row, without header or title.
func (r *Renderer) plain(res Result) error {
	for _, row := range res.Rows {
		if _, err := fmt.Fprintln(r.out, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
