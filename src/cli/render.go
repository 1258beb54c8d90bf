// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/odoo"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// renderTable writes rows as a markdown table.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	title := cases.Title(language.English)
	titled := make([]string, len(headers))
	for i, h := range headers {
		titled[i] = title.String(strings.ReplaceAll(h, "_", " "))
	}
	table.Header(titled)

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// renderRecords renders search results with one column per field. Without an
// explicit field list the columns are the union of record keys, id first.
func renderRecords(w io.Writer, fields []string, records []odoo.Record) error {
	columns := slices.Clone(fields)
	if len(columns) == 0 {
		columns = recordColumns(records)
	} else if !slices.Contains(columns, "id") {
		// the server always returns id
		columns = append([]string{"id"}, columns...)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = formatValue(r[c])
		}
		rows = append(rows, row)
	}
	return renderTable(w, columns, rows)
}

func recordColumns(records []odoo.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			seen[k] = struct{}{}
		}
	}
	delete(seen, "id")

	columns := make([]string, 0, len(seen)+1)
	for k := range seen {
		columns = append(columns, k)
	}
	slices.Sort(columns)
	return append([]string{"id"}, columns...)
}

// formatValue turns a decoded JSON value into a table cell. The server uses
// false for empty fields and [id, "name"] pairs for relations.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if !val {
			return ""
		}
		return "true"
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case []any:
		if len(val) == 2 {
			if name, ok := val[1].(string); ok {
				return name
			}
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
