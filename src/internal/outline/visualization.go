// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package outline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	x509summary "github.com/H0llyW00dzZ/pem-outline/src/internal/x509/summary"
)

// RenderTree renders symbols as an ASCII tree diagram.
//
// Each line shows the symbol name followed by its detail. Top-level blocks
// also show their 1-based line span.
//
// Parameters:
//   - symbols: The outline, usually [Analysis.Symbols]
//
// Returns:
//   - string: ASCII tree representation of the outline
func RenderTree(symbols []*Symbol) string {
	if len(symbols) == 0 {
		return "No PEM blocks found\n"
	}

	var sb strings.Builder
	for i, sym := range symbols {
		renderNode(&sb, sym, "", i == len(symbols)-1, true)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, sym *Symbol, prefix string, last, top bool) {
	connector, childPrefix := "├── ", prefix+"│   "
	if last {
		connector, childPrefix = "└── ", prefix+"    "
	}

	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(sym.Name)
	if sym.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(sym.Detail)
	}
	if top {
		fmt.Fprintf(sb, " (lines %d-%d)", sym.Range.Start.Line+1, sym.Range.End.Line+1)
	}
	sb.WriteByte('\n')

	for i, child := range sym.Children {
		renderNode(sb, child, childPrefix, i == len(sym.Children)-1, false)
	}
}

// RenderTable renders the blocks of an analysis as a markdown table.
//
// Certificate columns stay empty for blocks that are not certificates. The
// status column tells decoded certificates apart from undecodable ones.
//
// Parameters:
//   - a: The analysis to render
//
// Returns:
//   - string: Markdown table representation of the blocks
func RenderTable(a *Analysis) string {
	if a == nil || len(a.Blocks) == 0 {
		return "No PEM blocks to display\n"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Label", "Lines", "Subject", "Issuer", "Not After", "Algorithm", "Status"})

	rows := make([][]string, 0, len(a.Blocks))
	for i, b := range a.Blocks {
		row := []string{
			strconv.Itoa(i + 1),
			b.Label,
			fmt.Sprintf("%d-%d", b.StartLine+1, b.EndLine+1),
			"", "", "", "",
			"-",
		}
		switch {
		case b.Certificate != nil:
			c := b.Certificate
			row[3] = c.DisplayName()
			row[4] = x509summary.CommonName(c.Issuer)
			row[5] = c.NotAfter.UTC().Format("2006-01-02")
			row[6] = c.PublicKeyAlgorithm
			row[7] = "decoded"
		case b.Error != "":
			row[7] = "not decodable"
		}
		rows = append(rows, row)
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// ToJSON converts an analysis to indented JSON.
//
// Returns:
//   - []byte: JSON representation of the analysis
//   - error: Error if JSON marshaling fails
func ToJSON(a *Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return data, nil
}

// ToYAML converts an analysis to YAML.
func ToYAML(a *Analysis) ([]byte, error) {
	data, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return data, nil
}
