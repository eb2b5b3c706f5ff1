// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/H0llyW00dzZ/pem-outline/src/internal/outline"
)

// Output formats.
const (
	FormatTree  = "tree"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// resolveFormat picks the output format. An explicit flag wins over the
// configuration; without either, terminals get a tree and everything else
// JSON.
func resolveFormat(flag, configured string, w io.Writer, toFile bool) (string, error) {
	format := flag
	if format == "" {
		format = configured
	}
	if format == "" {
		if !toFile && isTerminalFn(w) {
			return FormatTree, nil
		}
		return FormatJSON, nil
	}

	switch format = strings.ToLower(format); format {
	case FormatTree, FormatTable, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q (want tree, table, json or yaml)", ErrUnknownFormat, format)
	}
}

// render serializes the analysis. The text formats append tokens and folding
// ranges as plain listings when the analysis carries them.
func render(a *outline.Analysis, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := outline.ToJSON(a)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return outline.ToYAML(a)
	}

	var sb strings.Builder
	if format == FormatTable {
		sb.WriteString(outline.RenderTable(a))
	} else {
		sb.WriteString(outline.RenderTree(a.Symbols))
	}

	if len(a.Tokens) > 0 {
		sb.WriteString("\nTokens:\n")
		for _, t := range a.Tokens {
			fmt.Fprintf(&sb, "  %d:%d+%d %s\n", t.Line+1, t.StartChar, t.Length, t.Type)
		}
	}
	if len(a.Folding) > 0 {
		sb.WriteString("\nFolding ranges:\n")
		for _, f := range a.Folding {
			fmt.Fprintf(&sb, "  %d-%d %s\n", f.StartLine+1, f.EndLine+1, f.Kind)
		}
	}
	return []byte(sb.String()), nil
}
