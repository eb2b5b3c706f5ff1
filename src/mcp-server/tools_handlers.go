// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/pem-outline/src/config"
	"github.com/H0llyW00dzZ/pem-outline/src/internal/outline"
	pemscan "github.com/H0llyW00dzZ/pem-outline/src/internal/pem/scan"
	"github.com/mark3labs/mcp-go/mcp"
)

// Output formats of decode_certificate.
const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatTree  = "tree"
)

// beginMarker identifies PEM text among tool inputs.
const beginMarker = "-----BEGIN "

// handleAnalyzePEMDocument analyzes a PEM document given as text or file path.
//
// Parameters:
//   - ctx: Context for cancellation; the configured timeout is applied on top
//   - request: MCP tool call request with the document and the sections to return
//   - cfg: Server configuration providing certificate labels and timeout
//
// Returns:
//   - A JSON object holding only the requested sections
//   - User errors (bad input, unknown section, timeout) as tool error results
func handleAnalyzePEMDocument(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("document parameter required: %v", err)), nil
	}

	sections, err := parseSections(request.GetString("sections", allSections))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := readDocument(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	analysis, err := newAnalyzer(cfg).Analyze(ctx, pemscan.SplitLines(text))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis aborted: %v", err)), nil
	}

	result := make(map[string]any, 6)
	for _, section := range sections {
		switch section {
		case sectionOutline:
			result["blocks"] = orEmpty(analysis.Blocks)
			result["symbols"] = orEmpty(analysis.Symbols)
		case sectionTokens:
			result["tokenTypes"] = pemscan.TokenTypes
			result["tokens"] = orEmpty(analysis.Tokens)
		case sectionFolding:
			result["folding"] = orEmpty(analysis.Folding)
		case sectionDiagnostics:
			result["diagnostics"] = orEmpty(analysis.Diagnostics)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleDecodeCertificate decodes the first certificate of its input.
//
// The input may be PEM text, a path to a PEM or DER file, or base64 DER. DER
// input is wrapped in a CERTIFICATE block so every input runs through the
// same analysis as a document.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: MCP tool call request with the certificate and output format
//
// Returns:
//   - The certificate summary as JSON, a markdown table or an ASCII tree
//   - User errors as tool error results
func handleDecodeCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format := strings.ToLower(request.GetString("format", FormatJSON))
	if !slices.Contains([]string{FormatJSON, FormatTable, FormatTree}, format) {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use json, table or tree", format)), nil
	}

	text, err := certificateText(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	analysis, err := outline.New().Analyze(ctx, pemscan.SplitLines(text))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis aborted: %v", err)), nil
	}

	i := slices.IndexFunc(analysis.Blocks, func(b outline.Block) bool {
		return b.Certificate != nil || b.Error != ""
	})
	if i < 0 {
		return mcp.NewToolResultError("no CERTIFICATE block found in input"), nil
	}
	block := analysis.Blocks[i]
	if block.Certificate == nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %s", block.Error)), nil
	}

	switch format {
	case FormatTable:
		return mcp.NewToolResultText(outline.RenderTable(&outline.Analysis{Blocks: []outline.Block{block}})), nil
	case FormatTree:
		return mcp.NewToolResultText(outline.RenderTree(analysis.Symbols[i : i+1])), nil
	}

	data, err := json.MarshalIndent(block.Certificate, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal certificate: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// newAnalyzer builds an analyzer honoring the analysis section of cfg.
func newAnalyzer(cfg *config.Config) *outline.Analyzer {
	return outline.New(
		outline.WithCertificateLabels(cfg.Analysis.CertificateLabels...),
		outline.WithScannerOptions(pemscan.WithLabelMismatchWarnings(cfg.Analysis.ReportLabelMismatch)),
	)
}

// parseSections splits a comma-separated section list. Duplicates collapse
// and an empty list means all sections.
func parseSections(csv string) ([]string, error) {
	var sections []string
	for part := range strings.SplitSeq(csv, ",") {
		s := strings.ToLower(strings.TrimSpace(part))
		switch s {
		case "":
			continue
		case sectionOutline, sectionTokens, sectionFolding, sectionDiagnostics:
			if !slices.Contains(sections, s) {
				sections = append(sections, s)
			}
		default:
			return nil, fmt.Errorf("unknown section %q: use outline, tokens, folding or diagnostics", s)
		}
	}
	if len(sections) == 0 {
		return parseSections(allSections)
	}
	return sections, nil
}

// readDocument returns input itself when it looks like document text and the
// contents of the named file otherwise.
func readDocument(input string) (string, error) {
	if strings.Contains(input, "\n") || strings.Contains(input, beginMarker) {
		return input, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("failed to read document: not PEM text and not a readable file: %w", err)
	}
	return string(data), nil
}

// certificateText turns a decode_certificate input into PEM text.
func certificateText(input string) (string, error) {
	if strings.Contains(input, beginMarker) {
		return input, nil
	}

	if data, err := os.ReadFile(input); err == nil {
		if bytes.Contains(data, []byte(beginMarker)) {
			return string(data), nil
		}
		return encodeCertificate(data), nil
	}

	der, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(input), ""))
	if err != nil || len(der) == 0 {
		return "", fmt.Errorf("failed to read certificate: not PEM text, a valid file path or base64 data")
	}
	return encodeCertificate(der), nil
}

func encodeCertificate(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

// orEmpty keeps empty sections as [] instead of null in JSON.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
