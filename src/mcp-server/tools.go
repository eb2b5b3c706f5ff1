// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool roles referenced by the instructions template.
const (
	roleDocumentAnalyzer   = "documentAnalyzer"
	roleCertificateDecoder = "certificateDecoder"
)

// Section names accepted by analyze_pem_document.
const (
	sectionOutline     = "outline"
	sectionTokens      = "tokens"
	sectionFolding     = "folding"
	sectionDiagnostics = "diagnostics"
)

// allSections is the default value of the sections parameter.
const allSections = sectionOutline + "," + sectionTokens + "," + sectionFolding + "," + sectionDiagnostics

// createTools creates and returns all MCP tool definitions with their handlers.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools that require server configuration
//
// The function defines the following tools:
//   - analyze_pem_document: Outlines a PEM document and returns tokens, folding ranges and diagnostics
//   - decode_certificate: Summarizes one X.509 certificate
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("decode_certificate",
				mcp.WithDescription("Decode one X.509 certificate into serial number, subject, issuer, validity and public key algorithm"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path, PEM text or base64-encoded DER data"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json', 'table' or 'tree' (default: json)"),
					mcp.DefaultString(FormatJSON),
					mcp.Enum(FormatJSON, FormatTable, FormatTree),
				),
			),
			Handler: handleDecodeCertificate,
			Role:    roleCertificateDecoder,
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("analyze_pem_document",
				mcp.WithDescription("Analyze a PEM document: block outline with decoded certificates, semantic tokens, folding ranges and diagnostics"),
				mcp.WithString("document",
					mcp.Required(),
					mcp.Description("PEM document text or path to a PEM file"),
				),
				mcp.WithString("sections",
					mcp.Description("Comma-separated sections to return: outline, tokens, folding, diagnostics (default: all)"),
					mcp.DefaultString(allSections),
				),
			),
			Handler: handleAnalyzePEMDocument,
			Role:    roleDocumentAnalyzer,
		},
	}

	return tools, toolsWithConfig
}
