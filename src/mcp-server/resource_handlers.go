// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/pem-outline/src/config"
	x509summary "github.com/H0llyW00dzZ/pem-outline/src/internal/x509/summary"
	"github.com/H0llyW00dzZ/pem-outline/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// handleConfigResource serves the annotated example configuration.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/yaml",
			Text:     config.Example(),
		},
	}, nil
}

// versionResourceHandler returns a handler describing the server.
//
// The resource includes server name, version, tool and resource names, the
// certificate labels in effect and the output formats of decode_certificate.
func versionResourceHandler(deps *ServerDependencies) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tools := make([]map[string]string, 0, len(deps.Tools)+len(deps.ToolsWithConfig))
		for _, t := range deps.Tools {
			tools = append(tools, map[string]string{"name": t.Tool.Name, "description": t.Tool.Description})
		}
		for _, t := range deps.ToolsWithConfig {
			tools = append(tools, map[string]string{"name": t.Tool.Name, "description": t.Tool.Description})
		}

		resources := make([]string, 0, len(deps.Resources))
		for _, r := range deps.Resources {
			resources = append(resources, r.Resource.URI)
		}

		labels := config.DefaultCertificateLabels
		if deps.Config != nil {
			labels = deps.Config.Analysis.CertificateLabels
		}

		versionInfo := map[string]any{
			"name":    serverName,
			"version": deps.Version,
			"type":    "MCP Server",
			"capabilities": map[string]any{
				"tools":     tools,
				"resources": resources,
			},
			"certificateLabels": labels,
			"supportedFormats":  []string{FormatJSON, FormatTable, FormatTree},
		}

		jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal version info: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uriVersion,
				MIMEType: "application/json",
				Text:     string(jsonData),
			},
		}, nil
	}
}

// handleOIDMnemonicsResource lists the built-in OID lookup tables.
func handleOIDMnemonicsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(x509summary.Mnemonics(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OID mnemonics: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriOIDMnemonics,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// pemFormatResourceHandler serves the embedded PEM format reference.
func pemFormatResourceHandler(deps *ServerDependencies) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		fs := deps.Embed
		if fs == nil {
			fs = templates.MagicEmbed
		}

		content, err := fs.ReadFile(templates.PEMFormat)
		if err != nil {
			return nil, fmt.Errorf("failed to read PEM format reference: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uriPEMFormat,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}
