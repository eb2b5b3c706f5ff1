// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It holds the markdown served by the MCP server: the server instructions
// template and the PEM format reference exposed as a documentation resource.
//
// Access goes through the [EmbedFS] interface, with [MagicEmbed] serving as the
// default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/pem-outline/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile("pem-format.md")
//	if err != nil {
//		return fmt.Errorf("failed to read PEM format reference: %w", err)
//	}
package templates
