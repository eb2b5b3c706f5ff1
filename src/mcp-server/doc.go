// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for PEM document analysis.
// It exposes the outline analyzer to MCP clients over stdio:
//   - analyze_pem_document: blocks, symbols, semantic tokens, folding ranges and diagnostics
//   - decode_certificate: summary of one [X509] certificate as JSON, table or tree
//
// Resources publish the example configuration, version information, the OID
// mnemonic tables and a PEM format reference. The server is assembled with
// [ServerBuilder].
//
// [X509]: https://www.rfc-editor.org/rfc/rfc5280
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
