// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package outline runs the complete analysis of a PEM document and shapes the
// result for editors and other presentation layers.
//
// An [Analyzer] scans the document, decodes every certificate block and
// builds a symbol tree: one object per block and, for certificates, the
// subject, issuer, validity and public key underneath it. A block that fails
// to decode keeps its label-only symbol and contributes a diagnostic; it
// never aborts the analysis of the remaining blocks.
//
// The package also renders an [Analysis] as an ASCII tree, a markdown table
// or JSON/YAML for the CLI and the MCP server.
package outline
