// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for pem-outline.
// It implements a Cobra-based CLI that analyzes a PEM document from a file or
// stdin and prints its block outline as an ASCII tree, a markdown table, JSON
// or YAML. Semantic tokens and folding ranges can be included for editor
// tooling. The package handles file I/O, context cancellation and timeouts,
// and integrates with the logger package for diagnostics and error reporting.
package cli
