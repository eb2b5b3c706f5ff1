// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemscan implements line-oriented analysis of [PEM] documents.
// It classifies every line of a document as a delimiter, base64 content or
// comment, pairs BEGIN/END delimiters into labeled blocks and derives the
// editor artifacts built on top of that classification:
//   - Semantic tokens for syntax highlighting.
//   - Closed blocks with line ranges for outline generation.
//   - Folding ranges for comment runs and BEGIN..END regions.
//
// Scanning is a pure fold over the lines of an immutable document snapshot.
// A [Scanner] carries no per-document state and may be reused concurrently.
// Cancellation is cooperative: the context is polled at every line boundary
// and a cancelled scan yields no result at all.
//
// [PEM]: https://www.rfc-editor.org/rfc/rfc7468
package pemscan
