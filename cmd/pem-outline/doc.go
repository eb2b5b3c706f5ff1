// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// pem-outline is a command-line tool that outlines the blocks of a PEM
// document and summarizes the X.509 certificates among them.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pem-outline/cmd/pem-outline@latest
//
// # Usage
//
//	pem-outline [FILE] [FLAGS]
//
// FILE defaults to stdin. Pass "-" to read stdin explicitly.
//
// # Flags
//
//	-o, --output   Destination file (default: stdout)
//	-f, --format   tree, table, json or yaml (default: tree on a terminal, json otherwise)
//	-c, --config   Configuration file (default: $PEM_OUTLINE_CONFIG_FILE)
//	    --tokens   Include semantic tokens
//	    --folding  Include folding ranges
//	    --debug    Log certificate decode failures to stderr
//
// # Examples
//
// Show the outline of a certificate bundle:
//
//	pem-outline -f tree chain.pem
//
// Summarize the blocks as a markdown table:
//
//	pem-outline --format table chain.pem
//
// Feed editor tooling with tokens and folding ranges:
//
//	cat key.pem | pem-outline --tokens --folding > outline.json
//
// Diagnostics such as undecodable certificates or mismatched END labels are
// printed to stderr for the tree and table formats and embedded in the
// payload for JSON and YAML.
package main
