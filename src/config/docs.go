// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the pem-outline configuration shared by the CLI and
// the MCP server.
//
// Configuration is read from a JSON or YAML file chosen by extension. The
// path comes from the caller or, when empty, from the PEM_OUTLINE_CONFIG_FILE
// environment variable. Without a file the built-in defaults apply. File
// contents are checked against an embedded [JSON Schema] before they are
// merged over the defaults, so a misspelled key is reported instead of
// silently ignored.
//
// [JSON Schema]: https://json-schema.org
package config
