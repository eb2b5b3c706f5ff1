// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509summary extracts a small, display-oriented summary from an
// [X.509] certificate: subject and issuer names, validity period, serial
// number and public key algorithm.
//
// It walks the generic tree produced by package asn1der along the fixed
// certificate schema instead of parsing into a typed model. A shape that does
// not match the schema at any step yields a [*SchemaError] wrapping
// [ErrSchemaMismatch]. Nothing is validated beyond the fields the summary
// needs, so certificates that crypto/x509 would reject for unrelated reasons
// still produce an outline.
//
// [X.509]: https://www.rfc-editor.org/rfc/rfc5280
package x509summary
