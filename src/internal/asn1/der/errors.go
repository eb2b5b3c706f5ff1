// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput indicates that a tag, length or content runs past the
	// end of the available bytes.
	ErrTruncatedInput = errors.New("asn1der: truncated input")

	// ErrMalformedTag indicates a reserved or invalid identifier octet encoding.
	ErrMalformedTag = errors.New("asn1der: malformed tag")

	// ErrUnsupportedEncoding indicates a valid BER construct this decoder does
	// not handle, or primitive content that does not form a valid scalar.
	ErrUnsupportedEncoding = errors.New("asn1der: unsupported encoding")
)

// Error reports where decoding failed. Err is one of the package sentinels.
type Error struct {
	Offset int
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func truncated(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Err: ErrTruncatedInput, Detail: fmt.Sprintf(format, args...)}
}

func malformedTag(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Err: ErrMalformedTag, Detail: fmt.Sprintf(format, args...)}
}

func unsupported(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Err: ErrUnsupportedEncoding, Detail: fmt.Sprintf(format, args...)}
}
