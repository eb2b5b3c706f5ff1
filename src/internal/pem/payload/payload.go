// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pempayload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"github.com/H0llyW00dzZ/pem-outline/src/internal/helper/gc"
)

// ErrPayloadDecode indicates that the block body is not valid base64.
var ErrPayloadDecode = errors.New("pempayload: invalid base64 payload")

// delimiterText matches a delimiter wherever it appears in the block text.
var delimiterText = regexp.MustCompile(`-----(BEGIN|END) ([A-Z ]+)-----`)

// Extract decodes the payload of a PEM block.
//
// text is the full block as it appears in the document, delimiter lines
// included. Every delimiter and every CR/LF is removed and the rest is
// decoded as base64.
func Extract(text string) ([]byte, error) {
	body := delimiterText.ReplaceAllString(text, "")

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\r', '\n':
		default:
			buf.WriteByte(c)
		}
	}

	return decode(buf.Bytes())
}

// decode base64-decodes src into a fresh slice, so the result never aliases
// pooled memory.
func decode(src []byte) ([]byte, error) {
	enc := base64.StdEncoding
	if len(src)%4 != 0 && !bytes.ContainsRune(src, '=') {
		enc = base64.RawStdEncoding
	}

	dst := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(dst, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadDecode, err)
	}
	return dst[:n], nil
}
