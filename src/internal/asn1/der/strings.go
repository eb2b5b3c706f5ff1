// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	errInvalidUTF8 = errors.New("invalid UTF-8")
	errNotASCII    = errors.New("non-ASCII byte")
)

// stringDecoders maps each character string tag to a function producing
// UTF-8 text.
var stringDecoders = map[int]func([]byte) (string, error){
	TagUTF8String:      decodeUTF8,
	TagNumericString:   decodeASCII,
	TagPrintableString: decodeASCII,
	TagIA5String:       decodeASCII,
	TagVisibleString:   decodeASCII,
	TagT61String:       decodeWith(charmap.ISO8859_1, 1),
	TagVideotexString:  decodeWith(charmap.ISO8859_1, 1),
	TagGraphicString:   decodeWith(charmap.ISO8859_1, 1),
	TagGeneralString:   decodeWith(charmap.ISO8859_1, 1),
	TagBMPString:       decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2),
	TagUniversalString: decodeWith(utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), 4),
}

func decodeUTF8(c []byte) (string, error) {
	if !utf8.Valid(c) {
		return "", errInvalidUTF8
	}
	return string(c), nil
}

func decodeASCII(c []byte) (string, error) {
	for _, b := range c {
		if b >= utf8.RuneSelf {
			return "", fmt.Errorf("%w 0x%02x", errNotASCII, b)
		}
	}
	return string(c), nil
}

// decodeWith converts fixed-width encodings. unit is the code unit size in
// bytes; content whose length is not a multiple of it is rejected.
func decodeWith(enc encoding.Encoding, unit int) func([]byte) (string, error) {
	return func(c []byte) (string, error) {
		if len(c)%unit != 0 {
			return "", fmt.Errorf("length %d is not a multiple of %d", len(c), unit)
		}
		out, err := enc.NewDecoder().Bytes(c)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
