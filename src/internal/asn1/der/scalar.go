// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"
)

// decodeScalar fills in Kind and value for a primitive universal node.
// Unknown tags stay opaque.
func decodeScalar(n *Node, at int) error {
	c := n.Content

	switch n.Tag {
	case TagBoolean:
		if len(c) != 1 {
			return unsupported(at, "BOOLEAN content is %d bytes", len(c))
		}
		n.Kind, n.value = KindBoolean, c[0] != 0

	case TagInteger, TagEnumerated:
		if len(c) == 0 {
			return unsupported(at, "empty %s", n.TagName())
		}
		n.Kind, n.value = KindInteger, signedInt(c)

	case TagBitString:
		bs, err := parseBitString(c, at)
		if err != nil {
			return err
		}
		n.Kind, n.value = KindBitString, bs

	case TagNull:
		if len(c) != 0 {
			return unsupported(at, "NULL with %d content bytes", len(c))
		}
		n.Kind = KindNull

	case TagOID:
		oid, err := parseOID(c, at)
		if err != nil {
			return err
		}
		n.Kind, n.value = KindOID, oid

	case TagUTCTime, TagGeneralizedTime:
		t, err := parseTime(n.Tag, c, at)
		if err != nil {
			return err
		}
		n.Kind, n.value = KindTime, t

	default:
		decodeText, ok := stringDecoders[n.Tag]
		if !ok {
			return nil
		}
		text, err := decodeText(c)
		if err != nil {
			return unsupported(at, "%s: %v", n.TagName(), err)
		}
		n.Kind, n.value = KindString, text
	}
	return nil
}

// signedInt interprets c as a big-endian two's complement integer.
func signedInt(c []byte) *big.Int {
	v := new(big.Int).SetBytes(c)
	if c[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(c))*8))
	}
	return v
}

func parseBitString(c []byte, at int) (BitString, error) {
	s := cryptobyte.String(c)
	var unused uint8
	if !s.ReadUint8(&unused) {
		return BitString{}, unsupported(at, "BIT STRING without unused-bits octet")
	}
	if unused > 7 || (len(s) == 0 && unused != 0) {
		return BitString{}, unsupported(at, "BIT STRING with %d unused bits", unused)
	}
	return BitString{Bytes: s, BitLength: len(s)*8 - int(unused)}, nil
}
