// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
)

// OID is a decoded OBJECT IDENTIFIER.
type OID []uint64

// String returns the dotted-decimal form, e.g. "2.5.4.3".
func (o OID) String() string {
	var sb strings.Builder
	for i, arc := range o {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(arc, 10))
	}
	return sb.String()
}

// Equal reports whether o and other have the same arcs.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

func parseOID(c []byte, at int) (OID, error) {
	if len(c) == 0 {
		return nil, unsupported(at, "empty OBJECT IDENTIFIER")
	}

	s := cryptobyte.String(c)
	first, err := readSubidentifier(&s, at)
	if err != nil {
		return nil, err
	}

	var oid OID
	switch {
	case first < 40:
		oid = OID{0, first}
	case first < 80:
		oid = OID{1, first - 40}
	default:
		oid = OID{2, first - 80}
	}

	for !s.Empty() {
		arc, err := readSubidentifier(&s, at)
		if err != nil {
			return nil, err
		}
		oid = append(oid, arc)
	}
	return oid, nil
}

// readSubidentifier reads one base-128 big-endian subidentifier. The high bit
// of every octet but the last is set.
func readSubidentifier(s *cryptobyte.String, at int) (uint64, error) {
	var v uint64
	for i := 0; ; i++ {
		var b uint8
		if !s.ReadUint8(&b) {
			return 0, unsupported(at, "OBJECT IDENTIFIER ends inside a subidentifier")
		}
		if i == 0 && b == 0x80 {
			return 0, unsupported(at, "OBJECT IDENTIFIER subidentifier has a leading zero septet")
		}
		if v >= 1<<57 {
			return 0, unsupported(at, "OBJECT IDENTIFIER arc does not fit in 64 bits")
		}
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}
