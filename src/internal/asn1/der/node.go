// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"fmt"
	"math/big"
	"time"
)

// Class is the tag class encoded in the top two bits of the identifier octet.
type Class uint8

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT"
	default:
		return "PRIVATE"
	}
}

// Universal tag numbers this package knows about.
const (
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagEnumerated      = 10
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagVideotexString  = 21
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagGraphicString   = 25
	TagVisibleString   = 26
	TagGeneralString   = 27
	TagUniversalString = 28
	TagBMPString       = 30
)

var universalNames = map[int]string{
	TagBoolean:         "BOOLEAN",
	TagInteger:         "INTEGER",
	TagBitString:       "BIT STRING",
	TagOctetString:     "OCTET STRING",
	TagNull:            "NULL",
	TagOID:             "OBJECT IDENTIFIER",
	TagEnumerated:      "ENUMERATED",
	TagUTF8String:      "UTF8String",
	TagSequence:        "SEQUENCE",
	TagSet:             "SET",
	TagNumericString:   "NumericString",
	TagPrintableString: "PrintableString",
	TagT61String:       "T61String",
	TagVideotexString:  "VideotexString",
	TagIA5String:       "IA5String",
	TagUTCTime:         "UTCTime",
	TagGeneralizedTime: "GeneralizedTime",
	TagGraphicString:   "GraphicString",
	TagVisibleString:   "VisibleString",
	TagGeneralString:   "GeneralString",
	TagUniversalString: "UniversalString",
	TagBMPString:       "BMPString",
}

// Kind discriminates the payload a [Node] carries.
type Kind uint8

const (
	// KindOpaque is a primitive value kept as raw content bytes.
	KindOpaque Kind = iota
	KindConstructed
	KindBoolean
	KindInteger
	KindBitString
	KindNull
	KindOID
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindConstructed:
		return "constructed"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindBitString:
		return "bit string"
	case KindNull:
		return "null"
	case KindOID:
		return "oid"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "opaque"
	}
}

// BitString is the decoded content of a BIT STRING.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// Node is one decoded ASN.1 value.
//
// Raw holds the complete encoding (identifier, length and content) and
// Content only the content octets; both alias the decoded input. A
// constructed node's Content is exactly the concatenation of its children's
// Raw encodings.
type Node struct {
	Class       Class
	Tag         int
	Constructed bool
	Kind        Kind
	Offset      int // position of the identifier octet in the input
	Raw         []byte
	Content     []byte
	Children    []*Node

	value any
}

// Is reports whether n carries the given class and tag number.
func (n *Node) Is(class Class, tag int) bool { return n.Class == class && n.Tag == tag }

// IsUniversal reports whether n is a universal value with the given tag.
func (n *Node) IsUniversal(tag int) bool { return n.Is(ClassUniversal, tag) }

// TagName returns a readable name such as "SEQUENCE" or "[0]".
func (n *Node) TagName() string {
	switch n.Class {
	case ClassUniversal:
		return UniversalName(n.Tag)
	case ClassContextSpecific:
		return fmt.Sprintf("[%d]", n.Tag)
	default:
		return fmt.Sprintf("[%s %d]", n.Class, n.Tag)
	}
}

// UniversalName returns the ASN.1 name of a universal tag number.
func UniversalName(tag int) string {
	if name, ok := universalNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("UNIVERSAL %d", tag)
}

// Bool returns the value of a BOOLEAN.
func (n *Node) Bool() (bool, bool) {
	v, ok := n.value.(bool)
	return v, ok
}

// Integer returns a copy of the value of an INTEGER or ENUMERATED.
func (n *Node) Integer() (*big.Int, bool) {
	v, ok := n.value.(*big.Int)
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(v), true
}

// BitString returns the value of a BIT STRING.
func (n *Node) BitString() (BitString, bool) {
	v, ok := n.value.(BitString)
	return v, ok
}

// OID returns the value of an OBJECT IDENTIFIER.
func (n *Node) OID() (OID, bool) {
	v, ok := n.value.(OID)
	return v, ok
}

// Text returns the value of any character string type as UTF-8.
func (n *Node) Text() (string, bool) {
	v, ok := n.value.(string)
	return v, ok
}

// Time returns the value of a UTCTime or GeneralizedTime in UTC.
func (n *Node) Time() (time.Time, bool) {
	v, ok := n.value.(time.Time)
	return v, ok
}
