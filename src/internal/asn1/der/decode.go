// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package asn1der

import (
	"golang.org/x/crypto/cryptobyte"
)

// maxDepth bounds constructed nesting.
const maxDepth = 64

// Decode decodes the value that starts at the first byte of data.
//
// Bytes after the first complete value are ignored. OpenSSL's
// "TRUSTED CERTIFICATE" blocks, for instance, append auxiliary trust data
// after the certificate.
func Decode(data []byte) (*Node, error) {
	n, _, err := DecodeAt(data, 0)
	return n, err
}

// DecodeAt decodes one value starting at offset and returns it together
// with the offset of the first byte after it.
func DecodeAt(data []byte, offset int) (*Node, int, error) {
	if offset < 0 || offset >= len(data) {
		return nil, offset, truncated(offset, "no value at offset (input is %d bytes)", len(data))
	}
	n, err := decodeNode(data, offset, 0)
	if err != nil {
		return nil, offset, err
	}
	return n, offset + len(n.Raw), nil
}

// decodeNode decodes the value at offset. data is cut at the end of the
// enclosing content, so a child can never extend past its parent.
func decodeNode(data []byte, offset, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, unsupported(offset, "nesting deeper than %d levels", maxDepth)
	}

	s := cryptobyte.String(data[offset:])

	var id uint8
	if !s.ReadUint8(&id) {
		return nil, truncated(offset, "missing identifier octet")
	}

	n := &Node{
		Class:       Class(id >> 6),
		Constructed: id&0x20 != 0,
		Tag:         int(id & 0x1f),
		Offset:      offset,
	}

	if n.Tag == 0x1f {
		tag, err := readHighTag(&s, offset)
		if err != nil {
			return nil, err
		}
		n.Tag = tag
	}
	if n.Class == ClassUniversal && n.Tag == 0 {
		return nil, malformedTag(offset, "end-of-contents outside an indefinite length value")
	}

	length, err := readLength(&s, offset)
	if err != nil {
		return nil, err
	}
	if uint64(length) > uint64(len(s)) {
		return nil, truncated(offset, "%s declares %d content bytes, %d remain", n.TagName(), length, len(s))
	}

	header := len(data) - offset - len(s)
	end := offset + header + int(length)
	n.Raw = data[offset:end]
	n.Content = data[offset+header : end]

	if n.Constructed {
		n.Kind = KindConstructed
		return n, decodeChildren(n, data[:end], offset+header, depth)
	}
	if n.Class != ClassUniversal {
		return n, nil
	}
	return n, decodeScalar(n, offset+header)
}

func decodeChildren(n *Node, data []byte, pos, depth int) error {
	for pos < len(data) {
		child, err := decodeNode(data, pos, depth+1)
		if err != nil {
			return err
		}
		n.Children = append(n.Children, child)
		pos += len(child.Raw)
	}
	return nil
}

// readHighTag reads the base-128 tag number that follows a 0x1f low tag.
func readHighTag(s *cryptobyte.String, offset int) (int, error) {
	var tag uint32
	for i := 0; ; i++ {
		var b uint8
		if !s.ReadUint8(&b) {
			return 0, truncated(offset, "high tag number ends early")
		}
		if i == 0 && b == 0x80 {
			return 0, malformedTag(offset, "high tag number starts with a zero septet")
		}
		if tag >= 1<<24 {
			return 0, malformedTag(offset, "tag number does not fit in 31 bits")
		}
		tag = tag<<7 | uint32(b&0x7f)
		if b&0x80 == 0 {
			break
		}
	}
	if tag < 0x1f {
		return 0, malformedTag(offset, "tag number %d uses the high tag form", tag)
	}
	return int(tag), nil
}

func readLength(s *cryptobyte.String, offset int) (uint32, error) {
	var b uint8
	if !s.ReadUint8(&b) {
		return 0, truncated(offset, "missing length octet")
	}
	switch {
	case b < 0x80:
		return uint32(b), nil
	case b == 0x80:
		return 0, unsupported(offset, "indefinite length")
	case b == 0xff:
		return 0, unsupported(offset, "reserved length octet 0xff")
	}

	count := int(b & 0x7f)
	if count > 4 {
		return 0, unsupported(offset, "%d length octets", count)
	}
	var octets []byte
	if !s.ReadBytes(&octets, count) {
		return 0, truncated(offset, "length needs %d octets", count)
	}

	var length uint32
	for _, o := range octets {
		length = length<<8 | uint32(o)
	}
	return length, nil
}
