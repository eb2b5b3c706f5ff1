// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509summary

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	asn1der "github.com/H0llyW00dzZ/pem-outline/src/internal/asn1/der"
)

// ErrSchemaMismatch indicates that the decoded tree is not shaped like an
// X.509 certificate.
var ErrSchemaMismatch = errors.New("x509summary: certificate schema mismatch")

// SchemaError names the schema position at which navigation failed.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v at %s: %s", ErrSchemaMismatch, e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaMismatch }

func mismatch(path, format string, args ...any) error {
	return &SchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func expectUniversal(n *asn1der.Node, tag int, path string) error {
	if n == nil {
		return mismatch(path, "missing")
	}
	if !n.IsUniversal(tag) || !n.Constructed {
		return mismatch(path, "expected %s, found %s", asn1der.UniversalName(tag), n.TagName())
	}
	return nil
}

func expectSequence(n *asn1der.Node, path string) ([]*asn1der.Node, error) {
	if err := expectUniversal(n, asn1der.TagSequence, path); err != nil {
		return nil, err
	}
	return n.Children, nil
}

func expectSequenceOfLength(n *asn1der.Node, length int, path string) ([]*asn1der.Node, error) {
	children, err := expectSequence(n, path)
	if err != nil {
		return nil, err
	}
	if len(children) != length {
		return nil, mismatch(path, "expected %d elements, found %d", length, len(children))
	}
	return children, nil
}

func expectSequenceAtLeast(n *asn1der.Node, length int, path string) ([]*asn1der.Node, error) {
	children, err := expectSequence(n, path)
	if err != nil {
		return nil, err
	}
	if len(children) < length {
		return nil, mismatch(path, "expected at least %d elements, found %d", length, len(children))
	}
	return children, nil
}

func expectSet(n *asn1der.Node, path string) ([]*asn1der.Node, error) {
	if err := expectUniversal(n, asn1der.TagSet, path); err != nil {
		return nil, err
	}
	if len(n.Children) == 0 {
		return nil, mismatch(path, "empty SET")
	}
	return n.Children, nil
}

func expectOID(n *asn1der.Node, path string) (asn1der.OID, error) {
	oid, ok := n.OID()
	if !ok {
		return nil, mismatch(path, "expected OBJECT IDENTIFIER, found %s", n.TagName())
	}
	return oid, nil
}

func expectInteger(n *asn1der.Node, path string) (*big.Int, error) {
	if !n.IsUniversal(asn1der.TagInteger) {
		return nil, mismatch(path, "expected INTEGER, found %s", n.TagName())
	}
	v, _ := n.Integer()
	return v, nil
}

func expectTime(n *asn1der.Node, path string) (time.Time, error) {
	t, ok := n.Time()
	if !ok {
		return time.Time{}, mismatch(path, "expected UTCTime or GeneralizedTime, found %s", n.TagName())
	}
	return t, nil
}
