// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509summary

import "sort"

// attributeNames maps distinguished name attribute types to their
// conventional short names.
var attributeNames = map[string]string{
	"2.5.4.6":                    "C",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.46":                   "dnQualifier",
	"2.5.4.8":                    "ST",
	"2.5.4.3":                    "CN",
	"2.5.4.5":                    "serialNumber",
	"2.5.4.7":                    "L",
	"2.5.4.12":                   "title",
	"2.5.4.4":                    "SN",
	"2.5.4.42":                   "GN",
	"2.5.4.43":                   "initials",
	"2.5.4.65":                   "pseudonym",
	"2.5.4.44":                   "generationQualifier",
	"1.2.840.113549.1.9.1":       "E",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
}

// algorithmNames maps subjectPublicKeyInfo algorithm identifiers to names.
var algorithmNames = map[string]string{
	"1.2.840.113549.1.1.1":  "RSA",
	"1.2.840.113549.1.1.10": "RSASSA-PSS",
	"1.2.840.10040.4.1":     "DSA",
	"1.2.840.10045":         "ECDSA",
	"1.2.840.10045.2.1":     "ECDSA",
	"1.3.101.110":           "X25519",
	"1.3.101.111":           "X448",
	"1.3.101.112":           "Ed25519",
	"1.3.101.113":           "Ed448",
}

// AttributeName returns the short name for a dotted attribute type OID, or
// the OID itself when it has none.
func AttributeName(oid string) string {
	if name, ok := attributeNames[oid]; ok {
		return name
	}
	return oid
}

// AlgorithmName returns the name of a dotted public key algorithm OID, or
// the OID itself when it is unknown.
func AlgorithmName(oid string) string {
	if name, ok := algorithmNames[oid]; ok {
		return name
	}
	return oid
}

// Mnemonic is one entry of the built-in lookup tables.
type Mnemonic struct {
	OID  string `json:"oid" yaml:"oid"`
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"` // "attribute" or "algorithm"
}

// Mnemonics lists both lookup tables, attributes first, each sorted by OID.
func Mnemonics() []Mnemonic {
	out := make([]Mnemonic, 0, len(attributeNames)+len(algorithmNames))
	out = appendSorted(out, attributeNames, "attribute")
	out = appendSorted(out, algorithmNames, "algorithm")
	return out
}

func appendSorted(out []Mnemonic, table map[string]string, kind string) []Mnemonic {
	oids := make([]string, 0, len(table))
	for oid := range table {
		oids = append(oids, oid)
	}
	sort.Strings(oids)
	for _, oid := range oids {
		out = append(out, Mnemonic{OID: oid, Name: table[oid], Kind: kind})
	}
	return out
}
