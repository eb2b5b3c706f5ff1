// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509summary

import (
	"encoding/hex"
	"time"

	asn1der "github.com/H0llyW00dzZ/pem-outline/src/internal/asn1/der"
)

// Attribute is one AttributeTypeAndValue of a distinguished name.
type Attribute struct {
	OID   string `json:"oid" yaml:"oid"`
	Name  string `json:"name" yaml:"name"` // short name, or OID when unknown
	Value string `json:"value" yaml:"value"`
}

// Summary is the display-oriented view of a certificate.
//
// Subject and Issuer keep the attributes in encoding order.
type Summary struct {
	SerialNumber          string      `json:"serialNumber" yaml:"serialNumber"`
	Subject               []Attribute `json:"subject" yaml:"subject"`
	Issuer                []Attribute `json:"issuer" yaml:"issuer"`
	NotBefore             time.Time   `json:"notBefore" yaml:"notBefore"`
	NotAfter              time.Time   `json:"notAfter" yaml:"notAfter"`
	PublicKeyAlgorithmOID string      `json:"publicKeyAlgorithmOid" yaml:"publicKeyAlgorithmOid"`
	PublicKeyAlgorithm    string      `json:"publicKeyAlgorithm" yaml:"publicKeyAlgorithm"`
}

// DisplayName returns the first subject CN, or "" when there is none.
func (s *Summary) DisplayName() string { return CommonName(s.Subject) }

// CommonName returns the value of the first CN attribute in attrs.
func CommonName(attrs []Attribute) string {
	for _, a := range attrs {
		if a.Name == "CN" {
			return a.Value
		}
	}
	return ""
}

// Decode decodes a DER certificate and summarizes it.
func Decode(der []byte) (*Summary, error) {
	root, err := asn1der.Decode(der)
	if err != nil {
		return nil, err
	}
	return Map(root)
}

// Map summarizes the certificate rooted at root.
//
//	Certificate ::= SEQUENCE {
//	    tbsCertificate       TBSCertificate,
//	    signatureAlgorithm   AlgorithmIdentifier,
//	    signature            BIT STRING }
//
//	TBSCertificate ::= SEQUENCE {
//	    version         [0] EXPLICIT Version DEFAULT v1,
//	    serialNumber         CertificateSerialNumber,
//	    signature            AlgorithmIdentifier,
//	    issuer               Name,
//	    validity             Validity,
//	    subject              Name,
//	    subjectPublicKeyInfo SubjectPublicKeyInfo,
//	    ... }
func Map(root *asn1der.Node) (*Summary, error) {
	cert, err := expectSequenceOfLength(root, 3, "certificate")
	if err != nil {
		return nil, err
	}

	const tbsPath = "certificate.tbsCertificate"
	tbs, err := expectSequence(cert[0], tbsPath)
	if err != nil {
		return nil, err
	}

	// the version is optional and only ever context tag 0
	if len(tbs) > 0 && tbs[0].Is(asn1der.ClassContextSpecific, 0) {
		tbs = tbs[1:]
	}
	if len(tbs) < 6 {
		return nil, mismatch(tbsPath, "expected at least 6 fields after the version, found %d", len(tbs))
	}

	serial, err := expectInteger(tbs[0], tbsPath+".serialNumber")
	if err != nil {
		return nil, err
	}
	if _, err := expectSequenceAtLeast(tbs[1], 1, tbsPath+".signature"); err != nil {
		return nil, err
	}

	issuer, err := rdnSequence(tbs[2], tbsPath+".issuer")
	if err != nil {
		return nil, err
	}

	validity, err := expectSequenceOfLength(tbs[3], 2, tbsPath+".validity")
	if err != nil {
		return nil, err
	}
	notBefore, err := expectTime(validity[0], tbsPath+".validity.notBefore")
	if err != nil {
		return nil, err
	}
	notAfter, err := expectTime(validity[1], tbsPath+".validity.notAfter")
	if err != nil {
		return nil, err
	}

	subject, err := rdnSequence(tbs[4], tbsPath+".subject")
	if err != nil {
		return nil, err
	}

	const spkiPath = tbsPath + ".subjectPublicKeyInfo"
	spki, err := expectSequenceOfLength(tbs[5], 2, spkiPath)
	if err != nil {
		return nil, err
	}
	alg, err := expectSequenceAtLeast(spki[0], 1, spkiPath+".algorithm")
	if err != nil {
		return nil, err
	}
	algOID, err := expectOID(alg[0], spkiPath+".algorithm.algorithm")
	if err != nil {
		return nil, err
	}

	return &Summary{
		SerialNumber:          serial.Text(16),
		Subject:               subject,
		Issuer:                issuer,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		PublicKeyAlgorithmOID: algOID.String(),
		PublicKeyAlgorithm:    AlgorithmName(algOID.String()),
	}, nil
}

// rdnSequence flattens Name ::= SEQUENCE OF SET OF AttributeTypeAndValue,
// keeping encoding order.
func rdnSequence(n *asn1der.Node, path string) ([]Attribute, error) {
	rdns, err := expectSequence(n, path)
	if err != nil {
		return nil, err
	}

	attrs := make([]Attribute, 0, len(rdns))
	for _, rdn := range rdns {
		set, err := expectSet(rdn, path+".rdn")
		if err != nil {
			return nil, err
		}
		for _, atv := range set {
			pair, err := expectSequenceOfLength(atv, 2, path+".rdn.attribute")
			if err != nil {
				return nil, err
			}
			oid, err := expectOID(pair[0], path+".rdn.attribute.type")
			if err != nil {
				return nil, err
			}
			dotted := oid.String()
			attrs = append(attrs, Attribute{
				OID:   dotted,
				Name:  AttributeName(dotted),
				Value: attributeValue(pair[1]),
			})
		}
	}
	return attrs, nil
}

// attributeValue renders string values as text and anything else as '#'
// followed by the hex DER encoding, the RFC 4514 form.
func attributeValue(n *asn1der.Node) string {
	if text, ok := n.Text(); ok {
		return text
	}
	return "#" + hex.EncodeToString(n.Raw)
}
