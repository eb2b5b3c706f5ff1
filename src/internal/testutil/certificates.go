// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	encasn1 "encoding/asn1"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Well-known object identifiers used by the fixtures.
var (
	OIDCommonName   = encasn1.ObjectIdentifier{2, 5, 4, 3}
	OIDCountry      = encasn1.ObjectIdentifier{2, 5, 4, 6}
	OIDOrganization = encasn1.ObjectIdentifier{2, 5, 4, 10}
	OIDRSA          = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	OIDSHA256RSA    = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
)

// Attribute is one name attribute. A zero Tag encodes the value as a
// PrintableString.
type Attribute struct {
	Type  encasn1.ObjectIdentifier
	Tag   cbasn1.Tag
	Value string
}

// CN returns a commonName attribute.
func CN(v string) Attribute { return Attribute{Type: OIDCommonName, Value: v} }

// Certificate describes a structurally valid, unsigned certificate.
type Certificate struct {
	WithVersion bool
	Serial      int64
	Issuer      []Attribute
	Subject     []Attribute
	NotBefore   string // UTCTime text
	NotAfter    string // UTCTime text
	Algorithm   encasn1.ObjectIdentifier
}

// MinimalCertificate is a v1 certificate for CN=test issued by CN=ca, valid
// during 2023, carrying an RSA key.
func MinimalCertificate() Certificate {
	return Certificate{
		Serial:    1,
		Issuer:    []Attribute{CN("ca")},
		Subject:   []Attribute{CN("test")},
		NotBefore: "230101000000Z",
		NotAfter:  "240101000000Z",
		Algorithm: OIDRSA,
	}
}

// DER encodes c.
func (c Certificate) DER() []byte {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			if c.WithVersion {
				b.AddASN1(cbasn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1Int64(2)
				})
			}
			b.AddASN1Int64(c.Serial)
			addAlgorithm(b, OIDSHA256RSA)
			addName(b, c.Issuer)
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				addText(b, cbasn1.UTCTime, c.NotBefore)
				addText(b, cbasn1.UTCTime, c.NotAfter)
			})
			addName(b, c.Subject)
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				addAlgorithm(b, c.Algorithm)
				b.AddASN1BitString([]byte{0x00})
			})
		})
		addAlgorithm(b, OIDSHA256RSA)
		b.AddASN1BitString([]byte{0x00})
	})
	return b.BytesOrPanic()
}

// PEM encodes c as a CERTIFICATE block.
func (c Certificate) PEM() string { return PEM("CERTIFICATE", c.DER()) }

// PEM wraps der in a block with the given label.
func PEM(label string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der}))
}

func addAlgorithm(b *cryptobyte.Builder, oid encasn1.ObjectIdentifier) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid)
		b.AddASN1NULL()
	})
}

func addName(b *cryptobyte.Builder, attrs []Attribute) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, a := range attrs {
			b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(a.Type)
					tag := a.Tag
					if tag == 0 {
						tag = cbasn1.PrintableString
					}
					addText(b, tag, a.Value)
				})
			})
		}
	})
}

func addText(b *cryptobyte.Builder, tag cbasn1.Tag, text string) {
	b.AddASN1(tag, func(b *cryptobyte.Builder) { b.AddBytes([]byte(text)) })
}

// Validity of the certificates produced by [SelfSigned].
var (
	SelfSignedNotBefore = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	SelfSignedNotAfter  = time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
)

// KeyType selects the key generated by [SelfSigned].
type KeyType int

const (
	ECDSA KeyType = iota
	Ed25519
)

// SelfSigned issues a real self-signed certificate with crypto/x509 and
// returns its DER encoding.
func SelfSigned(tb testing.TB, key KeyType, cn string) []byte {
	tb.Helper()

	var (
		signer crypto.Signer
		err    error
	)
	switch key {
	case Ed25519:
		_, signer, err = ed25519.GenerateKey(rand.Reader)
	default:
		signer, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	}
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(0x1f2e3d),
		Subject: pkix.Name{
			Country:      []string{"ID"},
			Organization: []string{"Example Org"},
			CommonName:   cn,
		},
		NotBefore: SelfSignedNotBefore,
		NotAfter:  SelfSignedNotAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, signer.Public(), signer)
	if err != nil {
		tb.Fatalf("create certificate: %v", err)
	}
	return der
}

// GooglePEM is the leaf certificate served by www.google.com in late 2025.
// Subject CN=www.google.com, issuer C=US, O=Google Trust Services, CN=WR2,
// valid 2025-11-24 08:41:05 UTC to 2026-02-16 08:41:04 UTC, P-256 key.
const GooglePEM = `-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`
