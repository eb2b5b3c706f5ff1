// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package asn1der decodes [DER] and definite-length BER input into a generic
// tree of tagged ASN.1 values.
//
// Unlike encoding/asn1 it does not unmarshal into Go structs. Every value
// becomes a [Node] carrying its tag, the raw encoding and either its children
// (constructed values) or a decoded scalar (primitive values of the universal
// class). Callers navigate the tree themselves, which keeps the decoder usable
// for partially valid or unexpected structures.
//
// Supported:
//   - Low and high tag number forms for all four tag classes.
//   - Short and long form lengths with up to four length octets.
//   - BOOLEAN, INTEGER, ENUMERATED, BIT STRING, NULL, OBJECT IDENTIFIER.
//   - The character string types, including BMPString (UTF-16BE),
//     UniversalString (UTF-32BE) and T61String (decoded as Latin-1).
//   - UTCTime and GeneralizedTime, normalized to UTC.
//
// Indefinite lengths are rejected with [ErrUnsupportedEncoding].
//
// [DER]: https://www.itu.int/rec/T-REC-X.690
package asn1der
