// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pempayload turns the text of a closed PEM block back into the
// binary payload it encapsulates.
//
// Decoding is strict: after delimiter lines and line breaks are removed,
// every remaining character must belong to the standard base64 alphabet.
// Padding is optional so payloads copied without their trailing "=" still
// decode.
package pempayload
