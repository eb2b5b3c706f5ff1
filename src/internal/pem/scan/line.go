// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemscan

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Direction tells whether a delimiter opens or closes a block.
type Direction string

const (
	// Begin marks a "-----BEGIN <LABEL>-----" line.
	Begin Direction = "BEGIN"
	// End marks a "-----END <LABEL>-----" line.
	End Direction = "END"
)

// dashes is the fence surrounding every delimiter.
const dashes = "-----"

// delimiterPattern matches a whole delimiter line and nothing else.
var delimiterPattern = regexp.MustCompile(`^(-----)(BEGIN|END) ([A-Z ]+)(-----)$`)

// Delimiter is a recognized PEM encapsulation boundary.
type Delimiter struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Label     string    `json:"label" yaml:"label"`
}

// Classify reports whether line is a PEM delimiter.
//
// The line must consist of exactly five hyphens, the word BEGIN or END, one
// space, a label of uppercase letters and spaces, and five hyphens. Anything
// else, including surrounding whitespace, is not a delimiter.
func Classify(line string) (Delimiter, bool) {
	m := delimiterPattern.FindStringSubmatch(line)
	if m == nil {
		return Delimiter{}, false
	}
	return Delimiter{Direction: Direction(m[2]), Label: m[3]}, true
}

// IsBlank reports whether line is empty or holds only whitespace.
func IsBlank(line string) bool { return strings.TrimSpace(line) == "" }

// Document is an addressable, read-only sequence of lines.
type Document interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// Line returns the text of line i without its line terminator.
	Line(i int) string
}

// Lines is a [Document] backed by a slice of strings.
type Lines []string

// LineCount returns the number of lines.
func (l Lines) LineCount() int { return len(l) }

// Line returns line i.
func (l Lines) Line(i int) string { return l[i] }

// SplitLines splits text on LF and strips a trailing CR from every line, so
// CRLF documents classify the same as LF documents.
func SplitLines(text string) Lines {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return Lines(parts)
}

// Text joins the lines start..end (inclusive) of doc with LF.
func Text(doc Document, start, end int) string {
	var sb strings.Builder
	for i := start; i <= end && i < doc.LineCount(); i++ {
		if i > start {
			sb.WriteByte('\n')
		}
		sb.WriteString(doc.Line(i))
	}
	return sb.String()
}

// Width returns the length of s in UTF-16 code units, the unit editors use
// for character offsets.
func Width(s string) int {
	n := 0
	// range yields U+FFFD for invalid bytes, so RuneLen is never negative
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
