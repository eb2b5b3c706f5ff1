// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package outline

import (
	pemscan "github.com/H0llyW00dzZ/pem-outline/src/internal/pem/scan"
	x509summary "github.com/H0llyW00dzZ/pem-outline/src/internal/x509/summary"
)

// SymbolKind mirrors the editor symbol kinds used by the outline.
type SymbolKind string

const (
	SymbolObject   SymbolKind = "object"
	SymbolProperty SymbolKind = "property"
	SymbolField    SymbolKind = "field"
)

// Position is a zero-based line and UTF-16 character offset.
type Position struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

// Range is a span between two positions, end exclusive.
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// Symbol is a node of the document outline.
type Symbol struct {
	Name           string     `json:"name" yaml:"name"`
	Detail         string     `json:"detail,omitempty" yaml:"detail,omitempty"`
	Kind           SymbolKind `json:"kind" yaml:"kind"`
	Range          Range      `json:"range" yaml:"range"`
	SelectionRange Range      `json:"selectionRange" yaml:"selectionRange"`
	Children       []*Symbol  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Block is a closed PEM block together with its decoded certificate, if any.
// Error is set when the block carries a certificate label but could not be
// decoded.
type Block struct {
	pemscan.Block `yaml:",inline"`
	Certificate   *x509summary.Summary `json:"certificate,omitempty" yaml:"certificate,omitempty"`
	Error         string               `json:"error,omitempty" yaml:"error,omitempty"`
}

// Analysis is the complete result for one document snapshot.
type Analysis struct {
	Blocks      []Block                `json:"blocks" yaml:"blocks"`
	Symbols     []*Symbol              `json:"symbols" yaml:"symbols"`
	Tokens      []pemscan.Token        `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Folding     []pemscan.FoldingRange `json:"folding,omitempty" yaml:"folding,omitempty"`
	Diagnostics []pemscan.Diagnostic   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// dateLayout is the RFC 7231 IMF-fixdate form editors show for validity.
const dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func blockSymbol(doc pemscan.Document, b pemscan.Block) *Symbol {
	begin := Position{Line: b.StartLine}
	return &Symbol{
		Name: b.Label,
		Kind: SymbolObject,
		Range: Range{
			Start: begin,
			End:   Position{Line: b.EndLine, Character: pemscan.Width(doc.Line(b.EndLine))},
		},
		SelectionRange: Range{
			Start: begin,
			End:   Position{Line: b.StartLine, Character: pemscan.Width(doc.Line(b.StartLine))},
		},
	}
}

// within returns the range that starts offset lines below r's start, clamped
// to r's last line, and shares r's end.
func within(r Range, offset int) Range {
	return Range{
		Start: Position{Line: min(r.Start.Line+offset, r.End.Line)},
		End:   r.End,
	}
}

func leaf(name, detail string, kind SymbolKind, r Range) *Symbol {
	return &Symbol{Name: name, Detail: detail, Kind: kind, Range: r, SelectionRange: r}
}

// addCertificate hangs the certificate summary under a block symbol. Each
// child starts one line further down so the outline keeps its order.
func (s *Symbol) addCertificate(c *x509summary.Summary) {
	subject := nameSymbol("Subject", c.Subject, within(s.Range, 1))
	issuer := nameSymbol("Issuer", c.Issuer, within(s.Range, 2))

	validityRange := within(s.Range, 3)
	validity := leaf("Validity", "", SymbolProperty, validityRange)
	validity.Children = []*Symbol{
		leaf("Not Before", c.NotBefore.UTC().Format(dateLayout), SymbolField, validityRange),
		leaf("Not After", c.NotAfter.UTC().Format(dateLayout), SymbolField, within(validityRange, 1)),
	}

	keyRange := within(s.Range, 4)
	key := leaf("Public Key", "", SymbolProperty, keyRange)
	key.Children = []*Symbol{leaf("Algorithm", c.PublicKeyAlgorithm, SymbolField, keyRange)}

	if subject.Detail != "" {
		s.Detail = subject.Detail
	}
	s.Children = append(s.Children, subject, issuer, validity, key)
}

func nameSymbol(name string, attrs []x509summary.Attribute, r Range) *Symbol {
	p := leaf(name, x509summary.CommonName(attrs), SymbolProperty, r)
	for i, a := range attrs {
		p.Children = append(p.Children, leaf(a.Name, a.Value, SymbolField, within(r, i)))
	}
	return p
}
