// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemscan

import (
	"context"
	"fmt"
)

// Kind is the classification of a single non-blank line.
type Kind string

const (
	KindComment Kind = "comment"
	KindContent Kind = "content"
	KindBegin   Kind = "begin"
	KindEnd     Kind = "end"
)

// TokenType is a semantic token category understood by syntax highlighters.
type TokenType string

const (
	TokenComment  TokenType = "comment"
	TokenOperator TokenType = "operator"
	TokenKeyword  TokenType = "keyword"
	TokenLabel    TokenType = "type"
	TokenString   TokenType = "string"
)

// TokenTypes is the token legend in the order highlighters index it.
var TokenTypes = []TokenType{TokenComment, TokenOperator, TokenKeyword, TokenLabel, TokenString}

// FoldingKind tells an editor how to present a folding range.
type FoldingKind string

const (
	FoldComment FoldingKind = "comment"
	FoldRegion  FoldingKind = "region"
)

// Severity of a [Diagnostic].
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// LineClass is the classification of one non-blank line.
type LineClass struct {
	Line  int    `json:"line" yaml:"line"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Token is a highlighted span on a single line. StartChar and Length count
// UTF-16 code units.
type Token struct {
	Line      int       `json:"line" yaml:"line"`
	StartChar int       `json:"startChar" yaml:"startChar"`
	Length    int       `json:"length" yaml:"length"`
	Type      TokenType `json:"type" yaml:"type"`
}

// Block is a BEGIN..END span that was closed by an END delimiter.
//
// Label is taken from the END line. BeginLabel keeps the label of the
// opening line so callers can tell when the two disagree.
type Block struct {
	Label      string `json:"label" yaml:"label"`
	BeginLabel string `json:"beginLabel" yaml:"beginLabel"`
	StartLine  int    `json:"startLine" yaml:"startLine"`
	EndLine    int    `json:"endLine" yaml:"endLine"`
}

// FoldingRange is an inclusive line range an editor may collapse.
type FoldingRange struct {
	StartLine int         `json:"startLine" yaml:"startLine"`
	EndLine   int         `json:"endLine" yaml:"endLine"`
	Kind      FoldingKind `json:"kind" yaml:"kind"`
}

// Diagnostic is a non-fatal finding attached to a line.
type Diagnostic struct {
	Line     int      `json:"line" yaml:"line"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Result is everything a single scan produces.
type Result struct {
	Lines       []LineClass    `json:"lines" yaml:"lines"`
	Tokens      []Token        `json:"tokens" yaml:"tokens"`
	Blocks      []Block        `json:"blocks" yaml:"blocks"`
	Folding     []FoldingRange `json:"folding" yaml:"folding"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Scanner walks documents and produces a [Result].
//
// A Scanner holds only configuration. All scan state lives in the call, so
// one Scanner may serve any number of documents and goroutines.
type Scanner struct {
	reportLabelMismatch bool
}

// Option configures a [Scanner].
type Option func(*Scanner)

// WithLabelMismatchWarnings controls whether an END whose label differs from
// its BEGIN produces a warning diagnostic. The block is emitted either way.
func WithLabelMismatchWarnings(enabled bool) Option {
	return func(s *Scanner) { s.reportLabelMismatch = enabled }
}

// New creates a Scanner. Label mismatch warnings are on by default.
func New(opts ...Option) *Scanner {
	s := &Scanner{reportLabelMismatch: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// state is the accumulator threaded through the line loop.
type state struct {
	inContent bool
	open      *Block // most recent BEGIN not yet closed
	foldStart int
	result    Result
}

// Scan classifies every line of doc.
//
// ctx is polled before each line. If it is cancelled the scan stops and
// returns nil together with the context error; partial results are never
// returned.
func (s *Scanner) Scan(ctx context.Context, doc Document) (*Result, error) {
	st := &state{}
	lastNonBlank := -1

	for i := 0; i < doc.LineCount(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := doc.Line(i)
		if IsBlank(text) {
			continue
		}
		lastNonBlank = i

		d, ok := Classify(text)
		if !ok {
			s.plainLine(st, i, text)
			continue
		}

		st.delimiterTokens(i, d)
		switch d.Direction {
		case Begin:
			s.begin(st, i, d)
		case End:
			s.end(st, i, d)
		}
	}

	// trailing comment run after the last END
	if !st.inContent && lastNonBlank >= st.foldStart {
		st.result.Folding = append(st.result.Folding, FoldingRange{
			StartLine: st.foldStart,
			EndLine:   lastNonBlank,
			Kind:      FoldComment,
		})
	}

	return &st.result, nil
}

func (s *Scanner) plainLine(st *state, i int, text string) {
	kind, tokenType := KindComment, TokenComment
	if st.inContent {
		kind, tokenType = KindContent, TokenString
	}
	st.result.Lines = append(st.result.Lines, LineClass{Line: i, Kind: kind})
	st.result.Tokens = append(st.result.Tokens, Token{
		Line:      i,
		StartChar: 0,
		Length:    Width(text),
		Type:      tokenType,
	})
}

func (s *Scanner) begin(st *state, i int, d Delimiter) {
	st.result.Lines = append(st.result.Lines, LineClass{Line: i, Kind: KindBegin, Label: d.Label})

	if st.foldStart < i {
		st.result.Folding = append(st.result.Folding, FoldingRange{
			StartLine: st.foldStart,
			EndLine:   i - 1,
			Kind:      FoldComment,
		})
	}
	st.foldStart = i

	st.inContent = true
	st.open = &Block{BeginLabel: d.Label, StartLine: i}
}

func (s *Scanner) end(st *state, i int, d Delimiter) {
	st.result.Lines = append(st.result.Lines, LineClass{Line: i, Kind: KindEnd, Label: d.Label})

	if st.foldStart < i {
		st.result.Folding = append(st.result.Folding, FoldingRange{
			StartLine: st.foldStart,
			EndLine:   i,
			Kind:      FoldRegion,
		})
	}
	st.foldStart = i + 1

	st.inContent = false
	if st.open == nil {
		return
	}

	block := *st.open
	block.Label = d.Label
	block.EndLine = i
	st.result.Blocks = append(st.result.Blocks, block)
	st.open = nil

	if s.reportLabelMismatch && block.BeginLabel != block.Label {
		st.result.Diagnostics = append(st.result.Diagnostics, Diagnostic{
			Line:     i,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("END label %q does not match BEGIN label %q on line %d",
				block.Label, block.BeginLabel, block.StartLine+1),
		})
	}
}

// delimiterTokens splits a delimiter line into its four highlighted parts.
func (st *state) delimiterTokens(i int, d Delimiter) {
	dir := len(d.Direction)
	label := len(d.Label)
	st.result.Tokens = append(st.result.Tokens,
		Token{Line: i, StartChar: 0, Length: len(dashes), Type: TokenOperator},
		Token{Line: i, StartChar: len(dashes), Length: dir, Type: TokenKeyword},
		Token{Line: i, StartChar: len(dashes) + dir + 1, Length: label, Type: TokenLabel},
		Token{Line: i, StartChar: len(dashes) + dir + 1 + label, Length: len(dashes), Type: TokenOperator},
	)
}
