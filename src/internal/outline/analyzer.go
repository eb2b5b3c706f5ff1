// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package outline

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	pempayload "github.com/H0llyW00dzZ/pem-outline/src/internal/pem/payload"
	pemscan "github.com/H0llyW00dzZ/pem-outline/src/internal/pem/scan"
	x509summary "github.com/H0llyW00dzZ/pem-outline/src/internal/x509/summary"
	"github.com/H0llyW00dzZ/pem-outline/src/logger"
)

// DefaultCertificateLabels are the block labels decoded as certificates.
var DefaultCertificateLabels = []string{"CERTIFICATE", "TRUSTED CERTIFICATE"}

// Analyzer turns documents into an [Analysis].
//
// An Analyzer only holds configuration and may be shared between goroutines.
type Analyzer struct {
	scanner    *pemscan.Scanner
	scanOpts   []pemscan.Option
	certLabels map[string]struct{}
	log        logger.Logger
}

// Option configures an [Analyzer].
type Option func(*Analyzer)

// WithCertificateLabels replaces the set of labels whose blocks are decoded
// as X.509 certificates.
func WithCertificateLabels(labels ...string) Option {
	return func(a *Analyzer) {
		a.certLabels = make(map[string]struct{}, len(labels))
		for _, l := range labels {
			a.certLabels[l] = struct{}{}
		}
	}
}

// WithLogger sets the logger that receives decode failures at debug level.
func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithScannerOptions passes options through to the underlying block scanner.
func WithScannerOptions(opts ...pemscan.Option) Option {
	return func(a *Analyzer) { a.scanOpts = append(a.scanOpts, opts...) }
}

// New creates an Analyzer. Without options it decodes CERTIFICATE and
// TRUSTED CERTIFICATE blocks and logs nothing.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{log: logger.Nop()}
	WithCertificateLabels(DefaultCertificateLabels...)(a)
	for _, opt := range opts {
		opt(a)
	}
	a.scanner = pemscan.New(a.scanOpts...)
	return a
}

// Analyze scans doc and decodes its certificate blocks.
//
// ctx is checked before every line and again before every block; on
// cancellation Analyze returns nil and the context error. Decode failures
// are not errors: the affected block keeps a label-only symbol and an error
// diagnostic is added.
func (a *Analyzer) Analyze(ctx context.Context, doc pemscan.Document) (*Analysis, error) {
	scanned, err := a.scanner.Scan(ctx, doc)
	if err != nil {
		return nil, err
	}

	out := &Analysis{
		Blocks:      make([]Block, 0, len(scanned.Blocks)),
		Symbols:     make([]*Symbol, 0, len(scanned.Blocks)),
		Tokens:      scanned.Tokens,
		Folding:     scanned.Folding,
		Diagnostics: scanned.Diagnostics,
	}

	for _, b := range scanned.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block := Block{Block: b}
		sym := blockSymbol(doc, b)

		if _, ok := a.certLabels[b.Label]; ok {
			summary, err := decodeBlock(doc, b)
			if err != nil {
				a.log.Debugf("%s block at lines %d-%d is not decodable: %v", b.Label, b.StartLine+1, b.EndLine+1, err)
				block.Error = err.Error()
				out.Diagnostics = append(out.Diagnostics, pemscan.Diagnostic{
					Line:     b.StartLine,
					Severity: pemscan.SeverityError,
					Message:  fmt.Sprintf("%s could not be decoded: %v", b.Label, err),
				})
			} else {
				block.Certificate = summary
				sym.addCertificate(summary)
			}
		}

		out.Blocks = append(out.Blocks, block)
		out.Symbols = append(out.Symbols, sym)
	}

	slices.SortStableFunc(out.Diagnostics, func(x, y pemscan.Diagnostic) int {
		return cmp.Compare(x.Line, y.Line)
	})
	return out, nil
}

// DecodeCertificate extracts and summarizes the certificate in a single PEM
// block given as text, delimiters included.
func DecodeCertificate(text string) (*x509summary.Summary, error) {
	der, err := pempayload.Extract(text)
	if err != nil {
		return nil, err
	}
	return x509summary.Decode(der)
}

func decodeBlock(doc pemscan.Document, b pemscan.Block) (*x509summary.Summary, error) {
	return DecodeCertificate(pemscan.Text(doc, b.StartLine, b.EndLine))
}
