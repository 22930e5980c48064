// Package finder runs every input token through a matcher and reports the
// verdicts.
package finder

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sarthakjha889/go-placefinder-trie/internal/report"
	"github.com/sarthakjha889/go-placefinder-trie/internal/tokenize"
)

// Matcher decides whether a token is accepted. *trie.Trie satisfies it.
type Matcher interface {
	Accepts(probe string) bool
}

// Run tests each token read from r, in order, and writes one verdict per
// token to w.
func Run(r io.Reader, m Matcher, w report.Writer, logger zerolog.Logger) (report.Summary, error) {
	var summary report.Summary
	s := tokenize.NewScanner(r)
	for s.Scan() {
		v := report.Verdict{Token: s.Token(), Accepted: m.Accepts(s.Token()), Line: s.Line()}
		if err := w.Write(v); err != nil {
			return summary, fmt.Errorf("write verdict: %w", err)
		}
		summary.Add(v)
	}
	if err := s.Err(); err != nil {
		return summary, fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return summary, fmt.Errorf("flush output: %w", err)
	}
	logger.Debug().
		Int("tokens", summary.Total).
		Int("accepted", summary.Accepted).
		Msg("Finished scanning input")
	return summary, nil
}
