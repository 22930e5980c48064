// Package report formats per-token verdicts.
package report

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
)

// Verdict is the outcome of testing one token. Line is the 1-based input
// line the token came from.
type Verdict struct {
	Token    string
	Accepted bool
	Line     int
}

// Writer emits verdicts in input order.
type Writer interface {
	Write(v Verdict) error
	Flush() error
}

// Output formats accepted by New.
const (
	// FormatText prints one "<token> Accepted|Rejected" line per token.
	FormatText = "text"
	// FormatCSV prints a "token,accepted" table.
	FormatCSV = "csv"
	// FormatHTML prints the input back with accepted tokens highlighted.
	FormatHTML = "html"
)

// New returns the Writer for format.
func New(w io.Writer, format string, colored bool) (Writer, error) {
	switch format {
	case "", FormatText:
		return NewTextWriter(w, colored), nil
	case FormatCSV:
		return NewCSVWriter(w), nil
	case FormatHTML:
		return NewHTMLWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter prints one "<token> Accepted" or "<token> Rejected" line per
// verdict.
type TextWriter struct {
	w        io.Writer
	accepted *color.Color
	rejected *color.Color
}

// NewTextWriter returns a TextWriter. When colored is set the verdict word is
// green or red.
func NewTextWriter(w io.Writer, colored bool) *TextWriter {
	tw := &TextWriter{
		w:        w,
		accepted: color.New(color.FgGreen, color.Bold),
		rejected: color.New(color.FgRed),
	}
	if colored {
		tw.accepted.EnableColor()
		tw.rejected.EnableColor()
	} else {
		tw.accepted.DisableColor()
		tw.rejected.DisableColor()
	}
	return tw
}

// Write prints the line for v.
func (tw *TextWriter) Write(v Verdict) error {
	label := tw.rejected.Sprint("Rejected")
	if v.Accepted {
		label = tw.accepted.Sprint("Accepted")
	}
	_, err := fmt.Fprintf(tw.w, "%s %s\n", v.Token, label)
	return err
}

// Flush is a no-op; every line is written by Write.
func (tw *TextWriter) Flush() error { return nil }

// CSVWriter writes a "token,accepted" header followed by one record per
// verdict.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter returns a CSVWriter on w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// Write buffers the record for v, preceded by the header on first use.
func (cw *CSVWriter) Write(v Verdict) error {
	if !cw.header {
		if err := cw.w.Write([]string{"token", "accepted"}); err != nil {
			return err
		}
		cw.header = true
	}
	return cw.w.Write([]string{v.Token, strconv.FormatBool(v.Accepted)})
}

// Flush writes buffered records to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// HTMLWriter writes the tokens back as an HTML paragraph, one "<br>" per input
// line break, with accepted tokens wrapped in a span of class "place".
// Tokens are joined by single spaces, so empty tokens keep their run of
// spaces. Lines without tokens are not reproduced.
type HTMLWriter struct {
	w       io.Writer
	line    int
	started bool
}

// NewHTMLWriter returns an HTMLWriter on w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Write appends v to the paragraph.
func (hw *HTMLWriter) Write(v Verdict) error {
	sep := " "
	switch {
	case !hw.started:
		sep = "<p>"
		hw.started = true
	case v.Line != hw.line:
		sep = "<br>\n"
	}
	hw.line = v.Line
	token := html.EscapeString(v.Token)
	if v.Accepted {
		token = `<span class="place">` + token + `</span>`
	}
	_, err := io.WriteString(hw.w, sep+token)
	return err
}

// Flush closes the paragraph. Nothing is written when no verdict was seen.
func (hw *HTMLWriter) Flush() error {
	if !hw.started {
		return nil
	}
	_, err := io.WriteString(hw.w, "</p>\n")
	return err
}

// Summary counts verdicts.
type Summary struct {
	Total    int
	Accepted int
}

// Add records v.
func (s *Summary) Add(v Verdict) {
	s.Total++
	if v.Accepted {
		s.Accepted++
	}
}

// Rate returns the accepted percentage rounded to one decimal place, or 0
// when nothing was counted.
func (s Summary) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return math.Round(float64(s.Accepted)*1000/float64(s.Total)) / 10
}

func (s Summary) String() string {
	return fmt.Sprintf("tokens: %d, accepted: %d, rejected: %d, acceptance rate: %.1f%%",
		s.Total, s.Accepted, s.Total-s.Accepted, s.Rate())
}
