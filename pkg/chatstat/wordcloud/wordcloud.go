// Package wordcloud prepares the input of an external word-cloud renderer.
//
// The renderer receives one space-joined token string; layout, fonts and
// rasterization are its business. Collocations are off by default.
package wordcloud

import (
	"context"
	"image"
	"strings"

	"github.com/cognicore/chatstat/pkg/chatstat/analytics"
	"github.com/cognicore/chatstat/pkg/chatstat/filter"
	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
	"github.com/cognicore/chatstat/pkg/chatstat/links"
	"github.com/cognicore/chatstat/pkg/chatstat/stoplist"
)

// Options are passed through to the renderer. Collocations is always false
// in a Producer's input.
type Options struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Background   string `json:"background"`
	MinFontSize  int    `json:"min_font_size"`
	Collocations bool   `json:"collocations"`
}

// DefaultOptions returns a 500x500 white canvas with collocations off.
func DefaultOptions() Options {
	return Options{
		Width:       500,
		Height:      500,
		Background:  "white",
		MinFontSize: 10,
	}
}

// Input is what a Rasterizer renders.
type Input struct {
	Text    string  `json:"text"`
	Options Options `json:"options"`
}

// Rasterizer turns word-cloud input into an image.
type Rasterizer interface {
	Render(ctx context.Context, in Input) (image.Image, error)
}

// Producer builds word-cloud input from records.
type Producer struct {
	Options Options
}

// New returns a producer with the given options. Zero-valued size fields
// fall back to DefaultOptions.
func New(opts Options) *Producer {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = def.MinFontSize
	}
	opts.Collocations = false
	return &Producer{Options: opts}
}

// Text joins the clean text of the word-analytics records with link
// remnants and participant-name tokens removed. ok is false when nothing is
// left to draw.
func (p *Producer) Text(records []ingest.Record) (text string, ok bool) {
	rows := filter.TextOnly(records)
	names := stoplist.FromNames(filter.Participants(rows))

	var tokens []string
	for _, r := range rows {
		for _, tok := range strings.Fields(links.Strip(r.MessageClean)) {
			if names.IsStop(tok) {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	text = strings.Join(tokens, " ")
	return text, text != ""
}

// Input returns the renderer input for records, ok=false when empty.
func (p *Producer) Input(records []ingest.Record) (Input, bool) {
	text, ok := p.Text(records)
	if !ok {
		return Input{}, false
	}
	opts := p.Options
	opts.Collocations = false
	return Input{Text: text, Options: opts}, true
}

// Generate renders records with r. It returns a nil image and a nil error
// when there is nothing to draw; callers show a "no content" notice instead.
func (p *Producer) Generate(ctx context.Context, r Rasterizer, records []ingest.Record) (image.Image, error) {
	in, ok := p.Input(records)
	if !ok {
		return nil, nil
	}
	return r.Render(ctx, in)
}

// Frequency is a token weight for renderers that lay out from counts.
type Frequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies counts the tokens of text, most frequent first, ties in
// first-seen order.
func Frequencies(text string) []Frequency {
	ranked := analytics.Rank(strings.Fields(text), 0)
	out := make([]Frequency, len(ranked))
	for i, p := range ranked {
		out[i] = Frequency{Word: p.Label, Count: p.Count}
	}
	return out
}
