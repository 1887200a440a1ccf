package analytics

import (
	"unicode"

	"github.com/cognicore/chatstat/pkg/chatstat/ingest"
)

// EmojiRanges covers the pictographic blocks counted as emoji: Misc Symbols
// and Pictographs through Symbols and Pictographs Extended-A, plus Misc
// Symbols and Dingbats. Variation selectors and zero-width joiners are not
// included, so U+2764 U+FE0F counts as the bare U+2764.
var EmojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1},
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1},
		{Lo: 0x1F780, Hi: 0x1F7FF, Stride: 1},
		{Lo: 0x1F800, Hi: 0x1F8FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1},
	},
}

// EmojiCount is an emoji and how often it occurs.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Emojis counts every code point of table found in the raw messages and
// returns all of them by descending count, ties in first-seen order. The raw
// message is scanned on purpose: the clean text has no emoji left. A nil
// table uses EmojiRanges.
func Emojis(records []ingest.Record, table *unicode.RangeTable) []EmojiCount {
	if table == nil {
		table = EmojiRanges
	}
	c := newCounter()
	for _, r := range records {
		for _, ch := range r.Message {
			if unicode.Is(table, ch) {
				c.add(string(ch))
			}
		}
	}
	ranked := c.ranked(0)
	out := make([]EmojiCount, len(ranked))
	for i, p := range ranked {
		out[i] = EmojiCount{Emoji: p.Label, Count: p.Count}
	}
	return out
}
