package textbox

import "golang.org/x/text/unicode/norm"

// Segment normalizes text to NFC and splits it into tokens.
//
// A space ends the current word without producing a token. A tab ends the
// word and produces Tab. '\n', '\r' and "\r\n" end the word and produce a
// single LineBreak. Every other character is looked up in font at size and
// appended to the current word, kerned against the previous glyph of the
// same word.
//
// Word glyph positions are relative to the word; no global positioning
// happens here.
func Segment(text string, font FontMetricsProvider, size float64) []Token {
	normalized := norm.NFC.String(text)
	if normalized == "" {
		return nil
	}

	var (
		tokens  []Token
		word    wordBuilder
		afterCR bool
	)

	endWord := func() {
		if !word.empty() {
			tokens = append(tokens, word.flush())
		}
	}

	for _, r := range normalized {
		if afterCR {
			afterCR = false
			if r == '\n' {
				continue
			}
		}

		switch r {
		case ' ':
			endWord()
		case '\t':
			endWord()
			tokens = append(tokens, Tab{})
		case '\n':
			endWord()
			tokens = append(tokens, LineBreak{})
		case '\r':
			endWord()
			tokens = append(tokens, LineBreak{})
			afterCR = true
		default:
			id, advance := font.LookupGlyph(r, size)
			var kern float64
			if prev, ok := word.last(); ok {
				kern = font.Kerning(prev, id, size)
			}
			word.push(r, id, advance, kern)
		}
	}
	endWord()

	return tokens
}
