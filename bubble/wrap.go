package bubble

import (
	"math"
	"strings"
	"unicode"

	"github.com/kenzieshane/TurbowarpMobile/skin"
)

// NewGreedyWrapper is the default skin.WrapperFactory: greedy wrapping
// that prefers whitespace break points and splits inside a word only when
// the word alone exceeds the limit. Explicit newlines always break.
func NewGreedyWrapper(m skin.Measurer) skin.Wrapper {
	return &greedyWrapper{m: m}
}

type greedyWrapper struct {
	m skin.Measurer
}

// Wrap implements skin.Wrapper. A non-positive maxWidth disables
// width-based wrapping. The result always contains at least one line.
func (g *greedyWrapper) Wrap(text string, maxWidth float64) []string {
	limit := maxWidth
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, builder.String())
		builder.Reset()
		currentWidth = 0
	}
	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += g.m.Width(token)
	}

	for _, token := range tokenize(text) {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := g.m.Width(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range g.splitByWidth(token, limit) {
			chunkWidth := g.m.Width(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(len(lines) == 0)
	return lines
}

// tokenize splits text into runs of whitespace, runs of non-whitespace and
// explicit newline markers. Carriage returns are dropped.
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitByWidth cuts an over-long token into chunks that each fit the
// limit, keeping at least one rune per chunk so progress is guaranteed.
func (g *greedyWrapper) splitByWidth(token string, limit float64) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	runeCount := 0
	for _, r := range token {
		builder.WriteRune(r)
		runeCount++
		if g.m.Width(builder.String()) > limit && runeCount > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
			runeCount = 1
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
