package extract

import (
	"regexp"
	"strings"
)

var (
	spaceRunRe     = regexp.MustCompile(`[ \t]+`)
	trailingWSRe   = regexp.MustCompile(`[ \t]+\n`)
	leadingWSRe    = regexp.MustCompile(`\n[ \t]+`)
	blankRunRe     = regexp.MustCompile(`\n{3,}`)
	controlCharsRe = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

var punctuationReplacer = strings.NewReplacer(
	"–", "-", // en-dash
	"—", "-", // em-dash
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
)

// Normalize applies the shared post-processing every extractor runs on its
// raw output: line-ending normalization, whitespace collapsing, typographic
// punctuation rewrites, control-character stripping, and a final trim.
// Normalizing already-normalized text is a fixed point.
func Normalize(text string) string {
	// Line endings first so the newline-based rules below see only LF.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = collapseWhitespace(text)

	// Non-breaking spaces and typographic punctuation become their ASCII
	// equivalents.
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = punctuationReplacer.Replace(text)

	// Strip control characters except TAB and LF.
	text = controlCharsRe.ReplaceAllString(text, "")

	// The NBSP rewrite can leave adjacent spaces behind, so collapse once
	// more before trimming.
	text = collapseWhitespace(text)

	return strings.TrimSpace(text)
}

func collapseWhitespace(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = trailingWSRe.ReplaceAllString(text, "\n")
	text = leadingWSRe.ReplaceAllString(text, "\n")
	return blankRunRe.ReplaceAllString(text, "\n\n")
}
