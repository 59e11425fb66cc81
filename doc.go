// Package wmf parses inline wiki markup and renders it as ANSI for
// terminal display.
//
// The parser is a backtracking recursive-descent parser over a single
// paragraph (or table cell) of Jira/Confluence-style wiki markup. It
// produces an ordered sequence of Inline elements: plain text, spaces,
// line breaks, styled spans, links, images, anchors, entities, emoji, and
// escaped symbols. Every alternative is transactional: a failed recognizer
// restores both the input position and the parse context before the next
// alternative is tried.
//
// Core properties:
//   - All-or-nothing alternatives; no partial AST survives a failure
//   - Context-sensitive symbol sets (table cells, link aliases)
//   - Word-boundary rules keep mid-word delimiters literal
//   - Theme-driven ANSI rendering with width-aware wrapping
//
// Example:
//
//	inlines, err := wmf.ParseInlines("*bold* text with a [link|https://example.com]")
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = inlines
//
// Render reads whole documents, splits them into paragraphs on blank
// lines, and writes themed, wrapped terminal output.
package wmf
