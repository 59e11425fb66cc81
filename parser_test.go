package wmf

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, input string, opts ...ParseOption) []Inline {
	t.Helper()
	out, err := ParseInlines(input, opts...)
	if err != nil {
		t.Fatalf("ParseInlines(%q): %v", input, err)
	}
	return out
}

func assertParse(t *testing.T, input string, want []Inline, opts ...ParseOption) {
	t.Helper()
	got := mustParse(t, input, opts...)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseInlines(%q)\n got %#v\nwant %#v", input, got, want)
	}
}

func TestParsePlainWordsAndSpaces(t *testing.T) {
	assertParse(t, "hello world", []Inline{Text{"hello"}, Space{}, Text{"world"}})
	assertParse(t, "hello   world", []Inline{Text{"hello"}, Space{}, Text{"world"}})
	assertParse(t, "one 2 three", []Inline{
		Text{"one"}, Space{}, Text{"2"}, Space{}, Text{"three"},
	})
	assertParse(t, "", nil)
}

func TestParsePlainTextKeepsNonSpecialPunctuation(t *testing.T) {
	assertParse(t, "don't stop.", []Inline{Text{"don't"}, Space{}, Text{"stop."}})
	// tabs are not whitespace for this grammar
	assertParse(t, "a\tb", []Inline{Text{"a\tb"}})
}

func TestParseStyledSpans(t *testing.T) {
	cases := []struct {
		input string
		style StyleKind
	}{
		{"*bold*", StyleStrong},
		{"_woRd_", StyleEmphasis},
		{"+add+", StyleInsert},
		{"-del-", StyleStrikeout},
		{"^sup^", StyleSuperscript},
		{"~sub~", StyleSubscript},
	}
	for _, tc := range cases {
		want := []Inline{Styled{Style: tc.style, Content: []Inline{Text{tc.input[1 : len(tc.input)-1]}}}}
		assertParse(t, tc.input, want)
	}
}

func TestParseStyledNested(t *testing.T) {
	assertParse(t, "*bold _italic_*", []Inline{
		Styled{Style: StyleStrong, Content: []Inline{
			Text{"bold"},
			Space{},
			Styled{Style: StyleEmphasis, Content: []Inline{Text{"italic"}}},
		}},
	})
}

func TestWordBoundaryLaw(t *testing.T) {
	// w ++ [d] ++ w ++ [d] ++ w never parses the middle as styled
	for _, d := range []byte{'*', '_', '+', '-', '^', '~'} {
		input := "abc" + string(d) + "abc" + string(d) + "abc"
		want := []Inline{
			Text{"abc"}, SpecialChar{rune(d)},
			Text{"abc"}, SpecialChar{rune(d)},
			Text{"abc"},
		}
		assertParse(t, input, want)
	}
}

func TestStyledDelimiterRules(t *testing.T) {
	// space directly after the opening delimiter keeps it literal
	assertParse(t, "* bold*", []Inline{
		SpecialChar{'*'}, Space{}, Text{"bold"}, SpecialChar{'*'},
	})
	// closing delimiter mid-word keeps the span literal
	assertParse(t, "*bold*x", []Inline{
		SpecialChar{'*'}, Text{"bold"}, SpecialChar{'*'}, Text{"x"},
	})
	// empty content is not a styled span
	assertParse(t, "**", []Inline{SpecialChar{'*'}, SpecialChar{'*'}})
	// digit after the closing delimiter is a word boundary
	assertParse(t, "*bold*2", []Inline{
		Styled{Style: StyleStrong, Content: []Inline{Text{"bold"}}}, Text{"2"},
	})
}

func TestStyledClosingInsideSpan(t *testing.T) {
	assertParse(t, "*a*b*", []Inline{
		Styled{Style: StyleStrong, Content: []Inline{
			Text{"a"}, SpecialChar{'*'}, Text{"b"},
		}},
	})
}

func TestParseSmileys(t *testing.T) {
	cases := map[string]EmojiKind{
		":)": EmojiSlightlySmiling,
		":D": EmojiSmiling,
		":(": EmojiFrowning,
		":P": EmojiTongue,
		";)": EmojiWinking,
	}
	for input, kind := range cases {
		assertParse(t, input, []Inline{Emoji{Kind: kind}})
	}
}

func TestParseIcons(t *testing.T) {
	cases := map[string]EmojiKind{
		"(y)":       EmojiThumbsUp,
		"(n)":       EmojiThumbsDown,
		"(i)":       EmojiInfo,
		"(/)":       EmojiCheckMark,
		"(x)":       EmojiCross,
		"(!)":       EmojiWarning,
		"(?)":       EmojiQuestionMark,
		"(on)":      EmojiLightOn,
		"(off)":     EmojiLightOff,
		"(*)":       EmojiStar,
		"(*r)":      EmojiStarRed,
		"(flag)":    EmojiFlag,
		"(flagoff)": EmojiFlagOff,
	}
	for input, kind := range cases {
		assertParse(t, input, []Inline{Emoji{Kind: kind}})
	}
}

func TestEmojiNotBeforeLetter(t *testing.T) {
	assertParse(t, "(y)es", []Inline{
		SpecialChar{'('}, Text{"y"}, SpecialChar{')'}, Text{"es"},
	})
}

func TestUnknownIconFallsThrough(t *testing.T) {
	assertParse(t, "(unknown)", []Inline{
		SpecialChar{'('}, Text{"unknown"}, SpecialChar{')'},
	})
}

func TestParseEntities(t *testing.T) {
	assertParse(t, "&amp;", []Inline{Entity{"amp"}})
	assertParse(t, "&#123;", []Inline{Entity{"#123"}})
	// malformed references decay to literal characters
	assertParse(t, "&amp", []Inline{SpecialChar{'&'}, Text{"amp"}})
	assertParse(t, "&#x;", []Inline{SpecialChar{'&'}, Text{"#x;"}})
}

func TestParseLinks(t *testing.T) {
	assertParse(t, "[http://example.com]", []Inline{
		Link{URL: "http://example.com"},
	})
	assertParse(t, "[Home|http://example.com]", []Inline{
		Link{Alias: []Inline{Text{"Home"}}, URL: "http://example.com"},
	})
	assertParse(t, "[*Home*|http://example.com]", []Inline{
		Link{
			Alias: []Inline{Styled{Style: StyleStrong, Content: []Inline{Text{"Home"}}}},
			URL:   "http://example.com",
		},
	})
}

func TestLinkAliasAllowsLiteralBracket(t *testing.T) {
	assertParse(t, "[a[b|http://x]", []Inline{
		Link{Alias: []Inline{Text{"a"}, SpecialChar{'['}, Text{"b"}}, URL: "http://x"},
	})
}

func TestMalformedLinkFallsThrough(t *testing.T) {
	assertParse(t, "[no url", []Inline{
		SpecialChar{'['}, Text{"no"}, Space{}, Text{"url"},
	})
	assertParse(t, "[a|b|c]", []Inline{
		SpecialChar{'['}, Text{"a"}, SpecialChar{'|'}, Text{"b"}, SpecialChar{'|'}, Text{"c"}, SpecialChar{']'},
	})
}

func TestParseImage(t *testing.T) {
	assertParse(t, "!img.png!", []Inline{Image{URL: "img.png"}})
	assertParse(t, "!unterminated", []Inline{
		SpecialChar{'!'}, Text{"unterminated"},
	})
}

func TestParseAnchor(t *testing.T) {
	assertParse(t, "{anchor:here}", []Inline{Anchor{Name: "here"}})
	assertParse(t, "{anchor:two words}", []Inline{Anchor{Name: "twowords"}})
}

func TestParseMonospaced(t *testing.T) {
	assertParse(t, "{{code}}", []Inline{
		Monospaced{Content: []Inline{Text{"code"}}},
	})
	assertParse(t, "{{}}", []Inline{Monospaced{Content: []Inline{}}})
}

func TestParseLineBreaks(t *testing.T) {
	assertParse(t, `a\\b`, []Inline{Text{"a"}, LineBreak{}, Text{"b"}})
	assertParse(t, "a\nb", []Inline{Text{"a"}, LineBreak{}, Text{"b"}})
	// a newline at paragraph end is not a line break
	assertParse(t, "a\n", []Inline{Text{"a"}})
	assertParse(t, "a\n\nb", []Inline{Text{"a"}})
}

func TestTripleBackslashIsNotABreak(t *testing.T) {
	// the first pair is an escaped backslash, the third stays literal
	assertParse(t, `a\\\b`, []Inline{
		Text{"a"}, SpecialChar{'\\'}, SpecialChar{'\\'}, Text{"b"},
	})
}

func TestEscapedCharacters(t *testing.T) {
	assertParse(t, `\*bold\*`, []Inline{
		SpecialChar{'*'}, Text{"bold"}, SpecialChar{'*'},
	})
	// escapes win over context filtering
	assertParse(t, `a\|b`, []Inline{Text{"a"}, SpecialChar{'|'}, Text{"b"}}, InTable())
}

func TestTableContextRejectsBarePipe(t *testing.T) {
	assertParse(t, "a|b", []Inline{Text{"a"}, SpecialChar{'|'}, Text{"b"}})

	_, err := ParseInlines("a|b", InTable())
	if err == nil {
		t.Fatalf("expected error for bare pipe in table context")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Pos != 1 {
		t.Fatalf("expected failure at offset 1, got %d", perr.Pos)
	}
	if len(perr.Expected) == 0 {
		t.Fatalf("expected non-empty expectation list")
	}
}

func TestBlockTerminatorStopsParsing(t *testing.T) {
	out := mustParse(t, "{quote}ignored")
	if len(out) != 0 {
		t.Fatalf("expected no inline elements before block terminator, got %#v", out)
	}
	assertParse(t, "a\n{code}rest", []Inline{Text{"a"}})
}

func TestCustomBlockTerminators(t *testing.T) {
	out := mustParse(t, "{stop}x", WithBlockTerminators("stop"))
	if len(out) != 0 {
		t.Fatalf("expected stop at custom terminator, got %#v", out)
	}
	// the default keywords are replaced, not extended
	assertParse(t, "{quote}", []Inline{
		SpecialChar{'{'}, Text{"quote"}, SpecialChar{'}'},
	}, WithBlockTerminators("stop"))
}

func TestCustomEndOfParagraph(t *testing.T) {
	pred := func(rest string) bool { return rest == "" }
	assertParse(t, "a\n\nb", []Inline{
		Text{"a"}, LineBreak{}, LineBreak{}, Text{"b"},
	}, WithEndOfParagraph(pred))
}

func TestContextDoesNotLeakBetweenCalls(t *testing.T) {
	first := mustParse(t, "[a|b]")
	want := []Inline{Link{Alias: []Inline{Text{"a"}}, URL: "b"}}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("first parse: got %#v want %#v", first, want)
	}
	second := mustParse(t, "[c]")
	if !reflect.DeepEqual(second, []Inline{Link{URL: "c"}}) {
		t.Fatalf("second parse leaked context: %#v", second)
	}
}

func TestMonospacedInsideSentence(t *testing.T) {
	assertParse(t, "run {{go test}} now", []Inline{
		Text{"run"}, Space{},
		Monospaced{Content: []Inline{Text{"go"}, Space{}, Text{"test"}}},
		Space{}, Text{"now"},
	})
}

func TestMixedParagraph(t *testing.T) {
	assertParse(t, "see [docs|http://d] (y) *now*", []Inline{
		Text{"see"}, Space{},
		Link{Alias: []Inline{Text{"docs"}}, URL: "http://d"},
		Space{}, Emoji{Kind: EmojiThumbsUp},
		Space{}, Styled{Style: StyleStrong, Content: []Inline{Text{"now"}}},
	})
}
