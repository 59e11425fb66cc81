package wmf

// EmojiKind identifies one icon from the closed emoji set.
type EmojiKind uint8

const (
	_ EmojiKind = iota
	// EmojiSmiling is the :D smiley.
	EmojiSmiling
	// EmojiSlightlySmiling is the :) smiley.
	EmojiSlightlySmiling
	// EmojiFrowning is the :( smiley.
	EmojiFrowning
	// EmojiTongue is the :P smiley.
	EmojiTongue
	// EmojiWinking is the ;) smiley.
	EmojiWinking
	// EmojiThumbsUp is the (y) icon.
	EmojiThumbsUp
	// EmojiThumbsDown is the (n) icon.
	EmojiThumbsDown
	// EmojiInfo is the (i) icon.
	EmojiInfo
	// EmojiCheckMark is the (/) icon.
	EmojiCheckMark
	// EmojiCross is the (x) icon.
	EmojiCross
	// EmojiWarning is the (!) icon.
	EmojiWarning
	// EmojiPlus is the (+) icon.
	EmojiPlus
	// EmojiMinus is the (-) icon.
	EmojiMinus
	// EmojiQuestionMark is the (?) icon.
	EmojiQuestionMark
	// EmojiLightOn is the (on) icon.
	EmojiLightOn
	// EmojiLightOff is the (off) icon.
	EmojiLightOff
	// EmojiStar is the (*) icon.
	EmojiStar
	// EmojiStarRed is the (*r) icon.
	EmojiStarRed
	// EmojiStarGreen is the (*g) icon.
	EmojiStarGreen
	// EmojiStarBlue is the (*b) icon.
	EmojiStarBlue
	// EmojiStarYellow is the (*y) icon.
	EmojiStarYellow
	// EmojiFlag is the (flag) icon.
	EmojiFlag
	// EmojiFlagOff is the (flagoff) icon.
	EmojiFlagOff
)

// iconNames maps the parenthesized icon name to its kind. Unknown names
// fail the emoji alternative as a whole.
var iconNames = map[string]EmojiKind{
	"y":       EmojiThumbsUp,
	"n":       EmojiThumbsDown,
	"i":       EmojiInfo,
	"/":       EmojiCheckMark,
	"x":       EmojiCross,
	"!":       EmojiWarning,
	"+":       EmojiPlus,
	"-":       EmojiMinus,
	"?":       EmojiQuestionMark,
	"on":      EmojiLightOn,
	"off":     EmojiLightOff,
	"*":       EmojiStar,
	"*r":      EmojiStarRed,
	"*g":      EmojiStarGreen,
	"*b":      EmojiStarBlue,
	"*y":      EmojiStarYellow,
	"flag":    EmojiFlag,
	"flagoff": EmojiFlagOff,
}

var emojiNames = map[EmojiKind]string{
	EmojiSmiling:         "smiling",
	EmojiSlightlySmiling: "slightly-smiling",
	EmojiFrowning:        "frowning",
	EmojiTongue:          "tongue",
	EmojiWinking:         "winking",
	EmojiThumbsUp:        "thumbs-up",
	EmojiThumbsDown:      "thumbs-down",
	EmojiInfo:            "info",
	EmojiCheckMark:       "check-mark",
	EmojiCross:           "cross",
	EmojiWarning:         "warning",
	EmojiPlus:            "plus",
	EmojiMinus:           "minus",
	EmojiQuestionMark:    "question-mark",
	EmojiLightOn:         "light-on",
	EmojiLightOff:        "light-off",
	EmojiStar:            "star",
	EmojiStarRed:         "star-red",
	EmojiStarGreen:       "star-green",
	EmojiStarBlue:        "star-blue",
	EmojiStarYellow:      "star-yellow",
	EmojiFlag:            "flag",
	EmojiFlagOff:         "flag-off",
}

// emojiGlyphs holds the Unicode rendering for each kind.
var emojiGlyphs = map[EmojiKind]string{
	EmojiSmiling:         "\U0001F603",
	EmojiSlightlySmiling: "\U0001F642",
	EmojiFrowning:        "\U0001F641",
	EmojiTongue:          "\U0001F61B",
	EmojiWinking:         "\U0001F609",
	EmojiThumbsUp:        "\U0001F44D",
	EmojiThumbsDown:      "\U0001F44E",
	EmojiInfo:            "ℹ️",
	EmojiCheckMark:       "✔️",
	EmojiCross:           "❌",
	EmojiWarning:         "⚠️",
	EmojiPlus:            "➕",
	EmojiMinus:           "➖",
	EmojiQuestionMark:    "❓",
	EmojiLightOn:         "\U0001F4A1",
	EmojiLightOff:        "\U0001F526",
	EmojiStar:            "⭐",
	EmojiStarRed:         "\U0001F534",
	EmojiStarGreen:       "\U0001F7E2",
	EmojiStarBlue:        "\U0001F535",
	EmojiStarYellow:      "\U0001F7E1",
	EmojiFlag:            "\U0001F6A9",
	EmojiFlagOff:         "\U0001F3F3️",
}

// String returns the emoji name.
func (k EmojiKind) String() string {
	if name, ok := emojiNames[k]; ok {
		return name
	}
	return "unknown"
}

// Glyph returns the Unicode rendering of the emoji.
func (k EmojiKind) Glyph() string {
	return emojiGlyphs[k]
}
