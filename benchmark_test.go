package wmf

import (
	"io"
	"strconv"
	"strings"
	"testing"
)

var benchParagraph = "The *quick* _brown_ fox [jumps|http://example.com/jump] over " +
	"the {{lazy}} dog (y) &amp; friends, see !diagram.png! and {anchor:refs} " +
	"then ^up^ and ~down~ again with -strikes- and +inserts+ :)"

func BenchmarkParseInlines(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseInlines(benchParagraph); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseInlinesPlain(b *testing.B) {
	input := strings.Repeat("plain words without any markup at all ", 20)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseInlines(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	doc := strings.Repeat(benchParagraph+"\n\n", 10)
	for _, width := range []int{0, 40, 80} {
		b.Run("width="+strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				err := Render(RenderRequest{
					Reader: strings.NewReader(doc),
					Writer: io.Discard,
					Width:  width,
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
