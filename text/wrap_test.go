package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type brk struct {
	off       int
	mandatory bool
}

func collectBreaks(s string) []brk {
	var out []brk
	for off, mandatory := range LineBreaks(s) {
		out = append(out, brk{off, mandatory})
	}
	return out
}

func TestLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []brk
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single word",
			in:   "Hello",
			want: []brk{{5, true}},
		},
		{
			name: "space allows break",
			in:   "Hello World",
			want: []brk{{6, false}, {11, true}},
		},
		{
			name: "newline is mandatory",
			in:   "Hello\nWorld",
			want: []brk{{6, true}, {11, true}},
		},
		{
			name: "crlf is one opportunity",
			in:   "a\r\nb",
			want: []brk{{3, true}, {4, true}},
		},
		{
			name: "trailing newline",
			in:   "Hi\n",
			want: []brk{{3, true}},
		},
		{
			name: "hyphen allows break after",
			in:   "foo-bar",
			want: []brk{{4, false}, {7, true}},
		},
		{
			name: "no break inside brackets",
			in:   "(xy)",
			want: []brk{{4, true}},
		},
		{
			name: "cjk breaks between ideographs",
			in:   "日本",
			want: []brk{{3, false}, {6, true}},
		},
		{
			name: "tab behaves like space",
			in:   "a\tb",
			want: []brk{{2, false}, {3, true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectBreaks(tt.in))
		})
	}
}

func TestLineBreaks_OffsetsAscend(t *testing.T) {
	breaks := collectBreaks("some text, with (punctuation) and\nnewlines - and dashes")
	prev := 0
	for _, b := range breaks {
		assert.Greater(t, b.off, prev, "offsets must be strictly ascending")
		prev = b.off
	}
	assert.True(t, breaks[len(breaks)-1].mandatory, "final opportunity is mandatory")
}

func TestLineBreaks_EarlyStop(t *testing.T) {
	// The iterator must honor a consumer that stops early.
	count := 0
	for range LineBreaks("a b c d") {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
