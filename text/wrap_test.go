package text_test

import (
	"testing"

	"github.com/agapow/relais-dev/text"
	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{
			name:  "greedy break at spaces, width exactly met",
			input: "aaaa bbbb cccc",
			width: 4,
			want:  "aaaa\nbbbb\ncccc\n",
		},
		{
			name:  "hard break with no whitespace available",
			input: "aaaaaaaa",
			width: 4,
			want:  "aaaa\naaaa\n",
		},
		{
			name:  "empty input yields empty output",
			input: "",
			width: 4,
			want:  "",
		},
		{
			name:  "text shorter than width is a single line",
			input: "short",
			width: 60,
			want:  "short\n",
		},
		{
			name:  "break point whitespace run is consumed",
			input: "aaaa    bbbb",
			width: 4,
			want:  "aaaa\nbbbb\n",
		},
		{
			name:  "break mid window backs up to the last space",
			input: "aaa bbbb",
			width: 6,
			want:  "aaa\nbbbb\n",
		},
		{
			name:  "interior spaces kept when the line fits",
			input: "ab cd",
			width: 60,
			want:  "ab cd\n",
		},
		{
			name:  "long word hard broken then remainder packed",
			input: "aaaaa b",
			width: 4,
			want:  "aaaa\na b\n",
		},
		{
			name:  "non-positive width falls back to the default",
			input: "aaaa bbbb",
			width: 0,
			want:  "aaaa bbbb\n",
		},
		{
			name:  "multi-byte runes counted as single characters",
			input: "ääää öööö",
			width: 4,
			want:  "ääää\nöööö\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := text.Fill(tt.input, text.WithWidth(tt.width))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{
			name:  "greedy break at spaces",
			input: "aaaa bbbb cccc",
			width: 4,
			want:  []string{"aaaa", "bbbb", "cccc"},
		},
		{
			name:  "hard break",
			input: "aaaaaaaa",
			width: 4,
			want:  []string{"aaaa", "aaaa"},
		},
		{
			name:  "empty input yields no lines",
			input: "",
			width: 4,
			want:  nil,
		},
		{
			name:  "no trailing empty line artifact",
			input: "aaaa",
			width: 4,
			want:  []string{"aaaa"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := text.Wrap(tt.input, text.WithWidth(tt.width))
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestWrap_DefaultWidth verifies Wrap without options uses DefaultWidth.
func TestWrap_DefaultWidth(t *testing.T) {
	t.Parallel()

	// 70 'a's: one hard break at 60
	long := ""
	for i := 0; i < 70; i++ {
		long += "a"
	}

	got := text.Wrap(long)
	assert.Equal(t, []string{long[:60], long[60:]}, got)
}

// TestWrap_DisplayWidth verifies wide runes count as two columns when the
// display-width option is set, and as one rune otherwise.
func TestWrap_DisplayWidth(t *testing.T) {
	t.Parallel()

	// each CJK rune is two columns wide
	input := "文字 文字"

	byColumns := text.Wrap(input, text.WithWidth(4), text.WithDisplayWidth())
	assert.Equal(t, []string{"文字", "文字"}, byColumns)

	byRunes := text.Wrap(input, text.WithWidth(5))
	assert.Equal(t, []string{"文字 文字"}, byRunes)
}
