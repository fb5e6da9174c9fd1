package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/screen"
)

func TestEncode_DefaultSurface9x9(t *testing.T) {
	s := screen.New(9, 9)

	var want strings.Builder
	for row := 1; row <= 9; row++ {
		fmt.Fprintf(&want, "\x1b[%d;1H", row)
		want.WriteString("\x1b[38;2;0;0;0;48;2;0;0;0m")
		want.WriteString("         ")
	}

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(s))
	assert.Equal(t, want.String(), buf.String())
}

func TestAppendFrame_RunCollapsing(t *testing.T) {
	s := screen.New(4, 1)
	red := color.Pair{Fg: color.White, Bg: color.Red}
	s.SetCell(geom.Pt(0, 0), 'a', red)
	s.SetCell(geom.Pt(1, 0), 'b', red)
	s.SetCell(geom.Pt(2, 0), 'c', red)

	got := string(AppendFrame(nil, s))
	want := "\x1b[1;1H" +
		"\x1b[38;2;255;255;255;48;2;255;0;0mabc" +
		"\x1b[38;2;0;0;0;48;2;0;0;0m "
	assert.Equal(t, want, got)
}

func TestAppendFrame_PartialChanges(t *testing.T) {
	tests := []struct {
		name  string
		cells []screen.Cell
		want  string
	}{
		{
			name: "fg only",
			cells: []screen.Cell{
				{Glyph: 'x', Pair: color.Pair{Fg: color.Red, Bg: color.Black}},
				{Glyph: 'y', Pair: color.Pair{Fg: color.Green, Bg: color.Black}},
			},
			want: "\x1b[1;1H\x1b[38;2;255;0;0;48;2;0;0;0mx\x1b[38;2;0;255;0my",
		},
		{
			name: "bg only",
			cells: []screen.Cell{
				{Glyph: 'x', Pair: color.Pair{Fg: color.Black, Bg: color.Red}},
				{Glyph: 'y', Pair: color.Pair{Fg: color.Black, Bg: color.Blue}},
			},
			want: "\x1b[1;1H\x1b[38;2;0;0;0;48;2;255;0;0mx\x1b[48;2;0;0;255my",
		},
		{
			name: "both",
			cells: []screen.Cell{
				{Glyph: 'x', Pair: color.Pair{Fg: color.Black, Bg: color.Red}},
				{Glyph: 'y', Pair: color.Pair{Fg: color.White, Bg: color.Blue}},
			},
			want: "\x1b[1;1H\x1b[38;2;0;0;0;48;2;255;0;0mx\x1b[38;2;255;255;255;48;2;0;0;255my",
		},
		{
			name: "utf8 glyph",
			cells: []screen.Cell{
				{Glyph: '▀', Pair: color.Pair{Fg: color.Black, Bg: color.Black}},
				{Glyph: 'é', Pair: color.Pair{Fg: color.Black, Bg: color.Black}},
			},
			want: "\x1b[1;1H\x1b[38;2;0;0;0;48;2;0;0;0m▀é",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := screen.New(len(tt.cells), 1)
			for x, c := range tt.cells {
				// Opaque pairs replace the default cell exactly
				s.SetCell(geom.Pt(x, 0), c.Glyph, c.Pair)
			}
			assert.Equal(t, tt.want, string(AppendFrame(nil, s)))
		})
	}
}

func TestAppendFrame_RowStartRepeatsColor(t *testing.T) {
	s := screen.New(1, 2)
	got := string(AppendFrame(nil, s))
	assert.Equal(t, 2, strings.Count(got, "\x1b[38;2;0;0;0;48;2;0;0;0m"),
		"each row begins with a full color escape")
	assert.True(t, strings.HasPrefix(got, "\x1b[1;1H"))
	assert.Contains(t, got, "\x1b[2;1H")
	assert.False(t, strings.HasSuffix(got, "\x1b[0m"), "no trailing reset")
}

func TestAppendStyle_AlphaIgnored(t *testing.T) {
	var st styleState
	dst := st.appendStyle(nil, color.Red, color.Black)
	require.NotEmpty(t, dst)

	// Same RGB with a different alpha is not a change
	out := st.appendStyle(nil, color.Red.WithAlpha(3), color.Black.WithAlpha(200))
	assert.Empty(t, out)
}

func TestAppendFrame_Minimality(t *testing.T) {
	// Escape count equals the number of color runs per row
	s := screen.New(10, 3)
	for x := 0; x < 10; x++ {
		if x/3%2 == 0 {
			s.SetCell(geom.Pt(x, 1), ' ', color.Pair{Fg: color.Black, Bg: color.Yellow})
		}
	}
	got := string(AppendFrame(nil, s))
	// Row 1: 3 yellow, 3 black, 3 yellow, 1 black = 4 runs; rows 0 and 2: 1 run each
	assert.Equal(t, 6, strings.Count(got, "m"))
}

func TestAppendFrame_Empty(t *testing.T) {
	assert.Empty(t, AppendFrame(nil, screen.New(0, 0)))
	assert.Equal(t, "\x1b[1;1H\x1b[2;1H", string(AppendFrame(nil, screen.New(0, 2))))
}

func TestAppendInt(t *testing.T) {
	for _, n := range []int{0, 7, 10, 99, 100, 255, 999, 1000, 12345} {
		assert.Equal(t, fmt.Sprint(n), string(appendInt(nil, n)))
	}
	assert.Equal(t, "0", string(appendInt(nil, -4)))
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncode_WriterFailure(t *testing.T) {
	sinkErr := errors.New("disk on fire")
	err := NewEncoder(failWriter{sinkErr}).Encode(screen.New(3, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFrame)
	assert.ErrorIs(t, err, sinkErr)
}

func TestEncode_ReusesBuffer(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	s := screen.New(5, 2)

	require.NoError(t, enc.Present(s))
	first := buf.String()
	buf.Reset()
	require.NoError(t, enc.Present(s))
	assert.Equal(t, first, buf.String(), "frames are stateless across calls")
}

func BenchmarkAppendFrame(b *testing.B) {
	s := screen.New(200, 60)
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			s.SetCell(geom.Pt(x, y), '▀', color.Pair{
				Fg: color.New(uint8(x), uint8(y), 0),
				Bg: color.New(0, uint8(y), uint8(x)),
			})
		}
	}
	var dst []byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst = AppendFrame(dst[:0], s)
	}
}
