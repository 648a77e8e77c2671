package transform

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/motion/geom"
)

func TestStateRoundTrip(t *testing.T) {
	transforms := []Transform{
		New(""),
		New("pose").Scale(1, 2).Rotate(math.Pi / 3).Translate(-4.25, 7),
		New("3d").Rotate3(0.1, 0.2, 0.3).Scale3(1, 2, 3).Translate3(1e-3, -2, 9).Translate(0, 0),
	}
	for _, tr := range transforms {
		t.Run(tr.Name(), func(t *testing.T) {
			got, err := Parse(tr.State())
			require.NoError(t, err)
			assert.True(t, got.IsEqualTo(tr, geom.DefaultPrecision), "Parse(State) = %v, want %v", got, tr)
			assert.Equal(t, tr.Name(), got.Name())

			data, err := json.Marshal(tr)
			require.NoError(t, err)
			var decoded Transform
			require.NoError(t, json.Unmarshal(data, &decoded), "Unmarshal(%s)", data)
			assert.Equal(t, tr.Components(), decoded.Components())
			assert.Equal(t, tr.Name(), decoded.Name())
		})
	}
}

func TestStateForm(t *testing.T) {
	data, err := json.Marshal(New("a").Rotate(1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f1Type":"tf","state":["a",["r",0,0,1]]}`, string(data))
}

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Transform
	}{
		{"unnamed", `[["s", 2, 3], ["r", 0.5], ["t", 1, 2]]`, New("").Scale(2, 3).Rotate(0.5).Translate(1, 2)},
		{"named", `["n", ["t", 1, 2, 3]]`, New("n").Translate3(1, 2, 3)},
		{"bytes", []byte(`[["r", 1, 2, 3]]`), New("").Rotate3(1, 2, 3)},
		{"go values", []any{"g", Scale{1, 1, 1}, []any{"t", 4, 5}}, New("g").Scale(1, 1).Translate(4, 5)},
		{"components", []Component{Rotate{Z: 2}}, New("").Rotate(2)},
		{"tagged json", `{"f1Type": "tf", "state": ["x", ["s", 1, 1, 1]]}`, New("x").Scale(1, 1)},
		{"empty", `[]`, New("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Components(), got.Components())
			assert.Equal(t, tt.want.Name(), got.Name())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"bad json", `[["s", 1`},
		{"wrong tag", `{"f1Type": "l", "state": []}`},
		{"not an array", `{"a": 1}`},
		{"unknown kind", `[["q", 1, 2, 3]]`},
		{"too long", `[["t", 1, 2, 3, 4]]`},
		{"too short", `[["t"]]`},
		{"single scale value", `[["s", 2]]`},
		{"non numeric", `[["t", "a", 2]]`},
		{"number", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, geom.ErrInvalidState)
		})
	}
}
