package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineErrors(t *testing.T) {
	_, err := NewLine(Pt(1, 1), Pt(1, 1), 2)
	assert.ErrorIs(t, err, ErrDegenerateLine, "same points")
	_, err = NewLine(Pt(0, 0), Pt(1, 1), 3)
	assert.ErrorIs(t, err, ErrInvalidEnds, "ends=3")
	_, err = NewLineFromAngle(Pt(0, 0), 0, 1, 2)
	assert.ErrorIs(t, err, ErrDegenerateLine, "zero length")
	_, err = NewLineFromDirection(Pt(0, 0), Point{}, 1, 2)
	assert.ErrorIs(t, err, ErrDegenerateLine, "zero direction")
}

func TestLineConstructors(t *testing.T) {
	l, err := NewLineFromAngle(Pt(1, 1), 2, math.Pi/2, 2)
	require.NoError(t, err)
	assertApprox(t, Pt(1, 3), l.P2(), "NewLineFromAngle")

	l, err = NewLineFromDirection(Pt(0, 0), Pt(0, 10), 3, 1)
	require.NoError(t, err)
	assertApprox(t, Pt(0, 3), l.P2(), "NewLineFromDirection")

	l, err = NewLineFromSpherical(Pt3(0, 0, 0), 1, 0, 0, 2)
	require.NoError(t, err)
	assertApprox(t, Pt3(0, 0, 1), l.P2(), "NewLineFromSpherical")
}

func TestLineSetters(t *testing.T) {
	l := MustLine(Pt(0, 0), Pt(1, 0), 2)
	l2, err := l.SetP2(Pt(2, 0))
	require.NoError(t, err)
	assert.Equal(t, Pt(1, 0), l.P2(), "receiver unchanged")
	assert.Equal(t, 2.0, l2.Length())

	_, err = l.SetP1(Pt(1, 0))
	assert.ErrorIs(t, err, ErrDegenerateLine)

	l3, err := l.SetEnds(0)
	require.NoError(t, err)
	assert.Equal(t, 0, l3.Ends())
}

func TestLineBasics(t *testing.T) {
	l := MustLine(Pt(0, 0), Pt(3, 4), 2)
	assert.Equal(t, 5.0, l.Length())
	assertApprox(t, Pt(0.6, 0.8), l.Direction())
	assert.Equal(t, Pt(1.5, 2), l.Midpoint())
	assert.Equal(t, Pt(3, 4), l.Reverse().P1())
	assertApprox(t, Pt(1.2, 1.6), l.PointAtLength(2))
	assertApprox(t, Pt(3, 4), l.PointAtPercent(1))
	assert.InDelta(t, math.Atan2(4, 3), l.Angle(), 1e-12)
}

func TestHasPointOnRespectsEnds(t *testing.T) {
	p1, p2 := Pt(0, 0), Pt(2, 0)
	tests := []struct {
		name string
		p    Point
		want [3]bool // ends 0, 1, 2
	}{
		{"inside segment", Pt(1, 0), [3]bool{true, true, true}},
		{"at p1", Pt(0, 0), [3]bool{true, true, true}},
		{"at p2", Pt(2, 0), [3]bool{true, true, true}},
		{"beyond p2", Pt(5, 0), [3]bool{true, true, false}},
		{"before p1", Pt(-1, 0), [3]bool{true, false, false}},
		{"off line", Pt(1, 1), [3]bool{false, false, false}},
		{"noise below precision", Pt(1, 1e-10), [3]bool{true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for ends := 0; ends <= 2; ends++ {
				l := MustLine(p1, p2, ends)
				assert.Equal(t, tt.want[ends], l.HasPointOn(tt.p, DefaultPrecision), "ends=%d HasPointOn", ends)
				assert.Equal(t, tt.want[0], l.HasPointAlong(tt.p, DefaultPrecision), "ends=%d HasPointAlong", ends)
			}
		})
	}
}

func TestLineProjection(t *testing.T) {
	l := MustLine(Pt(0, 0), Pt(2, 2), 2)
	assertApprox(t, Pt(1, 1), l.PointProjection(Pt(0, 2)))
	assertApprox(t, Pt(2, 2), l.ClipPoint(Pt(5, 5)), "beyond p2")
	assertApprox(t, Pt(0, 0), l.ClipPoint(Pt(-3, -1)), "before p1")
	assert.InDelta(t, math.Sqrt2, l.DistanceToPoint(Pt(0, 2)), 1e-12)

	shadow, err := MustLine(Pt(0, 0), Pt(10, 0), 2).ShadowOf(MustLine(Pt(1, 5), Pt(3, -2), 2))
	require.NoError(t, err)
	assert.True(t, shadow.IsEqualTo(MustLine(Pt(1, 0), Pt(3, 0), 2), DefaultPrecision), "ShadowOf = %v", shadow)

	_, err = MustLine(Pt(0, 0), Pt(1, 0), 2).ShadowOf(MustLine(Pt(0, 0), Pt(0, 1), 2))
	assert.ErrorIs(t, err, ErrDegenerateLine, "perpendicular shadow")
}

func TestLineRelations(t *testing.T) {
	base := MustLine(Pt(0, 0), Pt(1, 0), 2)
	tests := []struct {
		name      string
		other     Line
		parallel  bool
		collinear bool
	}{
		{"same", MustLine(Pt(0, 0), Pt(1, 0), 2), true, true},
		{"opposite direction", MustLine(Pt(5, 0), Pt(3, 0), 2), true, true},
		{"offset", MustLine(Pt(0, 1), Pt(1, 1), 2), true, false},
		{"crossing", MustLine(Pt(0, 0), Pt(1, 1), 2), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.parallel, base.IsParallelTo(tt.other, DefaultPrecision), "IsParallelTo")
			assert.Equal(t, tt.collinear, base.IsCollinearTo(tt.other, DefaultPrecision), "IsCollinearTo")
		})
	}
}

func TestLineIsEqualTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Line
		want bool
	}{
		{"segment same", MustLine(Pt(0, 0), Pt(1, 0), 2), MustLine(Pt(0, 0), Pt(1, 0), 2), true},
		{"segment reversed", MustLine(Pt(0, 0), Pt(1, 0), 2), MustLine(Pt(1, 0), Pt(0, 0), 2), true},
		{"segment different", MustLine(Pt(0, 0), Pt(1, 0), 2), MustLine(Pt(0, 0), Pt(2, 0), 2), false},
		{"ends differ", MustLine(Pt(0, 0), Pt(1, 0), 2), MustLine(Pt(0, 0), Pt(1, 0), 1), false},
		{"ray longer p2", MustLine(Pt(0, 0), Pt(1, 0), 1), MustLine(Pt(0, 0), Pt(3, 0), 1), true},
		{"ray reversed", MustLine(Pt(0, 0), Pt(1, 0), 1), MustLine(Pt(1, 0), Pt(0, 0), 1), false},
		{"infinite collinear", MustLine(Pt(0, 0), Pt(1, 0), 0), MustLine(Pt(7, 0), Pt(-2, 0), 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.IsEqualTo(tt.b, DefaultPrecision))
		})
	}
}

func TestLineOffset(t *testing.T) {
	tests := []struct {
		name   string
		line   Line
		dir    OffsetDirection
		wantP1 Point
	}{
		{"horizontal top", MustLine(Pt(0, 0), Pt(1, 0), 2), OffsetTop, Pt(0, 1)},
		{"horizontal bottom", MustLine(Pt(0, 0), Pt(1, 0), 2), OffsetBottom, Pt(0, -1)},
		{"reversed horizontal top", MustLine(Pt(1, 0), Pt(0, 0), 2), OffsetTop, Pt(1, 1)},
		{"vertical up left", MustLine(Pt(0, 0), Pt(0, 1), 2), OffsetLeft, Pt(-1, 0)},
		{"vertical up right", MustLine(Pt(0, 0), Pt(0, 1), 2), OffsetRight, Pt(1, 0)},
		{"vertical down left", MustLine(Pt(0, 1), Pt(0, 0), 2), OffsetLeft, Pt(-1, 1)},
		{"vertical down right", MustLine(Pt(0, 1), Pt(0, 0), 2), OffsetRight, Pt(1, 1)},
		{"positive is right of direction", MustLine(Pt(0, 0), Pt(1, 0), 2), OffsetPositive, Pt(0, -1)},
		{"negative is left of direction", MustLine(Pt(0, 0), Pt(1, 0), 2), OffsetNegative, Pt(0, 1)},
		{"positive on reversed", MustLine(Pt(1, 0), Pt(0, 0), 2), OffsetPositive, Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.Offset(tt.dir, 1)
			assertApprox(t, tt.wantP1, got.P1(), "Offset(%v) p1", tt.dir)
			assert.InDelta(t, tt.line.Length(), got.Length(), 1e-12, "length")
		})
	}
}

func TestOffsetPositiveIsOutwardForCCWSquare(t *testing.T) {
	corners := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	center := Pt(0.5, 0.5)
	for i := range corners {
		edge := MustLine(corners[i], corners[(i+1)%4], 2)
		moved := edge.Offset(OffsetPositive, 0.1)
		assert.Greater(t, moved.Midpoint().Distance(center), edge.Midpoint().Distance(center), "edge %d", i)
	}
}

func TestIntersectsWith(t *testing.T) {
	tests := []struct {
		name string
		a, b Line
		want Intersection
	}{
		{
			name: "crossing segments",
			a:    MustLine(Pt(-1, 0), Pt(1, 0), 2),
			b:    MustLine(Pt(0, -1), Pt(0, 1), 2),
			want: Intersection{Point: Pt(0, 0), HasPoint: true, OnLines: true},
		},
		{
			name: "crossing outside segment",
			a:    MustLine(Pt(-1, 0), Pt(1, 0), 2),
			b:    MustLine(Pt(3, -1), Pt(3, 1), 2),
			want: Intersection{Point: Pt(3, 0), HasPoint: true},
		},
		{
			name: "crossing on infinite line",
			a:    MustLine(Pt(-1, 0), Pt(1, 0), 0),
			b:    MustLine(Pt(3, -1), Pt(3, 1), 2),
			want: Intersection{Point: Pt(3, 0), HasPoint: true, OnLines: true},
		},
		{
			name: "ray pointing away",
			a:    MustLine(Pt(1, 0), Pt(2, 0), 1),
			b:    MustLine(Pt(0, -1), Pt(0, 1), 0),
			want: Intersection{Point: Pt(0, 0), HasPoint: true},
		},
		{
			name: "parallel",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 2),
			b:    MustLine(Pt(0, 1), Pt(1, 1), 2),
			want: Intersection{},
		},
		{
			name: "skew in 3D",
			a:    MustLine(Pt3(0, 0, 0), Pt3(1, 0, 0), 0),
			b:    MustLine(Pt3(0, 0, 1), Pt3(0, 1, 1), 0),
			want: Intersection{},
		},
		{
			name: "crossing in 3D",
			a:    MustLine(Pt3(0, 0, 0), Pt3(1, 1, 1), 0),
			b:    MustLine(Pt3(1, 0, 1), Pt3(0, 1, 0), 0),
			want: Intersection{Point: Pt3(0.5, 0.5, 0.5), HasPoint: true, OnLines: true},
		},
		{
			name: "collinear partial overlap",
			a:    MustLine(Pt(0, 0), Pt(2, 0), 2),
			b:    MustLine(Pt(1, 0), Pt(3, 0), 2),
			want: Intersection{Point: Pt(1.5, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
		{
			name: "collinear containment",
			a:    MustLine(Pt(0, 0), Pt(4, 0), 2),
			b:    MustLine(Pt(3, 0), Pt(1, 0), 2),
			want: Intersection{Point: Pt(2, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
		{
			name: "collinear touching",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 2),
			b:    MustLine(Pt(1, 0), Pt(2, 0), 2),
			want: Intersection{Point: Pt(1, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
		{
			name: "collinear gap",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 2),
			b:    MustLine(Pt(3, 0), Pt(2, 0), 2),
			want: Intersection{Point: Pt(1.5, 0), HasPoint: true, Collinear: true},
		},
		{
			name: "collinear ray and segment",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 1),
			b:    MustLine(Pt(-2, 0), Pt(3, 0), 2),
			want: Intersection{Point: Pt(1.5, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
		{
			name: "collinear rays same direction",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 1),
			b:    MustLine(Pt(2, 0), Pt(3, 0), 1),
			want: Intersection{Point: Pt(2, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
		{
			name: "collinear rays facing away",
			a:    MustLine(Pt(0, 0), Pt(-1, 0), 1),
			b:    MustLine(Pt(2, 0), Pt(3, 0), 1),
			want: Intersection{Point: Pt(1, 0), HasPoint: true, Collinear: true},
		},
		{
			name: "collinear infinite lines",
			a:    MustLine(Pt(0, 0), Pt(1, 0), 0),
			b:    MustLine(Pt(4, 0), Pt(5, 0), 0),
			want: Intersection{Point: Pt(2, 0), HasPoint: true, Collinear: true, OnLines: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.IntersectsWith(tt.b, DefaultPrecision)
			assertApprox(t, tt.want, got, "a.IntersectsWith(b)")
			assertApprox(t, got, tt.b.IntersectsWith(tt.a, DefaultPrecision), "order dependent")
		})
	}
}
