package transform

import (
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/motion/geom"
)

// Matrix returns the 4x4 homogeneous matrix of the transform in row major
// order. Components are folded in def order so the first component is
// applied to a point first: for def [c1, c2, c3] the result is C3·C2·C1.
func (t Transform) Matrix() f64.Mat4 {
	acc := identity4()
	for _, c := range t.def {
		var next mat.Dense
		next.Mul(componentMatrix(c), acc)
		acc = &next
	}
	var m f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = acc.At(r, c)
		}
	}
	return m
}

// Matrix2D returns the XY affine part of Matrix:
//
//	| a  b  c |
//	| d  e  f |
//
// It is exact for transforms that only rotate about Z.
func (t Transform) Matrix2D() f64.Aff3 {
	m := t.Matrix()
	return f64.Aff3{
		m[0], m[1], m[3],
		m[4], m[5], m[7],
	}
}

// TransformPoint applies the transform to p.
func (t Transform) TransformPoint(p geom.Point) geom.Point {
	return Apply(t.Matrix(), p)
}

// Apply multiplies the homogeneous point (p, 1) by m.
func Apply(m f64.Mat4, p geom.Point) geom.Point {
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w == 0 {
		w = 1
	}
	return geom.Point{
		X: (m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]) / w,
		Y: (m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]) / w,
		Z: (m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]) / w,
	}
}

func identity4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

func componentMatrix(c Component) *mat.Dense {
	switch c := c.(type) {
	case Scale:
		return mat.NewDense(4, 4, []float64{
			c.X, 0, 0, 0,
			0, c.Y, 0, 0,
			0, 0, c.Z, 0,
			0, 0, 0, 1,
		})
	case Translate:
		return mat.NewDense(4, 4, []float64{
			1, 0, 0, c.X,
			0, 1, 0, c.Y,
			0, 0, 1, c.Z,
			0, 0, 0, 1,
		})
	case Rotate:
		// X first, then Y, then Z
		var yx, zyx mat.Dense
		yx.Mul(rotationY(c.Y), rotationX(c.X))
		zyx.Mul(rotationZ(c.Z), &yx)
		return &zyx
	}
	return identity4()
}

func rotationX(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

func rotationY(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(4, 4, []float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

func rotationZ(a float64) *mat.Dense {
	sin, cos := math.Sincos(a)
	return mat.NewDense(4, 4, []float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}
