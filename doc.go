// Package motion provides the motion-physics and geometric-transform core
// of an interactive diagram and animation toolkit.
//
// # Overview
//
// Given an element's pose (position, rotation, scale) and a release velocity,
// motion computes how the element decelerates, bounces off boundaries with
// energy loss and comes to rest. It also provides the composable Transform
// algebra that layout, drag handling and rendering code build on.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/motion/bounds"
//	    "github.com/gogpu/motion/geom"
//	    "github.com/gogpu/motion/kinematics"
//	)
//
//	rect := bounds.MustRect(-4.5, -1, 4.5, 1)
//	res := kinematics.CalculateStopPoint(geom.Pt(0, 0), geom.Pt(5, 0), 1,
//	    kinematics.WithBounds(rect))
//	// res.Duration == 5, res.Point == (-3.5, 0)
//
// # Architecture
//
// The library is organized into:
//   - geom: Point, Line and Plane primitives, rounding and serialization
//   - bounds: RangeBounds, RectBounds and LineBounds behind one interface
//   - kinematics: scalar and vector deceleration with bounces
//   - transform: ordered scale/rotate/translate Transforms, matrices,
//     algebra and whole-pose deceleration
//   - profile: YAML/JSON motion profiles that configure deceleration
//
// # Coordinate System
//
// Angles are in radians, 0 is along +X and increases counter-clockwise.
// 2D values keep Z at 0.
//
// # Precision
//
// Equality, containment and boundary tests round to a number of decimal
// places (8 by default) to absorb floating-point noise from repeated trig
// and matrix operations.
package motion

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
