// Package kinematics moves scalars and points under constant deceleration.
//
// Each call runs a small state machine: the body moves, may bounce off a
// boundary one or more times, decelerates and finally stops. Two modes are
// offered:
//
//   - step mode (DecelerateValue, DeceleratePoint) advances the state by a
//     fixed time and is used once per animation frame;
//   - run-to-rest mode (CalculateStop, CalculateStopPoint) finds where the
//     body stops and how long that takes.
//
// Deceleration always opposes the velocity. When a move would cross the
// boundary the kernel solves for the exact time the boundary is reached,
// reflects the velocity there, scales it by 1 - bounceLoss and continues
// with the remaining time. All duration and position comparisons are made
// at a fixed number of decimal places (8 by default) so that floating-point
// noise at a boundary cannot cause endless bounces.
package kinematics
