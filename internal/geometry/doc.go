// Package geometry owns the 2D primitives used by the simulated LiDAR.
//
// Responsibilities: points and vector arithmetic, bounded segments, implicit
// lines (Ax + By + C = 0), forward-restricted rays, and segment polygons
// with ray-casting containment.
// Key types: Point, Segment, Line, Ray, Polygon.
//
// Dependency rule: geometry depends on nothing else in this module. It
// knows nothing about scanning, noise, rendering, or editor state.
//
// Degenerate input is never an error here. A zero-length Segment yields a
// Line with A = B = 0, and every intersection against such a line fails
// the determinant test, so it silently never hits anything.
package geometry
