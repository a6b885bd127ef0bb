// Package lidar simulates a rotating range sensor.
//
// Responsibilities: casting evenly spaced beams from a pose against a
// geometry.Polygon, keeping the nearest hit per beam, perturbing each hit
// along its beam with Gaussian range noise, and reporting scan statistics.
// Key types: Scanner, Noise, ScanStats, RangeSummary.
//
// Logging goes through three optional streams (ops, diag, trace); see
// SetLogWriters.
package lidar
