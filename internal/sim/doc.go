// Package sim hosts the frame loop around the scan engine.
//
// A World holds the Room (the polygon being scanned), the Robot (the pose
// holder) and the most recent scan. A Simulator runs an ordered, static
// list of Plugins once per frame. Rendering and input handling are left to
// the host; only the LiDAR plugin and its throttle live here.
package sim
