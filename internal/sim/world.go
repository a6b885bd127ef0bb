package sim

import (
	"errors"
	"time"

	"github.com/banshee-data/lidar-sim/internal/geometry"
	"github.com/banshee-data/lidar-sim/internal/lidar"
)

// ErrDegenerateSegment is returned when a zero-length segment is offered to
// a Room.
var ErrDegenerateSegment = errors.New("segment has zero length")

// Robot carries the sensor. Its Position is the scan pose; the scanner
// reads it by value at the start of each scan and never writes it.
type Robot struct {
	Position geometry.Point
}

// NewRobot places a robot at (x, y).
func NewRobot(x, y float64) *Robot {
	return &Robot{Position: geometry.Pt(x, y)}
}

// MoveBy shifts the robot by delta.
func (r *Robot) MoveBy(delta geometry.Point) {
	r.Position = r.Position.Add(delta)
}

// Room owns the polygon the sensor scans. Segments are only ever appended.
type Room struct {
	polygon *geometry.Polygon
}

// NewRoom returns an empty room.
func NewRoom() *Room {
	return &Room{polygon: geometry.NewPolygon()}
}

// AppendSegment adds s to the room boundary. Zero-length segments are
// rejected with ErrDegenerateSegment.
func (r *Room) AppendSegment(s geometry.Segment) error {
	if s.Degenerate() {
		lidar.Diagf("room: rejecting zero-length segment at %v", s.A)
		return ErrDegenerateSegment
	}
	r.polygon.Append(s)
	return nil
}

// Polygon returns the room boundary.
func (r *Room) Polygon() *geometry.Polygon {
	return r.polygon
}

// ScanFrame is one completed scan.
type ScanFrame struct {
	ID     string
	Frame  int
	Taken  time.Time
	Pose   geometry.Point
	Points []geometry.Point
}

// World is the state shared by every plugin during a frame.
type World struct {
	Room  *Room
	Robot *Robot

	// Frame counts completed Simulator steps.
	Frame int

	// LidarPoints holds the points of the latest scan.
	LidarPoints []geometry.Point
	LastScan    *ScanFrame
}

// NewWorld builds a world around room and robot.
func NewWorld(room *Room, robot *Robot) *World {
	return &World{Room: room, Robot: robot}
}
