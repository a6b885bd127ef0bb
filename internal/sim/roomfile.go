package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

// roomFile is the on-disk room layout: one [x1, y1, x2, y2] entry per wall.
type roomFile struct {
	Segments [][]float64 `json:"segments"`
}

// LoadRoom reads a JSON room file.
func LoadRoom(path string) (*Room, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("room file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat room file: %w", err)
	}
	const maxFileSize = 4 * 1024 * 1024 // 4MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("room file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room file: %w", err)
	}
	return ParseRoom(data)
}

// ParseRoom decodes a room from JSON. Every entry must have exactly four
// coordinates and a non-zero length.
func ParseRoom(data []byte) (*Room, error) {
	var rf roomFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse room JSON: %w", err)
	}

	room := NewRoom()
	for i, s := range rf.Segments {
		if len(s) != 4 {
			return nil, fmt.Errorf("segment %d: want 4 coordinates, got %d", i, len(s))
		}
		if err := room.AppendSegment(geometry.Seg(s[0], s[1], s[2], s[3])); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return room, nil
}
