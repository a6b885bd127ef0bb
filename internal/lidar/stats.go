package lidar

import (
	"fmt"
	"sync"
	"time"
)

// ScanStats tracks scan counters with thread-safe operations.
type ScanStats struct {
	mu        sync.Mutex
	scanCount int64
	rayCount  int64
	hitCount  int64
	missCount int64
	lastReset time.Time
}

// NewScanStats creates a new ScanStats instance
func NewScanStats() *ScanStats {
	return &ScanStats{
		lastReset: time.Now(),
	}
}

// AddScan records one completed scan of rays rays with hits returns.
func (ss *ScanStats) AddScan(rays, hits int) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.scanCount++
	ss.rayCount += int64(rays)
	ss.hitCount += int64(hits)
	ss.missCount += int64(rays - hits)
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Scans    int64
	Rays     int64
	Hits     int64
	Misses   int64
	Duration time.Duration
}

// GetAndReset returns current stats and resets counters
func (ss *ScanStats) GetAndReset() StatsSnapshot {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	now := time.Now()
	snap := StatsSnapshot{
		Scans:    ss.scanCount,
		Rays:     ss.rayCount,
		Hits:     ss.hitCount,
		Misses:   ss.missCount,
		Duration: now.Sub(ss.lastReset),
	}

	ss.scanCount = 0
	ss.rayCount = 0
	ss.hitCount = 0
	ss.missCount = 0
	ss.lastReset = now

	return snap
}

// LogStats writes the counters to the ops stream and resets them.
func (ss *ScanStats) LogStats() {
	snap := ss.GetAndReset()
	if snap.Scans == 0 {
		return
	}
	hitRate := 0.0
	if snap.Rays > 0 {
		hitRate = 100 * float64(snap.Hits) / float64(snap.Rays)
	}
	Opsf("Scan stats: %s scans, %s rays, %s hits (%.1f%%), %s misses in %v",
		FormatWithCommas(snap.Scans), FormatWithCommas(snap.Rays),
		FormatWithCommas(snap.Hits), hitRate, FormatWithCommas(snap.Misses),
		snap.Duration.Round(time.Millisecond))
}

// FormatWithCommas formats a number with thousands separators
func FormatWithCommas(n int64) string {
	str := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	if len(str) <= 3 {
		return str
	}

	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
