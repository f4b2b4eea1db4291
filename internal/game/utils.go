package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/particle-field/internal/particles"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func hudLine(stats particles.FrameStats, avg, uptime time.Duration) string {
	return fmt.Sprintf("particles %d  lines %d (near %d)  frame %.2fms  up %s",
		stats.Particles, stats.Lines, stats.NearLines,
		float64(avg)/float64(time.Millisecond), formatDuration(uptime))
}
