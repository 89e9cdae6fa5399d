package progression

import "github.com/alexanderramin/apex/internal/domain"

// DefaultReadinessWindow is the number of daily samples kept.
const DefaultReadinessWindow = 30

// RecordReadiness stores the day's sample in a copy of p. A sample for the
// same date as the latest one replaces it. History keeps the newest window
// samples; a non-positive window uses DefaultReadinessWindow.
func RecordReadiness(p *domain.UserProfile, sample domain.ReadinessSample, window int) *domain.UserProfile {
	if window <= 0 {
		window = DefaultReadinessWindow
	}
	c := p.Clone()
	if last, ok := c.LatestReadiness(); ok && last.Date == sample.Date {
		c.ReadinessHistory[len(c.ReadinessHistory)-1] = sample
	} else {
		c.ReadinessHistory = append(c.ReadinessHistory, sample)
	}
	if n := len(c.ReadinessHistory); n > window {
		c.ReadinessHistory = c.ReadinessHistory[n-window:]
	}
	return c
}
