// Package availability abstracts appointment-slot lookup behind a provider
// interface so a real scheduling backend can replace the demo generator
// without touching the UI or handlers.
package availability

import (
	"context"
	"time"
)

// Slot is one bookable half-hour.
type Slot struct {
	Time      string `json:"time"`    // 24h, e.g. "09:30"
	Display   string `json:"display"` // e.g. "9:30 AM"
	Available bool   `json:"available"`
}

// Provider returns per-day slot lists keyed by ISO date (YYYY-MM-DD).
// Days with no bookable slots map to an empty list.
type Provider interface {
	Slots(ctx context.Context, from time.Time, days int) (map[string][]Slot, error)
}
