package availability

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	openHour       = 9
	closeHour      = 17
	slotMinutes    = 30
	unavailability = 0.3
)

// MockProvider generates demo availability: weekdays only, half-hour slots
// from 9:00 AM through 5:00 PM, each randomly unavailable with p=0.3.
// There is no scheduling system behind it.
type MockProvider struct {
	mu   sync.Mutex // rand.Rand is not safe for concurrent use
	rand *rand.Rand
}

// NewMockProvider seeds the generator. Pass 0 for a time-based seed.
func NewMockProvider(seed uint64) *MockProvider {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &MockProvider{rand: rand.New(rand.NewPCG(seed, seed))}
}

func (p *MockProvider) Slots(_ context.Context, from time.Time, days int) (map[string][]Slot, error) {
	result := make(map[string][]Slot, days)

	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		date := day.Format("2006-01-02")

		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			result[date] = []Slot{}
			continue
		}

		result[date] = p.daySlots()
	}

	return result, nil
}

func (p *MockProvider) daySlots() []Slot {
	p.mu.Lock()
	defer p.mu.Unlock()

	var slots []Slot

	for hour := openHour; hour <= closeHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			if hour == closeHour && minute > 0 {
				break // last slot of the day is 5:00 PM
			}

			slots = append(slots, Slot{
				Time:      fmt.Sprintf("%02d:%02d", hour, minute),
				Display:   displayTime(hour, minute),
				Available: p.rand.Float64() > unavailability,
			})
		}
	}

	return slots
}

func displayTime(hour, minute int) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h := hour
	switch {
	case h > 12:
		h -= 12
	case h == 0:
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, ampm)
}
