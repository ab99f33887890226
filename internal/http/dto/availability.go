package dto

import "ashara.health/site/internal/availability"

// AvailabilityResponse maps ISO dates to that day's slot list.
type AvailabilityResponse struct {
	Days map[string][]availability.Slot `json:"days"`
}
