package response

import "time"

type AvailabilityResponse struct {
	UnitID    string    `json:"unit_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Available bool      `json:"available"`
}
