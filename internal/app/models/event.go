package models

import "time"

// Event represents a community event shown on the events page and slider.
// Date is free text exactly as entered by the operator ("Dec 2025"), so no
// chronological ordering is enforced on it.
type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// InSlider reports whether the event belongs in the home slider, which shows
// upcoming and ongoing events only.
func (e *Event) InSlider() bool {
	return e.Status == EventUpcoming || e.Status == EventOngoing
}
