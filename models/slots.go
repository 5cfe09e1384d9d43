package models

// Slot is a discrete bookable interval produced by the slot generator,
// in minutes from midnight. [Start, Start+duration) is fully contained
// within one availability window.
type Slot struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ResolvedDay is the authoritative availability for one doctor and one
// calendar date, after override/blocked/template resolution.
type ResolvedDay struct {
	Blocked bool         `json:"blocked"`
	Windows []TimeWindow `json:"windows,omitempty"`
}
