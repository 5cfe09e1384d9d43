package models

// TimeWindow is a half-open availability window within one day.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM).
type TimeWindow struct {
	Start     int  `bson:"start" json:"start"`
	End       int  `bson:"end" json:"end"`
	Available bool `bson:"available" json:"available"`
}

// ClockRange is the wire representation of a slot, zero-padded 24-hour "HH:MM".
type ClockRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}
