package models

import "time"

// DateOverride is a date-specific schedule record for a doctor. When present
// for a date it fully supersedes the weekly template for that date.
type DateOverride struct {
	ID        string       `bson:"id" json:"id"`
	DoctorID  string       `bson:"doctor_id" json:"doctor_id"`
	Date      string       `bson:"date" json:"date"` // "YYYY-MM-DD", unique per doctor
	Available bool         `bson:"available" json:"available"`
	Windows   []TimeWindow `bson:"windows,omitempty" json:"windows,omitempty"`
	Reason    string       `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}
