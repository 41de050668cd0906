package entity

import "time"

// Barangay is an organizational unit registered on the portal.
// SubmitterID references the profile that originally registered it and is
// the ownership anchor for admin escalation. Read-only to this service.
type Barangay struct {
	ID          string
	Name        string
	SubmitterID string
	CreatedAt   time.Time
}
