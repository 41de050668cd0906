package entity

import "time"

// Profile status values. Escalation only ever moves pending -> approved;
// approved -> approved is a permitted no-op.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// RoleAdmin is the role a profile is elevated to on escalation.
const RoleAdmin = "admin"

// Profile is the application-level user record. It duplicates the email held
// by the credential store and additionally carries phone, role and status.
// One row per user; created at registration, mutated only by escalation here.
type Profile struct {
	ID         string
	Email      string
	Phone      string
	Name       string
	Role       string
	IsAdmin    bool
	Status     string
	BarangayID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
