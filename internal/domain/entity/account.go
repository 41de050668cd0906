package entity

import "time"

// Account is an entry in the credential store, the canonical authentication
// registry. Only email existence is consumed by this service.
type Account struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
