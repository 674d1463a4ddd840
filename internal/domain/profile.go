package domain

import "github.com/google/uuid"

// Profile member profile as supplied by the identity collaborator
type Profile struct {
	ID       uuid.UUID
	FullName string
	Email    string
}
