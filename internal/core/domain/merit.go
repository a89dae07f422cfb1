package domain

import (
	"strings"
	"time"
)

// Merit is a catalog entry shared by every user. Only its creator may change
// or remove it.
type Merit struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Rating        int       `json:"rating"`
	Prerequisites string    `json:"prerequisites,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MeritInput carries the writable fields of a merit for create and replace.
type MeritInput struct {
	Name          string
	Rating        int
	Prerequisites string
	Description   string
}

// Validate requires a name and a positive rating.
func (in MeritInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return MissingField("name")
	}
	if in.Rating == 0 {
		return MissingField("rating")
	}
	if in.Rating < 0 {
		return NewValidationError("rating", "`rating` must be at least 1")
	}
	return nil
}
