package models

import (
	"strings"
	"time"
)

// Patient represents a patient record owned by the therapist.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	BirthDate string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"` // e.g., "1990-04-21"
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`         // free-form intake notes
	Archived  bool      `bson:"archived" json:"archived"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayName returns the patient's full name for calendar titles and lists.
func (p *Patient) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
