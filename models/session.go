package models

import "time"

// Session statuses.
const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session modalities.
const (
	SessionTypePresential = "presential"
	SessionTypeRemote     = "remote"
)

// Session represents a single therapy appointment.
type Session struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patientId,omitempty" json:"patientId,omitempty"`
	PatientName   string    `bson:"patientName,omitempty" json:"patientName,omitempty"` // denormalized display name
	ScheduledFrom time.Time `bson:"scheduledFrom" json:"scheduledFrom"`
	ScheduledTo   time.Time `bson:"scheduledTo" json:"scheduledTo"`
	Status        string    `bson:"status" json:"status"`           // pending, confirmed, completed, cancelled
	SessionType   string    `bson:"sessionType" json:"sessionType"` // presential or remote
	Cost          float64   `bson:"cost,omitempty" json:"cost,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SessionNote is a clinical note attached to a session.
type SessionNote struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	PatientID string    `bson:"patientId,omitempty" json:"patientId,omitempty"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
