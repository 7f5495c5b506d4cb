package dto

import (
	"time"

	"widia-api/models"
)

// StatusCheckCreateDTO requires client_name to be present; an empty string is accepted.
type StatusCheckCreateDTO struct {
	ClientName *string `json:"client_name" binding:"required" example:"landing-page"`
}

type StatusCheckDTO struct {
	ID         string    `json:"id" example:"0b6f1c9e-7d0a-4d7e-9a57-1f3c2a4b5c6d"`
	ClientName string    `json:"client_name" example:"landing-page"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewStatusCheckDTO(s models.StatusCheck) StatusCheckDTO {
	return StatusCheckDTO{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp,
	}
}
