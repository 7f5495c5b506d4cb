package dto

import (
	"time"

	"widia-api/models"
)

// ContactFormCreateDTO is the contact form body. Validation happens in the
// service so the rules live in one place.
type ContactFormCreateDTO struct {
	Name    string  `json:"name" example:"Maria Silva"`
	Email   string  `json:"email" example:"maria@example.com"`
	Phone   *string `json:"phone" example:"+55 11 99999-0000"`
	Company *string `json:"company" example:"ACME"`
	Service string  `json:"service" example:"automacao"`
	Message string  `json:"message" example:"Gostaria de automatizar meu atendimento."`
}

type ContactFormDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewContactFormDTO(f models.ContactForm) ContactFormDTO {
	return ContactFormDTO{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Company:   f.Company,
		Service:   f.Service,
		Message:   f.Message,
		Timestamp: f.Timestamp,
	}
}
