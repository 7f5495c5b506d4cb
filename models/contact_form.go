package models

import (
	"time"
)

// ContactForm is a website contact submission. Documents are never updated
// after insertion.
// Collection: contact_forms
type ContactForm struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     *string   `bson:"phone" json:"phone"`
	Company   *string   `bson:"company" json:"company"`
	Service   string    `bson:"service" json:"service"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
