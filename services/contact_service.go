package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"widia-api/logger"
	"widia-api/mailer"
	"widia-api/models"
)

// ContactStore persists contact forms.
type ContactStore interface {
	Insert(ctx context.Context, f models.ContactForm) error
}

// ContactInput is a contact form as submitted by a visitor.
type ContactInput struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Service string  `json:"service" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

type ContactServiceOptions struct {
	// Recipient receives the notification emails.
	Recipient string
	// NotifyTimeout bounds the email step. Defaults to 10s.
	NotifyTimeout time.Duration
	Now           func() time.Time
	NewID         func() string
	Logger        logger.Logger
}

// PersistResult is the outcome of the store phase.
type PersistResult struct {
	Record models.ContactForm
}

// NotifyResult is the outcome of the email phase. It never fails the request.
type NotifyResult struct {
	Sent bool
	Err  error
}

// ContactService stores contact forms and notifies the team by email.
//
// Persisting is what makes a submission succeed; the email is best effort and
// its failure is only logged.
type ContactService struct {
	store         ContactStore
	mailer        mailer.Mailer
	recipient     string
	notifyTimeout time.Duration
	validate      *validator.Validate
	now           func() time.Time
	newID         func() string
	log           logger.Logger
}

func NewContactService(store ContactStore, m mailer.Mailer, opts ContactServiceOptions) *ContactService {
	s := &ContactService{
		store:         store,
		mailer:        m,
		recipient:     opts.Recipient,
		notifyTimeout: opts.NotifyTimeout,
		validate:      newValidator(),
		now:           opts.Now,
		newID:         opts.NewID,
		log:           opts.Logger,
	}
	if s.recipient == "" {
		s.recipient = "contato@widia.io"
	}
	if s.notifyTimeout <= 0 {
		s.notifyTimeout = 10 * time.Second
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.log == nil {
		s.log = logger.Log
	}
	return s
}

// Submit persists the form and then tries to send the notification. The
// stored record is returned whenever persisting succeeded.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (models.ContactForm, error) {
	persisted, err := s.Persist(ctx, in)
	if err != nil {
		return models.ContactForm{}, err
	}
	rec := persisted.Record

	res := s.Notify(ctx, rec)
	switch {
	case res.Sent:
		s.log.Infof("email sent for contact form submission from %s (%s)", rec.Name, rec.Email)
	case errors.Is(res.Err, mailer.ErrNotConfigured):
		s.log.Errorf("email settings not configured, contact form %s saved without notification", rec.ID)
	default:
		s.log.Errorf("failed to send email for contact form %s: %v", rec.ID, res.Err)
	}
	return rec, nil
}

// Persist validates the input, assigns id and timestamp and stores the record.
// Invalid input returns a *ValidationError and nothing is stored.
func (s *ContactService) Persist(ctx context.Context, in ContactInput) (PersistResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return PersistResult{}, newValidationError(err)
	}

	rec := models.ContactForm{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Service:   in.Service,
		Message:   in.Message,
		Timestamp: s.now().UTC(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return PersistResult{}, fmt.Errorf("%w: insert contact form: %w", ErrPersistence, err)
	}
	return PersistResult{Record: rec}, nil
}

// Notify emails the team about rec within the notify timeout.
func (s *ContactService) Notify(ctx context.Context, rec models.ContactForm) NotifyResult {
	msg, err := buildNotification(rec, s.recipient)
	if err != nil {
		return NotifyResult{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.mailer.Send(ctx, msg); err != nil {
		return NotifyResult{Err: err}
	}
	return NotifyResult{Sent: true}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
