package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned by Send when host or credentials are missing.
var ErrNotConfigured = errors.New("mailer: smtp settings not configured")

// implicitTLSPort is the SMTPS port; every other port upgrades with STARTTLS.
const implicitTLSPort = 465

// Message is an HTML email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPMailer opens a new connection per message and sends as Username.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

// Configured reports whether host, username and password are all set.
func (m *SMTPMailer) Configured() bool {
	return strings.TrimSpace(m.cfg.Host) != "" &&
		strings.TrimSpace(m.cfg.Username) != "" &&
		m.cfg.Password != ""
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("mailer: new client: %w", err)
	}

	mm := mail.NewMsg()
	if err := mm.From(m.cfg.Username); err != nil {
		return fmt.Errorf("mailer: from address: %w", err)
	}
	if err := mm.To(msg.To...); err != nil {
		return fmt.Errorf("mailer: to address: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if UsesImplicitTLS(m.cfg.Port) {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}

// UsesImplicitTLS reports whether port expects TLS from the first byte.
func UsesImplicitTLS(port int) bool {
	return port == implicitTLSPort
}
