package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"widia-api/mailer"
	"widia-api/models"
)

// serviceLabels maps the contact form service codes to the names shown in
// the notification email. Unknown codes are shown verbatim.
var serviceLabels = map[string]string{
	"geral":       "Informações Gerais",
	"automacao":   "Automação de Processos",
	"copilot":     "Desenvolvimento de Copilots",
	"consultoria": "Consultoria de IA",
	"parceria":    "Proposta de Parceria",
}

func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	return code
}

var (
	messageRenderer  = goldmark.New()
	messageSanitizer = bluemonday.UGCPolicy()
)

var notificationTemplate = template.Must(template.New("contact").Parse(`<html>
<body>
    <h2>Novo pedido de contato pelo site</h2>
    <p><strong>Nome:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Telefone:</strong> {{.Phone}}</p>
    <p><strong>Empresa:</strong> {{.Company}}</p>
    <p><strong>Serviço:</strong> {{.Service}}</p>
    <p><strong>Mensagem:</strong></p>
    {{.Message}}
    <hr>
    <p><em>Este email foi enviado automaticamente pelo formulário de contato do site.</em></p>
</body>
</html>
`))

type notificationData struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message template.HTML
}

// buildNotification renders the email sent to the team for a stored form.
func buildNotification(f models.ContactForm, recipient string) (mailer.Message, error) {
	label := ServiceLabel(f.Service)
	data := notificationData{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   valueOr(f.Phone, "Não informado"),
		Company: valueOr(f.Company, "Não informada"),
		Service: label,
		Message: renderMessage(f.Message),
	}

	var body bytes.Buffer
	if err := notificationTemplate.Execute(&body, data); err != nil {
		return mailer.Message{}, fmt.Errorf("render contact notification: %w", err)
	}
	return mailer.Message{
		To:       []string{recipient},
		Subject:  fmt.Sprintf("Novo Contato - %s - %s", f.Name, label),
		HTMLBody: body.String(),
	}, nil
}

// renderMessage formats the visitor's message as markdown and strips anything
// unsafe from the result.
func renderMessage(msg string) template.HTML {
	var buf bytes.Buffer
	if err := messageRenderer.Convert([]byte(msg), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(msg) + "</p>")
	}
	return template.HTML(messageSanitizer.Sanitize(buf.String()))
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
