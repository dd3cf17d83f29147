package mail

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/crm-api/internal/infra/queue"
	"github.com/xavierca1/crm-api/internal/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var dealWonTemplate = template.Must(template.ParseFS(templateFS, "templates/negocio_ganho.html"))

// Dialer é o pedaço do *gomail.Dialer usado pelo sender.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	Dialer  Dialer
	From    string
	BaseURL string
}

type dealWonEmailData struct {
	Nome           string
	Titulo         string
	Valor          string
	Origem         string
	DataFechamento string
	PainelURL      string
}

func NewEmailSender(host string, port int, user, password, from, baseURL string) *EmailSender {
	return &EmailSender{
		Dialer:  gomail.NewDialer(host, port, user, password),
		From:    from,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SendDealWon avisa o responsável que o negócio foi ganho.
func (s *EmailSender) SendDealWon(ctx context.Context, event queue.DealEvent) error {
	if event.ResponsavelEmail == "" {
		return errors.New("evento sem e-mail do responsável")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.renderDealWon(event)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", event.ResponsavelEmail)
	m.SetHeader("Subject", fmt.Sprintf("Negócio ganho: %s 🏆", event.Titulo))
	m.SetBody("text/html", body)

	if err := s.Dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func (s *EmailSender) renderDealWon(event queue.DealEvent) (string, error) {
	data := dealWonEmailData{
		Nome:      event.ResponsavelNome,
		Titulo:    event.Titulo,
		Valor:     "não informado",
		PainelURL: s.BaseURL + "/indicadores",
	}
	if data.Nome == "" {
		data.Nome = "time"
	}
	if event.ValorPrevisto != nil {
		data.Valor = report.FormatBRL(*event.ValorPrevisto)
	}
	if event.Origem != nil {
		data.Origem = *event.Origem
	}
	if event.DataFechamento != nil {
		data.DataFechamento = event.DataFechamento.Format("02/01/2006")
	}

	var body bytes.Buffer
	if err := dealWonTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}
