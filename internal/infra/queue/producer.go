package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/crm-api/internal/entity"
)

// DealEvent é o corpo publicado em negocio.criado e negocio.ganho.
type DealEvent struct {
	Evento         string       `json:"evento"`
	NegocioID      int64        `json:"negocio_id"`
	Titulo         string       `json:"titulo"`
	ValorPrevisto  *float64     `json:"valor_previsto,omitempty"`
	Fase           string       `json:"fase"`
	Origem         *string      `json:"origem,omitempty"`
	ContatoID      int64        `json:"contato_id"`
	ResponsavelID  *int64       `json:"responsavel_id,omitempty"`
	DataFechamento *entity.Date `json:"data_fechamento,omitempty"`

	ResponsavelNome  string `json:"responsavel_nome,omitempty"`
	ResponsavelEmail string `json:"responsavel_email,omitempty"`

	OcorridoEm time.Time `json:"ocorrido_em"`
}

// NewDealEvent monta o evento a partir do negócio; o responsável é opcional.
func NewDealEvent(evento string, d *entity.Deal, responsavel *entity.Employee, at time.Time) DealEvent {
	ev := DealEvent{
		Evento:         evento,
		NegocioID:      d.ID,
		Titulo:         d.Titulo,
		ValorPrevisto:  d.ValorPrevisto,
		Fase:           d.Fase,
		Origem:         d.Origem,
		ContatoID:      d.ContatoID,
		ResponsavelID:  d.ResponsavelID,
		DataFechamento: d.DataFechamento,
		OcorridoEm:     at.UTC(),
	}
	if responsavel != nil {
		ev.ResponsavelNome = responsavel.Nome
		if responsavel.Email != nil {
			ev.ResponsavelEmail = *responsavel.Email
		}
	}
	return ev
}

// channelPublisher é a parte do *amqp.Channel usada pelo producer.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch channelPublisher
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

// PublishDealEvent usa o nome do evento como routing key.
func (p *RabbitMQProducer) PublishDealEvent(ctx context.Context, event DealEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		event.Evento,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Timestamp:    event.OcorridoEm,
			Type:         event.Evento,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
