package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WonDealNotifier avisa o responsável que o negócio foi ganho (hoje, por e-mail).
type WonDealNotifier interface {
	SendDealWon(ctx context.Context, event DealEvent) error
}

// channelConsumer é a parte do *amqp.Channel usada pelo worker.
type channelConsumer interface {
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel  channelConsumer
	Notifier WonDealNotifier
}

func NewWorker(ch *amqp.Channel, notifier WonDealNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

// Start consome a fila até o contexto ser cancelado ou o canal fechar.
// A mensagem em processamento é sempre confirmada ou devolvida antes do retorno.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName, // fila
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf("🐇 [WORKER] Aguardando eventos na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Printf("🛑 [WORKER] Encerrando consumo de '%s'", queueName)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de consumo de '%s' foi fechado", queueName)
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var event DealEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Printf("❌ [WORKER] JSON inválido (msg %s): %s", d.MessageId, err)
		// mensagem malformada vai direto para a DLQ
		d.Nack(false, false)
		return
	}

	if event.ResponsavelEmail == "" {
		log.Printf("⚠️ [WORKER] Negócio %d ganho sem responsável com e-mail. Ignorando.", event.NegocioID)
		d.Ack(false)
		return
	}

	if err := w.Notifier.SendDealWon(ctx, event); err != nil {
		if ctx.Err() != nil {
			log.Printf("↩️ [WORKER] Encerrando no meio do envio do negócio %d. Devolvendo para a fila.", event.NegocioID)
			d.Nack(false, true)
			return
		}
		log.Printf("❌ [WORKER] Falha ao notificar %s sobre o negócio %d: %s", event.ResponsavelEmail, event.NegocioID, err)
		d.Nack(false, false)
		return
	}

	log.Printf("✅ [WORKER] %s notificado do ganho do negócio %d", event.ResponsavelEmail, event.NegocioID)
	d.Ack(false)
}
