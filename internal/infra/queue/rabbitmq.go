package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.crm"
	DLXName      = "ex.crm.dlx" // Dead Letter Exchange

	WonDealsQueue = "q.negocios.ganhos"
	WonDealsDLQ   = "q.negocios.ganhos.dlq"

	RoutingKeyDealCreated = "negocio.criado"
	RoutingKeyDealWon     = "negocio.ganho"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("falha ao declarar topologia: %w", err)
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func (r *RabbitMQ) Close() error {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		return r.Conn.Close()
	}
	return nil
}

// setupTopology declara o exchange de eventos, a fila de ganhos e a DLQ dela.
// negocio.criado não tem fila própria: fica disponível para quem quiser fazer bind.
func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(WonDealsDLQ, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(WonDealsDLQ, RoutingKeyDealWon, DLXName, false, nil)
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": RoutingKeyDealWon,
	}

	_, err = ch.QueueDeclare(WonDealsQueue, true, false, false, false, args)
	if err != nil {
		return err
	}

	return ch.QueueBind(WonDealsQueue, RoutingKeyDealWon, ExchangeName, false, nil)
}
