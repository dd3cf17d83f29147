package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type DBPinger interface {
	PingContext(ctx context.Context) error
}

// BrokerConn é o pedaço de *amqp091.Connection usado pelo readiness.
type BrokerConn interface {
	IsClosed() bool
}

type StatusHandler struct {
	DB        DBPinger
	RabbitMQ  BrokerConn
	Version   string
	StartTime time.Time
}

type WelcomeResponse struct {
	Mensagem          string `json:"mensagem" example:"Bem-vindo à API do CRM 👋"`
	Documentacao      string `json:"documentacao" example:"/docs"`
	PainelContatos    string `json:"painel_contatos" example:"/painel"`
	PainelFunil       string `json:"painel_funil" example:"/funil"`
	PainelIndicadores string `json:"painel_indicadores" example:"/indicadores"`
	Status            string `json:"status" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewStatusHandler aceita rabbitMQ nil quando a mensageria está desligada.
func NewStatusHandler(db DBPinger, rabbitMQ BrokerConn, version string) *StatusHandler {
	return &StatusHandler{
		DB:        db,
		RabbitMQ:  rabbitMQ,
		Version:   version,
		StartTime: time.Now(),
	}
}

// Root godoc
// @Summary      Boas-vindas e links úteis
// @Tags         status
// @Produce      json
// @Success      200  {object}  WelcomeResponse
// @Router       / [get]
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WelcomeResponse{
		Mensagem:          "Bem-vindo à API do CRM 👋",
		Documentacao:      "/docs",
		PainelContatos:    "/painel",
		PainelFunil:       "/funil",
		PainelIndicadores: "/indicadores",
		Status:            "ok",
	})
}

// Health godoc
// @Summary      Liveness
// @Tags         status
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready godoc
// @Summary      Readiness com o estado das dependências
// @Tags         status
// @Produce      json
// @Success      200  {object}  ReadinessResponse
// @Failure      503  {object}  ReadinessResponse
// @Router       /health/ready [get]
func (h *StatusHandler) Ready(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, ReadinessResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
