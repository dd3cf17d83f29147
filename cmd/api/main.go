package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/xavierca1/crm-api/internal/config"
	"github.com/xavierca1/crm-api/internal/infra/database"
	"github.com/xavierca1/crm-api/internal/infra/http/middleware"
	"github.com/xavierca1/crm-api/internal/infra/mail"
	"github.com/xavierca1/crm-api/internal/infra/queue"
)

// @title        CRM API
// @version      1.0
// @description  Contatos, negócios e funcionários de um CRM simples, com painéis HTML de acompanhamento.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialect, err := database.DialectFor(cfg.DatabaseDriver)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	db, err := database.NewDBConnection(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db, dialect); err != nil {
		log.Fatalf("❌ Falha ao criar as tabelas: %v", err)
	}
	log.Printf("🗄️  Banco pronto (%s)", dialect)

	deps := routerDeps{Config: cfg, DB: db, Dialect: dialect}
	var workers sync.WaitGroup

	// Mensageria é opcional: sem RABBITMQ_URL os eventos de negócio ficam desligados
	if cfg.EventsEnabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer rabbitMQ.Close()

		deps.Events = queue.NewProducer(rabbitMQ.Ch)
		deps.Broker = rabbitMQ.Conn
		log.Println("🐇 RabbitMQ conectado, eventos de negócio ligados")

		if cfg.MailEnabled() {
			sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, "http://localhost:"+cfg.Port)
			worker := queue.NewWorker(rabbitMQ.Ch, sender)
			workers.Go(func() {
				if err := worker.Start(ctx, queue.WonDealsQueue); err != nil {
					log.Printf("❌ Worker de negócios ganhos parou: %v", err)
				}
			})
		} else {
			log.Println("⚠️  MAIL_HOST vazio, worker de negócios ganhos não iniciado")
		}
	}

	if cfg.RateLimitRPS > 0 {
		deps.Limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		deps.Limiter.StartJanitor(ctx, time.Minute)
	}

	router, err := newRouter(deps)
	if err != nil {
		log.Fatalf("❌ Falha ao montar as rotas: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🔥 CRM API rodando na porta %s (%s)", cfg.Port, cfg.AppEnv)
		if cfg.IsDevelopment() {
			log.Printf("🌱 Seed disponível em POST http://localhost:%s/dev/seed", cfg.Port)
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erro no servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Encerrando...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Erro ao encerrar o servidor: %v", err)
	}

	// o canal do RabbitMQ só fecha (defer) depois do worker confirmar a mensagem em andamento
	log.Println("⏳ Aguardando o worker terminar...")
	workers.Wait()
}
