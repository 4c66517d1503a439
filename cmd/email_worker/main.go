package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/pommyhq/accounts-api/config"
	"github.com/pommyhq/accounts-api/pkg/helpers"
	"github.com/pommyhq/accounts-api/pkg/mailer"
)

// Consumes email jobs from RabbitMQ and delivers them through Mailgun.
// Runs as a separate process so mail provider latency never touches the API.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Warn("MAIL_SEND_ENABLED is false; worker will consume and drop jobs")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker consuming from queue %q", cfg.RabbitMQEmailQueue)

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed, exiting")
				return
			}
			handleDelivery(ctx, d, mg, cfg.MailSendEnabled, logger)
		}
	}
}

func handleDelivery(ctx context.Context, d amqp.Delivery, mg *mailer.Mailgun, sendEnabled bool, logger *logrus.Logger) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		// Malformed jobs can never succeed; drop them instead of requeueing.
		logger.Errorf("dropping malformed email job: %v", err)
		_ = d.Nack(false, false)
		return
	}

	if !sendEnabled {
		logger.Infof("mail sending disabled, dropping job for %s", job.To)
		_ = d.Ack(false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err := mg.Send(sendCtx, job.To, job.Subject, job.Text, job.HTML)
	cancel()
	if err != nil {
		logger.Errorf("failed to send email to %s: %v", job.To, err)
		// Requeue once; the redelivered flag breaks retry loops.
		_ = d.Nack(false, !d.Redelivered)
		return
	}

	logger.Infof("sent email to %s", job.To)
	_ = d.Ack(false)
}
