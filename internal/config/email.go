package config

import (
	"context"
	"os"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ResendConfig struct {
	APIKey string
	From   string
}

// NewResendConfig reads the outbound-email settings. Email is a best-effort
// concern, so missing credentials disable sending instead of aborting startup.
func NewResendConfig(logger *zap.Logger) *ResendConfig {
	apiKey := os.Getenv("RESEND_API_KEY")
	from := os.Getenv("FROM_EMAIL")
	if apiKey == "" || from == "" {
		logger.Warn("RESEND_API_KEY or FROM_EMAIL not set, outbound email disabled")
	}
	return &ResendConfig{APIKey: apiKey, From: from}
}

type EmailService struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewEmailService(lc fx.Lifecycle, config *ResendConfig, logger *zap.Logger) *EmailService {
	service := &EmailService{from: config.From, logger: logger}
	if config.APIKey != "" {
		service.client = resend.NewClient(config.APIKey)
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Email service initialized", zap.Bool("enabled", service.client != nil))
			return nil
		},
	})
	return service
}

func (e *EmailService) Send(to, subject, html string) error {
	if e.client == nil {
		e.logger.Debug("Email disabled, skipping send", zap.String("to", to))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := e.client.Emails.Send(params)
	if err != nil {
		return err
	}
	e.logger.Info("Email sent", zap.String("to", to), zap.String("id", sent.Id))
	return nil
}
