package service

import (
	"context"
	"encoding/json"

	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/logger"
	"notehive-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IMailConsumer interface {
	Consume(ctx context.Context) error
}

type mailConsumer struct {
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewMailConsumer(pubSub *gochannel.GoChannel, emailService mailer.IEmailService, log logger.ILogger) IMailConsumer {
	return &mailConsumer{
		pubSub:       pubSub,
		emailService: emailService,
		log:          log,
	}
}

func (c *mailConsumer) Consume(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, MailTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(msg)
		}
	}()

	return nil
}

func (c *mailConsumer) processMessage(msg *message.Message) {
	var job dto.MailJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		c.log.Error("mail", "failed to unmarshal mail job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are never retriable
		return
	}

	if err := c.emailService.Send(job.To, job.Subject, job.Body); err != nil {
		// Ack anyway: SMTP failures must not build a retry storm, the user
		// can re-trigger the mail from the client.
		c.log.Error("mail", "failed to send mail", map[string]interface{}{
			"to":      job.To,
			"subject": job.Subject,
			"error":   err.Error(),
		})
		msg.Ack()
		return
	}

	c.log.Info("mail", "mail sent", map[string]interface{}{
		"to":      job.To,
		"subject": job.Subject,
	})
	msg.Ack()
}
