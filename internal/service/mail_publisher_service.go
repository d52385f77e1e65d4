package service

import (
	"encoding/json"

	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const MailTopic = "SEND_MAIL"

// IMailPublisher hands rendered mails to the async dispatch pipeline. A
// failed publish is logged and swallowed so mail trouble never fails the
// request that triggered it.
type IMailPublisher interface {
	Publish(job dto.MailJob)
}

type mailPublisher struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewMailPublisher(pubSub *gochannel.GoChannel, log logger.ILogger) IMailPublisher {
	return &mailPublisher{
		pubSub: pubSub,
		log:    log,
	}
}

func (p *mailPublisher) Publish(job dto.MailJob) {
	payload, err := json.Marshal(job)
	if err != nil {
		p.log.Error("mail", "failed to marshal mail job", map[string]interface{}{
			"to":    job.To,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(MailTopic, msg); err != nil {
		p.log.Error("mail", "failed to publish mail job", map[string]interface{}{
			"to":    job.To,
			"error": err.Error(),
		})
	}
}
