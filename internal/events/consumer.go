package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/IBM/sarama"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// Consumer consome os eventos de mudança do Kafka e repassa cada um ao hub
// de sessões. O conteúdo do evento não importa para quem recebe: o painel
// apenas recarrega tudo.
type Consumer struct {
	group sarama.ConsumerGroup
	hub   Broadcaster
	log   *logger.Logger
}

// NewConsumer cria um novo consumidor de eventos de mudança
func NewConsumer(brokers []string, groupID string, config *sarama.Config, hub Broadcaster, log *logger.Logger) (*Consumer, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group: group,
		hub:   hub,
		log:   log,
	}, nil
}

// Run consome o tópico até o contexto ser cancelado.
func (c *Consumer) Run(ctx context.Context) {
	handler := &changeEventHandler{hub: c.hub, log: c.log}

	for {
		if err := c.group.Consume(ctx, []string{Topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			c.log.Errorw("Consumer group error", "error", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Close encerra o grupo de consumo
func (c *Consumer) Close() error {
	return c.group.Close()
}

// changeEventHandler implementa sarama.ConsumerGroupHandler
type changeEventHandler struct {
	hub Broadcaster
	log *logger.Logger
}

func (h *changeEventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *changeEventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim repassa cada evento recebido para o hub de sessões
func (h *changeEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event ChangeEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			h.log.Warnw("Skipping malformed change event", "error", err)
			session.MarkMessage(message, "")
			continue
		}

		h.hub.Broadcast(event)
		session.MarkMessage(message, "")
	}
	return nil
}
