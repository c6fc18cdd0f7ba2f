package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// KafkaNotifier publica eventos de mudança no Kafka via producer síncrono.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	log      *logger.Logger
}

// NewKafkaNotifier cria um novo publicador de eventos de mudança
func NewKafkaNotifier(producer sarama.SyncProducer, log *logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		log:      log,
	}
}

// NotifyChanged publica o evento no tópico de mudanças. A chave é o escopo,
// mantendo os eventos de cada partição de dados em ordem.
func (n *KafkaNotifier) NotifyChanged(ctx context.Context, event ChangeEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: Topic,
		Key:   sarama.StringEncoder(event.Scope),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		n.log.Errorw("Failed to publish change event", "error", err, "kind", event.Kind)
		return fmt.Errorf("failed to publish change event: %w", err)
	}

	n.log.Debugw("Published change event", "kind", event.Kind, "partition", partition, "offset", offset)
	return nil
}

// Close encerra o producer Kafka
func (n *KafkaNotifier) Close() error {
	return n.producer.Close()
}
