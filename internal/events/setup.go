package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// EnsureTopic verifica e cria o tópico de eventos de mudança no Kafka.
func EnsureTopic(brokers []string, log *logger.Logger) error {
	if len(brokers) == 0 || brokers[0] == "" {
		log.Errorw("Kafka broker address is empty")
		return errors.New("kafka broker address is empty")
	}

	log.Infow("Ensuring Kafka topic exists", "topic", Topic)

	connCtx, cancelConn := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelConn()

	conn, err := kafkaGo.DialContext(connCtx, "tcp", brokers[0])
	if err != nil {
		log.Errorw("Failed to connect to Kafka broker for topic creation", "broker", brokers[0], "error", err)
		return fmt.Errorf("kafka connection failed: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		log.Errorw("Failed to read partitions from Kafka", "error", err)
		return fmt.Errorf("kafka read partitions failed: %w", err)
	}

	for _, p := range partitions {
		if p.Topic == Topic {
			log.Debugw("Topic already exists", "topic", Topic)
			return nil
		}
	}

	err = conn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             Topic,
		NumPartitions:     2,
		ReplicationFactor: 1,
	})
	if err != nil {
		if errors.Is(err, kafkaGo.TopicAlreadyExists) {
			log.Warnw("Topic already existed during creation attempt", "topic", Topic)
			return nil
		}
		log.Errorw("Failed to create topic", "error", err, "topic", Topic)
		return fmt.Errorf("kafka create topic failed: %w", err)
	}

	log.Infow("Successfully created topic", "topic", Topic)
	return nil
}
