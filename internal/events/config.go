package events

import (
	"github.com/IBM/sarama"
)

// NewSaramaConfig cria a configuração Sarama usada pelo producer e pelo
// consumer de eventos de mudança.
func NewSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()

	// Versão do Kafka
	config.Version = sarama.V3_3_0_0

	// Configuração do producer
	config.Producer.MaxMessageBytes = 1000000
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true

	// Configuração do consumer
	config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Offsets.AutoCommit.Enable = true
	config.Consumer.Return.Errors = true

	return config
}
