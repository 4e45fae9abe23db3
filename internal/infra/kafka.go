package infra

import (
	"fmt"
	"time"

	"kairos/turn-engine/internal/config"
	"kairos/turn-engine/internal/constant"

	"github.com/segmentio/kafka-go"
)

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        constant.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // journal workers perform sync writes with timeout + retries
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    1024,
	}
}
