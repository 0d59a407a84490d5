package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"second-brain/internal/logger"
)

// KafkaEventBus is the confluent-kafka-go backed EventBus.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// Drain producer events (delivery reports, broker errors).
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("kafka delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{Producer: p, Brokers: brokers}, nil
}

// Close flushes pending messages and shuts the producer down.
func (k *KafkaEventBus) Close() {
	if k.Producer == nil {
		return
	}
	if remaining := k.Producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("%d kafka messages still pending after flush", remaining)
	}
	k.Producer.Close()
	logger.Log.Info("kafka producer closed")
}

// Publish sends the event to the topic and waits for the delivery report.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	select {
	case ev := <-deliveryChan:
		m := ev.(*kafka.Message)
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", topic, m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
