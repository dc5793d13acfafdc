package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/espressoflow/pos-backend/internal/cfg"
	"github.com/espressoflow/pos-backend/internal/domain"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// saleCompletedEvent — полезная нагрузка события завершённой продажи.
type saleCompletedEvent struct {
	SaleID        string `json:"sale_id"`
	Date          string `json:"date"`
	TotalCents    int64  `json:"total_cents"`
	PaymentMethod string `json:"payment_method"`
	Items         int    `json:"items"`
	ClientName    string `json:"client_name,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// Producer публикует события завершённых продаж.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishSaleCompleted отправляет событие о продаже. Вызывающая сторона
// не считает сбой публикации ошибкой продажи.
func (p *Producer) PublishSaleCompleted(ctx context.Context, sale *domain.Sale) error {
	value, err := json.Marshal(saleCompletedEvent{
		SaleID:        sale.ID,
		Date:          sale.Date.Format("2006-01-02"),
		TotalCents:    sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
		Items:         sale.Items,
		ClientName:    sale.ClientName,
		Timestamp:     time.Now().UnixNano(),
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sale.ID),
		Value: value,
	})
}

// EnsureTopic создаёт топик, если он ещё не существует.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
