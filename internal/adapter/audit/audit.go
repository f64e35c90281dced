// Package audit publishes committed order mutations to Kafka for the
// operational audit trail. Recording is drop-on-full: a slow broker must
// never stall order processing.
package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/core/domain"
)

const producerTimeout = 5 * time.Second

type Recorder struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
	inputCh  chan domain.OrderEvent
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewRecorder(cfg *config.Kafka, log *zap.Logger) (*Recorder, error) {
	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	conf.Producer.Timeout = producerTimeout

	producer, err := sarama.NewSyncProducer(cfg.Brokers, conf)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		producer: producer,
		topic:    cfg.AuditTopic,
		logger:   log,
		inputCh:  make(chan domain.OrderEvent, 256),
	}, nil
}

func (r *Recorder) Record(e domain.OrderEvent) {
	select {
	case r.inputCh <- e:
	default:
		r.logger.Warn("audit channel full, dropping event",
			zap.String("order", e.OrderID))
	}
}

func (r *Recorder) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			select {
			case e := <-r.inputCh:
				r.publish(e)
			case <-ctx.Done():
				// Drain whatever is already queued before stopping.
				for {
					select {
					case e := <-r.inputCh:
						r.publish(e)
					default:
						return
					}
				}
			}
		}
	}()
}

func (r *Recorder) publish(e domain.OrderEvent) {
	value, err := json.Marshal(e)
	if err != nil {
		r.logger.Error("encode audit event", zap.Error(err))
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: r.topic,
		Key:   sarama.StringEncoder(e.OrderID),
		Value: sarama.ByteEncoder(value),
	}
	if _, _, err := r.producer.SendMessage(msg); err != nil {
		r.logger.Error("publish audit event",
			zap.String("order", e.OrderID), zap.Error(err))
	}
}

func (r *Recorder) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	return r.producer.Close()
}

// NopTrail discards events. Used when no brokers are configured.
type NopTrail struct{}

func (NopTrail) Record(domain.OrderEvent) {}
