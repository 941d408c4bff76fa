package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
)

const (
	queueKey  = "notifications"
	failedKey = "notifications:failed"

	maxTries = 3

	queueGaugeEvery = 15 * time.Second
)

type Message struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Notifier queues outgoing member notifications.
type Notifier interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Mailer delivers a single rendered message.
type Mailer interface {
	Deliver(msg Message) error
}

type SMTPMailer struct {
	From     string
	FromName string
	Host     string
	Port     string
	User     string
	Pass     string
}

func (m SMTPMailer) Deliver(msg Message) error {
	body := fmt.Sprintf("From: %s <%s>\r\n", m.FromName, m.From)
	body += fmt.Sprintf("To: %s\r\n", msg.To)
	body += fmt.Sprintf("Subject: %s\r\n", msg.Subject)
	body += "\r\n" + msg.Body

	var auth smtp.Auth
	if m.User != "" && m.Pass != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}

	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{msg.To}, []byte(body))
}

type Service struct {
	redis    *redis.Client
	mailer   Mailer
	poll     time.Duration
	reported time.Time
}

func New(rdb *redis.Client, mailer Mailer) *Service {
	return &Service{
		redis:  rdb,
		mailer: mailer,
		poll:   2 * time.Second,
	}
}

func (s *Service) Enqueue(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return nil
	}
	if msg.Created.IsZero() {
		msg.Created = time.Now()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("Failed to marshal notification: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Error("failed to queue notification", "kind", msg.Kind, "to", msg.To, "error", err)
		return err
	}

	logger.Debug("notification queued", "kind", msg.Kind, "to", msg.To)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			s.reportQueue(ctx, time.Now())
			if err := s.processNext(ctx); err != nil && !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				logger.Warn("notification worker", "error", err)
				time.Sleep(s.poll)
			}
		}
	}
}

func (s *Service) processNext(ctx context.Context) error {
	result, err := s.redis.BRPop(ctx, s.poll, queueKey).Result()
	if err != nil {
		return err
	}

	var msg Message
	if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
		logger.Errorf("Bad notification payload: %v", err)
		return nil
	}

	msg.Tries++
	if err := s.mailer.Deliver(msg); err != nil {
		logger.Error("failed to deliver notification", "kind", msg.Kind, "to", msg.To, "attempt", msg.Tries, "error", err)
		metrics.RecordNotification(msg.Kind, "failed")

		if msg.Tries < maxTries {
			data, _ := json.Marshal(msg)
			return s.redis.LPush(ctx, queueKey, data).Err()
		}
		return s.saveFailed(ctx, msg, err)
	}

	metrics.RecordNotification(msg.Kind, "success")
	logger.Info("notification sent", "kind", msg.Kind, "to", msg.To)
	return nil
}

func (s *Service) saveFailed(ctx context.Context, msg Message, cause error) error {
	failed := map[string]interface{}{
		"message": msg,
		"error":   cause.Error(),
		"time":    time.Now(),
	}
	data, _ := json.Marshal(failed)
	logger.Error("notification moved to failed queue", "to", msg.To, "kind", msg.Kind)
	return s.redis.LPush(ctx, failedKey, string(data)).Err()
}

// reportQueue refreshes the queue length gauge at most once per
// queueGaugeEvery.
func (s *Service) reportQueue(ctx context.Context, now time.Time) {
	if !s.reported.IsZero() && now.Sub(s.reported) < queueGaugeEvery {
		return
	}
	s.reported = now
	s.QueueLength(ctx)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.NotificationQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Enqueue(context.Context, Message) error { return nil }
