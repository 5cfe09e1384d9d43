package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"medibook/config"
	"medibook/services/notification"

	"github.com/hibiken/asynq"
)

const (
	TypeAppointmentEvent = "appointment:event"
	TypeReminderSend     = "reminder:send"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// AsynqPublisher enqueues post-commit appointment events onto the Redis-backed
// task queue. Implements notification.Publisher.
type AsynqPublisher struct {
	client *asynq.Client
}

// NewAsynqPublisher creates the task queue client.
func NewAsynqPublisher() *AsynqPublisher {
	return &AsynqPublisher{client: asynq.NewClient(redisOpts())}
}

func (p *AsynqPublisher) Publish(_ context.Context, event notification.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	task := asynq.NewTask(TypeAppointmentEvent, payload)
	if _, err := p.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue appointment event: %w", err)
	}
	return nil
}

func (p *AsynqPublisher) ScheduleReminder(_ context.Context, event notification.Event, at time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := p.client.Enqueue(task, asynq.ProcessAt(at), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// InitEventWorker runs the async worker in background, delivering queued
// events to the configured sink.
func InitEventWorker(sink notification.Sink) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentEvent, handleEventTask(sink))
	mux.HandleFunc(TypeReminderSend, handleEventTask(sink))

	// Start async worker with retry logic
	go func() {
		log.Println("[EventWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EventWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EventWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEventTask(sink notification.Sink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var event notification.Event
		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			return fmt.Errorf("failed to unmarshal event payload: %w", err)
		}
		return sink.Deliver(ctx, event)
	}
}
