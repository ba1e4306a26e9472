package cron

import (
	"context"
	"encoding/json"
	"time"

	"grocli/config"
	"grocli/models"
	"grocli/services/invitation"
	"grocli/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeInvitationNotify = "invitation:notify"

// QueueClient enqueues invitation notification tasks. It implements
// invitation.NotifyEnqueuer.
type QueueClient struct {
	client *asynq.Client
}

func NewQueueClient() *QueueClient {
	return &QueueClient{
		client: asynq.NewClient(queueRedisOpts()),
	}
}

func (q *QueueClient) EnqueueInvitationNotify(ctx context.Context, payload models.InvitationNotifyPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeInvitationNotify, b)
	_, err = q.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	return err
}

func (q *QueueClient) Close() error {
	return q.client.Close()
}

// InitInvitationWorker runs the async worker in background.
func InitInvitationWorker(notifier *invitation.Notifier) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInvitationNotify, handleInvitationTask(notifier))

	// Start Redis health monitor
	go monitorRedisConnection(logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("starting invitation notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("invitation worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("invitation worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleInvitationTask(notifier *invitation.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.InvitationNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invitation task: invalid payload", zap.Error(err))
			return err
		}

		logger.Info("delivering invitation notification",
			zap.String("invitationId", p.InvitationID),
			zap.String("recipientId", p.RecipientID))

		if err := notifier.NotifyRecipient(ctx, p); err != nil {
			logger.Error("invitation notification failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("invitation worker: redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
