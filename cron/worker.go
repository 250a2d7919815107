package cron

import (
	"context"
	"log"
	"time"

	"github.com/pr4shxnt/ecobin-backend/config"

	"github.com/hibiken/asynq"
	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// TypeReminderRun is the queued task kicking off one reminder batch.
const TypeReminderRun = "reminder:run_due"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in background. Concurrency is 1:
// the queue itself never executes two reminder batches at once, and the
// trigger's single-flight guard covers overlap with the operator endpoint.
func InitReminderWorker(trigger *ReminderTrigger, logger *zap.Logger) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderRun, handleReminderRun(trigger, logger))

	// Start async worker with retry logic.
	go func() {
		logger.Info("ReminderWorker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("ReminderWorker: failed to start worker",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("ReminderWorker: max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderRun(trigger *ReminderTrigger, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger.Info("ReminderWorker: running scheduled waste reminder batch")

		results, err := trigger.Run(ctx)
		if err != nil {
			if err == ErrRunInProgress {
				logger.Warn("ReminderWorker: skipping batch, a run is already in progress")
				return nil
			}
			logger.Error("ReminderWorker: reminder batch failed", zap.Error(err))
			return err
		}

		sent := 0
		for _, r := range results {
			if r.Success {
				sent++
			}
		}
		logger.Info("ReminderWorker: reminder batch complete",
			zap.Int("attempted", len(results)), zap.Int("delivered", sent))
		return nil
	}
}

// InitReminderScheduler enqueues one reminder batch on the configured cadence
// (daily at 08:00 by default). The returned cron runner is stopped by main on
// shutdown.
func InitReminderScheduler(logger *zap.Logger) (*cronv3.Cron, error) {
	client := asynq.NewClient(redisOpts())

	c := cronv3.New()
	_, err := c.AddFunc(config.AppConfig.ReminderCronSpec, func() {
		task := asynq.NewTask(TypeReminderRun, nil)
		if _, err := client.Enqueue(task); err != nil {
			logger.Error("ReminderScheduler: failed to enqueue reminder batch", zap.Error(err))
			return
		}
		logger.Info("ReminderScheduler: enqueued scheduled reminder batch")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Info("ReminderScheduler: cron started", zap.String("spec", config.AppConfig.ReminderCronSpec))
	return c, nil
}
