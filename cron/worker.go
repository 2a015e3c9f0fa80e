package cron

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"courtside/config"
	courtRepo "courtside/database/repository/court"
	"courtside/services/scheduling"
)

const TypeExtendHorizon = "slots:extend_horizon"

// InitHorizonWorker runs the async worker that keeps every active court's
// slot coverage extended to the rolling horizon. The task is idempotent:
// extension starts past each court's max persisted slot date.
func InitHorizonWorker(courts courtRepo.CourtRepository, slots scheduling.SlotService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExtendHorizon, handleExtendHorizonTask(courts, slots))

	go func() {
		log.Println("[HorizonWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[HorizonWorker] Failed to start worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeExtendHorizon, nil)); err != nil {
		log.Fatalf("[HorizonWorker] Failed to register horizon task: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[HorizonWorker] Failed to start scheduler: %v", err)
		}
	}()
}

func handleExtendHorizonTask(courts courtRepo.CourtRepository, slots scheduling.SlotService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		active, err := courts.GetAllActive(ctx)
		if err != nil {
			log.Printf("[HorizonWorker] Failed to list courts: %v", err)
			return err
		}

		for i := range active {
			court := &active[i]
			count, err := slots.ExtendHorizonForCourt(ctx, court)
			if err != nil {
				// One misconfigured court must not abort the sweep.
				log.Printf("[HorizonWorker] Skipping court %s: %v", court.ID, err)
				continue
			}
			if count > 0 {
				log.Printf("[HorizonWorker] Extended court %s by %d slots", court.ID, count)
			}
		}
		return nil
	}
}
