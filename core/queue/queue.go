package queue

import (
	"context"

	"rsvp-manager/core/config"
	"rsvp-manager/core/logger"

	"github.com/hibiken/asynq"
)

// Queue holds the asynq client used by services to enqueue background tasks
// and the in-process worker that consumes them.
type Queue struct {
	Client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewQueue(cfg config.RedisConfig) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})

	return &Queue{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

// HandleFunc registers a task handler. Must be called before Start.
func (q *Queue) HandleFunc(taskType string, handler func(context.Context, *asynq.Task) error) {
	q.mux.HandleFunc(taskType, handler)
}

// Start runs the worker in a background goroutine.
func (q *Queue) Start() {
	go func() {
		if err := q.server.Run(q.mux); err != nil {
			logger.Error("Queue worker stopped", "error", err)
		}
	}()
	logger.Info("Queue worker started")
}

func (q *Queue) Shutdown() {
	q.server.Shutdown()
	if err := q.Client.Close(); err != nil {
		logger.Error("Queue client close error", "error", err)
	}
}
