package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"logistics/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	group *errgroup.Group
}

// New один раз синхронно прогревает все задачи и запускает их периодическое выполнение.
// Ошибка или паника на прогреве возвращается сразу, периодические запуски только логируются.
// Задачи работают до отмены ctx, дождаться их завершения можно через Wait.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		group: &errgroup.Group{},
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing task", logger.NewField("task", task.Info()))
			return worker.safeDo(initCtx, task)
		})
	}
	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("init background tasks: %w", err)
	}

	for _, task := range tasks {
		worker.group.Go(func() error {
			worker.run(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокирует до остановки всех задач.
func (w *Worker) Wait() error {
	return w.group.Wait()
}

func (w *Worker) run(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, periodic execution disabled", logger.NewField("ttl", ttl))
		return
	}
	taskLog.Info("periodic execution started", logger.NewField("ttl", ttl))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("periodic execution stopped")
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				taskLog.Error("background task failed", logger.NewField("error", err))
			}
		}
	}
}

// safeDo превращает панику задачи в ошибку.
func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q panic: %v\n%s", task.Info(), r, debug.Stack())
		}
	}()

	return task.Do(ctx)
}
