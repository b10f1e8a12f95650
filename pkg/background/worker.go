package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"takeout/pkg/logger"
)

// Task определяет интерфейс для фоновых задач, которые выполняются по расписанию.
type Task interface {
	// Schedule возвращает расписание запусков (cron-выражение или постоянный интервал).
	Schedule() cron.Schedule

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

// StartupTask - задача, которую нужно один раз выполнить синхронно при старте воркера.
type StartupTask interface {
	Task
	RunOnStartup() bool
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	done  chan struct{}
}

// New создает и запускает Worker для выполнения фоновых задач.
//
// Поведение функции:
//  1. Задачи, реализующие StartupTask с RunOnStartup() == true, сначала выполняются синхронно
//     ("прогрев"). Ошибка или паника на этом этапе возвращается немедленно, Worker не создается.
//  2. Каждая задача крутится в своей горутине: следующий запуск вычисляется по расписанию
//     только после завершения текущего, поэтому запуски одной задачи никогда не пересекаются,
//     а пропущенные за время долгого выполнения срабатывания просто пропускаются.
//  3. Задачи выполняются в фоне до тех пор, пока не будет отменен переданный контекст.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		done:  make(chan struct{}),
	}

	for _, task := range tasks {
		if task.Schedule() == nil {
			return nil, fmt.Errorf("task %q: nil schedule", task.Info())
		}
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		startup, ok := task.(StartupTask)
		if !ok || !startup.RunOnStartup() {
			continue
		}
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(stack)),
					)
				}
			}()
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	runGroup := &errgroup.Group{}
	for _, task := range tasks {
		runGroup.Go(func() error {
			worker.runBackgroundTask(ctx, task)
			return nil
		})
	}
	go func() {
		_ = runGroup.Wait()
		close(worker.done)
	}()

	return worker, nil
}

// Done закрывается, когда все задачи остановлены после отмены контекста.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	schedule := task.Schedule()

	w.log.Info("Starting scheduled execution",
		logger.NewField("task", task.Info()),
	)

	for {
		now := time.Now()
		next := schedule.Next(now)
		if next.IsZero() {
			w.log.Warn("schedule has no next activation, stopping task",
				logger.NewField("task", task.Info()),
			)
			return
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-timer.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
