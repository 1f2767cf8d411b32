package worker

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/queue"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const dequeueTimeout = 5 * time.Second

type taskSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.RenderTask, error)
	Enqueue(ctx context.Context, task queue.RenderTask) error
}

type taskProcessor interface {
	Process(ctx context.Context, task queue.RenderTask) error
}

type staleLister interface {
	ListStalePending(ctx context.Context, cutoff time.Time) ([]*ent.Report, error)
}

// Worker drains the render queue and periodically sweeps for reports
// whose task was lost, so every pendiente report eventually renders.
type Worker struct {
	cfg       *config.AppConfig
	tasks     taskSource
	processor taskProcessor
	stale     staleLister
	cron      *cron.Cron

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg *config.AppConfig, tasks taskSource, processor taskProcessor, stale staleLister) *Worker {
	return &Worker{
		cfg:       cfg,
		tasks:     tasks,
		processor: processor,
		stale:     stale,
		cron:      cron.New(),
	}
}

func (w *Worker) Start() {
	slog.Info("Starting render worker...")

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go w.consume(ctx)

	w.registerSweep()
	w.cron.Start()

	slog.Info("Render worker started successfully")
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.wg.Wait()
	slog.Info("Render worker stopped")
}

func (w *Worker) consume(ctx context.Context) {
	defer w.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		task, err := w.tasks.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("Failed to dequeue render task", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if task == nil {
			continue
		}

		// A failed task is not retried here; the sweep re-enqueues the
		// report while it stays pendiente.
		if err := w.processor.Process(ctx, *task); err != nil {
			slog.Error("Render task failed", "reportID", task.ReportID, "version", task.Version, "error", err)
		}
	}
}

func (w *Worker) registerSweep() {
	_, err := w.cron.AddFunc(w.cfg.RenderSweepCron, func() {
		slog.Info("Starting render sweep")
		if err := w.runSweep(context.Background()); err != nil {
			slog.Error("Render sweep failed", "error", err)
		} else {
			slog.Info("Render sweep completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register render sweep", "error", err)
	} else {
		slog.Info("Registered render sweep", "schedule", w.cfg.RenderSweepCron)
	}
}

func (w *Worker) runSweep(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-time.Duration(w.cfg.RenderSweepAfter) * time.Minute)

	rows, err := w.stale.ListStalePending(ctx, cutoff)
	if err != nil {
		return err
	}
	slog.Info("Found stale pending reports", "count", len(rows), "cutoff", cutoff)

	for _, row := range rows {
		task := queue.RenderTask{ReportID: row.ID, Version: row.Version}
		if err := w.tasks.Enqueue(ctx, task); err != nil {
			slog.Error("Failed to re-enqueue stale report", "reportID", task.ReportID, "error", err)
			continue
		}
		slog.Info("Re-enqueued stale report", "reportID", task.ReportID, "version", task.Version)
	}
	return nil
}
