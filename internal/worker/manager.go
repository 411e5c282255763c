package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultRestartDelay = time.Second
	maxRestartDelay     = 30 * time.Second
)

// WorkerManager запускает воркеры и перезапускает упавшие, пока не вызван Stop
type WorkerManager struct {
	workers      []Worker
	logger       *zap.Logger
	restartDelay time.Duration

	wg       sync.WaitGroup
	mu       sync.Mutex
	stopping chan struct{}
	stopOnce sync.Once
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:      make([]Worker, 0),
		logger:       logger,
		restartDelay: defaultRestartDelay,
		stopping:     make(chan struct{}),
	}
}

// SetRestartDelay задаёт базовую паузу перед перезапуском; n-я попытка ждёт n*d
func (m *WorkerManager) SetRestartDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restartDelay = d
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() ([]Worker, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers, m.restartDelay
}

// Start запускает все зарегистрированные воркеры, каждый в своей горутине
func (m *WorkerManager) Start(ctx context.Context) error {
	workers, delay := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()
			m.supervise(ctx, w, delay)
		}(w)
	}

	return nil
}

// supervise держит воркер запущенным. Нормальный выход, Stop и отмена контекста
// завершают цикл; ошибка ведёт к перезапуску с растущей паузой.
func (m *WorkerManager) supervise(ctx context.Context, w Worker, delay time.Duration) {
	for attempt := 1; ; attempt++ {
		err := w.Start(ctx)
		if err == nil || ctx.Err() != nil || m.isStopping() {
			return
		}

		wait := delay * time.Duration(attempt)
		if wait > maxRestartDelay {
			wait = maxRestartDelay
		}
		m.logger.Error("Worker failed, restarting",
			zap.String("name", w.Name()),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return
		case <-m.stopping:
			timer.Stop()
			return
		}
	}
}

func (m *WorkerManager) isStopping() bool {
	select {
	case <-m.stopping:
		return true
	default:
		return false
	}
}

// Stop останавливает воркеры и ждёт их завершения не дольше, чем позволяет ctx
func (m *WorkerManager) Stop(ctx context.Context) error {
	m.stopOnce.Do(func() { close(m.stopping) })

	workers, _ := m.snapshot()
	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-ctx.Done():
		m.logger.Warn("Workers shutdown timed out, some ratings may stay pending")
		return fmt.Errorf("workers shutdown: %w", ctx.Err())
	}
}
