package metrics

import (
	"runtime"
	"time"

	"github.com/vcr/payment-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SystemMetrics интерфейс для системных метрик процесса
type SystemMetrics interface {
	StartRecording(interval time.Duration)
	Stop()
}

type systemMetrics struct {
	log         *logger.Logger
	goroutines  prometheus.Gauge
	memoryAlloc prometheus.Gauge
	memorySys   prometheus.Gauge
	gcRuns      prometheus.Gauge
	stopCh      chan struct{}
}

// NewSystemMetrics создает новые системные метрики
func NewSystemMetrics(registry *prometheus.Registry, log *logger.Logger) SystemMetrics {
	goroutines := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "system_goroutines",
			Help: "Current number of goroutines",
		},
	)

	memoryAlloc := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_alloc_bytes",
			Help: "Currently allocated memory in bytes",
		},
	)

	memorySys := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_system_bytes",
			Help: "Total memory obtained from system in bytes",
		},
	)

	gcRuns := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "system_gc_runs",
			Help: "Number of completed GC cycles",
		},
	)

	return &systemMetrics{
		log:         log,
		goroutines:  goroutines,
		memoryAlloc: memoryAlloc,
		memorySys:   memorySys,
		gcRuns:      gcRuns,
		stopCh:      make(chan struct{}),
	}
}

// StartRecording запускает периодический сбор системных метрик
func (m *systemMetrics) StartRecording(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.record()
			case <-m.stopCh:
				return
			}
		}
	}()

	m.log.Debugw("System metrics recording started", "interval", interval)
}

// Stop останавливает сбор системных метрик
func (m *systemMetrics) Stop() {
	close(m.stopCh)
}

func (m *systemMetrics) record() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m.goroutines.Set(float64(runtime.NumGoroutine()))
	m.memoryAlloc.Set(float64(stats.Alloc))
	m.memorySys.Set(float64(stats.Sys))
	m.gcRuns.Set(float64(stats.NumGC))
}
