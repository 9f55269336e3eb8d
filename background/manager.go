package background

import (
	"context"
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/sirupsen/logrus"

	"github.com/helpdesk-community/helpdesk-api/geo"
	"github.com/helpdesk-community/helpdesk-api/metrics"
	"github.com/helpdesk-community/helpdesk-api/store"
)

const workerTag = "helpdesk-worker"

var log *logrus.Entry

var now = time.Now

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the card maintenance jobs
type BackgroundManager struct {
	store store.CardStore

	resolver geo.LocationResolver

	metrics *metrics.Recorder

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(cards store.CardStore, resolver geo.LocationResolver, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      cards,
		resolver:   resolver,
		metrics:    metrics.NewRecorder("helpdesk_worker"),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every job this manager knows
func (m *BackgroundManager) RegisterTasks() error {
	for name, fn := range map[string]interface{}{
		TaskCloseExpiredCards:   m.CloseExpiredCards,
		TaskResolveCardLocation: m.ResolveCardLocation,
	} {
		if err := m.RegisterTask(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker(workerTag, concurrency)
	return m.worker.Launch()
}

// LogMetrics writes the counters recorded by the jobs of this worker
func (m *BackgroundManager) LogMetrics() {
	if m.metrics == nil {
		return
	}
	for _, c := range m.metrics.Counters() {
		log.WithFields(logrus.Fields{
			"counter": c.Name,
			"tags":    c.Tags,
			"value":   c.Value,
		}).Info("worker metrics")
	}
}

// ReportMetrics logs the worker counters every interval until ctx is done
func (m *BackgroundManager) ReportMetrics(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.LogMetrics()
			return
		case <-ticker.C:
			m.LogMetrics()
		}
	}
}
