package scheduler

import (
	"context"
	"time"

	"homework_notification_bot/internal/app"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// cycleTimeout bounds one fetch-validate-notify pass so a hanging
// upstream cannot outlive the poll interval.
const cycleTimeout = 2 * time.Minute

// PollScheduler drives the monitor on a fixed cron schedule. Errors
// from a cycle are reported to the chat and never stop the schedule.
type PollScheduler struct {
	cronEngine *cron.Cron
	monitor    *app.MonitorService
	logger     *logrus.Entry
	cronSpec   string

	mCycles   prometheus.Counter
	mNotified prometheus.Counter
	mErrors   prometheus.Counter
	mCycleDur prometheus.Histogram
}

func NewPollScheduler(monitor *app.MonitorService, logger *logrus.Entry, cronSpec string) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		monitor:    monitor,
		logger:     logger,
		cronSpec:   cronSpec,
		mCycles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "homework_poll_cycles_total", Help: "Poll cycles run",
		}),
		mNotified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "homework_notifications_sent_total", Help: "Status change notifications delivered",
		}),
		mErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "homework_poll_errors_total", Help: "Failed poll cycles",
		}),
		mCycleDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name: "homework_poll_cycle_duration_seconds", Help: "Poll cycle duration",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (s *PollScheduler) Start() {
	s.logger.Info("Starting poll scheduler...")

	if _, err := s.cronEngine.AddFunc(s.cronSpec, s.runCycle); err != nil {
		s.logger.WithError(err).WithField("spec", s.cronSpec).Fatal("Could not register poll job")
	}

	// The cron engine fires only after the first interval elapses; the
	// first cycle runs right away.
	go s.runCycle()

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpec).Info("Poll scheduler started")
}

func (s *PollScheduler) runCycle() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	s.mCycles.Inc()
	notified, err := s.monitor.RunCycle(ctx)
	if err != nil {
		s.mErrors.Inc()
		s.monitor.ReportFailure(ctx, err)
	}
	if notified {
		s.mNotified.Inc()
	}
	s.mCycleDur.Observe(time.Since(start).Seconds())
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}
