// internal/app/monitor_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"
	idb "homework_notification_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// HomeworkProvider fetches raw homework-status payloads from the
// review API for a given fetch window.
type HomeworkProvider interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) ([]byte, error)
}

// MonitorService runs the fetch → validate → translate → notify
// pipeline for the single monitored chat.
type MonitorService struct {
	provider       HomeworkProvider
	telegramClient domainTelegram.Client
	stateRepo      homework.StateRepository
	logger         *logrus.Entry
	chatID         int64
	now            func() time.Time
}

func NewMonitorService(
	provider HomeworkProvider,
	tc domainTelegram.Client,
	stateRepo homework.StateRepository,
	logger *logrus.Entry,
	chatID int64,
) *MonitorService {
	return &MonitorService{
		provider:       provider,
		telegramClient: tc,
		stateRepo:      stateRepo,
		logger:         logger,
		chatID:         chatID,
		now:            time.Now,
	}
}

// RunCycle executes one poll cycle. It reports whether a notification
// was sent. Any error is non-fatal to the monitor: the scheduler logs
// it, alerts the chat and re-runs the cycle on the next tick.
func (s *MonitorService) RunCycle(ctx context.Context) (bool, error) {
	state, err := s.currentState(ctx)
	if err != nil {
		return false, fmt.Errorf("load monitor state: %w", err)
	}

	raw, err := s.provider.HomeworkStatuses(ctx, state.Cursor)
	if err != nil {
		return false, err
	}

	review, err := homework.CheckResponse(raw)
	if err != nil {
		return false, err
	}

	latest := review.Latest()
	if latest == nil {
		s.logger.WithField("from_date", state.Cursor).Info("No homework updates in the requested window")
		return false, nil
	}

	change, err := homework.ParseStatus(*latest)
	if err != nil {
		return false, err
	}

	if change.Status == state.LastNotifiedStatus {
		s.logger.WithField("status", change.Status).Info("Homework status unchanged, nothing to send")
		return false, nil
	}

	if err := s.telegramClient.SendMessage(s.chatID, change.Message, nil); err != nil {
		// State is not advanced: the same change is re-announced on the
		// next successful cycle.
		return false, err
	}
	s.logger.WithFields(logrus.Fields{
		"homework": change.Name,
		"status":   change.Status,
	}).Info("Status change notification sent")

	state.LastNotifiedStatus = change.Status
	if review.UpdatedAt > 0 {
		state.Cursor = review.UpdatedAt
	}
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return true, fmt.Errorf("save monitor state: %w", err)
	}
	return true, nil
}

// ReportFailure forwards a cycle failure to the monitored chat as a
// best-effort alert. A failure of the alert itself is logged and
// swallowed so that failure reporting can never take the monitor down.
func (s *MonitorService) ReportFailure(ctx context.Context, cause error) {
	s.logger.WithError(cause).Error("Poll cycle failed")
	alert := fmt.Sprintf("Сбой в работе программы: %v", cause)
	if err := s.telegramClient.SendMessage(s.chatID, alert, nil); err != nil {
		s.logger.WithError(err).Error("Could not deliver the failure alert")
	}
}

// State returns the current review state, or nil before the first
// notification was ever recorded.
func (s *MonitorService) State(ctx context.Context) (*homework.ReviewState, error) {
	state, err := s.stateRepo.Get(ctx)
	if err == idb.ErrStateNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *MonitorService) currentState(ctx context.Context) (*homework.ReviewState, error) {
	state, err := s.stateRepo.Get(ctx)
	if err == idb.ErrStateNotFound {
		// First cycle ever: only updates from now on matter. The fresh
		// state is saved at once so the window boundary stays pinned
		// across empty cycles.
		fresh := &homework.ReviewState{Cursor: s.now().Unix()}
		if saveErr := s.stateRepo.Save(ctx, fresh); saveErr != nil {
			s.logger.WithError(saveErr).Warn("Could not persist the initial monitor state")
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}
