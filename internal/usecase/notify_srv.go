package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinema-backend/internal/data/repository"
	"cinema-backend/internal/dto/response"
	"cinema-backend/pkg/mailer"
	"cinema-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotifyService interface {
	NotifyShowtime(ctx context.Context, showtimeID string) (*response.NotifyReport, error)
}

type notifyService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config utils.NotifyConfig
	log    *zap.Logger
}

func NewNotifyService(repo *repository.Repository, mail mailer.Mailer, config utils.NotifyConfig, log *zap.Logger) NotifyService {
	return &notifyService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "notify")),
	}
}

// NotifyShowtime mails every customer who saved the showtime's movie.
// Recipients are processed in fixed-size batches with a short pause between
// batches so the SMTP relay is not flooded. A slow send counts as failed
// once the per-send timeout passes.
func (s *notifyService) NotifyShowtime(ctx context.Context, showtimeID string) (*response.NotifyReport, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}

	customers, err := s.repo.Save.FindCustomersByMovieID(ctx, showtime.MovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saved customers: %w", err)
	}

	// Dedup by email, keeping first occurrence order.
	seen := make(map[string]bool, len(customers))
	emails := make([]string, 0, len(customers))
	for _, c := range customers {
		if c.Email == "" || seen[c.Email] {
			continue
		}
		seen[c.Email] = true
		emails = append(emails, c.Email)
	}

	report := &response.NotifyReport{Total: len(emails), Failed: []string{}}
	if len(emails) == 0 {
		return report, nil
	}

	subject, body, err := mailer.RenderShowtimeAlert(mailer.ShowtimeAlertData{
		MovieTitle: showtime.MovieTitle,
		StartTime:  showtime.StartTime,
		CinemaName: showtime.CinemaName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render showtime alert: %w", err)
	}

	var mu sync.Mutex
	for start := 0; start < len(emails); start += s.config.BatchSize {
		end := start + s.config.BatchSize
		if end > len(emails) {
			end = len(emails)
		}
		batch := emails[start:end]

		var wg sync.WaitGroup
		for _, email := range batch {
			wg.Add(1)
			go func(email string) {
				defer wg.Done()
				if err := s.sendWithTimeout(ctx, email, subject, body); err != nil {
					s.log.Warn("Notification send failed",
						zap.String("email", email), zap.Error(err))
					mu.Lock()
					report.Failed = append(report.Failed, email)
					mu.Unlock()
					return
				}
				mu.Lock()
				report.Sent++
				mu.Unlock()
			}(email)
		}
		wg.Wait()

		if end < len(emails) {
			time.Sleep(s.config.BatchDelay)
		}
	}

	s.log.Info("Showtime notification finished",
		zap.String("showtime_id", showtimeID),
		zap.Int("total", report.Total),
		zap.Int("sent", report.Sent),
		zap.Int("failed", len(report.Failed)))

	return report, nil
}

// sendWithTimeout races the send against the configured per-send timeout.
// When the timeout fires first, the send goroutine is left to finish on its
// own and its result is discarded.
func (s *notifyService) sendWithTimeout(ctx context.Context, to, subject, body string) error {
	sendCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.mail.Send(sendCtx, to, subject, body)
	}()

	select {
	case err := <-done:
		return err
	case <-sendCtx.Done():
		return fmt.Errorf("send to %s timed out after %s", to, s.config.SendTimeout)
	}
}
