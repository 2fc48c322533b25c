package publish

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/slides"
)

// SlidePublisher pushes a deck to the slide service. Satisfied by
// *slides.Client.
type SlidePublisher interface {
	Publish(ctx context.Context, title string, deckSlides []deck.EnhancedSlide) (*slides.Result, error)
}

// Worker processes a single publish job.
type Worker struct {
	publisher SlidePublisher
	log       *slog.Logger
}

func NewWorker(publisher SlidePublisher, log *slog.Logger) *Worker {
	return &Worker{
		publisher: publisher,
		log:       log,
	}
}

// Process pushes the job's deck to the slide service, retrying transient
// failures with backoff.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "title", job.Title)

	job.SetStatus(StatusPublishing, "publishing")

	var result *slides.Result
	var lastErr error
	for attempt := range MaxRetries {
		result, lastErr = w.publisher.Publish(ctx, job.Title, job.Slides())
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable publish error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			lastErr = ctx.Err()
		}
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr != nil {
		log.Error("publish failed", "error", lastErr)
		job.AddError(fmt.Sprintf("publish: %s", lastErr))
		job.SetStatus(StatusFailed, "publishing")
		return
	}

	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("publish complete", "presentation_id", result.PresentationID, "slides", result.SlideCount)
}
