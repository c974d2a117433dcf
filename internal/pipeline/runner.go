package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"newsquiz/internal/news"
	"newsquiz/internal/quiz"
)

const (
	reportSubject = "Daily AI News Quiz Generation Report"
	errorSubject  = "Daily AI News Quiz Generation Error"
)

type Scraper interface {
	Scrape(ctx context.Context) []news.Item
}

type DigestFetcher interface {
	Fetch(ctx context.Context, date string) (string, error)
}

type Generator interface {
	Generate(ctx context.Context, content string, numQuestions int) []quiz.Question
}

type Notifier interface {
	Send(subject, body string) error
}

// Runner chains one pipeline invocation: news → quiz generation (which
// persists) → email report. Failures are contained here; nothing escapes to
// the HTTP layer.
type Runner struct {
	scraper      Scraper
	digest       DigestFetcher
	generator    Generator
	notifier     Notifier
	tracker      Tracker
	newsSource   string
	numQuestions int
	log          *logrus.Logger
}

func NewRunner(
	scraper Scraper,
	digest DigestFetcher,
	generator Generator,
	notifier Notifier,
	tracker Tracker,
	newsSource string,
	numQuestions int,
	log *logrus.Logger,
) *Runner {
	return &Runner{
		scraper:      scraper,
		digest:       digest,
		generator:    generator,
		notifier:     notifier,
		tracker:      tracker,
		newsSource:   newsSource,
		numQuestions: numQuestions,
		log:          log,
	}
}

// TriggerAsync starts one run in the background if the run lock is free.
// It returns false when another run already holds the lock. A lock backend
// error is logged and the run proceeds unguarded rather than being dropped.
func (r *Runner) TriggerAsync() bool {
	ctx := context.Background()

	locked, err := r.tracker.TryLock(ctx)
	if err != nil {
		r.log.WithError(err).Error("[Runner] run lock unavailable, proceeding without it")
		locked = true
	} else if !locked {
		r.log.Warn("[Runner] trigger rejected, a run is already in progress")
		return false
	}

	go func() {
		defer func() {
			if err := r.tracker.Unlock(ctx); err != nil {
				r.log.WithError(err).Error("[Runner] failed to release run lock")
			}
		}()

		if err := r.tracker.SetRunning(ctx); err != nil {
			r.log.WithError(err).Error("[Runner] failed to record running status")
		}

		questions := r.Run(ctx)

		status := StatusSucceeded
		if len(questions) == 0 {
			status = StatusFailed
		}
		if err := r.tracker.SetFinished(ctx, status, len(questions), ""); err != nil {
			r.log.WithError(err).Error("[Runner] failed to record finished status")
		}
	}()

	return true
}

// Run executes one pipeline invocation and returns the generated questions.
// Any panic below this point is recovered once, reported by email, and
// converted into an empty result.
func (r *Runner) Run(ctx context.Context) (questions []quiz.Question) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorf("[Runner] run aborted: %v", rec)
			r.notifyError(fmt.Sprintf("An error occurred during quiz generation: %v", rec))
			questions = []quiz.Question{}
		}
	}()

	today := DateLabel(timeNow())
	r.log.Infof("[Runner] starting quiz generation for %s", today)

	content, ok := r.newsContent(ctx, today)
	if !ok {
		return []quiz.Question{}
	}
	if content != "" {
		r.log.Info("[Runner] news generated")
	}

	questions = r.generator.Generate(ctx, content, r.numQuestions)
	if len(questions) > 0 {
		r.log.Info("[Runner] quiz generated")
	}

	status := "Failed"
	if len(questions) > 0 {
		status = "Success"
	}
	body := fmt.Sprintf(`Daily AI News Quiz Generation Report
Date: %s

Status: %s
Number of Questions Generated: %d

News Context:
%s
`, today, status, len(questions), content)

	if err := r.notifier.Send(reportSubject, body); err != nil {
		r.log.WithError(err).Error("[Runner] failed to send email notification")
	}

	return questions
}

// newsContent obtains the run's news text from the configured adapter.
// A scrape failure degrades to empty content; a digest failure is a
// run-level error that is reported and ends the run.
func (r *Runner) newsContent(ctx context.Context, date string) (string, bool) {
	if r.newsSource == "digest" {
		text, err := r.digest.Fetch(ctx, date)
		if err != nil {
			r.log.WithError(err).Error("[Runner] news digest failed")
			r.notifyError(fmt.Sprintf("An error occurred during quiz generation: %v", err))
			return "", false
		}
		return text, true
	}
	return news.Render(r.scraper.Scrape(ctx)), true
}

func (r *Runner) notifyError(body string) {
	if err := r.notifier.Send(errorSubject, body); err != nil {
		r.log.WithError(err).Error("[Runner] failed to send error notification")
	}
}
