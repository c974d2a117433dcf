package pipeline

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// fireHour is the daily wall-clock hour (server time) the pipeline runs at.
const fireHour = 1

// Worker fires the quiz pipeline once a day at 01:00 by POSTing the trigger
// endpoint over the network, so the timer exercises the same path as a manual
// trigger.
type Worker struct {
	triggerURL string
	client     *http.Client
	stopChan   chan struct{}
	log        *logrus.Logger
}

func NewWorker(triggerURL string, log *logrus.Logger) *Worker {
	return &Worker{
		triggerURL: triggerURL,
		client:     &http.Client{Timeout: 30 * time.Second},
		stopChan:   make(chan struct{}),
		log:        log,
	}
}

// Start blocks until Stop is called, firing at each daily schedule point.
func (w *Worker) Start() {
	w.log.Infof("[Worker] daily trigger scheduled for %02d:00, first fire in %s",
		fireHour, time.Until(nextFire(time.Now())).Round(time.Second))

	for {
		timer := time.NewTimer(time.Until(nextFire(time.Now())))
		select {
		case <-timer.C:
			w.fire()
		case <-w.stopChan:
			timer.Stop()
			w.log.Info("[Worker] stopping daily trigger")
			return
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	close(w.stopChan)
}

func (w *Worker) fire() {
	resp, err := w.client.Post(w.triggerURL, "application/json", nil)
	if err != nil {
		w.log.WithError(err).Error("[Worker] failed to trigger quiz generation")
		return
	}
	defer resp.Body.Close()
	w.log.Infof("[Worker] quiz generation triggered, status: %s", resp.Status)
}

// nextFire returns the next occurrence of fireHour after now.
func nextFire(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), fireHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
