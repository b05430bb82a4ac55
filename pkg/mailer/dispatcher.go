package mailer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one outbound mail waiting for a worker.
type Job struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher decouples request handling from mail delivery: producers
// enqueue jobs and move on, a fixed pool of workers drains the queue.
// Each delivery is bounded by a per-send timeout; failures are logged
// and dropped, never retried.
type Dispatcher struct {
	mail    Mailer
	jobs    chan Job
	timeout time.Duration
	log     *zap.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(mail Mailer, workers, queueSize int, timeout time.Duration, log *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	d := &Dispatcher{
		mail:    mail,
		jobs:    make(chan Job, queueSize),
		timeout: timeout,
		log:     log.With(zap.String("mailer", "dispatcher")),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Enqueue hands a job to the pool without blocking. When the queue is
// full the job is dropped and false is returned.
func (d *Dispatcher) Enqueue(job Job) bool {
	select {
	case d.jobs <- job:
		return true
	default:
		d.log.Warn("Mail queue full, dropping job", zap.String("to", job.To), zap.String("subject", job.Subject))
		return false
	}
}

// Close stops accepting jobs and waits for the workers to drain the queue.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.mail.Send(ctx, job.To, job.Subject, job.Body)
	}()

	select {
	case err := <-done:
		if err != nil {
			d.log.Warn("Mail delivery failed", zap.String("to", job.To), zap.Error(err))
		}
	case <-ctx.Done():
		d.log.Warn("Mail delivery timed out", zap.String("to", job.To), zap.Duration("timeout", d.timeout))
	}
}
