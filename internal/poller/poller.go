// Package poller runs fixed-interval refresh tasks. Each task has a single
// in-flight invariant: a tick that fires while the previous fetch is still
// running is skipped, never stacked.
package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lloydfonterra/PolyMarks/internal/metrics"
	"github.com/sirupsen/logrus"
)

type task struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
	inFlight atomic.Bool
}

// Poller schedules refresh tasks with a Start/Stop lifecycle.
type Poller struct {
	tasks  []*task
	log    *logrus.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an empty poller.
func New(log *logrus.Logger) *Poller {
	return &Poller{log: log}
}

// Add registers a named task. Must be called before Start.
func (p *Poller) Add(name string, interval time.Duration, run func(ctx context.Context) error) {
	p.tasks = append(p.tasks, &task{name: name, interval: interval, run: run})
}

// Start launches all tasks. Each runs once immediately, then on its interval.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	for _, t := range p.tasks {
		p.wg.Add(1)
		go p.loop(ctx, t)
	}
}

// Stop cancels all tasks and waits for in-flight runs to finish.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Poller) loop(ctx context.Context, t *task) {
	defer p.wg.Done()

	p.execute(ctx, t)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.inFlight.CompareAndSwap(false, true) {
				metrics.RecordPollSkipped(t.name)
				p.log.WithField("task", t.name).Debug("Fetch still in flight, skipping tick")
				continue
			}
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				defer t.inFlight.Store(false)
				p.execute(ctx, t)
			}()
		}
	}
}

func (p *Poller) execute(ctx context.Context, t *task) {
	start := time.Now()
	err := t.run(ctx)
	metrics.RecordPollCycle(t.name, time.Since(start), err)

	if err != nil && ctx.Err() == nil {
		// One failed cycle only costs freshness; the previous snapshot
		// stands until the next tick.
		p.log.WithError(err).WithField("task", t.name).Error("Poll cycle failed")
	}
}
