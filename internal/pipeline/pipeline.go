package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	xhttp "github.com/handiism/timecrawl/internal/http"
)

// Doer performs one network call. *xhttp.Client implements Doer.
type Doer interface {
	Do(ctx context.Context, req *xhttp.Request) (*xhttp.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(ctx context.Context, req *xhttp.Request) (*xhttp.Response, error)

// Do calls f(ctx, req).
func (f DoerFunc) Do(ctx context.Context, req *xhttp.Request) (*xhttp.Response, error) {
	return f(ctx, req)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config holds pacing and retry settings.
type Config struct {
	// Pacing is waited after every response before its result is released.
	Pacing time.Duration

	// RetryAfterMargin is added to every Retry-After wait.
	RetryAfterMargin time.Duration

	// MaxThrottleRetries bounds how often a 429 is retried within one ticket.
	MaxThrottleRetries int

	// RetryCooldown is the first backoff used when a 429 has no Retry-After.
	RetryCooldown time.Duration

	// RetryExponent multiplies the backoff on every further attempt.
	RetryExponent float64
}

// DefaultConfig returns the default pacing and retry settings.
func DefaultConfig() Config {
	return Config{
		Pacing:             125 * time.Millisecond,
		RetryAfterMargin:   time.Second,
		MaxThrottleRetries: 7,
		RetryCooldown:      200 * time.Millisecond,
		RetryExponent:      4.0,
	}
}

// Stats is a snapshot of pipeline counters.
type Stats struct {
	Submitted  int
	Dispatched int64
	Throttled  int64
	Failed     int64
	Disabled   bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSleep replaces the function used for every wait.
func WithSleep(sleep SleepFunc) Option {
	return func(p *Pipeline) {
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

// ticket is one enqueued unit of work.
type ticket struct {
	seq  int
	req  *xhttp.Request
	prev <-chan struct{}
	done chan struct{}
	resp *xhttp.Response
	err  error
}

// Pipeline serializes catalog calls.
//
// Pipeline is safe for concurrent use. The ticket log, the queue tail and the
// disabled flag are only ever written by the Pipeline itself.
type Pipeline struct {
	doer   Doer
	cfg    Config
	sleep  SleepFunc
	logger *slog.Logger

	mu      sync.Mutex
	tickets []*ticket
	tail    <-chan struct{}

	disabled   atomic.Bool
	dispatched atomic.Int64
	throttled  atomic.Int64
	failed     atomic.Int64
}

// New creates a Pipeline that sends requests through doer.
func New(doer Doer, cfg Config, opts ...Option) *Pipeline {
	settled := make(chan struct{})
	close(settled)

	p := &Pipeline{
		doer:   doer,
		cfg:    cfg,
		sleep:  sleepContext,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tail:   settled,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit enqueues req and waits for its result.
//
// The network call starts only after every previously submitted request has
// settled. Throttling is absorbed internally. Returns ErrDisabled immediately
// if an earlier call failed.
//
// If ctx is done before the request is dispatched, the request is skipped and
// ctx.Err() is returned; this does not disable the pipeline.
func (p *Pipeline) Submit(ctx context.Context, req *xhttp.Request) (*xhttp.Response, error) {
	if p.disabled.Load() {
		return nil, ErrDisabled
	}

	t := p.enqueue(req)
	go p.run(ctx, t)

	select {
	case <-t.done:
		return t.resp, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len returns the number of requests submitted over the pipeline's lifetime.
func (p *Pipeline) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tickets)
}

// Disabled reports whether the circuit breaker has tripped.
func (p *Pipeline) Disabled() bool {
	return p.disabled.Load()
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Submitted:  p.Len(),
		Dispatched: p.dispatched.Load(),
		Throttled:  p.throttled.Load(),
		Failed:     p.failed.Load(),
		Disabled:   p.disabled.Load(),
	}
}

func (p *Pipeline) enqueue(req *xhttp.Request) *ticket {
	p.mu.Lock()
	defer p.mu.Unlock()

	t := &ticket{
		seq:  len(p.tickets) + 1,
		req:  req,
		prev: p.tail,
		done: make(chan struct{}),
	}
	p.tickets = append(p.tickets, t)
	p.tail = t.done
	return t
}

// run settles t once every earlier ticket has settled.
func (p *Pipeline) run(ctx context.Context, t *ticket) {
	defer close(t.done)
	<-t.prev

	if err := ctx.Err(); err != nil {
		t.err = err
		return
	}
	if p.disabled.Load() {
		t.err = ErrDisabled
		return
	}

	p.dispatched.Add(1)
	p.logger.Debug("dispatch", "seq", t.seq, "request", t.req.String())
	t.resp, t.err = p.execute(ctx, t)
}

func (p *Pipeline) execute(ctx context.Context, t *ticket) (*xhttp.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := p.doer.Do(ctx, t.req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, p.fail(t, fmt.Errorf("%s: %w", t.req, err))
		}

		wait, hasWait := resp.RetryAfter()
		if hasWait {
			p.logger.Warn("retry-after received, waiting",
				"seq", t.seq,
				"retry_after", wait,
				"margin", p.cfg.RetryAfterMargin,
			)
			if err := p.sleep(ctx, wait+p.cfg.RetryAfterMargin); err != nil {
				return nil, err
			}
		}

		if err := p.sleep(ctx, p.cfg.Pacing); err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			p.throttled.Add(1)
			if attempt >= p.cfg.MaxThrottleRetries {
				return nil, p.fail(t, fmt.Errorf("%s: %w after %d retries", t.req, ErrThrottled, attempt))
			}
			p.logger.Warn("throttled, retrying", "seq", t.seq, "attempt", attempt+1)
			if !hasWait {
				if err := p.sleep(ctx, p.backoff(attempt)); err != nil {
					return nil, err
				}
			}
			continue
		}

		if !resp.OK() {
			return nil, p.fail(t, &StatusError{
				Request:    t.req.String(),
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
			})
		}

		return resp, nil
	}
}

// fail trips the circuit breaker and returns err.
func (p *Pipeline) fail(t *ticket, err error) error {
	p.failed.Add(1)
	if !p.disabled.Swap(true) {
		p.logger.Error("request failed, disabling pipeline", "seq", t.seq, "error", err)
	}
	return err
}

// backoff returns the wait before retry attempt+1 of a throttled request.
func (p *Pipeline) backoff(attempt int) time.Duration {
	cooldown := float64(p.cfg.RetryCooldown) * math.Pow(p.cfg.RetryExponent, float64(attempt))
	return time.Duration(cooldown)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
