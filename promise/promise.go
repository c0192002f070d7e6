package promise

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

type Outcome int32

const (
	Pending Outcome = iota
	Resolved
	Rejected
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Computation produces exactly one eventual success or failure. It should
// honor ctx cancellation, but a computation that ignores ctx only has its
// result discarded, it is never forcibly aborted.
type Computation[T any] func(ctx context.Context) (T, error)

type Promise[T any] struct {
	outcome int32
	done    chan struct{}
	value   T
	err     error
	log     *log.Entry
}

type result[T any] struct {
	value T
	err   error
}

// Run starts f and a timer for timeout concurrently. Exactly one terminal
// transition occurs: whichever of the two settles first wins, and the pending
// timer is stopped on settlement.
func Run[T any](ctx context.Context, timeout time.Duration, f Computation[T]) *Promise[T] {
	p := &Promise[T]{
		done: make(chan struct{}),
		log:  log.WithFields(log.Fields{"timeout": timeout}),
	}
	go p.race(ctx, timeout, f)
	return p
}

// WithTimeout is the blocking form of Run.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, f Computation[T]) (T, error) {
	return Run(ctx, timeout, f).Await()
}

func (p *Promise[T]) race(ctx context.Context, timeout time.Duration, f Computation[T]) {
	clock := time.NewTimer(timeout)
	settled := make(chan result[T], 1)
	go func() {
		v, err := f(ctx)
		settled <- result[T]{value: v, err: err}
	}()
	select {
	case res := <-settled:
		forceStopTimer(clock)
		if res.err != nil {
			p.settle(Rejected, res.value, res.err)
		} else {
			p.settle(Resolved, res.value, nil)
		}
	case <-clock.C:
		var zero T
		p.settle(TimedOut, zero, ErrTimeout)
	case <-ctx.Done():
		forceStopTimer(clock)
		var zero T
		p.settle(Rejected, zero, ctx.Err())
	}
}

func (p *Promise[T]) settle(outcome Outcome, v T, err error) {
	p.value = v
	p.err = err
	atomic.StoreInt32(&p.outcome, int32(outcome))
	close(p.done)
	p.log.Debugf("promise settled: %s", outcome)
}

func forceStopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// Await blocks until settlement and returns the terminal outcome.
func (p *Promise[T]) Await() (T, error) {
	<-p.done
	return p.value, p.err
}

// Done is closed on settlement.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) Outcome() Outcome {
	return Outcome(atomic.LoadInt32(&p.outcome))
}
