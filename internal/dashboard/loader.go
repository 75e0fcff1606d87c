package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobtrack/internal/types"
)

// ErrViewClosed is returned when a load finishes after the view that
// requested it was torn down. The result is discarded, never applied.
var ErrViewClosed = errors.New("view closed before load completed")

// RecordSource is the slice of the data client the loader needs.
// *api.Client satisfies it.
type RecordSource interface {
	Applications(ctx context.Context) ([]types.ApplicationRecord, error)
	Resumes(ctx context.Context) ([]types.ResumeRecord, error)
}

// Loader ties a dashboard view to the data client: it fetches both
// record lists, aggregates them, and holds the metrics the view renders.
// Closing the loader tears the view down; an in-flight load that
// resolves afterwards is discarded rather than applied to stale state.
type Loader struct {
	source RecordSource
	clock  func() time.Time

	mu      sync.Mutex
	closed  bool
	metrics Metrics
	loaded  bool
}

// NewLoader creates a loader over a record source.
func NewLoader(source RecordSource) *Loader {
	return &Loader{source: source, clock: time.Now}
}

// Load fetches applications and resumes concurrently, computes metrics,
// and applies them to the loader. Fetch-then-compute is causally
// ordered: metrics are only derived after both fetches resolve.
func (l *Loader) Load(ctx context.Context) (Metrics, error) {
	var (
		apps    []types.ApplicationRecord
		resumes []types.ResumeRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = l.source.Applications(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		resumes, err = l.source.Resumes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	m := Compute(apps, resumes, l.clock())

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return Metrics{}, ErrViewClosed
	}
	l.metrics = m
	l.loaded = true
	return m, nil
}

// Current returns the last applied metrics, if any load has completed.
func (l *Loader) Current() (Metrics, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.metrics, l.loaded
}

// Close tears the view down. Pending loads resolve with ErrViewClosed
// and leave the applied state untouched. Closing twice is harmless.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
