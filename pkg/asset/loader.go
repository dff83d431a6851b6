// Package asset loads models and animation clips off the main thread and
// hands the results back as futures settled from Loader.Poll.
package asset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leterax/go-stroll/pkg/anim"
	"github.com/leterax/go-stroll/pkg/scene"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// ErrNoAnimations is returned when a clip is requested from a model without any
var ErrNoAnimations = errors.New("asset: model has no animations")

// Model is a decoded asset: a displayable node plus its animation clips
type Model struct {
	Path  string
	Node  *scene.Node
	Clips []anim.Clip
}

// LastClip returns the final clip in the file, which is the one exported
// animation files carry their motion in
func (m *Model) LastClip() (anim.Clip, error) {
	if len(m.Clips) == 0 {
		return anim.Clip{}, fmt.Errorf("%w: %s", ErrNoAnimations, m.Path)
	}
	return m.Clips[len(m.Clips)-1], nil
}

// Decoder turns an asset path into a Model
type Decoder interface {
	Decode(path string) (*Model, error)
}

// DecoderFunc adapts a function to Decoder
type DecoderFunc func(path string) (*Model, error)

func (f DecoderFunc) Decode(path string) (*Model, error) {
	return f(path)
}

// completion carries a decode result from a worker back to the main thread
type completion struct {
	future *Future[*Model]
	model  *Model
	err    error
}

// Loader decodes assets on a worker pool. Results are queued and only
// delivered to futures when the main thread calls Poll.
type Loader struct {
	pool    *ants.Pool
	decoder Decoder
	log     *zap.Logger

	inflight sync.WaitGroup

	mu   sync.Mutex
	done []completion
}

// NewLoader creates a loader with the given number of decode workers
func NewLoader(workers int, decoder Decoder, log *zap.Logger) (*Loader, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("failed to create loader pool: %w", err)
	}

	return &Loader{
		pool:    pool,
		decoder: decoder,
		log:     log,
	}, nil
}

// Load queues path for decoding and returns a future for the result
func (l *Loader) Load(path string) *Future[*Model] {
	f := NewFuture[*Model]()

	l.inflight.Add(1)
	err := l.pool.Submit(func() {
		defer l.inflight.Done()
		model, err := l.decode(path)

		l.mu.Lock()
		l.done = append(l.done, completion{future: f, model: model, err: err})
		l.mu.Unlock()
	})
	if err != nil {
		l.inflight.Done()
		l.log.Error("Failed to queue asset", zap.String("path", path), zap.Error(err))
		f.Reject(fmt.Errorf("failed to queue %s: %w", path, err))
	}

	return f
}

func (l *Loader) decode(path string) (model *Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("decoding %s panicked: %v", path, r)
		}
	}()
	return l.decoder.Decode(path)
}

// Poll settles the futures of every finished decode and returns how many it
// delivered. Call it once per frame from the main thread.
func (l *Loader) Poll() int {
	l.mu.Lock()
	done := l.done
	l.done = nil
	l.mu.Unlock()

	for _, c := range done {
		if c.err != nil {
			l.log.Warn("Asset failed to load", zap.Error(c.err))
			c.future.Reject(c.err)
			continue
		}
		l.log.Debug("Asset loaded",
			zap.String("path", c.model.Path),
			zap.Int("clips", len(c.model.Clips)))
		c.future.Resolve(c.model)
	}
	return len(done)
}

// Wait blocks until every queued decode has finished. Results still need a
// Poll to be delivered.
func (l *Loader) Wait() {
	l.inflight.Wait()
}

// Close waits for in-flight decodes and releases the worker pool
func (l *Loader) Close() {
	l.Wait()
	l.pool.Release()
}
