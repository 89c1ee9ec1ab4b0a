package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
)

// Dispatcher runs handlers in background goroutines detached from the
// request context. Wait blocks until every dispatched handler returned.
type Dispatcher struct {
	wg sync.WaitGroup
}

// Dispatch executes handler asynchronously with the caller's logger and panic recovery
func (d *Dispatcher) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := NewBackgroundContext(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Wait blocks until all dispatched handlers finished
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// NewBackgroundContext creates a context that outlives ctx but keeps its logger
func NewBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
