// Package observability provides hooks for pipeline and cache events.
//
// Libraries emit events through the registered hooks; the defaults do
// nothing. The CLI registers hooks that turn events into debug log lines, and
// tests register recorders.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetPipelineHooks(&myPipelineHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, file)
//	// ... parse ...
//	observability.Pipeline().OnParseComplete(ctx, file, records, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names used for cache events.
const (
	StageGraph    = "graph"
	StageLayout   = "layout"
	StageArtifact = "artifact"
)

// PipelineHooks receives events from the parse → trace → layout → render
// pipeline. Completion events carry the stage error, nil on success.
type PipelineHooks interface {
	OnParseStart(ctx context.Context, file string)
	OnParseComplete(ctx context.Context, file string, records int, duration time.Duration, err error)

	OnTraceComplete(ctx context.Context, start string, nodes, maxDistance int, err error)

	OnLayoutStart(ctx context.Context, nodes int)
	OnLayoutComplete(ctx context.Context, nodes int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups. stage is one of the Stage
// constants.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, stage string)
	OnCacheMiss(ctx context.Context, stage string)
	OnCacheSet(ctx context.Context, stage string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnTraceComplete(context.Context, string, int, int, error)            {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
