package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ifcgraph/pkg/cache"
	ifcio "github.com/matzehuels/ifcgraph/pkg/io"
	"github.com/matzehuels/ifcgraph/pkg/layout"
	"github.com/matzehuels/ifcgraph/pkg/observability"
	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. It does not store
// pipeline results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage cache lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → trace → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	m, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Model = m
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = m.Graph.NodeCount()
	result.Stats.EdgeCount = m.Graph.EdgeCount()
	result.CacheInfo.ParseHit = parseHit

	// Stage 2: Trace
	t, err := r.Trace(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Trace = t
	result.Stats.TraceNodes = t.Graph.NodeCount()
	result.Stats.TraceEdges = t.Graph.EdgeCount()
	result.Stats.MaxDistance = t.MaxDistance()

	// Stage 3: Layout
	layoutStart := time.Now()
	pos, layoutHit, err := r.LayoutWithCacheInfo(ctx, m, t, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Positions = pos
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	// Stage 4: Render
	renderStart := time.Now()
	data, renderHit, err := r.RenderWithCacheInfo(ctx, m, t, pos, opts)
	if err != nil {
		return nil, err
	}
	result.Artifact = data
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	return result, nil
}

// ParseWithCacheInfo parses opts.File with caching and returns cache hit info.
// The file is always read to compute its content hash; only parsing is
// skipped on a hit.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (m *Model, hit bool, err error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.File)
	start := time.Now()
	defer func() {
		records := 0
		if m != nil {
			records = m.Graph.NodeCount()
		}
		hooks.OnParseComplete(ctx, opts.File, records, time.Since(start), err)
	}()

	data, hash, err := readModel(opts.File)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.GraphKey(hash)

	if cached, ok := r.lookup(ctx, cacheKey, observability.StageGraph, opts.Refresh); ok {
		g, err := ifcio.ReadJSON(bytes.NewReader(cached))
		if err == nil {
			return &Model{Path: opts.File, Hash: hash, Graph: g}, true, nil
		}
		r.Logger.Debug("discarding unreadable cache entry", "key", cacheKey, "err", err)
	}

	m, err = parseData(opts.File, hash, data)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("parsed file",
		"file", opts.File,
		"records", m.Graph.NodeCount(),
		"references", m.Graph.EdgeCount())

	var buf bytes.Buffer
	if err := ifcio.WriteJSON(m.Graph, &buf); err == nil {
		r.store(ctx, cacheKey, observability.StageGraph, buf.Bytes(), cache.TTLGraph)
	}
	return m, false, nil
}

// Parse is a convenience wrapper that calls ParseWithCacheInfo and discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*Model, error) {
	m, _, err := r.ParseWithCacheInfo(ctx, opts)
	return m, err
}

// Trace runs the reachability filter from opts.Tag.
func (r *Runner) Trace(ctx context.Context, m *Model, opts Options) (*refgraph.Trace, error) {
	if err := opts.ValidateForTrace(); err != nil {
		return nil, err
	}
	t, err := Trace(m, opts.Tag, opts.MaxDepth)
	if err != nil {
		observability.Pipeline().OnTraceComplete(ctx, opts.Tag, 0, 0, err)
		return nil, err
	}
	observability.Pipeline().OnTraceComplete(ctx, t.Start, t.Graph.NodeCount(), t.MaxDistance(), nil)
	r.Logger.Info("traced references",
		"start", t.Start,
		"nodes", t.Graph.NodeCount(),
		"edges", t.Graph.EdgeCount(),
		"max_distance", t.MaxDistance())
	return t, nil
}

// LayoutWithCacheInfo computes positions with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, m *Model, t *refgraph.Trace, opts Options) (layout.Positions, bool, error) {
	opts.SetLayoutDefaults()
	cacheKey := r.Keyer.LayoutKey(m.Hash, opts.LayoutKeyOpts(t.Start))

	if data, ok := r.lookup(ctx, cacheKey, observability.StageLayout, opts.Refresh); ok {
		if pos, err := unmarshalPositions(data, t); err == nil {
			return pos, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, t.Graph.NodeCount())
	start := time.Now()
	pos := ComputeLayout(t, opts)
	hooks.OnLayoutComplete(ctx, len(pos), time.Since(start), nil)
	r.Logger.Debug("computed layout",
		"nodes", len(pos),
		"seed", opts.Seed,
		"iterations", opts.Iterations,
		"duration", time.Since(start))

	if data, err := marshalPositions(pos); err == nil {
		r.store(ctx, cacheKey, observability.StageLayout, data, cache.TTLLayout)
	}
	return pos, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, m *Model, t *refgraph.Trace, opts Options) (layout.Positions, error) {
	pos, _, err := r.LayoutWithCacheInfo(ctx, m, t, opts)
	return pos, err
}

// RenderWithCacheInfo renders opts.Format with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, m *Model, t *refgraph.Trace, pos layout.Positions, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ArtifactKey(m.Hash, opts.ArtifactKeyOpts(t.Start))

	if data, ok := r.lookup(ctx, cacheKey, observability.StageArtifact, opts.Refresh); ok {
		return data, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	data, err := Render(ctx, t, pos, opts)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("rendered output",
		"format", opts.Format,
		"renderer", opts.Renderer,
		"bytes", len(data),
		"duration", time.Since(start))

	r.store(ctx, cacheKey, observability.StageArtifact, data, cache.TTLArtifact)
	return data, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, m *Model, t *refgraph.Trace, pos layout.Positions, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, m, t, pos, opts)
	return data, err
}

// lookup reads key from the cache unless refresh is set. Cache errors count
// as misses.
func (r *Runner) lookup(ctx context.Context, key, stage string, refresh bool) ([]byte, bool) {
	if refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, stage)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, stage)
	return data, true
}

// store writes a cache entry. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key, stage string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, r.ttl(ttl)); err != nil {
		r.Logger.Warn("cache write failed", "stage", stage, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, stage, len(data))
}

func (r *Runner) ttl(stage time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return stage
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
