package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// GraphKey addresses the parsed graph of a file with the given content hash.
	GraphKey(fileHash string) string

	// LayoutKey addresses the positions of a trace of the graph with graphHash.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey addresses a rendered output of a trace of the graph with graphHash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds everything that changes computed positions.
type LayoutKeyOpts struct {
	Start      string `json:"start"`
	MaxDepth   int    `json:"max_depth"`
	Seed       uint64 `json:"seed"`
	Iterations int    `json:"iterations"`
}

// ArtifactKeyOpts holds everything that changes a rendered output.
type ArtifactKeyOpts struct {
	Layout   LayoutKeyOpts `json:"layout"`
	Format   string        `json:"format"`
	Renderer string        `json:"renderer"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Colors   []string      `json:"colors"`
	MinAlpha float64       `json:"min_alpha"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey returns "graph:<fileHash>".
func (DefaultKeyer) GraphKey(fileHash string) string {
	return "graph:" + fileHash
}

// LayoutKey returns "layout:" followed by a hash of graphHash and opts.
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey returns "artifact:" followed by a hash of graphHash and opts.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Hash returns the hex SHA-256 of data. Graph keys use it on raw file bytes.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins stage and the hash of parts encoded as JSON.
func hashKey(stage string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return stage + ":" + Hash(data)
}

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys by
// release version so a parser change never reads graphs cached by an older
// build.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) GraphKey(fileHash string) string {
	return k.prefix + k.inner.GraphKey(fileHash)
}

func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
