package codec

import (
	"bytes"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or signature
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register registers a codec using both its name and signature
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or signature
func Get(nameOrSignature string) (Codec, error) {
	return defaultRegistry.Get(nameOrSignature)
}

// Detect returns the codec whose signature opens data
func Detect(data []byte) (Codec, error) {
	return defaultRegistry.Detect(data)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and signature
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	r.codecs[codec.Signature()] = codec
}

// Get retrieves a codec by name or signature
func (r *Registry) Get(nameOrSignature string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrSignature]
	if !ok {
		return nil, errors.Wrapf(ErrCodecNotFound, "%q", nameOrSignature)
	}
	return codec, nil
}

// Detect returns the codec whose signature opens data. When several
// signatures match, the longest one wins.
func (r *Registry) Detect(data []byte) (Codec, error) {
	var best Codec
	for _, c := range r.List() {
		sig := c.Signature()
		if sig == "" || !bytes.HasPrefix(data, []byte(sig)) {
			continue
		}
		if best == nil || len(sig) > len(best.Signature()) {
			best = c
		}
	}
	if best == nil {
		return nil, ErrUnknownSignature
	}
	return best, nil
}

// List returns all registered codecs (deduplicated), sorted by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Codec]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec] {
			seen[codec] = true
			codecs = append(codecs, codec)
		}
	}

	slices.SortFunc(codecs, func(a, b Codec) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return codecs
}
