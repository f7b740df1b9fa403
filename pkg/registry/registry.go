package registry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ErrAlgorithmNotFound is returned by Execute for unknown names.
var ErrAlgorithmNotFound = errors.New("algorithm not found")

// ErrInvalidName is returned when registering an empty name.
var ErrInvalidName = errors.New("algorithm name must be a non-empty string")

// Handler defines the signature for an algorithm implementation.
// It receives a context and a map of arguments, and returns a result or error.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Metadata describes an algorithm for listings.
type Metadata struct {
	Description string   `json:"description"`
	Inputs      []string `json:"inputs"`
}

// Info is a listing entry.
type Info struct {
	Name string `json:"name"`
	Metadata
}

type entry struct {
	handler Handler
	meta    Metadata
}

// Registry manages the available algorithms.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[string]entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		algorithms: make(map[string]entry),
	}
}

// Register adds an algorithm to the registry.
// If an algorithm with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Handler, meta Metadata) error {
	if name == "" {
		return ErrInvalidName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms[name] = entry{handler: fn, meta: meta}
	return nil
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.algorithms[name]
	return e.handler, ok
}

// List returns every algorithm sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.algorithms))
	for name, e := range r.algorithms {
		out = append(out, Info{Name: name, Metadata: e.meta})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute looks up an algorithm by name and executes it.
// Returns an error if the algorithm is not found.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	fn, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAlgorithmNotFound, name)
	}
	return fn(ctx, args)
}

// Decode copies args onto out, converting strings to numbers where needed,
// so form values like {"max_degree": "100"} decode like JSON numbers.
// Floats only decode into integer fields when they hold a whole number.
func Decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		DecodeHook:       integralFloatHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

// integralFloatHook rejects floats with a fractional part, or outside the
// int64 range, before they are truncated into integer fields.
func integralFloatHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return data, nil
}
