package mongovalidator

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/mongovalidator/pkg/logger"
	"github.com/dmitrymomot/mongovalidator/pkg/schema"
	"github.com/dmitrymomot/mongovalidator/pkg/validator"
)

// Predicate validates a single field value.
type Predicate = schema.ValidatorFunc

// Descriptor pairs a predicate with its failure message.
type Descriptor = schema.Descriptor

// Factory binds extra arguments and returns a predicate.
type Factory func(args ...any) Predicate

// DescriptorFactory binds extra arguments and an optional trailing Options
// value and returns a descriptor.
type DescriptorFactory func(args ...any) Descriptor

// Library is a named table of validation functions.
type Library interface {
	Exports() []string
	Lookup(name string) (any, bool)
}

// descriptorPrefix marks descriptor factory keys.
const descriptorPrefix = "$"

// blacklist holds library exports that are not per-value predicates.
var blacklist = []string{
	"init",
	"extend",
	"version",
	"trim",
	"ltrim",
	"rtrim",
	"escape",
	"stripLow",
	"whitelist",
	"blacklist",
	"normalizeEmail",
}

// Registry maps validator names to factories. Each name is registered twice:
// once as a plain factory and once, prefixed with "$", as a descriptor factory.
type Registry struct {
	mu          sync.RWMutex
	factories   map[string]Factory
	descriptors map[string]DescriptorFactory
	logger      *slog.Logger
}

// New builds a registry from every predicate the library exports, skipping
// coercion functions and blacklisted names, and adds notEmpty.
func New(opts ...Option) (*Registry, error) {
	cfg := &registryConfig{
		library: validator.Catalog{},
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{
		factories:   make(map[string]Factory),
		descriptors: make(map[string]DescriptorFactory),
		logger:      cfg.logger.With(logger.Component("validator_registry")),
	}

	skip := append(slices.Clone(blacklist), cfg.extraBlacklist...)

	for _, name := range cfg.library.Exports() {
		if strings.HasPrefix(name, "to") {
			r.logger.Debug("skipping library export", "name", name, "reason", "coercion")
			continue
		}
		if slices.Contains(skip, name) {
			r.logger.Debug("skipping library export", "name", name, "reason", "blacklisted")
			continue
		}

		v, _ := cfg.library.Lookup(name)
		fn, ok := asFunc(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %T", ErrNotPredicate, name, v)
		}
		if err := r.Extend(name, fn); err != nil {
			r.logger.Debug("library export rejected", "name", name, logger.Error(err))
			return nil, err
		}
	}

	if err := r.Extend("notEmpty", notEmpty); err != nil {
		r.logger.Debug("library export rejected", "name", "notEmpty", logger.Error(err))
		return nil, err
	}

	r.logger.Debug("validator registry ready", logger.Count(len(r.factories)))
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("mongovalidator: %v", err))
	}
	return r
}

func notEmpty(value string, _ ...any) bool {
	return validator.IsLength(value, 1)
}

func asFunc(v any) (validator.Func, bool) {
	switch fn := v.(type) {
	case validator.Func:
		return fn, fn != nil
	case func(string, ...any) bool:
		return fn, fn != nil
	}
	return nil, false
}

// Extend registers fn under name and "$"+name. Registering a name twice
// returns ErrNameConflict and leaves the existing entry untouched.
func (r *Registry) Extend(name string, fn validator.Func) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrNilFunc, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %q", ErrNameConflict, name)
	}

	factory := plainFactory(fn)
	r.factories[name] = factory
	r.descriptors[descriptorPrefix+name] = descriptorFactory(factory)
	return nil
}

func plainFactory(fn validator.Func) Factory {
	return func(args ...any) Predicate {
		bound := slices.Clone(args)
		return func(value any) bool {
			return fn(validator.ToString(value), bound...)
		}
	}
}

func descriptorFactory(factory Factory) DescriptorFactory {
	return func(args ...any) Descriptor {
		var opts Options
		if n := len(args); n > 0 {
			if o, ok := optionsOf(args[n-1]); ok {
				opts = o
				args = args[:n-1]
			}
		}
		return Descriptor{
			Validator: factory(args...),
			Message:   opts.Message,
		}
	}
}

// Get returns the plain factory registered under name, or nil. Descriptor
// factories live under "$"-prefixed keys and are reached through Descriptor;
// Get("$name") always returns nil.
func (r *Registry) Get(name string) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[name]
}

// Descriptor returns the descriptor factory registered under key, which
// must carry the "$" prefix. It returns nil for unknown keys.
func (r *Registry) Descriptor(key string) DescriptorFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors[key]
}
