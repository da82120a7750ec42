package schema

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Validation kinds recorded on ValidationError.
const (
	KindRequired    = "required"
	KindUserDefined = "user defined"
)

// Default messages. {PATH} and {VALUE} are substituted at validation time.
const (
	DefaultRequiredMessage = "Path `{PATH}` is required."
	DefaultInvalidMessage  = "Validator failed for path `{PATH}` with value `{VALUE}`"
)

// ValidatorFunc is a single-argument predicate over a field value.
type ValidatorFunc func(value any) bool

// Descriptor pairs a predicate with its failure message. An empty Message
// means the default message applies.
type Descriptor struct {
	Validator ValidatorFunc
	Message   string
}

type check struct {
	fn      ValidatorFunc
	message string
	kind    string
}

// Path is a named field of a schema and the checks attached to it. Checks
// may be attached while the schema is validating other documents; a
// validation run sees the checks present when it reached the path.
type Path struct {
	name string

	mu              sync.RWMutex
	required        bool
	requiredMessage string
	checks          []check
}

// Name returns the dotted path name.
func (p *Path) Name() string {
	return p.name
}

// Required marks the path as mandatory. The optional message overrides
// DefaultRequiredMessage.
func (p *Path) Required(msg ...string) *Path {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.required = true
	if len(msg) > 0 {
		p.requiredMessage = msg[0]
	}
	return p
}

// Validate attaches a predicate with an error message.
func (p *Path) Validate(fn ValidatorFunc, msg string) *Path {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.checks = append(p.checks, check{fn: fn, message: msg, kind: KindUserDefined})
	return p
}

// ValidateWith attaches descriptors in order.
func (p *Path) ValidateWith(ds ...Descriptor) *Path {
	for _, d := range ds {
		p.Validate(d.Validator, d.Message)
	}
	return p
}

// Schema is an ordered set of paths.
type Schema struct {
	mu    sync.RWMutex
	paths []*Path
	index map[string]*Path
}

func New() *Schema {
	return &Schema{index: make(map[string]*Path)}
}

// Path returns the path registered under name, creating it on first use.
func (s *Schema) Path(name string) *Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.index[name]; ok {
		return p
	}
	p := &Path{name: name}
	s.paths = append(s.paths, p)
	s.index[name] = p
	return p
}

// Paths returns path names in declaration order.
func (s *Schema) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		names = append(names, p.name)
	}
	return names
}

// Validate checks doc against every path and returns all failures together
// as ValidationErrors. doc may be a map, bson.M, bson.D or any value the BSON
// codec can marshal.
func (s *Schema) Validate(doc any) error {
	m, err := toDocument(doc)
	if err != nil {
		return err
	}

	s.mu.RLock()
	paths := make([]*Path, len(s.paths))
	copy(paths, s.paths)
	s.mu.RUnlock()

	var errs ValidationErrors
	for _, p := range paths {
		required, requiredMessage, checks := p.snapshot()

		value, ok := lookup(m, p.name)
		present := ok && value != nil

		if required && (!present || value == "") {
			errs.Add(newError(p.name, KindRequired, requiredMessage, DefaultRequiredMessage, value))
			continue
		}
		if !present {
			continue
		}

		for _, c := range checks {
			if c.fn != nil && c.fn(value) {
				continue
			}
			errs.Add(newError(p.name, c.kind, c.message, DefaultInvalidMessage, value))
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (p *Path) snapshot() (bool, string, []check) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.required, p.requiredMessage, slices.Clone(p.checks)
}

func newError(path, kind, message, fallback string, value any) ValidationError {
	if message == "" {
		message = fallback
	}
	return ValidationError{
		Path:           path,
		Kind:           kind,
		Message:        render(message, path, value),
		Value:          value,
		TranslationKey: "validation." + strings.ReplaceAll(kind, " ", "_"),
		TranslationValues: map[string]any{
			"path":  path,
			"value": value,
		},
	}
}

func render(message, path string, value any) string {
	if !strings.Contains(message, "{") {
		return message
	}
	v := ""
	if value != nil {
		v = fmt.Sprint(value)
	}
	return strings.NewReplacer("{PATH}", path, "{VALUE}", v).Replace(message)
}
