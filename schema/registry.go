package schema

import (
	"errors"
	"sync"
)

// The process-wide class registry. Classes are defined during package
// initialization; the host freezes the registry before concurrent use and
// lookups are read-only from then on.
var registry = struct {
	sync.RWMutex
	classes map[string]*Class
	order   []string
	frozen  bool
}{classes: make(map[string]*Class)}

// Define registers a new entity class with the given parent and its own
// declarations. Declarations are copied; the caller's slice is not retained.
// A duplicate class name or an attribute name already present in the
// inherited schema yields a *ConflictError. Define fails with ErrFrozen once
// the registry is frozen.
func Define(name string, parent *Class, decls ...Declaration) (*Class, error) {
	if name == "" {
		return nil, errors.New("class name is required")
	}

	registry.Lock()
	defer registry.Unlock()

	if registry.frozen {
		return nil, ErrFrozen
	}
	if _, exists := registry.classes[name]; exists {
		return nil, &ConflictError{Class: name}
	}

	own := make([]*Declaration, len(decls))
	for i := range decls {
		d := decls[i]
		own[i] = &d
	}

	schema, byName, err := resolveSchema(name, parent, own)
	if err != nil {
		return nil, err
	}

	c := &Class{
		name:   name,
		parent: parent,
		own:    own,
		schema: schema,
		byName: byName,
	}
	registry.classes[name] = c
	registry.order = append(registry.order, name)
	return c, nil
}

// MustDefine is Define for init-time class tables; it panics on error.
func MustDefine(name string, parent *Class, decls ...Declaration) *Class {
	c, err := Define(name, parent, decls...)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return c
}

// Lookup returns the named class from the registry.
func Lookup(name string) (*Class, bool) {
	registry.RLock()
	defer registry.RUnlock()

	c, ok := registry.classes[name]
	return c, ok
}

// Classes returns all defined classes in definition order.
func Classes() []*Class {
	registry.RLock()
	defer registry.RUnlock()

	out := make([]*Class, 0, len(registry.order))
	for _, name := range registry.order {
		out = append(out, registry.classes[name])
	}
	return out
}

// Freeze closes the definition phase. Define returns ErrFrozen afterward.
// Freezing twice is a no-op.
func Freeze() {
	registry.Lock()
	defer registry.Unlock()
	registry.frozen = true
}

// Frozen reports whether the definition phase has been closed.
func Frozen() bool {
	registry.RLock()
	defer registry.RUnlock()
	return registry.frozen
}
