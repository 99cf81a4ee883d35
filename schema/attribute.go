package schema

import (
	"fmt"
	"sync"
)

// Kind distinguishes literal-valued declarations from entity references.
type Kind int

const (
	// KindDatatype declares a literal-valued attribute slot.
	KindDatatype Kind = iota

	// KindRelationship declares a reference to another entity instance,
	// constrained to the declaration's target class.
	KindRelationship
)

// Cardinality controls how many values an attribute slot holds.
type Cardinality int

const (
	// One holds a single value; Set overwrites.
	One Cardinality = iota

	// Many holds an ordered multiset; Set appends.
	Many
)

// Declaration is a single named, typed slot on an entity class. Declarations
// are owned by the class that declares them and inherited read-only by
// subclasses.
type Declaration struct {
	// Name is the constructor-argument key and accessor name. It must be
	// unique across the owning class's full inherited schema.
	Name string

	Kind        Kind
	Cardinality Cardinality

	// Target constrains relationship values to instances of the referenced
	// class. Required for KindRelationship, nil otherwise.
	Target *TypeRef

	// Predicate is the dotted graph predicate external layers key on.
	// Defaults to Name when empty.
	Predicate string

	// Normalize, when set, canonicalizes values written to this slot. It is
	// applied on every write path, so values restored from storage pass
	// through it the same as constructor arguments.
	Normalize func(value any) any
}

// GraphPredicate returns the predicate the graph layer serializes this
// attribute under.
func (d *Declaration) GraphPredicate() string {
	if d.Predicate != "" {
		return d.Predicate
	}
	return d.Name
}

// TypeRef is a lazily resolved handle to an entity class. A declaration may
// reference a class that has not been defined yet; the name is resolved
// against the registry on first use and the result is cached.
type TypeRef struct {
	name string

	once  sync.Once
	class *Class
	err   error
}

// TypeOf returns a handle that resolves the named class on first use.
func TypeOf(name string) *TypeRef {
	return &TypeRef{name: name}
}

// Name returns the referenced class name without resolving it.
func (r *TypeRef) Name() string { return r.name }

// Resolve returns the referenced class. The first call performs the registry
// lookup; later calls return the cached result.
func (r *TypeRef) Resolve() (*Class, error) {
	r.once.Do(func() {
		c, ok := Lookup(r.name)
		if !ok {
			r.err = fmt.Errorf("relationship target %q is not a defined class", r.name)
			return
		}
		r.class = c
	})
	return r.class, r.err
}
