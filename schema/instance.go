package schema

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Args carries constructor keyword arguments: values for schema attributes
// plus the base parameters "id" and "reference".
type Args map[string]any

// Base constructor parameters recognized for every class.
const (
	argID        = "id"
	argReference = "reference"
)

// Instance is a constructed record with schema-bound attribute slots. Every
// declaration in the class schema has a slot whether or not a value was
// supplied; only the populated subset varies per instance. Instances are not
// safe for concurrent mutation.
type Instance struct {
	class     *Class
	id        string
	reference bool
	values    map[string][]any
}

// New constructs an instance of class from args. Arguments matching schema
// declarations populate those slots; the remainder is handled by the base
// constructor, which accepts "id" (string) and "reference" (bool) and fails
// with *UnrecognizedArgumentError on anything else. When no id is supplied,
// a fresh one is generated in the form "<class>:<uuid>".
func New(class *Class, args Args) (*Instance, error) {
	if class == nil {
		return nil, errors.New("class is required")
	}

	inst := &Instance{
		class:  class,
		values: make(map[string][]any, len(class.schema)),
	}

	// Partition: schema-matched arguments are set aside, the rest is
	// forwarded to the base constructor.
	matched := make(map[string]any, len(args))
	for name, v := range args {
		if _, ok := class.byName[name]; ok {
			matched[name] = v
		}
	}
	for name, v := range args {
		if _, ok := matched[name]; ok {
			continue
		}
		switch name {
		case argID:
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("class %q: id must be a string, got %T", class.name, v)
			}
			inst.id = s
		case argReference:
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("class %q: reference must be a bool, got %T", class.name, v)
			}
			inst.reference = b
		default:
			return nil, &UnrecognizedArgumentError{Class: class.name, Name: name}
		}
	}
	if inst.id == "" {
		inst.id = NewID(class)
	}

	// Populate in declaration order so construction is deterministic.
	for _, d := range class.schema {
		v, ok := matched[d.Name]
		if !ok {
			continue
		}
		if err := inst.Set(d.Name, v); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

// NewID generates a fresh entity ID for the class.
func NewID(class *Class) string {
	return class.name + ":" + uuid.NewString()
}

// Class returns the class this instance was constructed from.
func (in *Instance) Class() *Class { return in.class }

// ID returns the entity identifier.
func (in *Instance) ID() string { return in.id }

// Reference reports whether this is an identity-only instance.
func (in *Instance) Reference() bool { return in.reference }

// Set writes a value through the attribute's accessor: cardinality-one slots
// are overwritten, cardinality-many slots accumulate in order. Relationship
// values must be an *Instance of the declaration's target class (or a
// descendant), or a bare string entity ID stored as a weak reference.
func (in *Instance) Set(name string, value any) error {
	d, ok := in.class.byName[name]
	if !ok {
		return fmt.Errorf("class %q has no attribute %q", in.class.name, name)
	}
	if d.Normalize != nil {
		value = d.Normalize(value)
	}
	if d.Kind == KindRelationship {
		if err := in.checkTarget(d, value); err != nil {
			return err
		}
	}
	if d.Cardinality == Many {
		in.values[name] = append(in.values[name], value)
		return nil
	}
	in.values[name] = []any{value}
	return nil
}

func (in *Instance) checkTarget(d *Declaration, value any) error {
	switch v := value.(type) {
	case string:
		// Bare entity IDs are weak references resolved by the external
		// store; no type constraint applies.
		return nil
	case *Instance:
		target, err := d.Target.Resolve()
		if err != nil {
			return err
		}
		if !v.class.IsA(target) {
			return &TypeMismatchError{
				Class:     in.class.name,
				Attribute: d.Name,
				Want:      target.name,
				Got:       fmt.Sprintf("instance of %q", v.class.name),
			}
		}
		return nil
	default:
		target := d.Target.Name()
		return &TypeMismatchError{
			Class:     in.class.name,
			Attribute: d.Name,
			Want:      target,
			Got:       fmt.Sprintf("%T", value),
		}
	}
}

// Value returns the current value of a cardinality-one attribute, or nil
// when the slot is unpopulated. Multi-valued attributes must be read with
// Values.
func (in *Instance) Value(name string) (any, error) {
	d, ok := in.class.byName[name]
	if !ok {
		return nil, fmt.Errorf("class %q has no attribute %q", in.class.name, name)
	}
	if d.Cardinality == Many {
		return nil, fmt.Errorf("attribute %q of class %q is multi-valued, use Values", name, in.class.name)
	}
	vals := in.values[name]
	if len(vals) == 0 {
		return nil, nil
	}
	return vals[0], nil
}

// Values returns the ordered values held in the named slot. A cardinality-one
// slot yields at most one value. The returned slice is a copy.
func (in *Instance) Values(name string) ([]any, error) {
	if _, ok := in.class.byName[name]; !ok {
		return nil, fmt.Errorf("class %q has no attribute %q", in.class.name, name)
	}
	vals := in.values[name]
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]any, len(vals))
	copy(out, vals)
	return out, nil
}

// Populated reports whether the named slot holds at least one value.
func (in *Instance) Populated(name string) bool {
	return len(in.values[name]) > 0
}

// PopulatedNames returns the names of populated slots in declaration order.
func (in *Instance) PopulatedNames() []string {
	names := make([]string, 0, len(in.values))
	for _, d := range in.class.schema {
		if len(in.values[d.Name]) > 0 {
			names = append(names, d.Name)
		}
	}
	return names
}
