package schema

import "fmt"

// Class is an immutable entity class: a name plus the ordered declarations it
// owns, composed with its ancestors' schema. The full inherited schema is
// resolved once at definition time so it can be introspected without
// constructing an instance.
type Class struct {
	name   string
	parent *Class
	own    []*Declaration
	schema []*Declaration
	byName map[string]*Declaration
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Parent returns the superclass, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

// Declarations returns the declarations this class owns, excluding inherited
// ones. The returned slice must not be mutated.
func (c *Class) Declarations() []*Declaration { return c.own }

// Schema returns the full inherited schema, most-base declarations first.
// The returned slice must not be mutated.
func (c *Class) Schema() []*Declaration { return c.schema }

// Declaration returns the named declaration from the inherited schema.
func (c *Class) Declaration(name string) (*Declaration, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// IsA reports whether c is other or a descendant of other.
func (c *Class) IsA(other *Class) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// resolveSchema walks the ancestor chain most-base first and appends the
// class's own declarations, rejecting any name already present.
func resolveSchema(name string, parent *Class, own []*Declaration) ([]*Declaration, map[string]*Declaration, error) {
	var inherited []*Declaration
	if parent != nil {
		inherited = parent.schema
	}

	schema := make([]*Declaration, 0, len(inherited)+len(own))
	byName := make(map[string]*Declaration, len(inherited)+len(own))
	for _, d := range inherited {
		schema = append(schema, d)
		byName[d.Name] = d
	}

	for _, d := range own {
		if d.Name == "" {
			return nil, nil, fmt.Errorf("class %q: declaration name is required", name)
		}
		if _, dup := byName[d.Name]; dup {
			return nil, nil, &ConflictError{Class: name, Attribute: d.Name}
		}
		switch d.Kind {
		case KindRelationship:
			if d.Target == nil {
				return nil, nil, fmt.Errorf("class %q: relationship %q requires a target type", name, d.Name)
			}
		case KindDatatype:
			if d.Target != nil {
				return nil, nil, fmt.Errorf("class %q: datatype attribute %q must not carry a target type", name, d.Name)
			}
		}
		schema = append(schema, d)
		byName[d.Name] = d
	}

	return schema, byName, nil
}
