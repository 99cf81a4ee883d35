package schema

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned by Define once the registry has been frozen.
var ErrFrozen = errors.New("schema registry is frozen")

// ConflictError reports a duplicate class name, or an attribute declaration
// whose name already exists in the owning class's inherited schema. Raised at
// class-definition time, never at construction time.
type ConflictError struct {
	Class     string
	Attribute string
}

func (e *ConflictError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("class %q is already defined", e.Class)
	}
	return fmt.Sprintf("attribute %q conflicts with an existing declaration in the schema of class %q", e.Attribute, e.Class)
}

// TypeMismatchError reports a relationship assignment whose value does not
// satisfy the declaration's target-type constraint. The caller may recover by
// supplying a correct value.
type TypeMismatchError struct {
	Class     string
	Attribute string
	Want      string
	Got       string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %q of class %q requires an instance of %q, got %s", e.Attribute, e.Class, e.Want, e.Got)
}

// UnrecognizedArgumentError reports a constructor argument that matches
// neither the class schema nor a base constructor parameter.
type UnrecognizedArgumentError struct {
	Class string
	Name  string
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("class %q does not recognize constructor argument %q", e.Class, e.Name)
}
