package schema

import (
	"errors"
	"testing"
)

func TestDefineHierarchy(t *testing.T) {
	base := MustDefine("cls_base", nil,
		Declaration{Name: "label"},
		Declaration{Name: "tags", Cardinality: Many},
	)
	child := MustDefine("cls_child", base,
		Declaration{Name: "extra"},
	)

	t.Run("schema is ordered most-base first", func(t *testing.T) {
		schema := child.Schema()
		if len(schema) != 3 {
			t.Fatalf("expected 3 declarations, got %d", len(schema))
		}
		want := []string{"label", "tags", "extra"}
		for i, name := range want {
			if schema[i].Name != name {
				t.Errorf("schema[%d]: expected %q, got %q", i, name, schema[i].Name)
			}
		}
	})

	t.Run("inherited declarations are shared", func(t *testing.T) {
		fromBase, _ := base.Declaration("label")
		fromChild, ok := child.Declaration("label")
		if !ok {
			t.Fatal("child does not inherit label")
		}
		if fromBase != fromChild {
			t.Error("inherited declaration is not the parent's declaration")
		}
	})

	t.Run("own declarations exclude inherited", func(t *testing.T) {
		own := child.Declarations()
		if len(own) != 1 || own[0].Name != "extra" {
			t.Errorf("expected own declarations [extra], got %v", own)
		}
	})

	t.Run("IsA walks the ancestor chain", func(t *testing.T) {
		if !child.IsA(base) {
			t.Error("child should be a base")
		}
		if !child.IsA(child) {
			t.Error("a class should be itself")
		}
		if base.IsA(child) {
			t.Error("base should not be a child")
		}
	})

	t.Run("Lookup finds defined classes", func(t *testing.T) {
		c, ok := Lookup("cls_child")
		if !ok || c != child {
			t.Error("Lookup did not return the defined class")
		}
	})
}

func TestDefineConflicts(t *testing.T) {
	parent := MustDefine("cls_conflict_parent", nil,
		Declaration{Name: "name"},
	)

	t.Run("redeclaring an inherited name fails", func(t *testing.T) {
		_, err := Define("cls_conflict_child", parent,
			Declaration{Name: "name"},
		)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected *ConflictError, got %v", err)
		}
		if conflict.Class != "cls_conflict_child" || conflict.Attribute != "name" {
			t.Errorf("unexpected conflict details: %+v", conflict)
		}
	})

	t.Run("duplicate name within one class fails", func(t *testing.T) {
		_, err := Define("cls_conflict_dup", nil,
			Declaration{Name: "x"},
			Declaration{Name: "x"},
		)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected *ConflictError, got %v", err)
		}
	})

	t.Run("duplicate class name fails", func(t *testing.T) {
		_, err := Define("cls_conflict_parent", nil)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected *ConflictError, got %v", err)
		}
		if conflict.Attribute != "" {
			t.Errorf("class-level conflict should not name an attribute: %+v", conflict)
		}
	})

	t.Run("failed definitions are not registered", func(t *testing.T) {
		if _, ok := Lookup("cls_conflict_child"); ok {
			t.Error("conflicting class should not be registered")
		}
	})
}

func TestDeclarationValidation(t *testing.T) {
	t.Run("relationship requires a target", func(t *testing.T) {
		_, err := Define("cls_rel_no_target", nil,
			Declaration{Name: "link", Kind: KindRelationship},
		)
		if err == nil {
			t.Fatal("expected error for relationship without target")
		}
	})

	t.Run("datatype must not carry a target", func(t *testing.T) {
		_, err := Define("cls_data_target", nil,
			Declaration{Name: "label", Target: TypeOf("cls_base")},
		)
		if err == nil {
			t.Fatal("expected error for datatype with target")
		}
	})

	t.Run("empty declaration name fails", func(t *testing.T) {
		_, err := Define("cls_empty_decl", nil, Declaration{})
		if err == nil {
			t.Fatal("expected error for empty declaration name")
		}
	})
}

func TestTypeRefLazyResolution(t *testing.T) {
	// The target class does not exist when the declaration is evaluated;
	// resolution happens on first use.
	holder := MustDefine("cls_ref_holder", nil,
		Declaration{Name: "link", Kind: KindRelationship, Target: TypeOf("cls_ref_target")},
	)
	target := MustDefine("cls_ref_target", nil)

	d, _ := holder.Declaration("link")
	resolved, err := d.Target.Resolve()
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if resolved != target {
		t.Error("resolved class is not the defined target")
	}

	// Second resolve returns the cached result.
	again, err := d.Target.Resolve()
	if err != nil || again != target {
		t.Error("cached resolve differs from first resolve")
	}
}

func TestTypeRefUnknownTarget(t *testing.T) {
	ref := TypeOf("cls_never_defined")
	if _, err := ref.Resolve(); err == nil {
		t.Fatal("expected resolve error for unknown class")
	}
}

func TestFreeze(t *testing.T) {
	defer func() {
		// Reopen the definition phase so later tests can define classes.
		registry.Lock()
		registry.frozen = false
		registry.Unlock()
	}()

	Freeze()
	if !Frozen() {
		t.Fatal("registry should report frozen")
	}
	if _, err := Define("cls_after_freeze", nil); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestGraphPredicateDefault(t *testing.T) {
	withPredicate := &Declaration{Name: "label", Predicate: "x.y.label"}
	if withPredicate.GraphPredicate() != "x.y.label" {
		t.Error("explicit predicate should be used")
	}
	bare := &Declaration{Name: "label"}
	if bare.GraphPredicate() != "label" {
		t.Error("predicate should default to the declaration name")
	}
}
