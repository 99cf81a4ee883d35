package bio

import (
	"encoding/json"
	"testing"
)

func TestNormalizeModelType(t *testing.T) {
	tests := []struct {
		input string
		want  ModelType
	}{
		{"homology", ModelTypeHomology},
		{"Homology", ModelTypeHomology},
		{"HOMOLOGY", ModelTypeHomology},
		{"homology-estimate", ModelTypeHomology},
		{"Estimation based on homology", ModelTypeHomology},
		{"patch-clamp", ModelTypePatchClamp},
		{"Patch Clamp", ModelTypePatchClamp},
		{"patch clamp experiment", ModelTypePatchClamp},
		{"  patch-clamp  ", ModelTypePatchClamp},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := NormalizeModelType(tt.input)
			if !v.IsKnown() {
				t.Fatalf("expected %q to be recognized", tt.input)
			}
			if v.Canonical != tt.want {
				t.Errorf("expected %q, got %q", tt.want, v.Canonical)
			}
		})
	}
}

func TestNormalizeModelTypeFixedPoint(t *testing.T) {
	for _, canonical := range []ModelType{ModelTypePatchClamp, ModelTypeHomology} {
		v := NormalizeModelType(string(canonical))
		if v.Canonical != canonical {
			t.Errorf("canonical value %q is not a fixed point: got %+v", canonical, v)
		}
	}
}

func TestNormalizeModelTypePassThrough(t *testing.T) {
	v := NormalizeModelType("unknown-value")
	if v.IsKnown() {
		t.Fatal("unknown value should not be recognized")
	}
	if v.Raw != "unknown-value" {
		t.Errorf("raw input should pass through verbatim, got %q", v.Raw)
	}
	if v.String() != "unknown-value" {
		t.Errorf("String should return the raw input, got %q", v.String())
	}
}

func TestModelTypeValueString(t *testing.T) {
	if got := ModelTypePatchClamp.Value().String(); got != "Patch clamp experiment" {
		t.Errorf("unexpected canonical string: %q", got)
	}
}

func TestModelTypeValueJSONRoundTrip(t *testing.T) {
	t.Run("canonical value", func(t *testing.T) {
		data, err := json.Marshal(ModelTypeHomology.Value())
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `"Estimation based on homology"` {
			t.Errorf("unexpected JSON form: %s", data)
		}

		var v ModelTypeValue
		if err := json.Unmarshal(data, &v); err != nil {
			t.Fatal(err)
		}
		if v.Canonical != ModelTypeHomology {
			t.Errorf("round trip lost the canonical value: %+v", v)
		}
	})

	t.Run("raw value", func(t *testing.T) {
		data, err := json.Marshal(NormalizeModelType("simulation"))
		if err != nil {
			t.Fatal(err)
		}

		var v ModelTypeValue
		if err := json.Unmarshal(data, &v); err != nil {
			t.Fatal(err)
		}
		if v.IsKnown() || v.Raw != "simulation" {
			t.Errorf("round trip altered the raw value: %+v", v)
		}
	})
}
