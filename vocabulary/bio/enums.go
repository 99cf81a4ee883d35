package bio

import (
	"encoding/json"
	"strings"
)

// ModelType represents the provenance of a channel model: what kind of
// evidence the model is based on. The canonical values form a closed set.
type ModelType string

const (
	// ModelTypePatchClamp indicates the model is based on a patch clamp
	// experiment.
	ModelTypePatchClamp ModelType = "Patch clamp experiment"

	// ModelTypeHomology indicates the model is an estimation based on
	// homology with another channel.
	ModelTypeHomology ModelType = "Estimation based on homology"
)

// Value wraps a canonical model type as a ModelTypeValue.
func (t ModelType) Value() ModelTypeValue {
	return ModelTypeValue{Canonical: t}
}

// ModelTypeValue is the result of normalizing a model type string: either a
// recognized canonical value or the raw input carried through verbatim.
// Downstream consumers can distinguish the two without re-parsing strings.
type ModelTypeValue struct {
	// Canonical is set when the input matched the controlled vocabulary.
	Canonical ModelType

	// Raw preserves an unrecognized input unchanged.
	Raw string
}

// IsKnown reports whether the value matched the controlled vocabulary.
func (v ModelTypeValue) IsKnown() bool { return v.Canonical != "" }

// String returns the canonical value when known, the raw input otherwise.
func (v ModelTypeValue) String() string {
	if v.IsKnown() {
		return string(v.Canonical)
	}
	return v.Raw
}

// MarshalJSON serializes the value as its plain string form, so graph and
// storage layers see the same representation as external callers.
func (v ModelTypeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON re-normalizes the stored string form.
func (v *ModelTypeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = NormalizeModelType(s)
	return nil
}

// modelTypeAliases maps normalized input keys to canonical model types.
// Keys are lower-cased with spaces collapsed to hyphens.
var modelTypeAliases = map[string]ModelType{
	"patch-clamp":                  ModelTypePatchClamp,
	"patch-clamp-experiment":       ModelTypePatchClamp,
	"homology":                     ModelTypeHomology,
	"homology-estimate":            ModelTypeHomology,
	"estimation-based-on-homology": ModelTypeHomology,
}

// NormalizeModelType canonicalizes a model type string. Matching is
// case-insensitive and tolerant of hyphen/space variation. Unrecognized
// input never errors: it passes through verbatim as a raw value, so callers
// may supply forward-looking values not yet in the controlled vocabulary.
func NormalizeModelType(raw string) ModelTypeValue {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "-")
	if canonical, ok := modelTypeAliases[key]; ok {
		return ModelTypeValue{Canonical: canonical}
	}
	return ModelTypeValue{Raw: raw}
}
