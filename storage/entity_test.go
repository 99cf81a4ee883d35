package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openworm/channelgraph/bio"
	"github.com/openworm/channelgraph/schema"
	biovocab "github.com/openworm/channelgraph/vocabulary/bio"
)

func TestEntityID(t *testing.T) {
	t.Run("NewEntityID generates class-typed ID", func(t *testing.T) {
		id := NewEntityID(bio.Channel)
		assert.Equal(t, "channel", id.Class)
		assert.NotEmpty(t, id.ID)
	})

	t.Run("String returns correct format", func(t *testing.T) {
		id := EntityID{Class: "channel", ID: "abc123"}
		assert.Equal(t, "channel:abc123", id.String())
	})

	t.Run("ParseEntityID parses valid ID", func(t *testing.T) {
		id, err := ParseEntityID("channel_model:abc123")
		require.NoError(t, err)
		assert.Equal(t, "channel_model", id.Class)
		assert.Equal(t, "abc123", id.ID)
	})

	t.Run("ParseEntityID rejects malformed input", func(t *testing.T) {
		_, err := ParseEntityID("no-separator")
		assert.Error(t, err)

		_, err = ParseEntityID("channel:")
		assert.Error(t, err)
	})

	t.Run("ParseEntityID rejects unknown class", func(t *testing.T) {
		_, err := ParseEntityID("martian:abc123")
		assert.Error(t, err)
	})
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	exp, err := bio.NewPatchClampExperiment(schema.Args{
		"id":          "patch_clamp_experiment:pce-1",
		"cell":        "ADAL",
		"temperature": 20,
	})
	require.NoError(t, err)

	cm, err := bio.NewPatchClampChannelModel(schema.Args{
		"id": "patch_clamp_channel_model:cm-1",
	})
	require.NoError(t, err)
	require.NoError(t, cm.Set("ion", "Ca"))
	require.NoError(t, cm.Set("ion", "K"))
	require.NoError(t, cm.Set("modeled_from", exp))

	rec := Snapshot(cm)
	assert.Equal(t, "patch_clamp_channel_model:cm-1", rec.ID)
	assert.Equal(t, "patch_clamp_channel_model", rec.Class)

	// Relationship values flatten to entity IDs.
	assert.Equal(t, []any{"patch_clamp_experiment:pce-1"}, rec.Attributes["modeled_from"])
	assert.Equal(t, []any{"Ca", "K"}, rec.Attributes["ion"])

	restored, err := Restore(rec)
	require.NoError(t, err)

	assert.Equal(t, cm.ID(), restored.ID())
	assert.Same(t, cm.Class(), restored.Class())
	assert.Equal(t, cm.PopulatedNames(), restored.PopulatedNames())

	ions, err := restored.Values("ion")
	require.NoError(t, err)
	assert.Equal(t, []any{"Ca", "K"}, ions)

	// The relationship comes back as a weak string reference.
	from, err := restored.Values("modeled_from")
	require.NoError(t, err)
	assert.Equal(t, []any{"patch_clamp_experiment:pce-1"}, from)
}

func TestSnapshotModelTypeStoresPlainForm(t *testing.T) {
	cm, err := bio.NewChannelModel(schema.Args{"model_type": "homology"})
	require.NoError(t, err)

	rec := Snapshot(cm)
	vals := rec.Attributes["model_type"]
	require.Len(t, vals, 1)
	mt, ok := vals[0].(biovocab.ModelTypeValue)
	require.True(t, ok)
	assert.Equal(t, biovocab.ModelTypeHomology, mt.Canonical)
}

func TestRecordRoundTripKeepsModelTypeTagged(t *testing.T) {
	cm, err := bio.NewChannelModel(schema.Args{"model_type": "homology"})
	require.NoError(t, err)

	// Marshal and unmarshal the record the way the KV store does.
	data, err := json.Marshal(Snapshot(cm))
	require.NoError(t, err)

	var stored Record
	require.NoError(t, json.Unmarshal(data, &stored))

	// The wire form is the plain canonical string.
	require.Equal(t, []any{"Estimation based on homology"}, stored.Attributes["model_type"])

	restored, err := Restore(&stored)
	require.NoError(t, err)

	v, err := restored.Value("model_type")
	require.NoError(t, err)
	mt, ok := v.(biovocab.ModelTypeValue)
	require.True(t, ok, "model_type should restore as a ModelTypeValue, got %T", v)
	assert.True(t, mt.IsKnown())
	assert.Equal(t, biovocab.ModelTypeHomology, mt.Canonical)
}

func TestRecordRoundTripKeepsRawModelType(t *testing.T) {
	cm, err := bio.NewChannelModel(schema.Args{"model_type": "simulation"})
	require.NoError(t, err)

	data, err := json.Marshal(Snapshot(cm))
	require.NoError(t, err)

	var stored Record
	require.NoError(t, json.Unmarshal(data, &stored))

	restored, err := Restore(&stored)
	require.NoError(t, err)

	v, err := restored.Value("model_type")
	require.NoError(t, err)
	mt, ok := v.(biovocab.ModelTypeValue)
	require.True(t, ok)
	assert.False(t, mt.IsKnown())
	assert.Equal(t, "simulation", mt.Raw)
}

func TestRestoreReferenceInstance(t *testing.T) {
	rec := &Record{
		ID:        "channel:egl-19",
		Class:     "channel",
		Reference: true,
	}

	inst, err := Restore(rec)
	require.NoError(t, err)
	assert.True(t, inst.Reference())
	assert.Empty(t, inst.PopulatedNames())
}

func TestRestoreUnknownClass(t *testing.T) {
	_, err := Restore(&Record{ID: "martian:1", Class: "martian"})
	assert.Error(t, err)
}

func TestKVKey(t *testing.T) {
	assert.Equal(t, "channel.abc123", kvKey("channel:abc123"))
}
