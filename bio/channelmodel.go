package bio

import (
	"github.com/openworm/channelgraph/schema"
	biovocab "github.com/openworm/channelgraph/vocabulary/bio"
)

// ChannelModel is a model for an ion channel. There may be multiple models
// for a single channel; model_type records what kind of evidence each model
// is based on.
var ChannelModel = schema.MustDefine("channel_model", DataObject,
	schema.Declaration{Name: "model_type", Predicate: biovocab.PredicateModelType, Normalize: normalizeModelType},
	schema.Declaration{Name: "ion", Cardinality: schema.Many, Predicate: biovocab.ModelIon},
	schema.Declaration{Name: "gating", Cardinality: schema.Many, Predicate: biovocab.ModelGating},
	schema.Declaration{Name: "conductance", Predicate: biovocab.ModelConductance},
)

// PatchClampChannelModel is a channel model derived from a patch clamp
// experiment. The modeled_from target is a lazy type handle since the
// experiment class may be defined after this declaration is evaluated.
var PatchClampChannelModel = schema.MustDefine("patch_clamp_channel_model", ChannelModel,
	schema.Declaration{
		Name:      "modeled_from",
		Kind:      schema.KindRelationship,
		Target:    schema.TypeOf("patch_clamp_experiment"),
		Predicate: biovocab.ModeledFrom,
	},
)

// HomologyChannelModel is a channel model estimated from a homologous
// channel.
var HomologyChannelModel = schema.MustDefine("homology_channel_model", ChannelModel,
	schema.Declaration{
		Name:      "homolog",
		Kind:      schema.KindRelationship,
		Target:    schema.TypeOf("channel"),
		Predicate: biovocab.Homolog,
	},
)

// NewChannelModel constructs a channel model. A supplied model_type string
// is normalized against the controlled vocabulary; unrecognized values are
// stored verbatim.
func NewChannelModel(args schema.Args) (*schema.Instance, error) {
	return schema.New(ChannelModel, args)
}

// NewPatchClampChannelModel constructs a patch clamp channel model with the
// model_type discriminant fixed to the patch clamp canonical value. A
// caller-supplied model_type is discarded: the fixed value always wins.
func NewPatchClampChannelModel(args schema.Args) (*schema.Instance, error) {
	args = cloneArgs(args)
	args["model_type"] = biovocab.ModelTypePatchClamp.Value()
	return schema.New(PatchClampChannelModel, args)
}

// NewHomologyChannelModel constructs a homology channel model with the
// model_type discriminant fixed to the homology canonical value.
func NewHomologyChannelModel(args schema.Args) (*schema.Instance, error) {
	args = cloneArgs(args)
	args["model_type"] = biovocab.ModelTypeHomology.Value()
	return schema.New(HomologyChannelModel, args)
}

// normalizeModelType canonicalizes string values written to the model_type
// slot, whatever the write path: constructor argument, direct Set, or restore
// from a stored record. Non-string values pass through unchanged.
func normalizeModelType(v any) any {
	if s, ok := v.(string); ok {
		return biovocab.NormalizeModelType(s)
	}
	return v
}

func cloneArgs(args schema.Args) schema.Args {
	out := make(schema.Args, len(args)+1)
	for k, v := range args {
		out[k] = v
	}
	return out
}
