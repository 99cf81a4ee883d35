package bio

import (
	"github.com/openworm/channelgraph/schema"
	biovocab "github.com/openworm/channelgraph/vocabulary/bio"
)

// Experiment is the base class for recorded experiments.
var Experiment = schema.MustDefine("experiment", DataObject)

// PatchClampExperiment stores the experimental conditions for a patch clamp
// experiment. Every recognized condition is declared on the class schema, so
// the declared set is identical across instances; only the populated subset
// varies with the arguments supplied at construction.
var PatchClampExperiment = schema.MustDefine("patch_clamp_experiment", Experiment,
	conditionDeclarations()...,
)

func conditionDeclarations() []schema.Declaration {
	decls := make([]schema.Declaration, len(biovocab.Conditions))
	for i, name := range biovocab.Conditions {
		decls[i] = schema.Declaration{
			Name:      name,
			Predicate: biovocab.ConditionPredicate(name),
		}
	}
	return decls
}

// NewPatchClampExperiment constructs a patch clamp experiment. Arguments
// naming a recognized condition populate that condition; the remainder is
// forwarded to the base constructor.
func NewPatchClampExperiment(args schema.Args) (*schema.Instance, error) {
	return schema.New(PatchClampExperiment, args)
}
