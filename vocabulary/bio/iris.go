package bio

// Namespace is the base IRI prefix for biology vocabulary terms.
// It mirrors the OpenWorm science/biology schema context.
const Namespace = "http://openworm.org/schema/sci/bio/"

// EntityNamespace is the base IRI for biology entity instances.
const EntityNamespace = "http://openworm.org/entity/sci/bio/"

// Class IRIs define the types of biology entities.
const (
	// ClassChannel represents an ion channel.
	ClassChannel = Namespace + "Channel"

	// ClassChannelModel represents a model for an ion channel. There may be
	// multiple models for a single channel.
	ClassChannelModel = Namespace + "ChannelModel"

	// ClassPatchClampChannelModel represents a channel model derived from a
	// patch clamp experiment.
	// Extends: ClassChannelModel
	ClassPatchClampChannelModel = Namespace + "PatchClampChannelModel"

	// ClassHomologyChannelModel represents a channel model estimated from a
	// homologous channel.
	// Extends: ClassChannelModel
	ClassHomologyChannelModel = Namespace + "HomologyChannelModel"

	// ClassExperiment represents a recorded experiment.
	ClassExperiment = Namespace + "Experiment"

	// ClassPatchClampExperiment represents a patch clamp experiment with its
	// recorded conditions.
	// Extends: ClassExperiment
	ClassPatchClampExperiment = Namespace + "PatchClampExperiment"
)

// Object Property IRIs define relationships between biology entities.
const (
	// PropModeledFrom links a patch clamp channel model to its source
	// experiment.
	// Domain: ClassPatchClampChannelModel, Range: ClassPatchClampExperiment
	PropModeledFrom = Namespace + "modeledFrom"

	// PropHomolog links a homology channel model to the homologous channel
	// the estimate is based on.
	// Domain: ClassHomologyChannelModel, Range: ClassChannel
	PropHomolog = Namespace + "homolog"
)
