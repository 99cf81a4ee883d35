package bio

import "github.com/c360studio/semstreams/vocabulary"

// Channel predicates for ion channel entities.
const (
	// ChannelName is the channel name (e.g. "EGL-19").
	ChannelName = "bio.channel.name"

	// ChannelDescription is a free-text description of the channel.
	ChannelDescription = "bio.channel.description"

	// ChannelGeneName is the name of the gene coding for the channel.
	ChannelGeneName = "bio.channel.gene_name"
)

// Channel model predicates.
const (
	// PredicateModelType is what the model is based on.
	// Values: "Patch clamp experiment", "Estimation based on homology"
	PredicateModelType = "bio.channel_model.model_type"

	// ModelIon is the type of ion the modeled channel selects for.
	// Multi-valued.
	ModelIon = "bio.channel_model.ion"

	// ModelGating is the gating mechanism, "voltage" or the name of the
	// ligand(s). Multi-valued.
	ModelGating = "bio.channel_model.gating"

	// ModelConductance is the initial conductance of the modeled channel.
	ModelConductance = "bio.channel_model.conductance"
)

// Relationship predicates linking biology entities.
const (
	// ModeledFrom links a patch clamp channel model to its source experiment.
	// Domain: patch clamp channel model, Range: patch clamp experiment
	ModeledFrom = "bio.rel.modeled_from"

	// Homolog links a homology channel model to the homologous channel.
	// Domain: homology channel model, Range: channel
	Homolog = "bio.rel.homolog"
)

// Conditions is the fixed list of recognized experimental parameters for a
// patch clamp experiment. The order is the declaration order on the class
// schema.
var Conditions = []string{
	"ca_concentration",
	"cl_concentration",
	"blockers",
	"cell",
	"cell_age",
	"delta_t",
	"duration",
	"end_time",
	"extra_solution",
	"initial_voltage",
	"ion_channel",
	"membrane_capacitance",
	"mutants",
	"patch_type",
	"pipette_solution",
	"protocol_end",
	"protocol_start",
	"protocol_step",
	"start_time",
	"temperature",
	"type",
}

// conditionDescriptions documents the non-obvious conditions.
var conditionDescriptions = map[string]string{
	"ca_concentration":     "Calcium concentration",
	"cl_concentration":     "Chlorine concentration",
	"blockers":             "Channel blockers used for this experiment",
	"cell":                 "The cell this experiment was performed on",
	"cell_age":             "Age of the cell",
	"extra_solution":       "Type of solution outside the pipette",
	"initial_voltage":      "Starting voltage of the patch clamp",
	"ion_channel":          "The ion channel being clamped",
	"membrane_capacitance": "Initial membrane capacitance",
	"mutants":              "Type(s) of mutants being used in this experiment",
	"patch_type":           "Type of patch clamp being used (voltage or current)",
	"pipette_solution":     "Type of solution in the pipette",
}

// ConditionPredicate returns the dotted predicate for a condition name.
func ConditionPredicate(name string) string {
	return "bio.experiment." + name
}

func init() {
	// Register channel predicates
	vocabulary.Register(ChannelName,
		vocabulary.WithDescription("Channel name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"name"))

	vocabulary.Register(ChannelDescription,
		vocabulary.WithDescription("Free-text description of the channel"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"description"))

	vocabulary.Register(ChannelGeneName,
		vocabulary.WithDescription("Name of the gene coding for the channel"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"geneName"))

	// Register channel model predicates
	vocabulary.Register(PredicateModelType,
		vocabulary.WithDescription("What the model is based on: patch clamp experiment or homology estimate"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"modelType"))

	vocabulary.Register(ModelIon,
		vocabulary.WithDescription("Type of ion the modeled channel selects for"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(Namespace+"ion"))

	vocabulary.Register(ModelGating,
		vocabulary.WithDescription("Gating mechanism: voltage or name of ligand(s)"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(Namespace+"gating"))

	vocabulary.Register(ModelConductance,
		vocabulary.WithDescription("Initial conductance of the modeled channel"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"conductance"))

	// Register relationship predicates
	vocabulary.Register(ModeledFrom,
		vocabulary.WithDescription("Links a patch clamp channel model to its source experiment"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropModeledFrom))

	vocabulary.Register(Homolog,
		vocabulary.WithDescription("Links a homology channel model to the homologous channel"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHomolog))

	// Register condition predicates
	for _, name := range Conditions {
		desc := conditionDescriptions[name]
		if desc == "" {
			desc = "Patch clamp condition: " + name
		}
		vocabulary.Register(ConditionPredicate(name),
			vocabulary.WithDescription(desc),
			vocabulary.WithDataType("string"),
			vocabulary.WithIRI(Namespace+name))
	}
}
