// Package bio defines the entity classes for ion channel biology: channels,
// channel models with their provenance specializations, and patch clamp
// experiments.
//
// Classes are defined once at package initialization and are immutable for
// the process lifetime. Importing this package for its side effects is
// enough to make the classes available in the schema registry:
//
//	import _ "github.com/openworm/channelgraph/bio"
package bio
