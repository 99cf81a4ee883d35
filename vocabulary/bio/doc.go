// Package bio defines the vocabulary for ion channel biology entities:
// channels, channel models, and patch clamp experiments.
//
// Predicates are registered with the semstreams vocabulary registry at init
// time so downstream persistence and query layers can introspect predicate
// metadata.
package bio
