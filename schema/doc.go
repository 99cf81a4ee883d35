// Package schema implements the attribute/entity mapping contract: entity
// classes declare typed, optionally multi-valued attribute slots, instances
// accept constructor arguments against the declared schema, and external
// persistence and query layers introspect the resolved schema to know what
// to serialize.
//
// Classes are defined once during package initialization and registered in a
// process-wide registry. Call Freeze after all class-defining packages have
// initialized; the registry is read-only from then on and safe for concurrent
// lookup. Instances are not safe for concurrent mutation.
package schema
