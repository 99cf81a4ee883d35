// Package graph publishes schema-mapped entities to the knowledge graph.
//
// The graph layer is a collaborator of the schema mapping contract: it reads
// the resolved class schema to know which attributes to serialize and emits
// one triple per populated value. It performs no query execution and no RDF
// serialization of its own.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/openworm/channelgraph/schema"
)

// IngestSubject is the subject graph entity payloads are published to.
const IngestSubject = "graph.ingest.entity"

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Triples maps an instance's populated attributes to graph triples, one per
// value, in declaration order. Relationship values referencing another
// instance are serialized as that instance's entity ID; bare string
// references pass through as-is.
func Triples(inst *schema.Instance, source string, now time.Time) []message.Triple {
	decls := inst.Class().Schema()
	triples := make([]message.Triple, 0, len(decls))
	for _, d := range decls {
		vals, err := inst.Values(d.Name)
		if err != nil {
			continue
		}
		for _, v := range vals {
			triples = append(triples, message.Triple{
				Subject:    inst.ID(),
				Predicate:  d.GraphPredicate(),
				Object:     objectFor(v),
				Source:     source,
				Timestamp:  now,
				Confidence: 1.0,
			})
		}
	}
	return triples
}

// objectFor converts an attribute value to its triple object form.
func objectFor(v any) any {
	if ref, ok := v.(*schema.Instance); ok {
		return ref.ID()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

// Publish sends an instance to the knowledge graph on the given stream
// subject. An empty subject falls back to IngestSubject. A nil client skips
// publishing (graceful degradation when no NATS connection is configured).
func Publish(ctx context.Context, nc *natsclient.Client, inst *schema.Instance, subject, source string) error {
	if nc == nil {
		return nil
	}
	if subject == "" {
		subject = IngestSubject
	}

	now := time.Now()
	msg := EntityIngestMessage{
		ID:        inst.ID(),
		Triples:   Triples(inst, source, now),
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", inst.ID(), err)
	}

	if err := nc.PublishToStream(ctx, subject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", inst.ID(), err)
	}

	entitiesPublished.Inc()
	triplesPublished.Add(float64(len(msg.Triples)))
	return nil
}
