// Package storage provides entity snapshot storage backed by NATS KV.
//
// The store is a collaborator of the schema mapping contract: a Record
// captures the populated attribute set of an instance, and Restore rebuilds
// an instance by re-running the constructor contract against the registered
// class schema.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/openworm/channelgraph/schema"
)

// Defaults for the entity KV bucket.
const (
	// Bucket is the KV bucket entity records are stored in.
	Bucket = "CHANNELGRAPH_ENTITIES"

	// DefaultHistory is the number of revisions kept per record.
	DefaultHistory = 5
)

// EntityID is a typed entity identifier: the class name plus a unique ID.
type EntityID struct {
	Class string
	ID    string
}

// String returns the string representation of the entity ID.
func (e EntityID) String() string {
	return fmt.Sprintf("%s:%s", e.Class, e.ID)
}

// ParseEntityID parses an entity ID string into its components. The class
// component must name a defined entity class.
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return EntityID{}, fmt.Errorf("invalid entity ID format: %s", s)
	}
	if _, ok := schema.Lookup(parts[0]); !ok {
		return EntityID{}, fmt.Errorf("unknown entity class: %s", parts[0])
	}
	return EntityID{Class: parts[0], ID: parts[1]}, nil
}

// NewEntityID generates a new unique entity ID for the given class.
func NewEntityID(class *schema.Class) EntityID {
	return EntityID{
		Class: class.Name(),
		ID:    uuid.New().String(),
	}
}

// Record is the stored snapshot of an instance: its identity plus the
// populated attribute values. Relationship values are stored as target
// entity IDs.
type Record struct {
	ID         string           `json:"id"`
	Class      string           `json:"class"`
	Reference  bool             `json:"reference,omitempty"`
	Attributes map[string][]any `json:"attributes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Snapshot captures an instance's populated attributes for storage.
// Relationship values referencing another instance flatten to that
// instance's entity ID.
func Snapshot(inst *schema.Instance) *Record {
	attrs := make(map[string][]any)
	for _, d := range inst.Class().Schema() {
		vals, err := inst.Values(d.Name)
		if err != nil || len(vals) == 0 {
			continue
		}
		stored := make([]any, len(vals))
		for i, v := range vals {
			stored[i] = storedValue(v)
		}
		attrs[d.Name] = stored
	}
	return &Record{
		ID:         inst.ID(),
		Class:      inst.Class().Name(),
		Reference:  inst.Reference(),
		Attributes: attrs,
	}
}

func storedValue(v any) any {
	if ref, ok := v.(*schema.Instance); ok {
		return ref.ID()
	}
	return v
}

// Restore reconstructs an instance from a stored record by re-running the
// constructor contract. Relationship values come back as weak string
// references; resolving them is up to the caller.
func Restore(rec *Record) (*schema.Instance, error) {
	class, ok := schema.Lookup(rec.Class)
	if !ok {
		return nil, fmt.Errorf("record %s: unknown entity class %q", rec.ID, rec.Class)
	}

	args := schema.Args{"id": rec.ID}
	if rec.Reference {
		args["reference"] = true
	}
	inst, err := schema.New(class, args)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	// Repopulate in declaration order so multi-valued slots keep their
	// stored ordering.
	for _, d := range class.Schema() {
		for _, v := range rec.Attributes[d.Name] {
			if err := inst.Set(d.Name, v); err != nil {
				return nil, fmt.Errorf("record %s: %w", rec.ID, err)
			}
		}
	}

	return inst, nil
}

// Store provides entity record storage backed by NATS KV.
type Store struct {
	kv jetstream.KeyValue
}

// NewStore creates a Store with the given JetStream context, creating the
// bucket if it does not exist. An empty bucket name and a non-positive
// history fall back to the package defaults.
func NewStore(ctx context.Context, js jetstream.JetStream, bucket string, history int) (*Store, error) {
	if bucket == "" {
		bucket = Bucket
	}
	if history < 1 {
		history = DefaultHistory
	}

	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:      bucket,
			Description: "Channelgraph entity snapshots",
			History:     uint8(history),
		})
		if err != nil {
			return nil, fmt.Errorf("create entity bucket %s: %w", bucket, err)
		}
	}
	return &Store{kv: kv}, nil
}

// Save writes an entity record, stamping CreatedAt on first write and
// UpdatedAt always.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", rec.ID, err)
	}

	if _, err := s.kv.Put(ctx, kvKey(rec.ID), data); err != nil {
		return fmt.Errorf("store entity %s: %w", rec.ID, err)
	}
	return nil
}

// Get retrieves an entity record by its entity ID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	entry, err := s.kv.Get(ctx, kvKey(id))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entity %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal entity %s: %w", id, err)
	}
	return &rec, nil
}

// List returns all stored entity records.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list entity keys: %w", err)
	}

	records := make([]*Record, 0, len(keys))
	for _, key := range keys {
		entry, err := s.kv.Get(ctx, key)
		if err != nil {
			slog.Warn("skipping unreadable entity record", "key", key, "error", err)
			continue
		}
		var rec Record
		if err := json.Unmarshal(entry.Value(), &rec); err != nil {
			slog.Warn("skipping corrupt entity record", "key", key, "error", err)
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}

// ListByClass returns all stored records for a given entity class.
func (s *Store) ListByClass(ctx context.Context, class string) ([]*Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Record, 0, len(records))
	for _, rec := range records {
		if rec.Class == class {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Delete removes an entity record.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.kv.Delete(ctx, kvKey(id)); err != nil {
		return fmt.Errorf("delete entity %s: %w", id, err)
	}
	return nil
}

// kvKey maps an entity ID to a KV-safe key. Entity IDs use "class:uuid";
// NATS KV keys cannot contain ':'.
func kvKey(id string) string {
	return strings.ReplaceAll(id, ":", ".")
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
