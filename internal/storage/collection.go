package storage

import (
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var idNode = func() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}()

// NewID generates an opaque record id. Ids are assigned once, at first save,
// and never changed by any update path.
func NewID() string {
	return idNode.Generate().String()
}

// Record is implemented by every stored entity (via domain.Meta).
type Record interface {
	RecordID() string
	SetRecordID(id string)
	Stamp(now time.Time, created bool)
}

// Collection provides the uniform contract over one JSON-serialized record
// array kept under a single key: read the whole collection, mutate in memory,
// write the whole collection back. There is no locking around that window;
// concurrent mutations race and the last write wins.
type Collection[T any, PT interface {
	Record
	*T
}] struct {
	store kvstore.Store
	key   string
	bus   EventBus.Bus
}

// NewCollection binds a collection to its key. The bus may be nil; when set,
// change notifications are published as "storage.<key>.saved" / ".deleted".
func NewCollection[T any, PT interface {
	Record
	*T
}](store kvstore.Store, key string, bus EventBus.Bus) *Collection[T, PT] {
	return &Collection[T, PT]{store: store, key: key, bus: bus}
}

// Key returns the store key the collection lives under.
func (c *Collection[T, PT]) Key() string { return c.key }

// GetAll returns every record in storage order. A missing key is an empty
// collection. Read faults degrade to an empty result with a logged warning, so
// callers cannot distinguish "empty" from "read failed".
func (c *Collection[T, PT]) GetAll() []T {
	raw, ok, err := c.store.Get(c.key)
	if err != nil {
		zap.L().Warn("collection read failed",
			zap.String("collection", c.key), zap.Error(err))
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}
	var records []T
	if err := json.UnmarshalFromString(raw, &records); err != nil {
		zap.L().Warn("collection decode failed",
			zap.String("collection", c.key), zap.Error(err))
		return []T{}
	}
	return records
}

// GetByID returns the first record whose id matches, or nil.
func (c *Collection[T, PT]) GetByID(id string) *T {
	records := c.GetAll()
	for i := range records {
		if PT(&records[i]).RecordID() == id {
			return &records[i]
		}
	}
	return nil
}

// Filter returns the records for which keep is true, in storage order.
func (c *Collection[T, PT]) Filter(keep func(PT) bool) []T {
	out := []T{}
	records := c.GetAll()
	for i := range records {
		if keep(PT(&records[i])) {
			out = append(out, records[i])
		}
	}
	return out
}

// Save replaces the record with the same id in place, or assigns a fresh id
// and appends when no match exists. Timestamps are stamped by the store; the
// caller's values are overwritten. The whole collection is rewritten.
func (c *Collection[T, PT]) Save(rec PT) (PT, error) {
	records := c.GetAll()
	now := time.Now()

	if id := rec.RecordID(); id != "" {
		for i := range records {
			if PT(&records[i]).RecordID() == id {
				rec.Stamp(now, false)
				records[i] = *rec
				if err := c.write(records); err != nil {
					return nil, err
				}
				c.publish("saved", id)
				return rec, nil
			}
		}
	}

	rec.SetRecordID(NewID())
	rec.Stamp(now, true)
	records = append(records, *rec)
	if err := c.write(records); err != nil {
		return nil, err
	}
	c.publish("saved", rec.RecordID())
	return rec, nil
}

// Update shallow-merges the given fields (keyed by JSON field name) into the
// matching record and stamps updatedAt. A missing id is a silent no-op. The
// id and audit timestamps cannot be changed through this path.
func (c *Collection[T, PT]) Update(id string, fields map[string]interface{}) error {
	records := c.GetAll()
	for i := range records {
		rec := PT(&records[i])
		if rec.RecordID() != id {
			continue
		}
		if err := mergeFields(rec, fields); err != nil {
			return err
		}
		rec.Stamp(time.Now(), false)
		if err := c.write(records); err != nil {
			return err
		}
		c.publish("saved", id)
		return nil
	}
	return nil
}

// Patch applies a typed mutation to the matching record and stamps updatedAt,
// with the same scan-and-replace semantics as Update. A missing id is a silent
// no-op.
func (c *Collection[T, PT]) Patch(id string, apply func(PT)) error {
	records := c.GetAll()
	for i := range records {
		rec := PT(&records[i])
		if rec.RecordID() != id {
			continue
		}
		apply(rec)
		rec.Stamp(time.Now(), false)
		if err := c.write(records); err != nil {
			return err
		}
		c.publish("saved", id)
		return nil
	}
	return nil
}

// Delete removes the record from the collection. Unknown ids are a no-op.
func (c *Collection[T, PT]) Delete(id string) error {
	records := c.GetAll()
	kept := records[:0]
	for i := range records {
		if PT(&records[i]).RecordID() != id {
			kept = append(kept, records[i])
		}
	}
	if err := c.write(kept); err != nil {
		return err
	}
	c.publish("deleted", id)
	return nil
}

func (c *Collection[T, PT]) write(records []T) error {
	raw, err := json.MarshalToString(records)
	if err != nil {
		return errors.Wrapf(err, "encode collection %s", c.key)
	}
	if err := c.store.Set(c.key, raw); err != nil {
		zap.L().Error("collection write failed",
			zap.String("collection", c.key), zap.Error(err))
		return errors.Wrapf(err, "write collection %s", c.key)
	}
	return nil
}

func (c *Collection[T, PT]) publish(event, id string) {
	if c.bus != nil {
		c.bus.Publish("storage."+c.key+"."+event, id)
	}
}

func mergeFields(target interface{}, fields map[string]interface{}) error {
	merged := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		merged[k] = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     target,
		TagName:    "json",
	})
	if err != nil {
		return errors.Wrap(err, "build field decoder")
	}
	return errors.Wrap(dec.Decode(merged), "merge record fields")
}
