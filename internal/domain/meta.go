package domain

import "time"

// Meta carries the identity and audit fields shared by every stored record.
// The id is an opaque string assigned by the storage layer at first save;
// timestamps are stamped by the storage layer at write time, whatever the
// caller supplied.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) RecordID() string { return m.ID }

func (m *Meta) SetRecordID(id string) { m.ID = id }

// Stamp sets the audit timestamps. CreatedAt is only set on first save.
func (m *Meta) Stamp(now time.Time, created bool) {
	if created {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
