package adapter

import (
	"encoding/json"
	"fmt"
)

// StoredData is the storage shape of one slot: a JSON array holding exactly
// one record. The array exists for document-store compatibility only;
// ParseData always yields a single record.
type StoredData []json.RawMessage

// Empty reports whether the slot holds no record.
func (d StoredData) Empty() bool { return len(d) == 0 }

// Clone returns a deep copy so callers can mutate aggregates without sharing buffers.
func (d StoredData) Clone() StoredData {
	if d == nil {
		return nil
	}
	out := make(StoredData, len(d))
	for i, raw := range d {
		out[i] = append(json.RawMessage(nil), raw...)
	}
	return out
}

func wrap(v any) (StoredData, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrCorruptData, err)
	}
	return StoredData{raw}, nil
}

func unwrap(data StoredData, v any) error {
	switch len(data) {
	case 0:
		return fmt.Errorf("%w: slot is empty", ErrCorruptData)
	case 1:
	default:
		return fmt.Errorf("%w: slot holds %d records", ErrCorruptData, len(data))
	}
	if err := json.Unmarshal(data[0], v); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrCorruptData, err)
	}
	return nil
}

func wrongRecord(want Provider, rec Record) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record for %s", ErrCorruptData, want)
	}
	return fmt.Errorf("%w: %s record given to %s adapter", ErrCorruptData, rec.Provider(), want)
}
