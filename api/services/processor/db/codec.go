package db

import (
	"encoding/json"
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
)

// encodeSlot renders a slot for a jsonb parameter. Empty slots become NULL.
// Values go out as strings so lib/pq sends them in text format.
func encodeSlot(data adapter.StoredData) (any, error) {
	if data.Empty() {
		return nil, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: encode slot: %v", adapter.ErrCorruptData, err)
	}
	return string(raw), nil
}

// decodeSlot reads a jsonb column. NULL and [] are empty slots; anything that is
// not a JSON list is corrupt. Element count is left to the adapter to judge.
func decodeSlot(raw []byte) (adapter.StoredData, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var data adapter.StoredData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: decode slot: %v", adapter.ErrCorruptData, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
