package app

import (
	"time"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
)

// AllSelector asks GetProcessor for every registered processor.
const AllSelector = "all"

type CreateRequest struct {
	Owner    string `json:"owner"`
	Provider string `json:"provider"`
	Token    string `json:"token,omitempty"`
}

// ProcessorView is the aggregate as shown to callers. Raw slot data never
// leaves the service.
type ProcessorView struct {
	Owner            string             `json:"owner"`
	DefaultProcessor string             `json:"defaultProcessor,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	Processors       []ProcessorSummary `json:"processors"`
}

type ProcessorSummary struct {
	Name                 string                 `json:"name"`
	IsDefault            bool                   `json:"isDefault"`
	BillingDate          int                    `json:"billingDate,omitempty"`
	DefaultPaymentMethod *adapter.MethodSummary `json:"defaultPaymentMethod,omitempty"`
}
