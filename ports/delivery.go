package ports

import (
	"context"
)

// DeliveryRequest carries a composed report to an external delivery channel
type DeliveryRequest struct {
	Recipient string                 `json:"recipient"`
	Subject   string                 `json:"subject"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload"`
}

// DeliveryChannel hands a report to an external channel (email or equivalent).
// A false return or an error both mean the report was not delivered; the
// caller's report state must remain untouched either way.
type DeliveryChannel interface {
	Send(ctx context.Context, req DeliveryRequest) (bool, error)
}
