package payment

import "context"

const StatusProcessed = "processed"

// Request is what the handler hands to a Processor. Payload is the decoded
// body as-is, nil when the body was empty.
type Request struct {
	Ref     string
	Payload any
}

type Result struct {
	Status string `json:"status"`
}

type Processor interface {
	Process(ctx context.Context, req Request) (Result, error)
}

// AcceptAll reports every payment as processed without looking at it.
type AcceptAll struct{}

func (AcceptAll) Process(context.Context, Request) (Result, error) {
	return Result{Status: StatusProcessed}, nil
}
