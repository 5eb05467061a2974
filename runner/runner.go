package runner

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/homemade/ledgerlink/accounting"
	"github.com/homemade/ledgerlink/node"
)

// Execution holds one (resource, operation) run over every item of Host.
// It is immutable after construction.
type Execution struct {
	Resource       string
	Operation      string
	RequestContext node.RequestContext
	Host           *ItemsHost
	Options        []node.Option
}

// NewExecution builds an Execution from a loaded configuration.
func NewExecution(cfg accounting.Config, resource, operation string, logger hclog.Logger) Execution {
	opts := []node.Option{node.WithLogger(logger)}
	if cfg.AddressChecks.Enabled {
		opts = append(opts, node.WithAddressChecks(cfg.AddressChecks.Region))
	}
	return Execution{
		Resource:       resource,
		Operation:      operation,
		RequestContext: cfg.RequestContext(),
		Host: &ItemsHost{
			Items:             cfg.Items,
			ContinueOnFailure: cfg.ContinueOnFail,
		},
		Options: opts,
	}
}

// Run executes e one item at a time, in item order, constructing a fresh
// handler per item. It stops at the first fatal error and returns the records
// emitted so far alongside it.
func Run(ctx context.Context, api node.API, e Execution) ([]node.OutputRecord, error) {
	var out []node.OutputRecord
	for i := 0; i < e.Host.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("cancelled before item %d: %w", i, err)
		}
		h, err := node.New(e.Resource, e.Host, api, i, e.Options...)
		if err != nil {
			return out, err
		}
		if err := h.Execute(ctx, e.Operation, e.RequestContext, &out); err != nil {
			return out, err
		}
	}
	return out, nil
}
