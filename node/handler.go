package node

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// ResourceHandler executes one named operation against one accounting resource
// for a single workflow item.
type ResourceHandler interface {
	// Execute runs operation and appends its output records to out.
	// It returns a non-nil error only when the failure is fatal for the item.
	Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error
	// Operations lists the operation names the resource supports.
	Operations() []string
}

// operationFunc performs validation, query or payload construction and
// exactly one remote call.
type operationFunc func(ctx context.Context, rc RequestContext) (json.RawMessage, error)

type options struct {
	logger        hclog.Logger
	addressRegion string
	addressChecks bool
}

// Option configures a handler.
type Option func(*options)

// WithLogger sets the logger used by a handler.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAddressChecks enables country and phone number checks on created
// various addresses. region is the default region for numbers without
// an international prefix, e.g. "DE".
func WithAddressChecks(region string) Option {
	return func(o *options) {
		o.addressChecks = true
		o.addressRegion = region
	}
}

func newOptions(opts []Option) options {
	o := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base is shared by every resource handler. It is composed by value and
// carries no state that outlives one Execute call.
type base struct {
	host      Host
	api       API
	itemIndex int
	resource  string
	options
}

func newBase(resource string, host Host, api API, itemIndex int, opts []Option) base {
	o := newOptions(opts)
	return base{
		host:      host,
		api:       api,
		itemIndex: itemIndex,
		resource:  resource,
		options:   o,
	}
}

func (b base) params() ParameterAccessor {
	return ParameterAccessor{Host: b.host, ItemIndex: b.itemIndex}
}

func (b base) query() QueryParameters {
	return BuildQuery(b.params(), nil)
}

// payload reads and parses a JSON body parameter. An absent parameter is
// passed through as nil rather than rejected.
func (b base) payload(name string) (any, error) {
	return ParsePayload(b.params().Raw(name), payloadLabel(name))
}

// execute is the single error boundary for a handler: every failure raised by
// the dispatch table, including an unknown operation, passes through translate
// exactly once. Output is only emitted after a successful remote call.
func (b base) execute(ctx context.Context, table map[string]operationFunc, operation string, rc RequestContext, out *[]OutputRecord) (err error) {
	logger := b.logger.With("resource", b.resource, "operation", operation, "item", b.itemIndex)

	defer func() {
		if r := recover(); r != nil {
			err = b.translate(logger, r, out)
		}
	}()

	fn, ok := table[operation]
	if !ok {
		return b.translate(logger, unsupportedOperation(operation, b.resource), out)
	}

	logger.Debug("executing operation")
	result, callErr := fn(ctx, rc)
	if callErr != nil {
		return b.translate(logger, asFailure(callErr), out)
	}

	emit(Normalize(result), b.itemIndex, out)
	return nil
}

// translate routes a caught value either into a single error record
// (continue-on-fail) or into a fatal ExecutionError.
func (b base) translate(logger hclog.Logger, caught any, out *[]OutputRecord) error {
	message := errorMessage(caught)
	if b.host.ContinueOnFail() {
		logger.Warn("operation failed, continuing", "error", message)
		emit([]map[string]any{{"error": message}}, b.itemIndex, out)
		return nil
	}

	logger.Error("operation failed", "error", message)
	cause, ok := caught.(error)
	if !ok {
		cause = &Failure{Kind: RemoteCallFailed, Cause: panicError{message}}
	}
	return &ExecutionError{
		Node:      b.host.NodeName(),
		ItemIndex: b.itemIndex,
		Cause:     cause,
	}
}

type panicError struct {
	message string
}

func (e panicError) Error() string {
	return e.message
}

// requireContext checks that the context carries the identifiers an
// operation needs. All required names are reported together.
func requireContext(rc RequestContext, needFiscalYear bool) error {
	if !needFiscalYear {
		if rc.ClientID == "" {
			return missingParameter("clientId")
		}
		return nil
	}
	if rc.ClientID == "" || rc.FiscalYearID == "" {
		return missingParameter("clientId", "fiscalYearId")
	}
	return nil
}

func operationNames(table map[string]operationFunc) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
