package node

import (
	"context"
	"encoding/json"
)

const ResourceFiscalYear = "fiscalYear"

// FiscalYearHandler reads the fiscal years of a client.
type FiscalYearHandler struct {
	base
}

func NewFiscalYearHandler(host Host, api API, itemIndex int, opts ...Option) *FiscalYearHandler {
	return &FiscalYearHandler{base: newBase(ResourceFiscalYear, host, api, itemIndex, opts)}
}

func (h *FiscalYearHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll": h.getAll,
		"get":    h.get,
	}
}

func (h *FiscalYearHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *FiscalYearHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *FiscalYearHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, false); err != nil {
		return nil, err
	}
	return h.api.ListFiscalYears(ctx, rc, rc.ClientID, h.query())
}

func (h *FiscalYearHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.GetFiscalYear(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}
