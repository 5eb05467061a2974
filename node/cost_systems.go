package node

import (
	"context"
	"encoding/json"
)

const ResourceCostSystems = "costSystems"

type CostSystemsHandler struct {
	base
}

func NewCostSystemsHandler(host Host, api API, itemIndex int, opts ...Option) *CostSystemsHandler {
	return &CostSystemsHandler{base: newBase(ResourceCostSystems, host, api, itemIndex, opts)}
}

func (h *CostSystemsHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll": h.getAll,
		"get":    h.get,
	}
}

func (h *CostSystemsHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *CostSystemsHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *CostSystemsHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListCostSystems(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}

func (h *CostSystemsHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	id, err := h.params().RequireString("costSystemId")
	if err != nil {
		return nil, err
	}
	return h.api.GetCostSystem(ctx, rc, rc.ClientID, rc.FiscalYearID, id, h.query())
}
