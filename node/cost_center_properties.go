package node

import (
	"context"
	"encoding/json"
)

const ResourceCostCenterProperties = "costCenterProperties"

// CostCenterPropertiesHandler reads cost center properties. They live under a
// cost system, so every operation needs the costSystemId parameter.
type CostCenterPropertiesHandler struct {
	base
}

func NewCostCenterPropertiesHandler(host Host, api API, itemIndex int, opts ...Option) *CostCenterPropertiesHandler {
	return &CostCenterPropertiesHandler{base: newBase(ResourceCostCenterProperties, host, api, itemIndex, opts)}
}

func (h *CostCenterPropertiesHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll": h.getAll,
		"get":    h.get,
	}
}

func (h *CostCenterPropertiesHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *CostCenterPropertiesHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *CostCenterPropertiesHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	costSystemID, err := h.params().RequireString("costSystemId")
	if err != nil {
		return nil, err
	}
	return h.api.ListCostCenterProperties(ctx, rc, rc.ClientID, rc.FiscalYearID, costSystemID, h.query())
}

func (h *CostCenterPropertiesHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	p := h.params()
	costSystemID, err := p.RequireString("costSystemId")
	if err != nil {
		return nil, err
	}
	id, err := p.RequireString("costCenterPropertyId")
	if err != nil {
		return nil, err
	}
	return h.api.GetCostCenterProperty(ctx, rc, rc.ClientID, rc.FiscalYearID, costSystemID, id, h.query())
}
