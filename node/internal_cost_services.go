package node

import (
	"context"
	"encoding/json"
)

const ResourceInternalCostServices = "internalCostServices"

// InternalCostServicesHandler records internal cost allocations. The resource
// is write-only: create is its single operation.
type InternalCostServicesHandler struct {
	base
}

func NewInternalCostServicesHandler(host Host, api API, itemIndex int, opts ...Option) *InternalCostServicesHandler {
	return &InternalCostServicesHandler{base: newBase(ResourceInternalCostServices, host, api, itemIndex, opts)}
}

func (h *InternalCostServicesHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"create": h.create,
	}
}

func (h *InternalCostServicesHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *InternalCostServicesHandler) Operations() []string {
	return operationNames(h.table())
}

// create passes an absent internalCostServiceData through as a nil body.
func (h *InternalCostServicesHandler) create(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	costSystemID, err := h.params().RequireString("costSystemId")
	if err != nil {
		return nil, err
	}
	data, err := h.payload("internalCostServiceData")
	if err != nil {
		return nil, err
	}
	return h.api.CreateInternalCostService(ctx, rc, rc.ClientID, rc.FiscalYearID, costSystemID, data)
}
