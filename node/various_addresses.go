package node

import (
	"context"
	"encoding/json"
)

const ResourceVariousAddresses = "variousAddresses"

// VariousAddressesHandler reads and creates the client's various addresses
// (business partners without a dedicated debtor or creditor account).
type VariousAddressesHandler struct {
	base
}

func NewVariousAddressesHandler(host Host, api API, itemIndex int, opts ...Option) *VariousAddressesHandler {
	return &VariousAddressesHandler{base: newBase(ResourceVariousAddresses, host, api, itemIndex, opts)}
}

func (h *VariousAddressesHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll": h.getAll,
		"get":    h.get,
		"create": h.create,
	}
}

func (h *VariousAddressesHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *VariousAddressesHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *VariousAddressesHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListVariousAddresses(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}

func (h *VariousAddressesHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	id, err := h.params().RequireString("variousAddressId")
	if err != nil {
		return nil, err
	}
	return h.api.GetVariousAddress(ctx, rc, rc.ClientID, rc.FiscalYearID, id, h.query())
}

func (h *VariousAddressesHandler) create(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	payload, err := h.payload("variousAddressData")
	if err != nil {
		return nil, err
	}
	address, err := RequireObject(payload)
	if err != nil {
		return nil, err
	}
	if h.addressChecks {
		if err := checkAddress(address, h.addressRegion); err != nil {
			return nil, err
		}
	}
	return h.api.CreateVariousAddress(ctx, rc, rc.ClientID, rc.FiscalYearID, address)
}
