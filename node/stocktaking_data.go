package node

import (
	"context"
	"encoding/json"
)

const ResourceStocktakingData = "stocktakingData"

// StocktakingDataHandler reads and updates the stocktaking data of fixed assets.
type StocktakingDataHandler struct {
	base
}

func NewStocktakingDataHandler(host Host, api API, itemIndex int, opts ...Option) *StocktakingDataHandler {
	return &StocktakingDataHandler{base: newBase(ResourceStocktakingData, host, api, itemIndex, opts)}
}

func (h *StocktakingDataHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll": h.getAll,
		"get":    h.get,
		"update": h.update,
	}
}

func (h *StocktakingDataHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *StocktakingDataHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *StocktakingDataHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListStocktakingData(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}

func (h *StocktakingDataHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	assetID, err := h.params().RequireString("assetId")
	if err != nil {
		return nil, err
	}
	return h.api.GetStocktakingData(ctx, rc, rc.ClientID, rc.FiscalYearID, assetID, h.query())
}

func (h *StocktakingDataHandler) update(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	assetID, err := h.params().RequireString("assetId")
	if err != nil {
		return nil, err
	}
	payload, err := h.payload("stocktakingData")
	if err != nil {
		return nil, err
	}
	data, err := RequireObject(payload)
	if err != nil {
		return nil, err
	}
	return h.api.UpdateStocktakingData(ctx, rc, rc.ClientID, rc.FiscalYearID, assetID, data)
}
