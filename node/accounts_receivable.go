package node

import (
	"context"
	"encoding/json"
)

const ResourceAccountsReceivable = "accountsReceivable"

type AccountsReceivableHandler struct {
	base
}

func NewAccountsReceivableHandler(host Host, api API, itemIndex int, opts ...Option) *AccountsReceivableHandler {
	return &AccountsReceivableHandler{base: newBase(ResourceAccountsReceivable, host, api, itemIndex, opts)}
}

func (h *AccountsReceivableHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll":       h.getAll,
		"get":          h.get,
		"getCondensed": h.getCondensed,
	}
}

func (h *AccountsReceivableHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *AccountsReceivableHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *AccountsReceivableHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListAccountsReceivable(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}

func (h *AccountsReceivableHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	id, err := h.params().RequireString("accountsReceivableId")
	if err != nil {
		return nil, err
	}
	return h.api.GetAccountsReceivable(ctx, rc, rc.ClientID, rc.FiscalYearID, id, h.query())
}

func (h *AccountsReceivableHandler) getCondensed(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListAccountsReceivableCondensed(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}
