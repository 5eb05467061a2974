package node

import (
	"context"
	"encoding/json"
)

const ResourceGeneralLedgerAccounts = "generalLedgerAccounts"

// GeneralLedgerAccountsHandler reads the chart of accounts for a fiscal year,
// including the accounts that have postings ("utilized").
type GeneralLedgerAccountsHandler struct {
	base
}

func NewGeneralLedgerAccountsHandler(host Host, api API, itemIndex int, opts ...Option) *GeneralLedgerAccountsHandler {
	return &GeneralLedgerAccountsHandler{base: newBase(ResourceGeneralLedgerAccounts, host, api, itemIndex, opts)}
}

func (h *GeneralLedgerAccountsHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getAll":      h.getAll,
		"get":         h.get,
		"getUtilized": h.getUtilized,
	}
}

func (h *GeneralLedgerAccountsHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *GeneralLedgerAccountsHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *GeneralLedgerAccountsHandler) getAll(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListGeneralLedgerAccounts(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}

func (h *GeneralLedgerAccountsHandler) get(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	id, err := h.params().RequireString("generalLedgerAccountId")
	if err != nil {
		return nil, err
	}
	return h.api.GetGeneralLedgerAccount(ctx, rc, rc.ClientID, rc.FiscalYearID, id, h.query())
}

func (h *GeneralLedgerAccountsHandler) getUtilized(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
	if err := requireContext(rc, true); err != nil {
		return nil, err
	}
	return h.api.ListUtilizedGeneralLedgerAccounts(ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
}
