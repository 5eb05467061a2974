package node

import (
	"context"
	"encoding/json"
)

type fakeHost struct {
	params         map[string]any
	continueOnFail bool
}

func (h *fakeHost) NodeParameter(name string, itemIndex int) (any, bool) {
	v, ok := h.params[name]
	return v, ok
}

func (h *fakeHost) ContinueOnFail() bool { return h.continueOnFail }

func (h *fakeHost) NodeName() string { return "Accounting" }

type apiCall struct {
	Method string
	Args   []any
}

// fakeAPI records every call and answers with Response/Err.
type fakeAPI struct {
	Calls    []apiCall
	Response json.RawMessage
	Err      error
}

func (f *fakeAPI) record(method string, args ...any) (json.RawMessage, error) {
	f.Calls = append(f.Calls, apiCall{Method: method, Args: args})
	return f.Response, f.Err
}

func (f *fakeAPI) ListFiscalYears(ctx context.Context, rc RequestContext, clientID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListFiscalYears", clientID, query)
}

func (f *fakeAPI) GetFiscalYear(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetFiscalYear", clientID, fiscalYearID, query)
}

func (f *fakeAPI) ListGeneralLedgerAccounts(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListGeneralLedgerAccounts", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetGeneralLedgerAccount(ctx context.Context, rc RequestContext, clientID, fiscalYearID, generalLedgerAccountID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetGeneralLedgerAccount", clientID, fiscalYearID, generalLedgerAccountID, query)
}

func (f *fakeAPI) ListUtilizedGeneralLedgerAccounts(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListUtilizedGeneralLedgerAccounts", clientID, fiscalYearID, query)
}

func (f *fakeAPI) ListCostSystems(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListCostSystems", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetCostSystem(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetCostSystem", clientID, fiscalYearID, costSystemID, query)
}

func (f *fakeAPI) ListCostCenterProperties(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListCostCenterProperties", clientID, fiscalYearID, costSystemID, query)
}

func (f *fakeAPI) GetCostCenterProperty(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID, costCenterPropertyID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetCostCenterProperty", clientID, fiscalYearID, costSystemID, costCenterPropertyID, query)
}

func (f *fakeAPI) ListAccountsReceivable(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListAccountsReceivable", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetAccountsReceivable(ctx context.Context, rc RequestContext, clientID, fiscalYearID, accountsReceivableID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetAccountsReceivable", clientID, fiscalYearID, accountsReceivableID, query)
}

func (f *fakeAPI) ListAccountsReceivableCondensed(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListAccountsReceivableCondensed", clientID, fiscalYearID, query)
}

func (f *fakeAPI) ListVariousAddresses(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListVariousAddresses", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetVariousAddress(ctx context.Context, rc RequestContext, clientID, fiscalYearID, variousAddressID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetVariousAddress", clientID, fiscalYearID, variousAddressID, query)
}

func (f *fakeAPI) CreateVariousAddress(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return f.record("CreateVariousAddress", clientID, fiscalYearID, body)
}

func (f *fakeAPI) ListPostingRulesIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListPostingRulesIncoming", clientID, fiscalYearID, query)
}

func (f *fakeAPI) ListPostingRulesOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListPostingRulesOutgoing", clientID, fiscalYearID, query)
}

func (f *fakeAPI) ListPostingRulesCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListPostingRulesCashRegister", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetPostingRuleIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetPostingRuleIncoming", clientID, fiscalYearID, ruleID, query)
}

func (f *fakeAPI) GetPostingRuleOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetPostingRuleOutgoing", clientID, fiscalYearID, ruleID, query)
}

func (f *fakeAPI) GetPostingRuleCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetPostingRuleCashRegister", clientID, fiscalYearID, ruleID, query)
}

func (f *fakeAPI) ApplyPostingProposalsBatchIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return f.record("ApplyPostingProposalsBatchIncoming", clientID, fiscalYearID, body)
}

func (f *fakeAPI) ApplyPostingProposalsBatchOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return f.record("ApplyPostingProposalsBatchOutgoing", clientID, fiscalYearID, body)
}

func (f *fakeAPI) ApplyPostingProposalsBatchCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return f.record("ApplyPostingProposalsBatchCashRegister", clientID, fiscalYearID, body)
}

func (f *fakeAPI) ListStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("ListStocktakingData", clientID, fiscalYearID, query)
}

func (f *fakeAPI) GetStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID, assetID string, query QueryParameters) (json.RawMessage, error) {
	return f.record("GetStocktakingData", clientID, fiscalYearID, assetID, query)
}

func (f *fakeAPI) UpdateStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID, assetID string, body any) (json.RawMessage, error) {
	return f.record("UpdateStocktakingData", clientID, fiscalYearID, assetID, body)
}

func (f *fakeAPI) CreateInternalCostService(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, body any) (json.RawMessage, error) {
	return f.record("CreateInternalCostService", clientID, fiscalYearID, costSystemID, body)
}
