package node

import (
	"context"
	"encoding/json"
)

const ResourcePostingProposals = "postingProposals"

type (
	listRulesFunc  func(api API, ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	getRuleFunc    func(api API, ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error)
	applyBatchFunc func(api API, ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error)
)

// PostingProposalsHandler reads posting proposal rules and applies batches of
// posting proposals. Incoming invoices, outgoing invoices and cash register
// entries each have their own list, get and batch endpoint.
type PostingProposalsHandler struct {
	base
}

func NewPostingProposalsHandler(host Host, api API, itemIndex int, opts ...Option) *PostingProposalsHandler {
	return &PostingProposalsHandler{base: newBase(ResourcePostingProposals, host, api, itemIndex, opts)}
}

func (h *PostingProposalsHandler) table() map[string]operationFunc {
	return map[string]operationFunc{
		"getRulesIncoming":     h.listRules(API.ListPostingRulesIncoming),
		"getRulesOutgoing":     h.listRules(API.ListPostingRulesOutgoing),
		"getRulesCashRegister": h.listRules(API.ListPostingRulesCashRegister),
		"getRuleIncoming":      h.getRule(API.GetPostingRuleIncoming),
		"getRuleOutgoing":      h.getRule(API.GetPostingRuleOutgoing),
		"getRuleCashRegister":  h.getRule(API.GetPostingRuleCashRegister),
		"batchIncoming":        h.applyBatch(API.ApplyPostingProposalsBatchIncoming),
		"batchOutgoing":        h.applyBatch(API.ApplyPostingProposalsBatchOutgoing),
		"batchCashRegister":    h.applyBatch(API.ApplyPostingProposalsBatchCashRegister),
	}
}

func (h *PostingProposalsHandler) Execute(ctx context.Context, operation string, rc RequestContext, out *[]OutputRecord) error {
	return h.execute(ctx, h.table(), operation, rc, out)
}

func (h *PostingProposalsHandler) Operations() []string {
	return operationNames(h.table())
}

func (h *PostingProposalsHandler) listRules(call listRulesFunc) operationFunc {
	return func(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
		if err := requireContext(rc, true); err != nil {
			return nil, err
		}
		return call(h.api, ctx, rc, rc.ClientID, rc.FiscalYearID, h.query())
	}
}

func (h *PostingProposalsHandler) getRule(call getRuleFunc) operationFunc {
	return func(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
		if err := requireContext(rc, true); err != nil {
			return nil, err
		}
		ruleID, err := h.params().RequireString("ruleId")
		if err != nil {
			return nil, err
		}
		return call(h.api, ctx, rc, rc.ClientID, rc.FiscalYearID, ruleID, h.query())
	}
}

// applyBatch sends batchData as is. An absent batchData is not rejected here;
// it reaches the API as a nil body.
func (h *PostingProposalsHandler) applyBatch(call applyBatchFunc) operationFunc {
	return func(ctx context.Context, rc RequestContext) (json.RawMessage, error) {
		if err := requireContext(rc, true); err != nil {
			return nil, err
		}
		batch, err := h.payload("batchData")
		if err != nil {
			return nil, err
		}
		return call(h.api, ctx, rc, rc.ClientID, rc.FiscalYearID, batch)
	}
}
