package node

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RequestContext holds the identifiers that scope a remote call for one workflow item.
// It is immutable after construction and is passed by value into every handler call.
// ClientID and FiscalYearID are optional here; operations that need them check for them.
type RequestContext struct {
	Host             string
	Token            string
	ClientInstanceID string
	ClientID         string
	FiscalYearID     string
}

// Validate checks the connection fields needed to reach the remote API.
func (rc RequestContext) Validate() error {
	return validation.ValidateStruct(&rc,
		validation.Field(&rc.Host, validation.Required, is.URL),
		validation.Field(&rc.Token, validation.Required),
		validation.Field(&rc.ClientInstanceID, validation.Required),
	)
}

// Host is the capability surface the workflow engine exposes to a handler.
type Host interface {
	// NodeParameter returns the value of a declared parameter for an item.
	// ok is false when the parameter is absent.
	NodeParameter(name string, itemIndex int) (value any, ok bool)
	ContinueOnFail() bool
	// NodeName identifies the node in fatal errors.
	NodeName() string
}

// API is the remote accounting API. Each method performs exactly one round trip
// and returns the raw JSON body; a nil body means the API returned nothing.
type API interface {
	ListFiscalYears(ctx context.Context, rc RequestContext, clientID string, query QueryParameters) (json.RawMessage, error)
	GetFiscalYear(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)

	ListGeneralLedgerAccounts(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetGeneralLedgerAccount(ctx context.Context, rc RequestContext, clientID, fiscalYearID, generalLedgerAccountID string, query QueryParameters) (json.RawMessage, error)
	ListUtilizedGeneralLedgerAccounts(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)

	ListCostSystems(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetCostSystem(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, query QueryParameters) (json.RawMessage, error)

	ListCostCenterProperties(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, query QueryParameters) (json.RawMessage, error)
	GetCostCenterProperty(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID, costCenterPropertyID string, query QueryParameters) (json.RawMessage, error)

	ListAccountsReceivable(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetAccountsReceivable(ctx context.Context, rc RequestContext, clientID, fiscalYearID, accountsReceivableID string, query QueryParameters) (json.RawMessage, error)
	ListAccountsReceivableCondensed(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)

	ListVariousAddresses(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetVariousAddress(ctx context.Context, rc RequestContext, clientID, fiscalYearID, variousAddressID string, query QueryParameters) (json.RawMessage, error)
	CreateVariousAddress(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error)

	ListPostingRulesIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	ListPostingRulesOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	ListPostingRulesCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetPostingRuleIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error)
	GetPostingRuleOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error)
	GetPostingRuleCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID, ruleID string, query QueryParameters) (json.RawMessage, error)
	ApplyPostingProposalsBatchIncoming(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error)
	ApplyPostingProposalsBatchOutgoing(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error)
	ApplyPostingProposalsBatchCashRegister(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error)

	ListStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID string, query QueryParameters) (json.RawMessage, error)
	GetStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID, assetID string, query QueryParameters) (json.RawMessage, error)
	UpdateStocktakingData(ctx context.Context, rc RequestContext, clientID, fiscalYearID, assetID string, body any) (json.RawMessage, error)

	CreateInternalCostService(ctx context.Context, rc RequestContext, clientID, fiscalYearID, costSystemID string, body any) (json.RawMessage, error)
}
