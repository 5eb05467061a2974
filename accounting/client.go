package accounting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/homemade/ledgerlink/node"
)

// Client calls the accounting REST API. It implements node.API and holds no
// per-request state, so one Client can serve every workflow item.
type Client struct {
	basePath     string
	timeout      time.Duration
	recordingDir string
	logger       hclog.Logger
	limiter      *rate.Limiter
	retries      uint64
}

var _ node.API = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBasePath overrides DefaultBasePath.
func WithBasePath(p string) ClientOption {
	return func(c *Client) {
		c.basePath = p
	}
}

// WithTimeout overrides HTTPRequestTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRecording records every request and response under dir, for use as test fixtures.
func WithRecording(dir string) ClientOption {
	return func(c *Client) {
		c.recordingDir = dir
	}
}

// WithClientLogger sets the logger for API errors.
func WithClientLogger(logger hclog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit limits requests to perSecond, allowing bursts of burst requests.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		if perSecond > 0 {
			if burst < 1 {
				burst = 1
			}
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithRetries retries GET requests up to n times, with exponential backoff,
// when the API answers 429 or 502-504. Requests with a body are never retried.
func WithRetries(n uint64) ClientOption {
	return func(c *Client) {
		c.retries = n
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		basePath: DefaultBasePath,
		timeout:  HTTPRequestTimeout,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the JSON error body returned by the accounting API.
type APIError map[string]interface{}

// Message returns the most specific message in the error body.
func (e APIError) Message() string {
	for _, key := range []string{"error_description", "message", "error"} {
		if s, ok := e[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// odataKeys are sent with the OData "$" prefix; anything else is sent as is.
var odataKeys = map[string]bool{
	"top":    true,
	"skip":   true,
	"select": true,
	"filter": true,
	"expand": true,
}

// APIBuilder returns a new requests.Builder for the already escaped path on
// rc's host, authenticated with rc's token.
func (c *Client) APIBuilder(rc node.RequestContext, path string) *requests.Builder {
	// the path goes in with the base URL; Builder.Path would escape it a second time
	result := requests.
		URL(strings.TrimSuffix(rc.Host, "/") + path).
		Client(&http.Client{Timeout: c.timeout}).
		Bearer(rc.Token).
		Header("X-Client-Instance-Id", rc.ClientInstanceID).
		Accept("application/json")
	if c.recordingDir != "" {
		result = result.Transport(requests.Record(nil, c.recordingDir))
	}
	return result
}

// endpoint builds an escaped path below the base path. Each identifier is
// escaped as a single segment, so a "/" inside one is sent as %2F.
func (c *Client) endpoint(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	base := strings.Trim(c.basePath, "/")
	if base != "" {
		base = "/" + base
	}
	return base + "/" + fmt.Sprintf(format, args...)
}

func (c *Client) get(ctx context.Context, rc node.RequestContext, query node.QueryParameters, format string, ids ...string) (json.RawMessage, error) {
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request context: %w", err)
	}
	path := c.endpoint(format, ids...)
	b := c.APIBuilder(rc, path)

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if odataKeys[k] {
			name = "$" + k
		}
		b = b.Param(name, fmt.Sprint(query[k]))
	}
	return c.fetch(ctx, b, http.MethodGet, path)
}

// send issues a request with a JSON body. A nil body is sent as an empty request body.
func (c *Client) send(ctx context.Context, rc node.RequestContext, method string, body any, format string, ids ...string) (json.RawMessage, error) {
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request context: %w", err)
	}
	path := c.endpoint(format, ids...)
	b := c.APIBuilder(rc, path).Method(method)
	if body != nil {
		b = b.BodyJSON(body)
	}
	return c.fetch(ctx, b, method, path)
}

func (c *Client) fetch(ctx context.Context, b *requests.Builder, method, path string) (json.RawMessage, error) {
	var body string
	attempt := func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}
		requestID := uuid.NewString()
		apiError := APIError{}
		body = ""
		err := b.Clone().
			Header("X-Request-Id", requestID).
			ToString(&body).
			ErrorJSON(&apiError).
			Fetch(ctx)
		if err == nil {
			return nil
		}
		c.logger.Error("accounting API error", "method", method, "path", path, "request_id", requestID, "body", apiError, "error", err)
		retryable := method == http.MethodGet && requests.HasStatusErr(err,
			http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout)
		if msg := apiError.Message(); msg != "" {
			err = fmt.Errorf("%s %s: %s: %w", method, path, msg, err)
		} else {
			err = fmt.Errorf("%s %s: %w", method, path, err)
		}
		if !retryable {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	if !gjson.Valid(body) {
		c.logger.Error("invalid accounting API response", "method", method, "path", path, "body", body)
		return nil, errors.New("invalid json response")
	}
	return json.RawMessage(body), nil
}

func (c *Client) ListFiscalYears(ctx context.Context, rc node.RequestContext, clientID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years", clientID)
}

func (c *Client) GetFiscalYear(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s", clientID, fiscalYearID)
}

func (c *Client) ListGeneralLedgerAccounts(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/general-ledger-accounts", clientID, fiscalYearID)
}

func (c *Client) GetGeneralLedgerAccount(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, generalLedgerAccountID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/general-ledger-accounts/%s", clientID, fiscalYearID, generalLedgerAccountID)
}

func (c *Client) ListUtilizedGeneralLedgerAccounts(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/utilized-general-ledger-accounts", clientID, fiscalYearID)
}

func (c *Client) ListCostSystems(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/cost-systems", clientID, fiscalYearID)
}

func (c *Client) GetCostSystem(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, costSystemID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/cost-systems/%s", clientID, fiscalYearID, costSystemID)
}

func (c *Client) ListCostCenterProperties(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, costSystemID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/cost-systems/%s/cost-center-properties", clientID, fiscalYearID, costSystemID)
}

func (c *Client) GetCostCenterProperty(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, costSystemID, costCenterPropertyID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/cost-systems/%s/cost-center-properties/%s", clientID, fiscalYearID, costSystemID, costCenterPropertyID)
}

func (c *Client) ListAccountsReceivable(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/accounts-receivable", clientID, fiscalYearID)
}

func (c *Client) GetAccountsReceivable(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, accountsReceivableID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/accounts-receivable/%s", clientID, fiscalYearID, accountsReceivableID)
}

func (c *Client) ListAccountsReceivableCondensed(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/accounts-receivable/condensed", clientID, fiscalYearID)
}

func (c *Client) ListVariousAddresses(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/various-addresses", clientID, fiscalYearID)
}

func (c *Client) GetVariousAddress(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, variousAddressID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/various-addresses/%s", clientID, fiscalYearID, variousAddressID)
}

func (c *Client) CreateVariousAddress(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPost, body, "clients/%s/fiscal-years/%s/various-addresses", clientID, fiscalYearID)
}

func (c *Client) ListPostingRulesIncoming(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-incoming", clientID, fiscalYearID)
}

func (c *Client) ListPostingRulesOutgoing(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-outgoing", clientID, fiscalYearID)
}

func (c *Client) ListPostingRulesCashRegister(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-cash-register", clientID, fiscalYearID)
}

func (c *Client) GetPostingRuleIncoming(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, ruleID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-incoming/%s", clientID, fiscalYearID, ruleID)
}

func (c *Client) GetPostingRuleOutgoing(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, ruleID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-outgoing/%s", clientID, fiscalYearID, ruleID)
}

func (c *Client) GetPostingRuleCashRegister(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, ruleID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/posting-proposal-rules-cash-register/%s", clientID, fiscalYearID, ruleID)
}

func (c *Client) ApplyPostingProposalsBatchIncoming(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPost, body, "clients/%s/fiscal-years/%s/posting-proposals/incoming/batch", clientID, fiscalYearID)
}

func (c *Client) ApplyPostingProposalsBatchOutgoing(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPost, body, "clients/%s/fiscal-years/%s/posting-proposals/outgoing/batch", clientID, fiscalYearID)
}

func (c *Client) ApplyPostingProposalsBatchCashRegister(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPost, body, "clients/%s/fiscal-years/%s/posting-proposals/cash-register/batch", clientID, fiscalYearID)
}

func (c *Client) ListStocktakingData(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/stocktaking-data", clientID, fiscalYearID)
}

func (c *Client) GetStocktakingData(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, assetID string, query node.QueryParameters) (json.RawMessage, error) {
	return c.get(ctx, rc, query, "clients/%s/fiscal-years/%s/stocktaking-data/%s", clientID, fiscalYearID, assetID)
}

func (c *Client) UpdateStocktakingData(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, assetID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPut, body, "clients/%s/fiscal-years/%s/stocktaking-data/%s", clientID, fiscalYearID, assetID)
}

func (c *Client) CreateInternalCostService(ctx context.Context, rc node.RequestContext, clientID, fiscalYearID, costSystemID string, body any) (json.RawMessage, error) {
	return c.send(ctx, rc, http.MethodPost, body, "clients/%s/fiscal-years/%s/cost-systems/%s/internal-cost-services", clientID, fiscalYearID, costSystemID)
}
