package node

import (
	"fmt"
	"sort"

	"github.com/iancoleman/strcase"
)

// Constructor builds a handler for one workflow item.
type Constructor func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler

var registry = map[string]Constructor{
	ResourceFiscalYear: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewFiscalYearHandler(host, api, itemIndex, opts...)
	},
	ResourceGeneralLedgerAccounts: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewGeneralLedgerAccountsHandler(host, api, itemIndex, opts...)
	},
	ResourceCostSystems: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewCostSystemsHandler(host, api, itemIndex, opts...)
	},
	ResourceCostCenterProperties: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewCostCenterPropertiesHandler(host, api, itemIndex, opts...)
	},
	ResourceAccountsReceivable: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewAccountsReceivableHandler(host, api, itemIndex, opts...)
	},
	ResourceVariousAddresses: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewVariousAddressesHandler(host, api, itemIndex, opts...)
	},
	ResourcePostingProposals: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewPostingProposalsHandler(host, api, itemIndex, opts...)
	},
	ResourceStocktakingData: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewStocktakingDataHandler(host, api, itemIndex, opts...)
	},
	ResourceInternalCostServices: func(host Host, api API, itemIndex int, opts ...Option) ResourceHandler {
		return NewInternalCostServicesHandler(host, api, itemIndex, opts...)
	},
}

// New returns the handler for resource. The name is matched case and
// separator insensitively, so "FiscalYear", "fiscal-year" and "fiscal_year"
// all resolve to fiscalYear.
func New(resource string, host Host, api API, itemIndex int, opts ...Option) (ResourceHandler, error) {
	constructor, ok := registry[strcase.ToLowerCamel(resource)]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
	return constructor(host, api, itemIndex, opts...), nil
}

// Resources lists the registered resource names.
func Resources() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operations lists the operations supported by resource.
func Operations(resource string) ([]string, error) {
	h, err := New(resource, nil, nil, 0)
	if err != nil {
		return nil, err
	}
	return h.Operations(), nil
}
