package runner

import "github.com/homemade/ledgerlink/node"

// ItemsHost is a node.Host over in-memory workflow items.
type ItemsHost struct {
	Name              string
	Items             []map[string]interface{}
	ContinueOnFailure bool
}

var _ node.Host = (*ItemsHost)(nil)

func (h *ItemsHost) NodeParameter(name string, itemIndex int) (any, bool) {
	if itemIndex < 0 || itemIndex >= len(h.Items) {
		return nil, false
	}
	v, ok := h.Items[itemIndex][name]
	return v, ok
}

func (h *ItemsHost) ContinueOnFail() bool {
	return h.ContinueOnFailure
}

func (h *ItemsHost) NodeName() string {
	if h.Name == "" {
		return "Accounting"
	}
	return h.Name
}

// Len is the number of items to execute. A host without items still runs once,
// with every parameter absent.
func (h *ItemsHost) Len() int {
	if len(h.Items) == 0 {
		return 1
	}
	return len(h.Items)
}
