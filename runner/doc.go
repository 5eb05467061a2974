package runner

import (
	"bytes"
	"encoding/csv"

	"github.com/iancoleman/strcase"

	"github.com/homemade/ledgerlink/node"
)

// OperationDocRow is one supported (resource, operation) pair.
type OperationDocRow struct {
	Resource  string
	Operation string
}

type OperationDocumentation struct {
	Rows []OperationDocRow
}

// GenerateOperationDocumentation lists the operations of the given resources,
// or of every registered resource when none are given. Rows carry the
// registered resource name, so "fiscal-year" is listed as fiscalYear.
func GenerateOperationDocumentation(resources ...string) (OperationDocumentation, error) {
	doc := OperationDocumentation{Rows: []OperationDocRow{}}
	if len(resources) == 0 {
		resources = node.Resources()
	}
	for _, resource := range resources {
		ops, err := node.Operations(resource)
		if err != nil {
			return doc, err
		}
		label := strcase.ToLowerCamel(resource)
		for _, op := range ops {
			doc.Rows = append(doc.Rows, OperationDocRow{Resource: label, Operation: op})
		}
	}
	return doc, nil
}

// FormatCSV formats the operation documentation as CSV.
func (d OperationDocumentation) FormatCSV() (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Resource", "Operation"}); err != nil {
		return "", err
	}
	for _, row := range d.Rows {
		if err := writer.Write([]string{row.Resource, row.Operation}); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
