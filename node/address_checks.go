package node

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/biter777/countries"
	"github.com/tidwall/gjson"
	"github.com/ttacon/libphonenumber"
)

// checkAddress validates country codes and phone numbers in a various
// address payload without rewriting it. Every problem found is reported.
func checkAddress(address map[string]any, region string) error {
	b, err := json.Marshal(address)
	if err != nil {
		return invalidPayloadShape(err.Error())
	}
	data := gjson.ParseBytes(b)

	var problems []error
	for i, entry := range data.Get("addresses").Array() {
		code := entry.Get("country_code").String()
		if code == "" {
			continue
		}
		// will match on Alpha-2 / Alpha-3 / Name
		if countries.ByName(code) == countries.Unknown {
			problems = append(problems, fmt.Errorf("addresses.%d.country_code %q is not a known country", i, code))
		}
	}

	for i, communication := range data.Get("communications").Array() {
		kind := strings.ToLower(communication.Get("type").String())
		number := communication.Get("number").String()
		if (kind != "phone" && kind != "fax") || number == "" {
			continue
		}
		if _, err := libphonenumber.Parse(number, region); err != nil {
			problems = append(problems, fmt.Errorf("communications.%d.number %q: %w", i, number, err))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return invalidPayloadShape(strings.ReplaceAll(err.Error(), "\n", "; "))
	}
	return nil
}
