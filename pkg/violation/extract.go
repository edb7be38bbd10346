package violation

import (
	"fmt"
	"io"
	"sort"

	"github.com/opareport/opareport/pkg/jsonutil"
)

// ExtractOPAEval reads `opa eval --format json` output from r and collects
// every violation found in "deny" arrays anywhere under the first result
// expression's value. The returned records are suitable for wrapping in a
// {"violations": [...]} document and feeding back through Normalize.
func ExtractOPAEval(r io.Reader) ([]Record, error) {
	var envelope struct {
		Result []struct {
			Expressions []struct {
				Value any `json:"value"`
			} `json:"expressions"`
		} `json:"result"`
	}
	if err := jsonutil.NewStreamDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("violation: decode opa eval output: %w", err)
	}

	if len(envelope.Result) == 0 || len(envelope.Result[0].Expressions) == 0 {
		return nil, nil
	}
	return collectDeny(envelope.Result[0].Expressions[0].Value), nil
}

// collectDeny walks a decoded OPA result value and gathers the entries of
// every "deny" array it finds, at any nesting depth. Traversal is
// depth-first so extraction order is deterministic for a given document.
func collectDeny(v any) []Record {
	var records []Record

	switch node := v.(type) {
	case map[string]any:
		if deny, ok := node["deny"].([]any); ok {
			records = append(records, asRecords(deny)...)
		}
		for _, key := range sortedKeys(node) {
			records = append(records, collectDeny(node[key])...)
		}
	case []any:
		for _, item := range node {
			records = append(records, collectDeny(item)...)
		}
	}

	return records
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
