package violation

import (
	"fmt"

	"github.com/opareport/opareport/pkg/jsonutil"
)

// Parse decodes raw JSON and normalizes it into violation records.
// A JSON syntax error is the one fatal input condition; the surrounding CLI
// surfaces it and exits non-zero without writing partial output.
func Parse(data []byte) ([]Record, error) {
	var v any
	if err := jsonutil.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("violation: parse input: %w", err)
	}
	return Normalize(v), nil
}

// Normalize converts decoded JSON of any supported shape into an ordered
// sequence of violation records. Dispatch order:
//
//  1. {"violations": [...]}  - entries verbatim
//  2. {"deny": [...]}        - entries verbatim
//  3. {"results": [...]}     - conftest output; each failure's "msg" object
//  4. [...]                  - a bare violation list
//
// Unrecognized shapes degrade to an empty sequence; Normalize never fails.
// Array entries that are not JSON objects are skipped, since a violation is
// by definition a mapping.
func Normalize(v any) []Record {
	switch data := v.(type) {
	case map[string]any:
		if raw, ok := data["violations"]; ok {
			return asRecords(raw)
		}
		if raw, ok := data["deny"]; ok {
			return asRecords(raw)
		}
		if raw, ok := data["results"]; ok {
			return fromConftest(raw)
		}
		return nil
	case []any:
		return asRecords(data)
	default:
		return nil
	}
}

// asRecords converts a decoded JSON array into records, keeping entries
// verbatim and skipping anything that is not an object.
func asRecords(raw any) []Record {
	entries, ok := raw.([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

// fromConftest extracts violations from conftest-style output:
// {"results": [{"failures": [{"msg": {...}}]}]}. A failure whose "msg" is
// not an object is silently skipped.
func fromConftest(raw any) []Record {
	results, ok := raw.([]any)
	if !ok {
		return nil
	}
	var records []Record
	for _, res := range results {
		resMap, ok := res.(map[string]any)
		if !ok {
			continue
		}
		failures, ok := resMap["failures"].([]any)
		if !ok {
			continue
		}
		for _, failure := range failures {
			failMap, ok := failure.(map[string]any)
			if !ok {
				continue
			}
			if msg, ok := failMap["msg"].(map[string]any); ok {
				records = append(records, Record(msg))
			}
		}
	}
	return records
}
