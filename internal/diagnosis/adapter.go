package diagnosis

import (
	"encoding/json"
	"fmt"
	"github.com/miyakoshi/septade/internal/errors"
	"sort"
	"strconv"
)

// Normalize converts the loosely-typed answer payloads the clients are known
// to send into a well-typed answer slice, so that the scorer only ever sees
// the strict shape.
//
// Accepted shapes:
//   - a JSON string encoding any of the shapes below,
//   - an array of objects with questionId/value fields,
//   - a bare array of values, paired positionally with the catalog order,
//   - an object keyed by numeric strings, sorted numerically and paired
//     positionally with the catalog order.
func Normalize(raw any, catalog []Question) ([]Answer, error) {
	switch v := raw.(type) {
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return nil, errors.Wrap(ErrValidation, "answers string is not valid JSON")
		}
		return Normalize(decoded, catalog)
	case []Answer:
		return v, nil
	case []any:
		return normalizeSlice(v, catalog)
	case map[string]any:
		return normalizeNumericMap(v, catalog)
	default:
		return nil, errors.Wrap(ErrValidation, fmt.Sprintf("unsupported answers shape %T", raw))
	}
}

func normalizeSlice(items []any, catalog []Question) ([]Answer, error) {
	if len(items) == 0 {
		return []Answer{}, nil
	}

	// An array of objects carries explicit question ids.
	if _, ok := items[0].(map[string]any); ok {
		answers := make([]Answer, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, errors.Wrap(ErrValidation, fmt.Sprintf("answer %d is not an object", i))
			}
			questionID, err := intField(obj, "questionId")
			if err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("answer %d", i))
			}
			value, err := intField(obj, "value")
			if err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("answer %d", i))
			}
			answers = append(answers, Answer{QuestionID: questionID, Value: value})
		}
		return answers, nil
	}

	// A bare array of values pairs with the catalog order.
	return pairWithCatalog(items, catalog)
}

func normalizeNumericMap(obj map[string]any, catalog []Question) ([]Answer, error) {
	keys := make([]int, 0, len(obj))
	for k := range obj {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrap(ErrValidation, fmt.Sprintf("answers object has non-numeric key %q", k))
		}
		keys = append(keys, n)
	}
	sort.Ints(keys)

	values := make([]any, 0, len(keys))
	for _, k := range keys {
		values = append(values, obj[strconv.Itoa(k)])
	}
	return pairWithCatalog(values, catalog)
}

func pairWithCatalog(values []any, catalog []Question) ([]Answer, error) {
	if len(values) != len(catalog) {
		return nil, errors.Wrap(ErrValidation,
			fmt.Sprintf("expected %d answers, got %d", len(catalog), len(values)))
	}
	answers := make([]Answer, 0, len(values))
	for i, v := range values {
		value, ok := asInt(v)
		if !ok {
			return nil, errors.Wrap(ErrValidation, fmt.Sprintf("answer %d is not a number", i))
		}
		answers = append(answers, Answer{QuestionID: catalog[i].ID, Value: value})
	}
	return answers, nil
}

func intField(obj map[string]any, field string) (int, error) {
	v, ok := obj[field]
	if !ok {
		return 0, errors.Wrap(ErrValidation, fmt.Sprintf("missing field %q", field))
	}
	n, ok := asInt(v)
	if !ok {
		return 0, errors.Wrap(ErrValidation, fmt.Sprintf("field %q is not a number", field))
	}
	return n, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
