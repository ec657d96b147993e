// Package rawjson provides fault-tolerant traversal over untyped JSON trees.
//
// The upstream fantasy API mixes mappings and sequences freely, keys
// list-like containers with numeric strings plus a sibling "count", and wraps
// the same logical field at varying depths depending on the endpoint. Every
// parser in this codebase goes through this package instead of hand-rolling
// its own lookups.
package rawjson

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Segment is one step of a traversal path: a mapping key or a sequence index.
type Segment struct {
	key     string
	index   int
	indexed bool
}

// Key builds a mapping-key segment.
func Key(k string) Segment { return Segment{key: k} }

// Index builds a sequence-index segment.
func Index(i int) Segment { return Segment{index: i, indexed: true} }

// Get resolves segments one at a time starting from root. The boolean
// reports whether every segment resolved; traversal never panics on
// unexpected shapes.
func Get(root any, segments ...Segment) (any, bool) {
	current := root
	for _, seg := range segments {
		next, ok := resolve(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// GetOr resolves like Get but substitutes fallback when any segment fails.
func GetOr(root any, fallback any, segments ...Segment) any {
	if value, ok := Get(root, segments...); ok {
		return value
	}
	return fallback
}

func resolve(node any, seg Segment) (any, bool) {
	if node == nil {
		return nil, false
	}

	switch current := node.(type) {
	case map[string]any:
		return resolveMapping(current, seg)
	case []any:
		return resolveSequence(current, seg)
	default:
		return nil, false
	}
}

func resolveMapping(node map[string]any, seg Segment) (any, bool) {
	if seg.indexed {
		// List-like containers are keyed by numeric strings.
		if value, ok := node[strconv.Itoa(seg.index)]; ok {
			return value, true
		}
		return nil, false
	}

	if value, ok := node[seg.key]; ok {
		return value, true
	}

	// Missing key: the field may sit one or two mapping levels deeper
	// depending on which endpoint produced the payload. Per candidate value,
	// a direct hit wins before its own values are searched.
	for _, candidateKey := range sortedKeys(node) {
		inner, ok := node[candidateKey].(map[string]any)
		if !ok {
			continue
		}
		if value, ok := inner[seg.key]; ok {
			return value, true
		}
		for _, innerKey := range sortedKeys(inner) {
			deep, ok := inner[innerKey].(map[string]any)
			if !ok {
				continue
			}
			if value, ok := deep[seg.key]; ok {
				return value, true
			}
		}
	}

	return nil, false
}

func resolveSequence(node []any, seg Segment) (any, bool) {
	if seg.indexed {
		if seg.index >= 0 && seg.index < len(node) {
			return node[seg.index], true
		}
		return nil, false
	}

	// First pass: any element holding the key directly.
	for _, element := range node {
		if mapping, ok := element.(map[string]any); ok {
			if value, ok := mapping[seg.key]; ok {
				return value, true
			}
		}
	}

	// Second pass: one mapping level deeper.
	for _, element := range node {
		mapping, ok := element.(map[string]any)
		if !ok {
			continue
		}
		for _, candidateKey := range sortedKeys(mapping) {
			if deep, ok := mapping[candidateKey].(map[string]any); ok {
				if value, ok := deep[seg.key]; ok {
					return value, true
				}
			}
		}
	}

	return nil, false
}

// sortedKeys returns mapping keys in a stable order: numeric keys ascending
// first (matching the upstream's "0","1",...,"count" containers), then the
// rest lexicographically. Go maps have no insertion order, so a fixed order
// keeps the fallback search deterministic.
func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iNumeric := parseIndexKey(keys[i])
		nj, jNumeric := parseIndexKey(keys[j])
		switch {
		case iNumeric && jNumeric:
			return ni < nj
		case iNumeric:
			return true
		case jNumeric:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func parseIndexKey(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Items flattens the upstream's "count" plus numeric-string-key container
// into an ordered slice. Sequences pass through unchanged; anything else
// yields nil. When "count" is absent the numeric keys present are used in
// ascending order.
func Items(node any) []any {
	switch current := node.(type) {
	case []any:
		return current
	case map[string]any:
		if count, ok := Int(current["count"]); ok && count >= 0 {
			out := make([]any, 0, count)
			for i := 0; i < count; i++ {
				value, exists := current[strconv.Itoa(i)]
				if !exists {
					continue
				}
				out = append(out, value)
			}
			return out
		}

		out := make([]any, 0, len(current))
		for _, k := range sortedKeys(current) {
			if _, numeric := parseIndexKey(k); !numeric {
				continue
			}
			out = append(out, current[k])
		}
		return out
	default:
		return nil
	}
}

// Float coerces JSON numbers and numeric strings.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// FloatOr coerces like Float with a fallback.
func FloatOr(value any, fallback float64) float64 {
	if parsed, ok := Float(value); ok {
		return parsed
	}
	return fallback
}

// Int truncates Float coercion.
func Int(value any) (int, bool) {
	parsed, ok := Float(value)
	if !ok {
		return 0, false
	}
	return int(parsed), true
}

// IntOr coerces like Int with a fallback.
func IntOr(value any, fallback int) int {
	if parsed, ok := Int(value); ok {
		return parsed
	}
	return fallback
}

// StringOr returns the value when it is a string, else fallback.
func StringOr(value any, fallback string) string {
	if v, ok := value.(string); ok {
		return v
	}
	return fallback
}

// Text coerces scalars to their string form: strings pass through and
// numbers format without a trailing ".0" when integral. Anything else
// yields fallback. Useful for identifier fields the upstream serializes
// inconsistently as either strings or numbers.
func Text(value any, fallback string) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return Text(float64(v), fallback)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fallback
	}
}

// Number coerces a raw stat value: nil and blank strings become 0.0,
// numbers and numeric strings become float64, and any other string passes
// through untouched so callers can render it verbatim.
func Number(value any) any {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0.0
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return v
		}
		return parsed
	default:
		return value
	}
}
