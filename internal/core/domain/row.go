package domain

import "time"

// Row is one raw backend row: an open mapping of column name to value.
// Column naming is inconsistent across the hosted tables (snake_case,
// camelCase, legacy aliases), so normalizers resolve each canonical field
// through an explicit alias list and ignore everything they don't recognize.
type Row map[string]any

// NormalizeRows applies a single-row normalizer element-wise, preserving
// order. A nil input yields an empty (non-nil) slice.
func NormalizeRows[T any](rows []Row, normalize func(Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, normalize(r))
	}
	return out
}

func (r Row) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField returns the first non-empty string value under any of keys.
func stringField(r Row, keys ...string) string {
	if v, ok := r.lookup(keys...); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// stringPtrField is stringField for optional columns: nil means the column
// was absent (or not a string) in the source row.
func stringPtrField(r Row, keys ...string) *string {
	if v, ok := r.lookup(keys...); ok {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

// boolField returns the flag value, or def when the column is absent or not
// a bool. Active-style flags default true; tax records default inactive.
func boolField(r Row, def bool, keys ...string) bool {
	if v, ok := r.lookup(keys...); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// floatField coerces any numeric column value to float64.
func floatField(r Row, keys ...string) float64 {
	v, ok := r.lookup(keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// intField coerces any numeric column value to int64.
func intField(r Row, keys ...string) int64 {
	v, ok := r.lookup(keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func timeField(r Row, keys ...string) time.Time {
	if v, ok := r.lookup(keys...); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

// idField resolves the row's string identifier. The row store surfaces
// Mongo's _id as a plain string before rows reach the normalizers.
func idField(r Row) string {
	return stringField(r, "id", "_id", "uuid")
}
