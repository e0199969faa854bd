package stock

import (
	"fmt"
	"sort"
	"strings"
)

// SortField is one element of an ordered sort specification.
type SortField struct {
	Name string
	Desc bool
}

// ParseSortFields parses a comma-separated sort expression such as
// "stock_name,-quantity". A leading '-' marks the field descending. Empty
// elements are skipped.
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field := SortField{Name: part}
		if strings.HasPrefix(part, "-") {
			field.Name = part[1:]
			field.Desc = true
		}
		if field.Name == "" {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

// SortRecords stably sorts records in place by the given fields, comparing
// in listed order with each field's own direction. Records missing a field
// sort after records that have it, regardless of the field's direction.
func SortRecords(items []Record, fields []SortField) {
	if len(fields) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, f := range fields {
			av, aok := items[i][f.Name]
			bv, bok := items[j][f.Name]

			// Presence orders before value: a missing field always
			// sorts after a present one, so direction must not flip it.
			switch {
			case !aok && !bok:
				continue
			case !aok:
				return false
			case !bok:
				return true
			}

			cmp := compareValues(av, bv)
			if cmp == 0 {
				continue
			}
			if f.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareValues compares two attribute values. Numbers compare numerically,
// strings lexically; mixed or unknown types fall back to their string form.
func compareValues(av, bv interface{}) int {
	if an, ok := toFloat(av); ok {
		if bn, ok := toFloat(bv); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	if as, ok := av.(string); ok {
		if bs, ok := bv.(string); ok {
			return strings.Compare(as, bs)
		}
	}

	return strings.Compare(fmt.Sprint(av), fmt.Sprint(bv))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
