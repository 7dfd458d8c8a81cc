package docstore

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

type Snapshot struct {
	Key        Key
	Exists     bool
	Data       Fields
	UpdateTime time.Time
}

func (s *Snapshot) Has(field string) bool {
	if s == nil || s.Data == nil {
		return false
	}
	v, ok := s.Data[field]
	return ok && v != nil
}

// Int64 returns the integer stored under field, or 0 when the document or
// the field is missing.
func (s *Snapshot) Int64(field string) int64 {
	if s == nil {
		return 0
	}
	n, _ := toInt64(s.Data[field])
	return n
}

func (s *Snapshot) String(field string) string {
	if s == nil {
		return ""
	}
	v, _ := s.Data[field].(string)
	return v
}

func (s *Snapshot) Bool(field string, fallback bool) bool {
	if s == nil {
		return fallback
	}
	v, ok := s.Data[field].(bool)
	if !ok {
		return fallback
	}
	return v
}

func (s *Snapshot) Time(field string) time.Time {
	if s == nil {
		return time.Time{}
	}
	switch v := s.Data[field].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err == nil {
			return t
		}
	case int64:
		// legacy clients stored epoch millis
		return time.UnixMilli(v)
	}
	return time.Time{}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return i, true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// compareValues orders numbers, strings, bools and times. ok is false when
// the values cannot be compared.
func compareValues(a, b any) (int, bool) {
	if fa, aok := toFloat64(a); aok {
		fb, bok := toFloat64(b)
		if !bok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		if av == bv {
			return 0, true
		}
		if !av {
			return -1, true
		}
		return 1, true
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	}
	return 0, false
}

func matches(data Fields, filters []Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok {
			return false
		}
		c, comparable := compareValues(v, f.Value)
		if !comparable {
			if f.Op == "!=" {
				continue
			}
			return false
		}
		switch f.Op {
		case "==":
			if c != 0 {
				return false
			}
		case "!=":
			if c == 0 {
				return false
			}
		case "<":
			if c >= 0 {
				return false
			}
		case "<=":
			if c > 0 {
				return false
			}
		case ">":
			if c <= 0 {
				return false
			}
		case ">=":
			if c < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// runQuery evaluates q over every document of a collection. Ties on the
// order field are broken by document ID so results are stable.
func runQuery(docs []*Snapshot, q Query) []*Snapshot {
	result := make([]*Snapshot, 0, len(docs))
	for _, d := range docs {
		if !d.Exists || !matches(d.Data, q.Filters) {
			continue
		}
		if q.OrderBy != "" {
			if _, ok := d.Data[q.OrderBy]; !ok {
				continue
			}
		}
		result = append(result, d)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if q.OrderBy != "" {
			c, _ := compareValues(result[i].Data[q.OrderBy], result[j].Data[q.OrderBy])
			if c != 0 {
				if q.Desc {
					return c > 0
				}
				return c < 0
			}
		}
		return result[i].Key.ID < result[j].Key.ID
	})
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result
}

func copyFields(f Fields) Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
