package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SpecKind discriminates the shapes that specification data was authored in.
type SpecKind int

const (
	SpecEmpty SpecKind = iota
	SpecScalar
	SpecLocalized
	SpecList
	SpecGroup
)

// SpecValue is a tagged variant over the shapes observed in product
// specification fields: a plain scalar, an en/vi pair, an ordered list of
// values, or a named group of nested values (e.g. per-piece dimensions of a
// table set). Parsing never fails; unrecognized input collapses to a scalar.
type SpecValue struct {
	Kind      SpecKind
	Scalar    string
	Localized LocalizedText
	List      []SpecValue
	Group     []SpecEntry
}

// SpecEntry is one named member of a group, in render order.
type SpecEntry struct {
	Key   string
	Value SpecValue
}

// ParseSpec builds a SpecValue from an arbitrarily shaped decoded value.
// Document order is kept for bson.D input; plain maps are ordered by key so
// the result is deterministic.
func ParseSpec(v any) SpecValue {
	switch val := v.(type) {
	case nil:
		return SpecValue{}
	case string:
		return SpecValue{Kind: SpecScalar, Scalar: val}
	case SpecValue:
		return val
	case LocalizedText:
		return SpecValue{Kind: SpecLocalized, Localized: val}
	case map[string]any:
		if lt, ok := localizedFromMap(val); ok {
			return SpecValue{Kind: SpecLocalized, Localized: lt}
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]SpecEntry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, SpecEntry{Key: k, Value: ParseSpec(val[k])})
		}
		return SpecValue{Kind: SpecGroup, Group: entries}
	case bson.D:
		if lt, ok := localizedFromDoc(val); ok {
			return SpecValue{Kind: SpecLocalized, Localized: lt}
		}
		entries := make([]SpecEntry, 0, len(val))
		for _, e := range val {
			entries = append(entries, SpecEntry{Key: e.Key, Value: ParseSpec(e.Value)})
		}
		return SpecValue{Kind: SpecGroup, Group: entries}
	case []any:
		return listSpec(val)
	case bson.A:
		return listSpec(val)
	default:
		return SpecValue{Kind: SpecScalar, Scalar: formatScalar(val)}
	}
}

func listSpec(items []any) SpecValue {
	list := make([]SpecValue, 0, len(items))
	for _, item := range items {
		list = append(list, ParseSpec(item))
	}
	return SpecValue{Kind: SpecList, List: list}
}

func localizedFromMap(m map[string]any) (LocalizedText, bool) {
	if len(m) != 2 {
		return LocalizedText{}, false
	}
	en, enOK := m["en"].(string)
	vi, viOK := m["vi"].(string)
	if !enOK || !viOK {
		return LocalizedText{}, false
	}
	return LocalizedText{En: en, Vi: vi}, true
}

func localizedFromDoc(d bson.D) (LocalizedText, bool) {
	if len(d) != 2 {
		return LocalizedText{}, false
	}
	var lt LocalizedText
	for _, e := range d {
		s, ok := e.Value.(string)
		if !ok {
			return LocalizedText{}, false
		}
		switch e.Key {
		case "en":
			lt.En = s
		case "vi":
			lt.Vi = s
		default:
			return LocalizedText{}, false
		}
	}
	return lt, true
}

func formatScalar(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case bool:
		return strconv.FormatBool(n)
	case json.Number:
		return n.String()
	default:
		return fmt.Sprint(v)
	}
}

// Render flattens the value into display text for one language. Lists join
// with a comma; groups render as "Label: value" pairs using the spec key
// label table.
func (s SpecValue) Render(lang string) string {
	switch s.Kind {
	case SpecScalar:
		return s.Scalar
	case SpecLocalized:
		return s.Localized.In(lang)
	case SpecList:
		parts := make([]string, 0, len(s.List))
		for _, item := range s.List {
			parts = append(parts, item.Render(lang))
		}
		return strings.Join(parts, ", ")
	case SpecGroup:
		parts := make([]string, 0, len(s.Group))
		for _, e := range s.Group {
			parts = append(parts, SpecKeyLabel(e.Key, lang)+": "+e.Value.Render(lang))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

// IsZero reports whether the value is empty, letting bson omitempty skip it.
func (s SpecValue) IsZero() bool {
	return s.Kind == SpecEmpty
}

func (s SpecValue) toAny() any {
	switch s.Kind {
	case SpecScalar:
		return s.Scalar
	case SpecLocalized:
		return map[string]any{"en": s.Localized.En, "vi": s.Localized.Vi}
	case SpecList:
		out := make([]any, 0, len(s.List))
		for _, item := range s.List {
			out = append(out, item.toAny())
		}
		return out
	case SpecGroup:
		out := make(map[string]any, len(s.Group))
		for _, e := range s.Group {
			out[e.Key] = e.Value.toAny()
		}
		return out
	default:
		return nil
	}
}

func (s SpecValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toAny())
}

func (s *SpecValue) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = ParseSpec(v)
	return nil
}

func (s SpecValue) MarshalBSONValue() (byte, []byte, error) {
	if s.Kind == SpecEmpty {
		return byte(bson.TypeNull), nil, nil
	}
	t, data, err := bson.MarshalValue(s.toAny())
	return byte(t), data, err
}

func (s *SpecValue) UnmarshalBSONValue(t byte, data []byte) error {
	if bson.Type(t) == bson.TypeNull {
		*s = SpecValue{}
		return nil
	}
	raw := bson.RawValue{Type: bson.Type(t), Value: data}
	var v any
	if err := raw.Unmarshal(&v); err != nil {
		return err
	}
	*s = ParseSpec(v)
	return nil
}
