package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/handiism/woodstock/internal/model"
)

// Type tags used as the single key of an encoded entity.
const (
	TagPerformer = "__Performer__"
	TagLineup    = "__Lineup__"
	TagFestival  = "__Festival__"
)

var (
	// ErrNotTagged is returned when the input is not an object with exactly one key.
	ErrNotTagged = errors.New("not a tagged JSON object")

	// ErrUnknownTag is returned when the tag key names no known entity.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrUnsupportedType is returned by Encode for values it cannot encode.
	ErrUnsupportedType = errors.New("unsupported type")
)

func errMissingTag(tag string) error {
	return fmt.Errorf("%w: expected %s", ErrNotTagged, tag)
}

// EncodePerformer returns {"__Performer__": {...}}.
func EncodePerformer(p model.Performer) ([]byte, error) {
	return json.Marshal(tagPerformer(p))
}

// EncodeLineup returns {"__Lineup__": {...}} with the performers as a nested array.
func EncodeLineup(l *model.Lineup) ([]byte, error) {
	return json.Marshal(TaggedLineup{Lineup: NewJSONLineup(l)})
}

// EncodeFestival returns {"__Festival__": {...}} with the lineups as a nested array.
func EncodeFestival(f *model.Festival) ([]byte, error) {
	return json.Marshal(TaggedFestival{Festival: NewJSONFestival(f)})
}

// Encode encodes any supported entity or a slice of them.
//
// Supported: model.Performer, *model.Performer, []model.Performer,
// *model.Lineup, []*model.Lineup, *model.Festival.
func Encode(v any) ([]byte, error) {
	switch x := v.(type) {
	case model.Performer:
		return EncodePerformer(x)
	case *model.Performer:
		return EncodePerformer(*x)
	case []model.Performer:
		tagged := make([]TaggedPerformer, 0, len(x))
		for _, p := range x {
			tagged = append(tagged, tagPerformer(p))
		}
		return json.Marshal(tagged)
	case *model.Lineup:
		return EncodeLineup(x)
	case []*model.Lineup:
		tagged := make([]TaggedLineup, 0, len(x))
		for _, l := range x {
			tagged = append(tagged, TaggedLineup{Lineup: NewJSONLineup(l)})
		}
		return json.Marshal(tagged)
	case *model.Festival:
		return EncodeFestival(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// EncodeIndent is Encode followed by json.Indent.
func EncodeIndent(v any, indent string) ([]byte, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Tag returns the type tag of an encoded entity.
func Tag(data []byte) (string, error) {
	tag, _, err := unwrap(data)
	return tag, err
}

// DecodePerformer decodes {"__Performer__": {...}}.
func DecodePerformer(data []byte) (model.Performer, error) {
	body, err := expect(data, TagPerformer)
	if err != nil {
		return model.Performer{}, err
	}
	var jp JSONPerformer
	if err := json.Unmarshal(body, &jp); err != nil {
		return model.Performer{}, fmt.Errorf("decode %s: %w", TagPerformer, err)
	}
	return jp.ToPerformer(), nil
}

// DecodeLineup decodes {"__Lineup__": {...}}.
func DecodeLineup(data []byte) (*model.Lineup, error) {
	body, err := expect(data, TagLineup)
	if err != nil {
		return nil, err
	}
	var jl JSONLineup
	if err := json.Unmarshal(body, &jl); err != nil {
		return nil, fmt.Errorf("decode %s: %w", TagLineup, err)
	}
	l, err := jl.ToLineup()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", TagLineup, err)
	}
	return l, nil
}

// DecodeFestival decodes {"__Festival__": {...}}. Festival validation errors
// are returned wrapped, so errors.As still finds the model error types.
func DecodeFestival(data []byte) (*model.Festival, error) {
	body, err := expect(data, TagFestival)
	if err != nil {
		return nil, err
	}
	var jf JSONFestival
	if err := json.Unmarshal(body, &jf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", TagFestival, err)
	}
	f, err := jf.ToFestival()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", TagFestival, err)
	}
	return f, nil
}

// Decode picks the decoder from the tag key. A JSON array decodes element by
// element into []any.
//
// The result is a model.Performer, *model.Lineup, *model.Festival or []any.
func Decode(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			v, err := Decode(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}

	tag, err := Tag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagPerformer:
		return DecodePerformer(data)
	case TagLineup:
		return DecodeLineup(data)
	case TagFestival:
		return DecodeFestival(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
}

func unwrap(data []byte) (string, json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotTagged, err)
	}
	if len(envelope) != 1 {
		return "", nil, fmt.Errorf("%w: got %d keys", ErrNotTagged, len(envelope))
	}
	for tag, body := range envelope {
		return tag, body, nil
	}
	return "", nil, ErrNotTagged
}

func expect(data []byte, want string) (json.RawMessage, error) {
	tag, body, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	if tag != want {
		return nil, fmt.Errorf("%w: got %s, expected %s", ErrUnknownTag, tag, want)
	}
	return body, nil
}

// nested is a JSON array of tagged entities. Older files store the array as
// a JSON string holding the encoded array; both forms decode.
type nested[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (n *nested[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*n = items
	return nil
}
