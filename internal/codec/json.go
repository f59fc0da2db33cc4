package codec

import (
	"encoding/json"
	"fmt"
)

const contentTypeJSON = "application/json"

type jsonCodec struct{}

// NewJSON returns the JSON codec.
func NewJSON() Codec {
	return jsonCodec{}
}

func (jsonCodec) Name() string        { return NameJSON }
func (jsonCodec) ContentType() string { return contentTypeJSON }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) EncodeTuple(args ...any) ([]byte, error) {
	if args == nil {
		args = []any{}
	}
	return json.Marshal(args)
}

func (jsonCodec) DecodeTuple(data []byte, dst ...any) error {
	var elems []json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &elems); err != nil {
			return fmt.Errorf("decode json tuple: %w", err)
		}
	}
	if err := checkTupleLength(len(elems), len(dst)); err != nil {
		return err
	}

	for i, elem := range elems {
		if dst[i] == nil {
			continue
		}
		if err := json.Unmarshal(elem, dst[i]); err != nil {
			return fmt.Errorf("decode json tuple element %d: %w", i, err)
		}
	}
	return nil
}
