package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const contentTypeCBOR = "application/cbor"

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR returns the CBOR codec. Maps are encoded in canonical key order so
// identical values always produce identical bytes.
func NewCBOR() Codec {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor encoding options: %v", err))
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbor decoding options: %v", err))
	}
	return cborCodec{enc: enc, dec: dec}
}

func (cborCodec) Name() string        { return NameCBOR }
func (cborCodec) ContentType() string { return contentTypeCBOR }

func (c cborCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c cborCodec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

func (c cborCodec) EncodeTuple(args ...any) ([]byte, error) {
	if args == nil {
		args = []any{}
	}
	return c.enc.Marshal(args)
}

func (c cborCodec) DecodeTuple(data []byte, dst ...any) error {
	var elems []cbor.RawMessage
	if len(data) > 0 {
		if err := c.dec.Unmarshal(data, &elems); err != nil {
			return fmt.Errorf("decode cbor tuple: %w", err)
		}
	}
	if err := checkTupleLength(len(elems), len(dst)); err != nil {
		return err
	}

	for i, elem := range elems {
		if dst[i] == nil {
			continue
		}
		if err := c.dec.Unmarshal(elem, dst[i]); err != nil {
			return fmt.Errorf("decode cbor tuple element %d: %w", i, err)
		}
	}
	return nil
}
