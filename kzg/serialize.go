package kzg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/protolambda/ztyp/codec"

	"github.com/dealerfree/stkzg/curve"
)

// ErrDecoding is returned when serialized parameters cannot be
// reconstructed.
var ErrDecoding = errors.New("kzg: malformed encoding")

// maxPowers bounds the accepted length prefix when decoding, so a
// corrupt length cannot drive allocation.
const maxPowers = 1 << 24

// Serialize writes p as two length-prefixed point vectors: an 8-byte
// little-endian count followed by uncompressed affine points.
func (p *UniversalParams) Serialize(w *codec.EncodingWriter) error {
	if err := w.WriteUint64(uint64(len(p.PowersOfG))); err != nil {
		return err
	}
	for _, pt := range p.PowersOfG {
		if err := w.Write(pt.Bytes()); err != nil {
			return err
		}
	}
	if err := w.WriteUint64(uint64(len(p.PowersOfH))); err != nil {
		return err
	}
	for _, pt := range p.PowersOfH {
		if err := w.Write(pt.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads the layout produced by Serialize.
func (p *UniversalParams) Deserialize(dr *codec.DecodingReader) error {
	ng, err := dr.ReadUint64()
	if err != nil {
		return fmt.Errorf("%w: powers_of_g length: %v", ErrDecoding, err)
	}
	if ng > maxPowers {
		return fmt.Errorf("%w: powers_of_g length %d out of range", ErrDecoding, ng)
	}
	p.PowersOfG = make([]*curve.G1, ng)
	buf1 := make([]byte, curve.G1Bytes)
	for k := range p.PowersOfG {
		if _, err := dr.Read(buf1); err != nil {
			return fmt.Errorf("%w: powers_of_g[%d]: %v", ErrDecoding, k, err)
		}
		pt, err := curve.G1FromBytes(buf1)
		if err != nil {
			return fmt.Errorf("%w: powers_of_g[%d]: %v", ErrDecoding, k, err)
		}
		p.PowersOfG[k] = pt
	}
	nh, err := dr.ReadUint64()
	if err != nil {
		return fmt.Errorf("%w: powers_of_h length: %v", ErrDecoding, err)
	}
	if nh > maxPowers {
		return fmt.Errorf("%w: powers_of_h length %d out of range", ErrDecoding, nh)
	}
	p.PowersOfH = make([]*curve.G2, nh)
	buf2 := make([]byte, curve.G2Bytes)
	for k := range p.PowersOfH {
		if _, err := dr.Read(buf2); err != nil {
			return fmt.Errorf("%w: powers_of_h[%d]: %v", ErrDecoding, k, err)
		}
		pt, err := curve.G2FromBytes(buf2)
		if err != nil {
			return fmt.Errorf("%w: powers_of_h[%d]: %v", ErrDecoding, k, err)
		}
		p.PowersOfH[k] = pt
	}
	return nil
}

// Encode serializes p to a fresh byte slice.
func (p *UniversalParams) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Serialize(codec.NewEncodingWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeUniversalParams reconstructs parameters from Encode output.
func DecodeUniversalParams(b []byte) (*UniversalParams, error) {
	p := new(UniversalParams)
	if err := p.Deserialize(codec.NewDecodingReader(bytes.NewReader(b), uint64(len(b)))); err != nil {
		return nil, err
	}
	return p, nil
}
