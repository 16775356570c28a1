package threshold

import (
	"bytes"
	"fmt"

	"github.com/protolambda/ztyp/codec"

	"github.com/dealerfree/stkzg/curve"
)

// maxCommittee bounds accepted length prefixes when decoding, so a
// corrupt length cannot drive allocation.
const maxCommittee = 1 << 20

func writeG1(w *codec.EncodingWriter, p *curve.G1) error { return w.Write(p.Bytes()) }
func writeG2(w *codec.EncodingWriter, p *curve.G2) error { return w.Write(p.Bytes()) }
func writeGT(w *codec.EncodingWriter, e *curve.GT) error { return w.Write(e.Bytes()) }

func readG1(dr *codec.DecodingReader, where string) (*curve.G1, error) {
	buf := make([]byte, curve.G1Bytes)
	if _, err := dr.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	p, err := curve.G1FromBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	return p, nil
}

func readG2(dr *codec.DecodingReader, where string) (*curve.G2, error) {
	buf := make([]byte, curve.G2Bytes)
	if _, err := dr.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	p, err := curve.G2FromBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	return p, nil
}

func readGT(dr *codec.DecodingReader, where string) (*curve.GT, error) {
	buf := make([]byte, curve.GTBytes)
	if _, err := dr.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	e, err := curve.GTFromBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, where, err)
	}
	return e, nil
}

func readLength(dr *codec.DecodingReader, where string) (uint64, error) {
	n, err := dr.ReadUint64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s length: %v", ErrDecoding, where, err)
	}
	if n > maxCommittee {
		return 0, fmt.Errorf("%w: %s length %d out of range", ErrDecoding, where, n)
	}
	return n, nil
}

// Serialize writes the secret scalar as 32 little-endian bytes.
func (s *SecretKey) Serialize(w *codec.EncodingWriter) error {
	return w.Write(s.sk.Bytes())
}

// Deserialize reads the layout produced by Serialize.
func (s *SecretKey) Deserialize(dr *codec.DecodingReader) error {
	buf := make([]byte, curve.ScalarBytes)
	if _, err := dr.Read(buf); err != nil {
		return fmt.Errorf("%w: secret key: %v", ErrDecoding, err)
	}
	sk, err := curve.ScalarFromBytes(buf)
	if err != nil {
		return fmt.Errorf("%w: secret key: %v", ErrDecoding, err)
	}
	s.sk = sk
	return nil
}

// Serialize writes pk field by field in declaration order, with the
// quotient-commitment vector length-prefixed by an 8-byte
// little-endian count.
func (pk *PublicKey) Serialize(w *codec.EncodingWriter) error {
	if err := w.WriteUint64(pk.ID); err != nil {
		return err
	}
	for _, p := range []*curve.G1{pk.BlsPK, pk.SkLi, pk.SkLiMinus0, pk.SkLiByTau} {
		if err := writeG1(w, p); err != nil {
			return err
		}
	}
	if err := w.WriteUint64(uint64(len(pk.SkLiByZ))); err != nil {
		return err
	}
	for _, p := range pk.SkLiByZ {
		if err := writeG1(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads the layout produced by Serialize.
func (pk *PublicKey) Deserialize(dr *codec.DecodingReader) error {
	id, err := dr.ReadUint64()
	if err != nil {
		return fmt.Errorf("%w: public key id: %v", ErrDecoding, err)
	}
	pk.ID = id
	if pk.BlsPK, err = readG1(dr, "bls_pk"); err != nil {
		return err
	}
	if pk.SkLi, err = readG1(dr, "sk_li"); err != nil {
		return err
	}
	if pk.SkLiMinus0, err = readG1(dr, "sk_li_minus0"); err != nil {
		return err
	}
	if pk.SkLiByTau, err = readG1(dr, "sk_li_by_tau"); err != nil {
		return err
	}
	count, err := readLength(dr, "sk_li_by_z")
	if err != nil {
		return err
	}
	pk.SkLiByZ = make([]*curve.G1, count)
	for j := range pk.SkLiByZ {
		if pk.SkLiByZ[j], err = readG1(dr, fmt.Sprintf("sk_li_by_z[%d]", j)); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes the aggregate field by field in declaration order.
func (ak *AggregateKey) Serialize(w *codec.EncodingWriter) error {
	if err := w.WriteUint64(uint64(len(ak.PK))); err != nil {
		return err
	}
	for _, pk := range ak.PK {
		if err := pk.Serialize(w); err != nil {
			return err
		}
	}
	if err := writeG1(w, ak.Ask); err != nil {
		return err
	}
	if err := w.WriteUint64(uint64(len(ak.AggSkLiByZ))); err != nil {
		return err
	}
	for _, p := range ak.AggSkLiByZ {
		if err := writeG1(w, p); err != nil {
			return err
		}
	}
	if err := writeG2(w, ak.HMinus1); err != nil {
		return err
	}
	if err := writeG2(w, ak.ZG2); err != nil {
		return err
	}
	return writeGT(w, ak.EGH)
}

// Deserialize reads the layout produced by Serialize.
func (ak *AggregateKey) Deserialize(dr *codec.DecodingReader) error {
	count, err := readLength(dr, "pk")
	if err != nil {
		return err
	}
	ak.PK = make([]*PublicKey, count)
	for i := range ak.PK {
		pk := new(PublicKey)
		if err := pk.Deserialize(dr); err != nil {
			return err
		}
		ak.PK[i] = pk
	}
	if ak.Ask, err = readG1(dr, "ask"); err != nil {
		return err
	}
	count, err = readLength(dr, "agg_sk_li_by_z")
	if err != nil {
		return err
	}
	ak.AggSkLiByZ = make([]*curve.G1, count)
	for j := range ak.AggSkLiByZ {
		if ak.AggSkLiByZ[j], err = readG1(dr, fmt.Sprintf("agg_sk_li_by_z[%d]", j)); err != nil {
			return err
		}
	}
	if ak.HMinus1, err = readG2(dr, "h_minus1"); err != nil {
		return err
	}
	if ak.ZG2, err = readG2(dr, "z_g2"); err != nil {
		return err
	}
	ak.EGH, err = readGT(dr, "e_gh")
	return err
}

// Serialize writes ct field by field in declaration order. SA1 and SA2
// have fixed lengths and carry no prefix.
func (ct *Ciphertext) Serialize(w *codec.EncodingWriter) error {
	if err := writeG2(w, ct.GammaG2); err != nil {
		return err
	}
	for _, p := range ct.SA1 {
		if err := writeG1(w, p); err != nil {
			return err
		}
	}
	for _, p := range ct.SA2 {
		if err := writeG2(w, p); err != nil {
			return err
		}
	}
	if err := writeGT(w, ct.EncKey); err != nil {
		return err
	}
	return w.WriteUint64(ct.T)
}

// Deserialize reads the layout produced by Serialize.
func (ct *Ciphertext) Deserialize(dr *codec.DecodingReader) error {
	var err error
	if ct.GammaG2, err = readG2(dr, "gamma_g2"); err != nil {
		return err
	}
	for i := range ct.SA1 {
		if ct.SA1[i], err = readG1(dr, fmt.Sprintf("sa1[%d]", i)); err != nil {
			return err
		}
	}
	for i := range ct.SA2 {
		if ct.SA2[i], err = readG2(dr, fmt.Sprintf("sa2[%d]", i)); err != nil {
			return err
		}
	}
	if ct.EncKey, err = readGT(dr, "enc_key"); err != nil {
		return err
	}
	if ct.T, err = dr.ReadUint64(); err != nil {
		return fmt.Errorf("%w: threshold: %v", ErrDecoding, err)
	}
	return nil
}

func encode(s interface {
	Serialize(w *codec.EncodingWriter) error
}) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Serialize(codec.NewEncodingWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode serializes the secret key to a fresh byte slice.
func (s *SecretKey) Encode() ([]byte, error) { return encode(s) }

// Encode serializes the public key to a fresh byte slice.
func (pk *PublicKey) Encode() ([]byte, error) { return encode(pk) }

// Encode serializes the aggregate key to a fresh byte slice.
func (ak *AggregateKey) Encode() ([]byte, error) { return encode(ak) }

// Encode serializes the ciphertext to a fresh byte slice.
func (ct *Ciphertext) Encode() ([]byte, error) { return encode(ct) }

func decodingReader(b []byte) *codec.DecodingReader {
	return codec.NewDecodingReader(bytes.NewReader(b), uint64(len(b)))
}

// DecodeSecretKey reconstructs a secret key from Encode output.
func DecodeSecretKey(b []byte) (*SecretKey, error) {
	s := new(SecretKey)
	if err := s.Deserialize(decodingReader(b)); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodePublicKey reconstructs a public key from Encode output.
func DecodePublicKey(b []byte) (*PublicKey, error) {
	pk := new(PublicKey)
	if err := pk.Deserialize(decodingReader(b)); err != nil {
		return nil, err
	}
	return pk, nil
}

// DecodeAggregateKey reconstructs an aggregate key from Encode output.
func DecodeAggregateKey(b []byte) (*AggregateKey, error) {
	ak := new(AggregateKey)
	if err := ak.Deserialize(decodingReader(b)); err != nil {
		return nil, err
	}
	return ak, nil
}

// DecodeCiphertext reconstructs a ciphertext from Encode output.
func DecodeCiphertext(b []byte) (*Ciphertext, error) {
	ct := new(Ciphertext)
	if err := ct.Deserialize(decodingReader(b)); err != nil {
		return nil, err
	}
	return ct, nil
}

// DecodePartialDecryption reconstructs a partial decryption from its
// 192-byte uncompressed encoding, rejecting points outside the G2
// subgroup.
func DecodePartialDecryption(b []byte) (*curve.G2, error) {
	p, err := curve.G2FromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: partial decryption: %v", ErrDecoding, err)
	}
	return p, nil
}
