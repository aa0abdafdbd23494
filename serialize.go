package saver

import (
	"bytes"
	"encoding/binary"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Wire encoding is fixed-width compressed points and scalars, length-prefixed
// where the vector length isn't implied by n, following the same
// write-fields-in-order idiom as the teacher's SaveProvingKey/LoadProvingKey
// (there a direct io.WriterTo/ReaderFrom; here MarshalBinary/UnmarshalBinary
// since these types carry no gnark-native (de)serializer of their own).

func writeG1(buf *bytes.Buffer, p bls12381.G1Affine) {
	b := p.Bytes()
	buf.Write(b[:])
}

func writeG2(buf *bytes.Buffer, p bls12381.G2Affine) {
	b := p.Bytes()
	buf.Write(b[:])
}

func writeFr(buf *bytes.Buffer, e fr.Element) {
	b := e.Bytes()
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readG1(r *bytes.Reader) (bls12381.G1Affine, error) {
	var raw [bls12381.SizeOfG1AffineCompressed]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return bls12381.G1Affine{}, errSerialization(err)
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(raw[:]); err != nil {
		return bls12381.G1Affine{}, errSerialization(err)
	}
	return p, nil
}

func readG2(r *bytes.Reader) (bls12381.G2Affine, error) {
	var raw [bls12381.SizeOfG2AffineCompressed]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return bls12381.G2Affine{}, errSerialization(err)
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(raw[:]); err != nil {
		return bls12381.G2Affine{}, errSerialization(err)
	}
	return p, nil
}

func readFr(r *bytes.Reader) (fr.Element, error) {
	var raw [fr.Bytes]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return fr.Element{}, errSerialization(err)
	}
	var e fr.Element
	e.SetBytes(raw[:])
	return e, nil
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errSerialization(err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// MarshalBinary encodes ek as X0 ‖ len(X) ‖ X ‖ len(Y) ‖ Y ‖ len(Z) ‖ Z ‖ P1 ‖ P2.
func (ek *EncryptionKey) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeG1(&buf, ek.X0)
	writeUint32(&buf, uint32(len(ek.X)))
	for _, p := range ek.X {
		writeG1(&buf, p)
	}
	writeUint32(&buf, uint32(len(ek.Y)))
	for _, p := range ek.Y {
		writeG1(&buf, p)
	}
	writeUint32(&buf, uint32(len(ek.Z)))
	for _, p := range ek.Z {
		writeG2(&buf, p)
	}
	writeG1(&buf, ek.P1)
	writeG1(&buf, ek.P2)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes ek from the format MarshalBinary produces.
func (ek *EncryptionKey) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	x0, err := readG1(r)
	if err != nil {
		return err
	}
	nx, err := readUint32(r)
	if err != nil {
		return err
	}
	x := make([]bls12381.G1Affine, nx)
	for i := range x {
		if x[i], err = readG1(r); err != nil {
			return err
		}
	}
	ny, err := readUint32(r)
	if err != nil {
		return err
	}
	y := make([]bls12381.G1Affine, ny)
	for i := range y {
		if y[i], err = readG1(r); err != nil {
			return err
		}
	}
	nz, err := readUint32(r)
	if err != nil {
		return err
	}
	z := make([]bls12381.G2Affine, nz)
	for i := range z {
		if z[i], err = readG2(r); err != nil {
			return err
		}
	}
	p1, err := readG1(r)
	if err != nil {
		return err
	}
	p2, err := readG1(r)
	if err != nil {
		return err
	}

	ek.X0, ek.X, ek.Y, ek.Z, ek.P1, ek.P2 = x0, x, y, z, p1, p2
	return nil
}

// MarshalBinary encodes dk as V0 ‖ len(V1) ‖ V1 ‖ len(V2) ‖ V2.
func (dk *DecryptionKey) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeG2(&buf, dk.V0)
	writeUint32(&buf, uint32(len(dk.V1)))
	for _, p := range dk.V1 {
		writeG2(&buf, p)
	}
	writeUint32(&buf, uint32(len(dk.V2)))
	for _, p := range dk.V2 {
		writeG2(&buf, p)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes dk from the format MarshalBinary produces.
func (dk *DecryptionKey) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	v0, err := readG2(r)
	if err != nil {
		return err
	}
	n1, err := readUint32(r)
	if err != nil {
		return err
	}
	v1 := make([]bls12381.G2Affine, n1)
	for i := range v1 {
		if v1[i], err = readG2(r); err != nil {
			return err
		}
	}
	n2, err := readUint32(r)
	if err != nil {
		return err
	}
	v2 := make([]bls12381.G2Affine, n2)
	for i := range v2 {
		if v2[i], err = readG2(r); err != nil {
			return err
		}
	}

	dk.V0, dk.V1, dk.V2 = v0, v1, v2
	return nil
}

// MarshalBinary encodes ct as X0' ‖ len(C) ‖ C ‖ commitment ‖ len(chunks) ‖ chunks.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeG1(&buf, ct.X0Prime)
	writeUint32(&buf, uint32(len(ct.C)))
	for _, p := range ct.C {
		writeG1(&buf, p)
	}
	writeG1(&buf, ct.Commitment)
	writeUint32(&buf, uint32(len(ct.PublicChunks)))
	for _, s := range ct.PublicChunks {
		writeFr(&buf, s)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes ct from the format MarshalBinary produces.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	x0p, err := readG1(r)
	if err != nil {
		return err
	}
	nc, err := readUint32(r)
	if err != nil {
		return err
	}
	c := make([]bls12381.G1Affine, nc)
	for i := range c {
		if c[i], err = readG1(r); err != nil {
			return err
		}
	}
	commitment, err := readG1(r)
	if err != nil {
		return err
	}
	nChunks, err := readUint32(r)
	if err != nil {
		return err
	}
	chunks := make([]fr.Element, nChunks)
	for i := range chunks {
		if chunks[i], err = readFr(r); err != nil {
			return err
		}
	}

	ct.X0Prime, ct.C, ct.Commitment, ct.PublicChunks = x0p, c, commitment, chunks
	return nil
}

// MarshalBinary encodes a chunked Pedersen commitment as its single point.
func (cc *ChunkedCommitment) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeG1(&buf, cc.Point)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a chunked Pedersen commitment.
func (cc *ChunkedCommitment) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	p, err := readG1(r)
	if err != nil {
		return err
	}
	cc.Point = p
	return nil
}
