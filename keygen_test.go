package saver

import (
	"crypto/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func testKeygenTrapdoor(t *testing.T, n int) ([]bls12381.G1Affine, bls12381.G1Affine, bls12381.G1Affine) {
	t.Helper()
	_, _, g1Gen, _ := bls12381.Generators()
	var g1Jac bls12381.G1Jac
	g1Jac.FromAffine(&g1Gen)

	gi := make([]bls12381.G1Affine, n)
	for i := range gi {
		s, err := randFr(rand.Reader)
		if err != nil {
			t.Fatalf("randFr failed: %v", err)
		}
		gi[i] = scalarMulG1(g1Jac, s)
	}

	delta, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	gamma, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	return gi, scalarMulG1(g1Jac, delta), scalarMulG1(g1Jac, gamma)
}

func TestKeygenShapeInvariants(t *testing.T) {
	for _, b := range []uint8{4, 8} {
		n, err := chunksCount(b)
		if err != nil {
			t.Fatalf("chunksCount failed: %v", err)
		}

		gens, err := NewEncryptionGens(rand.Reader)
		if err != nil {
			t.Fatalf("NewEncryptionGens failed: %v", err)
		}
		gi, deltaG, gammaG := testKeygenTrapdoor(t, n)

		_, ek, dk, err := Keygen(rand.Reader, b, gens, gi, deltaG, gammaG)
		if err != nil {
			t.Fatalf("Keygen(b=%d) failed: %v", b, err)
		}

		if len(ek.X) != n || len(ek.Y) != n || len(ek.Z) != n+1 {
			t.Errorf("EK shape mismatch for b=%d: |X|=%d |Y|=%d |Z|=%d, want n=%d", b, len(ek.X), len(ek.Y), len(ek.Z), n)
		}
		if len(dk.V1) != n || len(dk.V2) != n {
			t.Errorf("DK shape mismatch for b=%d: |V1|=%d |V2|=%d, want n=%d", b, len(dk.V1), len(dk.V2), n)
		}
		if err := ek.Validate(); err != nil {
			t.Errorf("ek.Validate() failed: %v", err)
		}
		if err := dk.Validate(); err != nil {
			t.Errorf("dk.Validate() failed: %v", err)
		}
	}
}

func TestKeygenShortSRSVectorRejected(t *testing.T) {
	b := uint8(8)
	n, err := chunksCount(b)
	if err != nil {
		t.Fatalf("chunksCount failed: %v", err)
	}

	gens, err := NewEncryptionGens(rand.Reader)
	if err != nil {
		t.Fatalf("NewEncryptionGens failed: %v", err)
	}
	gi, deltaG, gammaG := testKeygenTrapdoor(t, n-1)

	_, _, _, err = Keygen(rand.Reader, b, gens, gi, deltaG, gammaG)
	if err == nil {
		t.Fatalf("Keygen should reject an SRS vector shorter than n")
	}
	saverErr, ok := err.(*Error)
	if !ok || saverErr.Kind != VectorShorterThanExpected {
		t.Errorf("expected VectorShorterThanExpected, got %v", err)
	}
}

func TestMalformedEncryptionKeyRejected(t *testing.T) {
	ek := &EncryptionKey{
		X: make([]bls12381.G1Affine, 3),
		Y: make([]bls12381.G1Affine, 2),
		Z: make([]bls12381.G2Affine, 4),
	}
	if err := ek.Validate(); err == nil {
		t.Fatalf("Validate should reject mismatched X/Y lengths")
	}
}

func TestMalformedDecryptionKeyRejected(t *testing.T) {
	dk := &DecryptionKey{
		V1: make([]bls12381.G2Affine, 3),
		V2: make([]bls12381.G2Affine, 2),
	}
	if err := dk.Validate(); err == nil {
		t.Fatalf("Validate should reject mismatched V1/V2 lengths")
	}
}
