package saver

import (
	"crypto/rand"
	"testing"
)

func TestEncryptionKeyMarshalRoundTrip(t *testing.T) {
	_, _, ek, _, _ := setupTestSRS(t, 8)

	data, err := ek.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var got EncryptionKey
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}

	if !got.X0.Equal(&ek.X0) || !got.P1.Equal(&ek.P1) || !got.P2.Equal(&ek.P2) {
		t.Fatalf("EncryptionKey round trip lost the scalar-fixed points")
	}
	if len(got.X) != len(ek.X) || len(got.Y) != len(ek.Y) || len(got.Z) != len(ek.Z) {
		t.Fatalf("EncryptionKey round trip changed vector lengths")
	}
	for i := range ek.X {
		if !got.X[i].Equal(&ek.X[i]) || !got.Y[i].Equal(&ek.Y[i]) {
			t.Fatalf("EncryptionKey round trip diverged at index %d", i)
		}
	}
}

func TestDecryptionKeyMarshalRoundTrip(t *testing.T) {
	_, _, _, dk, _ := setupTestSRS(t, 8)

	data, err := dk.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var got DecryptionKey
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}

	if !got.V0.Equal(&dk.V0) {
		t.Fatalf("DecryptionKey round trip lost V0")
	}
	for i := range dk.V1 {
		if !got.V1[i].Equal(&dk.V1[i]) || !got.V2[i].Equal(&dk.V2[i]) {
			t.Fatalf("DecryptionKey round trip diverged at index %d", i)
		}
	}
}

func TestCiphertextMarshalRoundTrip(t *testing.T) {
	srs, _, ek, _, _ := setupTestSRS(t, 8)

	msg, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	ct, _, err := Encrypt(rand.Reader, msg, ek, srs, 8)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	data, err := ct.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var got Ciphertext
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}

	if !got.X0Prime.Equal(&ct.X0Prime) || !got.Commitment.Equal(&ct.Commitment) {
		t.Fatalf("Ciphertext round trip lost X0'/commitment")
	}
	if len(got.C) != len(ct.C) || len(got.PublicChunks) != len(ct.PublicChunks) {
		t.Fatalf("Ciphertext round trip changed vector lengths")
	}
	for i := range ct.C {
		if !got.C[i].Equal(&ct.C[i]) {
			t.Fatalf("Ciphertext round trip diverged at C[%d]", i)
		}
		if !got.PublicChunks[i].Equal(&ct.PublicChunks[i]) {
			t.Fatalf("Ciphertext round trip diverged at PublicChunks[%d]", i)
		}
	}
}

func TestChunkedCommitmentMarshalRoundTrip(t *testing.T) {
	gens, err := NewChunkedCommitmentGens(rand.Reader)
	if err != nil {
		t.Fatalf("NewChunkedCommitmentGens failed: %v", err)
	}
	msg, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	blinding, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	cc, err := CommitSingle(gens, msg, blinding)
	if err != nil {
		t.Fatalf("CommitSingle failed: %v", err)
	}

	data, err := cc.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var got ChunkedCommitment
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !got.Point.Equal(&cc.Point) {
		t.Fatalf("ChunkedCommitment round trip diverged")
	}
}
