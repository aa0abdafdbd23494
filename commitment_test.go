package saver

import (
	"crypto/rand"
	"testing"
)

func TestChunkedCommitmentMatchesSingleScalarForm(t *testing.T) {
	gens, err := NewChunkedCommitmentGens(rand.Reader)
	if err != nil {
		t.Fatalf("NewChunkedCommitmentGens failed: %v", err)
	}

	for _, b := range []uint8{4, 8} {
		msg, err := randFr(rand.Reader)
		if err != nil {
			t.Fatalf("randFr failed: %v", err)
		}
		blinding, err := randFr(rand.Reader)
		if err != nil {
			t.Fatalf("randFr failed: %v", err)
		}

		chunks, err := decompose(msg, b)
		if err != nil {
			t.Fatalf("decompose failed: %v", err)
		}

		chunked, err := Commit(gens, b, chunks, blinding)
		if err != nil {
			t.Fatalf("Commit failed: %v", err)
		}
		single, err := CommitSingle(gens, msg, blinding)
		if err != nil {
			t.Fatalf("CommitSingle failed: %v", err)
		}

		if !chunked.Point.Equal(&single.Point) {
			t.Errorf("chunked and single-scalar commitments diverge for b=%d", b)
		}
	}
}

func TestCommitmentBindingToBlinding(t *testing.T) {
	gens, err := NewChunkedCommitmentGens(rand.Reader)
	if err != nil {
		t.Fatalf("NewChunkedCommitmentGens failed: %v", err)
	}

	msg, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	b1, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}
	b2, err := randFr(rand.Reader)
	if err != nil {
		t.Fatalf("randFr failed: %v", err)
	}

	c1, err := CommitSingle(gens, msg, b1)
	if err != nil {
		t.Fatalf("CommitSingle failed: %v", err)
	}
	c2, err := CommitSingle(gens, msg, b2)
	if err != nil {
		t.Fatalf("CommitSingle failed: %v", err)
	}

	if c1.Point.Equal(&c2.Point) {
		t.Errorf("commitments to the same message under different blinding should differ")
	}
}
