package saver

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ChunkedCommitment is a Pedersen commitment to a message expressed over the
// chunked commitment key, per spec.md §4.5. It is algebraically identical to
// an ordinary single-scalar Pedersen commitment to the recomposed message
// (P7): chunked(msg, blinding) = msg·G' + blinding·H'.
type ChunkedCommitment struct {
	Point bls12381.G1Affine
}

// CommitmentKey builds the length-(n+1) basis vector
// (2^(b(n-1-i))·G')_{i=0..n-1} ‖ H' for the given gens and chunk count n.
func CommitmentKey(gens ChunkedCommitmentGens, b uint8, n int) []bls12381.G1Affine {
	var gJac bls12381.G1Jac
	gJac.FromAffine(&gens.G)

	bases := make([]bls12381.G1Affine, n+1)
	for i := 0; i < n; i++ {
		exp := uint(b) * uint(n-1-i)
		scalar := new(big.Int).Lsh(big.NewInt(1), exp)
		var jac bls12381.G1Jac
		jac.ScalarMultiplication(&gJac, scalar)
		bases[i].FromJacobian(&jac)
	}
	bases[n] = gens.H
	return bases
}

// Commit computes the chunked form Σ 2^(b(n-1-i))·chunk_i·G' + blinding·H'
// via a single MSM over CommitmentKey with chunks ‖ blinding as the scalar
// vector, equal by
// linearity to the single-scalar form msg·G' + blinding·H' (P7).
func Commit(gens ChunkedCommitmentGens, b uint8, chunks []fr.Element, blinding fr.Element) (*ChunkedCommitment, error) {
	n := len(chunks)
	bases := CommitmentKey(gens, b, n)

	scalars := make([]fr.Element, n+1)
	copy(scalars, chunks)
	scalars[n] = blinding

	point, err := msmG1(bases, scalars)
	if err != nil {
		return nil, err
	}
	return &ChunkedCommitment{Point: point}, nil
}

// CommitSingle computes the single-scalar form msg·G' + blinding·H',
// the form P7 checks against Commit's chunked output.
func CommitSingle(gens ChunkedCommitmentGens, msg fr.Element, blinding fr.Element) (*ChunkedCommitment, error) {
	point, err := msmG1([]bls12381.G1Affine{gens.G, gens.H}, []fr.Element{msg, blinding})
	if err != nil {
		return nil, err
	}
	return &ChunkedCommitment{Point: point}, nil
}
