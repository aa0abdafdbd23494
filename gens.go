package saver

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// EncryptionGens holds the public pairing generators G ∈ G1, H ∈ G2 shared by
// key generation, encryption, and verification. It is drawn independently of
// the SNARK SRS and of ChunkedCommitmentGens.
type EncryptionGens struct {
	G bls12381.G1Affine
	H bls12381.G2Affine
}

// NewEncryptionGens samples fresh generators from rng by scaling the curve's
// canonical generators by random nonzero scalars, following the teacher's
// convention of never exposing a fixed basepoint as a public parameter
// without rerandomizing it first.
func NewEncryptionGens(rng io.Reader) (EncryptionGens, error) {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	a, err := randFr(rng)
	if err != nil {
		return EncryptionGens{}, err
	}
	b, err := randFr(rng)
	if err != nil {
		return EncryptionGens{}, err
	}

	var aBig, bBig big.Int
	a.BigInt(&aBig)
	b.BigInt(&bBig)

	var g1Jac bls12381.G1Jac
	g1Jac.FromAffine(&g1Gen)
	g1Jac.ScalarMultiplication(&g1Jac, &aBig)
	var g1Aff bls12381.G1Affine
	g1Aff.FromJacobian(&g1Jac)

	var g2Jac bls12381.G2Jac
	g2Jac.FromAffine(&g2Gen)
	g2Jac.ScalarMultiplication(&g2Jac, &bBig)
	var g2Aff bls12381.G2Affine
	g2Aff.FromJacobian(&g2Jac)

	return EncryptionGens{G: g1Aff, H: g2Aff}, nil
}

// ChunkedCommitmentGens holds the pair G', H' ∈ G1 used by the chunked
// Pedersen commitment. Kept distinct from EncryptionGens since the reference
// construction draws it from an independent random oracle.
type ChunkedCommitmentGens struct {
	G bls12381.G1Affine
	H bls12381.G1Affine
}

// NewChunkedCommitmentGens samples fresh bases for the chunked commitment.
func NewChunkedCommitmentGens(rng io.Reader) (ChunkedCommitmentGens, error) {
	_, _, g1Gen, _ := bls12381.Generators()

	a, err := randFr(rng)
	if err != nil {
		return ChunkedCommitmentGens{}, err
	}
	b, err := randFr(rng)
	if err != nil {
		return ChunkedCommitmentGens{}, err
	}

	var aBig, bBig big.Int
	a.BigInt(&aBig)
	b.BigInt(&bBig)

	var gJac, hJac bls12381.G1Jac
	gJac.FromAffine(&g1Gen)
	gJac.ScalarMultiplication(&gJac, &aBig)
	hJac.FromAffine(&g1Gen)
	hJac.ScalarMultiplication(&hJac, &bBig)

	var gAff, hAff bls12381.G1Affine
	gAff.FromJacobian(&gJac)
	hAff.FromJacobian(&hJac)

	return ChunkedCommitmentGens{G: gAff, H: hAff}, nil
}
