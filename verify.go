package saver

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
)

// negateG1 returns -p.
func negateG1(p bls12381.G1Affine) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(&p)
	jac.Neg(&jac)
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// VerifyCommitment checks that ct is well-formed against ek without needing
// SK, via the aggregate pairing identity derived in DESIGN.md Open
// Question 3:
//
//	e(X0', Z_0) · Π_i e(c_i, Z_{i+1})
//	  == e(commitment − Σ_i chunk_i·Y_i, H) · Π_i e(Y_i, Z_{i+1})^chunk_i
//
// expressed as a single multi-pairing-product-equals-one check, following
// the batched-pairing idiom the BBS+ verifier uses.
func (ct *Ciphertext) VerifyCommitment(ek *EncryptionKey, gens EncryptionGens) error {
	n, err := ek.SupportedChunksCount()
	if err != nil {
		return err
	}
	if len(ct.C) != n || len(ct.PublicChunks) != n {
		return &Error{Kind: InvalidCiphertextVerification}
	}

	// rP1 = commitment − Σ chunk_i·Y_i
	sumChunkY, err := msmG1(ek.Y, ct.PublicChunks)
	if err != nil {
		return err
	}
	var rP1Jac bls12381.G1Jac
	rP1Jac.FromAffine(&ct.Commitment)
	negSumChunkY := negateG1(sumChunkY)
	var negSumChunkYJac bls12381.G1Jac
	negSumChunkYJac.FromAffine(&negSumChunkY)
	rP1Jac.AddAssign(&negSumChunkYJac)
	var rP1 bls12381.G1Affine
	rP1.FromJacobian(&rP1Jac)

	g1Points := make([]bls12381.G1Affine, 0, 2+2*n)
	g2Points := make([]bls12381.G2Affine, 0, 2+2*n)

	// e(X0', Z_0)
	g1Points = append(g1Points, ct.X0Prime)
	g2Points = append(g2Points, ek.Z[0])

	// Π_i e(c_i, Z_{i+1})
	for i := 0; i < n; i++ {
		g1Points = append(g1Points, ct.C[i])
		g2Points = append(g2Points, ek.Z[i+1])
	}

	// e(-rP1, H)
	g1Points = append(g1Points, negateG1(rP1))
	g2Points = append(g2Points, gens.H)

	// Π_i e(-chunk_i·Y_i, Z_{i+1})
	for i := 0; i < n; i++ {
		var yJac bls12381.G1Jac
		yJac.FromAffine(&ek.Y[i])
		scaled := scalarMulG1(yJac, ct.PublicChunks[i])
		g1Points = append(g1Points, negateG1(scaled))
		g2Points = append(g2Points, ek.Z[i+1])
	}

	result, err := bls12381.Pair(g1Points, g2Points)
	if err != nil {
		return errSnark(err)
	}
	if !result.IsOne() {
		return &Error{Kind: InvalidCiphertextVerification}
	}
	return nil
}

// VerifySNARK checks the Groth16 proof that every chunk in ct.PublicChunks
// lies in [0, 2^b), using the public witness assembled from those chunks.
func VerifySNARK(vk groth16.VerifyingKey, proof groth16.Proof, ct *Ciphertext) error {
	assignment := &BitSizeCircuit{Chunks: make([]frontend.Variable, len(ct.PublicChunks))}
	for i := range ct.PublicChunks {
		var v big.Int
		ct.PublicChunks[i].BigInt(&v)
		assignment.Chunks[i] = v
	}

	publicWitness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return errSnark(err)
	}

	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return errSnark(err)
	}
	return nil
}
