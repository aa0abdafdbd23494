package saver

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// scalarMulG1 computes scalar·base and normalizes to affine in one shot.
// Small helper wrapping gnark-crypto's Jacobian scalar multiplication, used
// wherever a single scalar-times-point is needed rather than a full MSM.
func scalarMulG1(base bls12381.G1Jac, scalar fr.Element) bls12381.G1Affine {
	var s big.Int
	scalar.BigInt(&s)
	var out bls12381.G1Jac
	out.ScalarMultiplication(&base, &s)
	var aff bls12381.G1Affine
	aff.FromJacobian(&out)
	return aff
}

func scalarMulG2(base bls12381.G2Jac, scalar fr.Element) bls12381.G2Affine {
	var s big.Int
	scalar.BigInt(&s)
	var out bls12381.G2Jac
	out.ScalarMultiplication(&base, &s)
	var aff bls12381.G2Affine
	aff.FromJacobian(&out)
	return aff
}

// msmG1 computes ⟨bases, scalars⟩ = Σ scalars_i · bases_i, the
// base-times-vector pattern from DESIGN NOTES §9, delegating to
// gnark-crypto's windowed multi-scalar multiplication.
func msmG1(bases []bls12381.G1Affine, scalars []fr.Element) (bls12381.G1Affine, error) {
	var result bls12381.G1Affine
	if _, err := result.MultiExp(bases, scalars, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, err
	}
	return result, nil
}
