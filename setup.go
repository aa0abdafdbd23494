package saver

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark/backend/groth16"
	groth16bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// SRS bundles the Groth16 proving/verifying key for the bit-size circuit
// together with the SRS-derived G1 vector and trapdoor points keygen needs.
// Mirrors the teacher's SetupOrLoadKeys load-or-generate shape, except
// Setup always generates fresh material: SAVER's canonical setup operation
// has no persisted on-disk form (spec.md §1's "no key-management/storage"
// non-goal).
type SRS struct {
	ProvingKey    groth16.ProvingKey
	VerifyingKey  groth16.VerifyingKey
	ConstraintSys constraint.ConstraintSystem
	N             int
	B             uint8
	Gi            []bls12381.G1Affine
	DeltaG        bls12381.G1Affine
	GammaG        bls12381.G1Affine
}

// Setup wraps the Groth16 trusted setup for the bit-size circuit with the
// requested chunk bit-size b and invokes Keygen, per spec.md §6.
func Setup(rng io.Reader, b uint8, gens EncryptionGens) (*SRS, *SecretKey, *EncryptionKey, *DecryptionKey, error) {
	n, err := chunksCount(b)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	circuit := NewBitSizeCircuit(n, int(b))
	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, nil, nil, nil, errSnark(err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, nil, nil, errSnark(err)
	}

	// deltaG, gammaG, and gi must be actual CRS points from this very circuit's
	// trusted setup (spec.md §4.3: "secrets of the SNARK trusted setup"), not
	// independently sampled noise — otherwise a valid SNARK proof and a valid
	// EK/ciphertext would verify two unrelated statements. pk.G1.Delta is δ·G1
	// directly. The circuit's public witness is the "one" wire followed by the
	// n chunk wires in declaration order, so vk.G1.K (the γ_ABC bases, what
	// spec.md §4.4 calls "γ_abc[n+1]-style bases") splits into K[0] for the
	// constant wire — reused here as the γ-tied trapdoor point gnark's Groth16
	// implementation exposes no bare γ·G1 for — and K[1:n+1] as the per-chunk
	// G_i vector Keygen requires.
	pkBLS, ok := pk.(*groth16bls12381.ProvingKey)
	if !ok {
		return nil, nil, nil, nil, errSnark(nil)
	}
	vkBLS, ok := vk.(*groth16bls12381.VerifyingKey)
	if !ok {
		return nil, nil, nil, nil, errSnark(nil)
	}
	if len(vkBLS.G1.K) < n+1 {
		return nil, nil, nil, nil, errLengthMismatch(VectorShorterThanExpected, len(vkBLS.G1.K), n+1)
	}

	deltaG := pkBLS.G1.Delta
	gammaG := vkBLS.G1.K[0]
	giPoints := make([]bls12381.G1Affine, n)
	copy(giPoints, vkBLS.G1.K[1:n+1])

	sk, ek, dk, err := Keygen(rng, b, gens, giPoints, deltaG, gammaG)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	srs := &SRS{
		ProvingKey:    pk,
		VerifyingKey:  vk,
		ConstraintSys: ccs,
		N:             n,
		B:             b,
		Gi:            giPoints,
		DeltaG:        deltaG,
		GammaG:        gammaG,
	}
	return srs, sk, ek, dk, nil
}
