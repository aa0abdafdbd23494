package saver

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey is SK = ρ ∈ F, used to decrypt.
type SecretKey struct {
	Rho fr.Element
}

// EncryptionKey is EK, used to encrypt, rerandomize, and verify the
// encryption. Called "PK" in the reference paper.
type EncryptionKey struct {
	X0 bls12381.G1Affine   // δ·G
	X  []bls12381.G1Affine // (δ·s_i·G)_i, length n
	Y  []bls12381.G1Affine // (t_{i+1}·G_i)_i, length n
	Z  []bls12381.G2Affine // (t_i·H)_i, length n+1
	P1 bls12381.G1Affine
	P2 bls12381.G1Affine
}

// SupportedChunksCount returns n and validates |X|=|Y|=n, |Z|=n+1.
func (ek *EncryptionKey) SupportedChunksCount() (int, error) {
	n := len(ek.X)
	if len(ek.Y) != n {
		return 0, errLengthMismatch(MalformedEncryptionKey, len(ek.Y), n)
	}
	if len(ek.Z) != n+1 {
		return 0, errLengthMismatch(MalformedEncryptionKey, len(ek.Z), n+1)
	}
	return n, nil
}

// Validate checks EK's length invariants (I1).
func (ek *EncryptionKey) Validate() error {
	_, err := ek.SupportedChunksCount()
	return err
}

// DecryptionKey is DK, used to decrypt and verify decryption. Called "VK" in
// the reference paper.
type DecryptionKey struct {
	V0 bls12381.G2Affine   // ρ·H
	V1 []bls12381.G2Affine // (s_i·v_i·H)_i, length n
	V2 []bls12381.G2Affine // (ρ·v_i·H)_i, length n
}

// SupportedChunksCount returns n and validates |V1|=|V2|=n.
func (dk *DecryptionKey) SupportedChunksCount() (int, error) {
	n := len(dk.V1)
	if len(dk.V2) != n {
		return 0, errLengthMismatch(MalformedDecryptionKey, len(dk.V2), n)
	}
	return n, nil
}

// Validate checks DK's length invariants (I1).
func (dk *DecryptionKey) Validate() error {
	_, err := dk.SupportedChunksCount()
	return err
}

// Keygen samples rho, s, t, v and derives (SK, EK, DK) per spec.md §4.3,
// using only deltaG = δ·G and gammaG = γ·G (secrets of the SNARK trusted
// setup) and the SRS vector gi, never requiring δ or γ in the clear.
func Keygen(rng io.Reader, b uint8, gens EncryptionGens, gi []bls12381.G1Affine, deltaG, gammaG bls12381.G1Affine) (*SecretKey, *EncryptionKey, *DecryptionKey, error) {
	n, err := chunksCount(b)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(gi) < n {
		return nil, nil, nil, errLengthMismatch(VectorShorterThanExpected, len(gi), n)
	}

	rho, err := randFr(rng)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := randFrVector(rng, n)
	if err != nil {
		return nil, nil, nil, err
	}
	t, err := randFrVector(rng, n+1)
	if err != nil {
		return nil, nil, nil, err
	}
	v, err := randFrVector(rng, n)
	if err != nil {
		return nil, nil, nil, err
	}

	var deltaGJac bls12381.G1Jac
	deltaGJac.FromAffine(&deltaG)

	X := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		X[i] = scalarMulG1(deltaGJac, s[i])
	}

	Y := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		var giJac bls12381.G1Jac
		giJac.FromAffine(&gi[i])
		Y[i] = scalarMulG1(giJac, t[i+1])
	}

	var hJac bls12381.G2Jac
	hJac.FromAffine(&gens.H)

	Z := make([]bls12381.G2Affine, n+1)
	for i := 0; i <= n; i++ {
		Z[i] = scalarMulG2(hJac, t[i])
	}

	// P1 = δ·(t_0 + Σ s_j·t_{j+1})·G
	p1Scalar := t[0]
	for j := 0; j < n; j++ {
		var term fr.Element
		term.Mul(&s[j], &t[j+1])
		p1Scalar.Add(&p1Scalar, &term)
	}
	P1 := scalarMulG1(deltaGJac, p1Scalar)

	// P2 = (-γ)·(1 + Σ s_i)·G = γG scaled by -(1+Σs_i)
	p2Scalar := fr.NewElement(1)
	for i := 0; i < n; i++ {
		p2Scalar.Add(&p2Scalar, &s[i])
	}
	p2Scalar.Neg(&p2Scalar)
	var gammaGJac bls12381.G1Jac
	gammaGJac.FromAffine(&gammaG)
	P2 := scalarMulG1(gammaGJac, p2Scalar)

	ek := &EncryptionKey{X0: deltaG, X: X, Y: Y, Z: Z, P1: P1, P2: P2}
	if err := ek.Validate(); err != nil {
		return nil, nil, nil, err
	}

	V0 := scalarMulG2(hJac, rho)
	var v0Jac bls12381.G2Jac
	v0Jac.FromAffine(&V0)

	V2 := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		V2[i] = scalarMulG2(v0Jac, v[i])
	}

	V1 := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		var sv fr.Element
		sv.Mul(&s[i], &v[i])
		V1[i] = scalarMulG2(hJac, sv)
	}

	dk := &DecryptionKey{V0: V0, V1: V1, V2: V2}
	if err := dk.Validate(); err != nil {
		return nil, nil, nil, err
	}

	return &SecretKey{Rho: rho}, ek, dk, nil
}
