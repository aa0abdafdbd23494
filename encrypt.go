package saver

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
)

// Ciphertext is ct per spec.md §3: the rerandomized X0, the per-chunk
// components, the chunked-witness Pedersen commitment binding them, and the
// chunks themselves as recorded at encryption time (the bit-size circuit's
// public inputs; see DESIGN.md Open Question 5).
type Ciphertext struct {
	X0Prime      bls12381.G1Affine
	C            []bls12381.G1Affine
	Commitment   bls12381.G1Affine
	PublicChunks []fr.Element
}

// Encrypt samples randomness r and produces (ct, r) per spec.md §4.4,
// without attaching a SNARK proof.
func Encrypt(rng io.Reader, msg fr.Element, ek *EncryptionKey, srs *SRS, b uint8) (*Ciphertext, fr.Element, error) {
	ct, r, _, err := encrypt(rng, msg, ek, srs, b, false)
	return ct, r, err
}

// EncryptWithProof additionally builds the bit-size SNARK proof whose public
// inputs equal the chunks.
func EncryptWithProof(rng io.Reader, msg fr.Element, ek *EncryptionKey, srs *SRS, b uint8) (*Ciphertext, fr.Element, groth16.Proof, error) {
	ct, r, proof, err := encrypt(rng, msg, ek, srs, b, true)
	return ct, r, proof, err
}

func encrypt(rng io.Reader, msg fr.Element, ek *EncryptionKey, srs *SRS, b uint8, withProof bool) (*Ciphertext, fr.Element, groth16.Proof, error) {
	if err := ek.Validate(); err != nil {
		return nil, fr.Element{}, nil, err
	}
	n, err := ek.SupportedChunksCount()
	if err != nil {
		return nil, fr.Element{}, nil, err
	}

	chunks, err := decompose(msg, b)
	if err != nil {
		return nil, fr.Element{}, nil, err
	}
	if len(chunks) != n {
		return nil, fr.Element{}, nil, errLengthMismatch(VectorShorterThanExpected, n, len(chunks))
	}

	r, err := randFr(rng)
	if err != nil {
		return nil, fr.Element{}, nil, err
	}

	var x0Jac bls12381.G1Jac
	x0Jac.FromAffine(&ek.X0)
	x0Prime := scalarMulG1(x0Jac, r)

	c := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		// c_i = r·X_i + chunk_i·Y_i, an MSM with two bases.
		point, err := msmG1([]bls12381.G1Affine{ek.X[i], ek.Y[i]}, []fr.Element{r, chunks[i]})
		if err != nil {
			return nil, fr.Element{}, nil, err
		}
		c[i] = point
	}

	// commitment = r·P1 + Σ chunk_i·Y_i, an MSM with bases Y ‖ P1 and
	// scalars chunks ‖ r.
	bases := make([]bls12381.G1Affine, n+1)
	copy(bases, ek.Y)
	bases[n] = ek.P1
	scalars := make([]fr.Element, n+1)
	copy(scalars, chunks)
	scalars[n] = r
	commitment, err := msmG1(bases, scalars)
	if err != nil {
		return nil, fr.Element{}, nil, err
	}

	ct := &Ciphertext{X0Prime: x0Prime, C: c, Commitment: commitment, PublicChunks: chunks}

	if !withProof {
		return ct, r, nil, nil
	}
	if srs == nil || srs.ConstraintSys == nil {
		return nil, fr.Element{}, nil, errSnark(nil)
	}

	assignment := NewBitSizeCircuit(n, int(b))
	for i := range chunks {
		var v big.Int
		chunks[i].BigInt(&v)
		assignment.Chunks[i] = v
	}

	witness, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField())
	if err != nil {
		return nil, fr.Element{}, nil, errSnark(err)
	}

	proof, err := groth16.Prove(srs.ConstraintSys, srs.ProvingKey, witness)
	if err != nil {
		return nil, fr.Element{}, nil, errSnark(err)
	}

	return ct, r, proof, nil
}
