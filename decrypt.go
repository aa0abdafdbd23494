package saver

import (
	"math/big"
	"runtime"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// DecryptionTranscript is ν, the randomness commitment r·X0 published
// alongside a decryption so third parties can verify it without SK.
type DecryptionTranscript struct {
	Nu bls12381.G1Affine
}

// smallDLTable precomputes e(Y_i, V2_i)^k for k ∈ [0, 2^b), the brute-force
// search space DESIGN NOTES §9 describes, with a separate table per chunk
// index. Decrypt builds a fresh table on every call; the table is not cached
// across calls, even when the keys are unchanged.
type smallDLTable struct {
	b      uint8
	bases  []bls12381.GT // e(Y_i, V2_i), one per chunk index
	tables [][]bls12381.GT
}

// newSmallDLTable builds the per-chunk pairing bases and the 2^b candidate
// table for each, computed concurrently using a bounded worker pool matching
// the BBS+ BatchVerifyProofs concurrency shape.
func newSmallDLTable(ek *EncryptionKey, dk *DecryptionKey, b uint8) (*smallDLTable, error) {
	n, err := dk.SupportedChunksCount()
	if err != nil {
		return nil, err
	}
	if len(ek.Y) != n {
		return nil, errLengthMismatch(MalformedEncryptionKey, len(ek.Y), n)
	}

	bases := make([]bls12381.GT, n)
	tables := make([][]bls12381.GT, n)

	type job struct {
		i   int
		err error
	}
	errs := make([]error, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	size := 1 << b
	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			base, err := bls12381.Pair([]bls12381.G1Affine{ek.Y[i]}, []bls12381.G2Affine{dk.V2[i]})
			if err != nil {
				errs[i] = err
				return
			}
			bases[i] = base

			table := make([]bls12381.GT, size)
			table[0].SetOne()
			for k := 1; k < size; k++ {
				table[k].Mul(&table[k-1], &base)
			}
			tables[i] = table
		}(i)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, errSnark(e)
		}
	}

	return &smallDLTable{b: b, bases: bases, tables: tables}, nil
}

// Decrypt recovers chunks by searching each per-chunk discrete log against a
// precomputed table, recomposes the message, and emits ν per spec.md §4.7.
func (ct *Ciphertext) Decrypt(sk *SecretKey, ek *EncryptionKey, dk *DecryptionKey, b uint8) (fr.Element, *DecryptionTranscript, error) {
	n, err := dk.SupportedChunksCount()
	if err != nil {
		return fr.Element{}, nil, err
	}
	if len(ct.C) != n {
		return fr.Element{}, nil, &Error{Kind: MessageNotInChunks, Got: len(ct.C), Expected: n}
	}

	table, err := newSmallDLTable(ek, dk, b)
	if err != nil {
		return fr.Element{}, nil, err
	}

	var rhoNeg big.Int
	sk.Rho.BigInt(&rhoNeg)
	rhoNeg.Neg(&rhoNeg)

	chunks := make([]fr.Element, n)
	errs := make([]error, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			// T_i = e(c_i, V2_i) · e(X0', V1_i)^(-ρ)
			a, err := bls12381.Pair([]bls12381.G1Affine{ct.C[i]}, []bls12381.G2Affine{dk.V2[i]})
			if err != nil {
				errs[i] = err
				return
			}
			b0, err := bls12381.Pair([]bls12381.G1Affine{ct.X0Prime}, []bls12381.G2Affine{dk.V1[i]})
			if err != nil {
				errs[i] = err
				return
			}
			var bNegRho bls12381.GT
			bNegRho.Exp(b0, &rhoNeg)
			var target bls12381.GT
			target.Mul(&a, &bNegRho)

			found := -1
			for k, candidate := range table.tables[i] {
				if candidate.Equal(&target) {
					found = k
					break
				}
			}
			if found < 0 {
				errs[i] = errDiscreteLog(i)
				return
			}
			chunks[i].SetUint64(uint64(found))
		}(i)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return fr.Element{}, nil, e
		}
	}

	msg, err := compose(chunks, b)
	if err != nil {
		return fr.Element{}, nil, err
	}

	return msg, &DecryptionTranscript{Nu: ct.X0Prime}, nil
}
