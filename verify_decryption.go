package saver

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// VerifyDecryption checks a claimed (msg, ν) pair against ct without SK, per
// spec.md §4.8. chunks are recomputed independently from msg (never trusted
// from ct.PublicChunks) and checked against ct via the same aggregate
// identity VerifyCommitment uses, substituting the published ν for X0'; dk's
// length invariants are still validated (I1) even though the identity itself
// routes through ek+gens (DESIGN.md Open Question 6).
func (ct *Ciphertext) VerifyDecryption(msg fr.Element, nu *DecryptionTranscript, b uint8, ek *EncryptionKey, dk *DecryptionKey, gens EncryptionGens) error {
	if err := dk.Validate(); err != nil {
		return err
	}
	if nu.Nu != ct.X0Prime {
		return &Error{Kind: InvalidDecryptionVerification}
	}

	chunks, err := decompose(msg, b)
	if err != nil {
		return err
	}

	claimed := &Ciphertext{
		X0Prime:      ct.X0Prime,
		C:            ct.C,
		Commitment:   ct.Commitment,
		PublicChunks: chunks,
	}

	if err := claimed.VerifyCommitment(ek, gens); err != nil {
		return &Error{Kind: InvalidDecryptionVerification, Inner: err}
	}
	return nil
}
