// Package saver implements SAVER: SNARK-friendly, Additively-homomorphic,
// Verifiable Encryption with Rerandomization.
//
// Overview:
//   - A prover encrypts a field element under a decryptor's public encryption
//     key and attaches a succinct Groth16 proof that the ciphertext is
//     well-formed: every chunk of the encoded message lies in its expected
//     bit-size range.
//   - A designated decryptor recovers the plaintext by a bounded per-chunk
//     discrete-log search and can publish a transcript that lets third
//     parties verify the decryption without learning the secret key.
//   - A chunked Pedersen commitment bridges the SNARK's chunk witnesses to an
//     ordinary single-scalar commitment, so the chunks can be tied into an
//     outer Sigma-protocol (e.g. proving equality with a BBS+-committed
//     attribute) without re-proving well-formedness.
//
// Security model:
//   - Pairing arithmetic is fixed to the BLS12-381 curve (gnark-crypto); the
//     Groth16 SNARK is proved over the same curve's scalar field.
//   - Key generation and encryption randomness is supplied by the caller via
//     an io.Reader, never drawn from a package-global source. The Groth16
//     trusted setup in Setup and the proof in EncryptWithProof draw their own
//     randomness inside gnark and do not read the caller's io.Reader.
//   - Secret key material (SecretKey) and the generation-time SRS trapdoor
//     never cross the public API surface in the clear.
//
// Usage: Setup derives an SRS plus SK/EK/DK for a chunk bit-size, drawing
// SK/EK/DK from an io.Reader; Encrypt/EncryptWithProof consume EK;
// VerifyCommitment/VerifySNARK consume EK/VK; Decrypt consumes SK+EK+DK;
// VerifyDecryption consumes EK+DK.
//
// References:
//   - Lovesh Harchandani et al., "Verifiable Encryption using SNARKs" (SAVER).
//   - Groth, "On the Size of Pairing-based Non-interactive Arguments".
package saver
