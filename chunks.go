package saver

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// supportedBitSizes enumerates chunk bit-sizes this package accepts. Only 4
// and 8 are exercised by the test suite, matching the canonical reference,
// but 1/2/16 are accepted by the codec and circuit machinery since the
// ceiling division in chunksCount is generic.
var supportedBitSizes = map[uint8]bool{1: true, 2: true, 4: true, 8: true, 16: true}

// modulusBitLen is the bit length m of the BLS12-381 scalar field modulus.
var modulusBitLen = fr.Modulus().BitLen()

// chunksCount returns n = ceil(m / b), the number of base-2^b digits needed
// to represent any field element.
func chunksCount(b uint8) (int, error) {
	if !supportedBitSizes[b] {
		return 0, errBitSize(b)
	}
	m := modulusBitLen
	return (m + int(b) - 1) / int(b), nil
}

// decompose splits msg into n big-endian base-2^b digits, most-significant
// first. Fails with InvalidChunkBitSize if b is unsupported.
func decompose(msg fr.Element, b uint8) ([]fr.Element, error) {
	n, err := chunksCount(b)
	if err != nil {
		return nil, err
	}

	var msgInt big.Int
	msg.BigInt(&msgInt)

	mask := new(big.Int).Lsh(big.NewInt(1), uint(b))
	mask.Sub(mask, big.NewInt(1))

	digits := make([]big.Int, n)
	rem := new(big.Int).Set(&msgInt)
	tmp := new(big.Int)
	for i := n - 1; i >= 0; i-- {
		tmp.And(rem, mask)
		digits[i].Set(tmp)
		rem.Rsh(rem, uint(b))
	}

	chunks := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		chunks[i].SetBigInt(&digits[i])
	}
	return chunks, nil
}

// compose recomposes chunks into a single field element:
// Σ chunk_i · 2^(b·(n-1-i)) mod q. Fails with MessageNotInChunks if the
// chunk count does not match chunksCount(b).
func compose(chunks []fr.Element, b uint8) (fr.Element, error) {
	n, err := chunksCount(b)
	if err != nil {
		return fr.Element{}, err
	}
	if len(chunks) != n {
		return fr.Element{}, &Error{Kind: MessageNotInChunks, Got: len(chunks), Expected: n}
	}

	var shift fr.Element
	shift.SetUint64(1 << b)

	var acc fr.Element
	for i := 0; i < n; i++ {
		acc.Mul(&acc, &shift)
		acc.Add(&acc, &chunks[i])
	}
	return acc, nil
}
