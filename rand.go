package saver

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// randFr draws a uniform scalar from rng, the way the teacher's
// crypto.RandomBytes wraps crypto/rand: callers own the reader, nothing here
// falls back to a package-global source.
func randFr(rng io.Reader) (fr.Element, error) {
	v, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return fr.Element{}, err
	}
	var z fr.Element
	z.SetBigInt(v)
	return z, nil
}

func randFrVector(rng io.Reader, n int) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := range out {
		v, err := randFr(rng)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
