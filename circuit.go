package saver

import (
	"github.com/consensys/gnark/frontend"
)

// BitSizeCircuit enforces that each of the n public input wires decomposes
// into b booleans, i.e. each chunk lies in [0, 2^b). It carries no private
// witness: the chunks themselves are the public inputs (the prover reveals
// them, matching the commitment-binding design in DESIGN.md Open Question 5).
//
// Two modes per spec.md §4.2: Prover mode assigns Chunks to the real values
// before calling frontend.NewWitness; Key-gen mode compiles the circuit with
// the bit-size and chunk count set (NewBitSizeCircuit) and Chunks left as
// unassigned placeholders, producing
// only the R1CS matrix for Groth16 setup.
type BitSizeCircuit struct {
	Chunks []frontend.Variable `gnark:",public"`

	bitSize int
}

// NewBitSizeCircuit builds an empty circuit shaped for n chunks of bitSize
// bits, suitable for frontend.Compile during Setup.
func NewBitSizeCircuit(n int, bitSize int) *BitSizeCircuit {
	return &BitSizeCircuit{
		Chunks:  make([]frontend.Variable, n),
		bitSize: bitSize,
	}
}

// Define implements frontend.Circuit. For every chunk it asserts the binary
// decomposition recomposes to the chunk itself, which is equivalent to
// bounding the chunk to [0, 2^bitSize) since api.ToBinary already constrains
// each returned wire to be boolean.
func (c *BitSizeCircuit) Define(api frontend.API) error {
	for _, chunk := range c.Chunks {
		bits := api.ToBinary(chunk, c.bitSize)
		recomposed := api.FromBinary(bits...)
		api.AssertIsEqual(chunk, recomposed)
	}
	return nil
}
