// package circuit defines the spend circuit for shielded transactions and
// the derivation of its proving and verifying keys.
package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/accumulator/merkle"
	"github.com/consensys/gnark/std/hash/mimc"
)

// TreeLevels is the number of levels in the note commitment tree, excluding
// the root.
const TreeLevels = 16

// Spend proves that a shielded note can be spent: the prover knows a note
// whose commitment sits in the note commitment tree under the public Anchor,
// and the public Nullifier was derived from that same note, without
// revealing which note is spent.
// The prover supplies a Merkle proof as a path from the leaf (unhashed) up
// to and excluding the root. So Path[0] is the unhashed leaf, holding the
// note commitment, Path[1] is the hashed leaf sibling, and Path[i] is the
// sibling of the parent of Path[i-1].
// The circuit uses the MiMC hash function which is zk-SNARK friendly and
// keeps the circuit size small.
type Spend struct {
	// Anchor is the root of the note commitment tree.
	Anchor frontend.Variable `gnark:",public"`
	// Nullifier is revealed when the note is spent, to prevent spending it
	// twice.
	Nullifier frontend.Variable `gnark:",public"`

	Path  [TreeLevels + 1]frontend.Variable
	Index frontend.Variable
	// Value is the amount carried by the note.
	Value frontend.Variable
	// Rho is the note's uniqueness trapdoor; it ties the nullifier to the
	// committed note.
	Rho frontend.Variable
	// NullifierKey is the spender's nullifier deriving key.
	NullifierKey frontend.Variable
}

func (circuit *Spend) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}

	// the leaf must commit to the note the nullifier is derived from
	h.Write(circuit.Rho, circuit.Value)
	api.AssertIsEqual(h.Sum(), circuit.Path[0])

	h.Reset()
	h.Write(circuit.NullifierKey, circuit.Rho)
	api.AssertIsEqual(h.Sum(), circuit.Nullifier)

	m := merkle.MerkleProof{
		RootHash: circuit.Anchor,
		Path:     circuit.Path[:],
	}
	m.VerifyProof(api, &h, circuit.Index)

	return nil
}
