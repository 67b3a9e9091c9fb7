package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Curve is the pairing curve the spend circuit is defined over.
const Curve = ecc.BN254

// Compile compiles the spend circuit to a rank-1 constraint system.
func Compile() (constraint.ConstraintSystem, error) {
	ccs, err := frontend.Compile(Curve.ScalarField(), r1cs.NewBuilder, &Spend{})
	if err != nil {
		return nil, fmt.Errorf("error compiling spend circuit: %v", err)
	}
	return ccs, nil
}

// BuildKeys compiles the spend circuit and runs the groth16 setup, returning
// its proving and verifying keys. The two keys come from a single setup run
// and are only compatible with each other.
func BuildKeys() (groth16.ProvingKey, groth16.VerifyingKey, error) {
	ccs, err := Compile()
	if err != nil {
		return nil, nil, err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("error setting up groth16: %v", err)
	}
	return pk, vk, nil
}
