// package params owns the process wide zk-SNARK key material for the spend
// circuit.
package params

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/logger"

	"github.com/juno-cash/juno/circuit"
)

var (
	loadOnce sync.Once

	// written once inside loadOnce and read without synchronization
	// afterwards; the Once provides the happens-before edge readers rely on
	spendProvingKey   groth16.ProvingKey
	spendVerifyingKey groth16.VerifyingKey
)

// buildKeys is a seam for tests to observe how often the guarded body runs.
var buildKeys = circuit.BuildKeys

// Load derives the spend circuit key material and publishes it to process
// wide storage. The first call runs the derivation; every later call, from
// any goroutine, concurrent or sequential, executes nothing and returns once
// that single derivation has completed. After Load returns, the published
// keys are visible to all goroutines.
//
// If loadProvingKeys is false the proving key is not published, making it
// impossible to create proofs. This flag is for test suites that only verify
// proofs. The verifying key cannot be derived without running the full
// setup, so the flag controls what is published, not the setup cost.
// With concurrent first calls, the flag of whichever caller enters the body
// decides proving key presence for the process lifetime.
//
// A key generation failure panics on the executing caller's goroutine; no
// partial state is ever published.
func Load(loadProvingKeys bool) {
	loadOnce.Do(func() {
		log := logger.Logger()
		log.Info().Msg("loading spend circuit parameters")
		pk, vk, err := buildKeys()
		if err != nil {
			panic(fmt.Sprintf("params: error loading spend circuit parameters: %v", err))
		}
		if loadProvingKeys {
			spendProvingKey = pk
		}
		spendVerifyingKey = vk
	})
}

// ProvingKey returns the published proving key. It is nil if Load has not
// completed, or if Load was called with loadProvingKeys false.
func ProvingKey() groth16.ProvingKey {
	return spendProvingKey
}

// VerifyingKey returns the published verifying key. Callers must not read it
// before the first Load call has returned; it is nil until then.
func VerifyingKey() groth16.VerifyingKey {
	return spendVerifyingKey
}
