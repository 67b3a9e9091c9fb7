// Package juno exposes the startup entry points a host node process calls
// before validating or producing shielded transaction proofs: installing the
// process wide worker pool and loading the zk-SNARK parameters into memory.
//
// The function names and signatures mirror the foreign function surface of
// the legacy node, so host startup code maps onto them one to one. Neither
// function returns a status: failures panic, aborting startup.
package juno

import (
	"github.com/juno-cash/juno/params"
	"github.com/juno-cash/juno/pool"
)

// RayonThreadpool installs the process wide worker pool used for parallel
// proving work. Only called once: the pool cannot be reconfigured once
// installed, so a second call panics instead of silently keeping the old
// pool.
func RayonThreadpool() {
	pool.Install()
}

// ZKSnarkParams loads the zk-SNARK parameters into memory. The first call
// performs the loading; every later call, concurrent or sequential, is a
// no-op that returns once the loading has completed, so independent
// subsystems may request initialization without coordinating.
//
// If loadProvingKeys is false, the proving keys will not be published,
// making it impossible to create proofs. This flag is for test suites that
// only verify proofs.
//
// The sproutPath parameter is kept for API compatibility with the legacy
// multi-circuit configuration but is unused: the spend circuit takes no
// external parameter files.
func ZKSnarkParams(sproutPath string, loadProvingKeys bool) {
	_ = sproutPath
	params.Load(loadProvingKeys)
}
