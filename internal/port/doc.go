// Package port provides ephemeral port allocation for test fixtures.
//
// Each fixture server needs one free TCP port on loopback. The port is
// sampled from the OS by binding to port 0:
//
//	p, err := port.Free()
//
// # Allocation Strategy
//
// The returned port is momentarily free, not reserved. The gap between
// allocation and the server binding it is a narrow, accepted race; no
// locking is applied beyond the allocate-then-immediately-use pattern.
package port
