// Package config holds the fixture bootstrap configuration.
//
// The defaults mirror the actor-core monorepo layout: the runtime package,
// the nodejs platform adapter, the memory storage driver, and the counter
// example application. A fixture.toml file can override any field; fields
// absent from the file keep their defaults.
//
// Configuration is an explicit value threaded into the bootstrap rather
// than ambient state, so several fixtures can be bootstrapped from one
// process with different settings.
package config
