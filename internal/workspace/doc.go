// Package workspace assembles the disposable runtime workspace for a
// fixture server.
//
// A workspace is a uniquely-named temporary directory tree:
//
//	<tmp>/actor-core-fixture-XXXX/
//	  vendor/   packed archives, one per monorepo package
//	  server/   copied example app + generated entry script,
//	            package.json, and .yarnrc.yml
//
// # Assembly
//
// The assembler copies the example application in full (the original source
// stays untouched), then generates three files in the server directory:
//
//   - the entry script, importing the app object and the platform adapter's
//     serve function, bound to the allocated port
//   - package.json, whose dependencies are absolute file: references to the
//     vendor archives and which marks the workspace private
//   - .yarnrc.yml selecting flat node-modules linking so install resolves
//     the archives without a registry
//
// Filesystem failures during assembly are fatal; no rollback happens here.
// Cleanup of a partial workspace is the teardown handle's job.
package workspace
