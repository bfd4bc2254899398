// Package health provides a TCP reachability probe for fixture servers.
//
// The probe is informational only. The bootstrap uses a fixed settle delay
// after launch and deliberately performs no readiness confirmation; a server
// that fails to start yields a handle whose URL is unreachable, discovered
// by the caller's first request.
package health
