package health

import (
	"fmt"
	"net"
	"time"
)

// DialTimeout bounds a single reachability probe.
const DialTimeout = time.Second

// CheckTCP reports whether something is accepting TCP connections on the
// loopback port. The bootstrap itself never gates on this; it exists for
// informational CLI output and tests. A false result within the settle
// interval may just mean the server is not ready yet.
func CheckTCP(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), DialTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
