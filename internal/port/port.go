package port

import (
	"fmt"
	"net"
)

// Free returns an ephemeral TCP port that was unbound at the moment of the
// call. The port is obtained by binding a throwaway listener to port 0 and
// reading back the OS-assigned port before releasing the listener.
//
// The port is not reserved: another process may claim it between allocation
// and use. That race window is accepted; callers bind immediately after
// allocating.
func Free() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to allocate ephemeral port: %w", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}
