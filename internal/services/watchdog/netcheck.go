package watchdog

import (
	"context"
	"fmt"
	"net"
	"time"
)

// NetChecker probes network reachability.
type NetChecker interface {
	Check(ctx context.Context, addr string) error
}

// TCPChecker dials the address and hangs up. Good enough to distinguish "the
// broker host is reachable" from "the network is down".
type TCPChecker struct {
	Timeout time.Duration
}

func (c TCPChecker) Check(ctx context.Context, addr string) error {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn.Close()
}
