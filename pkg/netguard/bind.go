// Package netguard keeps the local API from listening on anything but
// loopback.
package netguard

import (
	"fmt"
	"net"
	"strings"
)

// EnsureLocalOnly rejects non-loopback bind addresses. The form data may
// hold unreleased product plans; it never leaves the machine unless the
// user exports it deliberately.
func EnsureLocalOnly(addr string) error {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("refusing to bind non-loopback address %q; prdgen serves localhost only", addr)
	}
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("refusing to bind non-loopback address %q; prdgen serves localhost only", host)
}
