package resolve

import "net"

// AdminPolicy is the deployment-level gate for the admin UI. Enabled comes
// from deploy configuration; DevMode stands in for a local development build.
type AdminPolicy struct {
	Enabled bool
	DevMode bool
}

// AdminPermitted reports whether administrative access is allowed for a
// request: the deployment must enable it, and the caller must either be on a
// loopback host or have asked for admin mode explicitly. The policy behind
// Enabled is out of scope here; this is only the predicate the admin UI
// consults.
func AdminPermitted(pol AdminPolicy, p Params, host string) bool {
	if !pol.Enabled && !pol.DevMode {
		return false
	}
	return isLoopback(host) || p.AdminRequested
}

func isLoopback(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}
