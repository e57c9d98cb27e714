package format

import "net/netip"

// ipv4Format requires a valid IPv4 address.
func ipv4Format(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// ipv6Format requires a valid IPv6 address, no zone.
func ipv6Format(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}
