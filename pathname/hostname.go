package pathname

import "strings"

const (
	maxIPv4Octet         = 255
	maxIPv6Groups        = 8
	maxIPv6DigitsInGroup = 4
)

// isValidHostname reports whether host is acceptable as the server part of a
// UNC path: an IPv6 address, an RFC 3986 reg-name, or an IPv4 address.
func isValidHostname(host string) bool {
	return isIPv6Address(host) || isRegName(host) || isIPv4Address(host)
}

// isIPv4Address reports whether host is a dotted quad. Each octet is one to
// three decimal digits with a value of at most 255; leading zeros are
// tolerated.
func isIPv4Address(host string) bool {
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return false
	}
	for _, octet := range octets {
		if len(octet) == 0 || len(octet) > 3 {
			return false
		}
		value := 0
		for i := 0; i < len(octet); i++ {
			c := octet[i]
			if c < '0' || c > '9' {
				return false
			}
			value = value*10 + int(c-'0')
		}
		if value > maxIPv4Octet {
			return false
		}
	}
	return true
}

// isIPv6Address reports whether host is an IPv6 address: colon-separated
// groups of at most four hex digits, eight groups in total unless a single
// "::" marker compresses a run of zero groups, with an optional trailing
// dotted quad standing in for the last two groups.
func isIPv6Address(host string) bool {
	marker := strings.Index(host, "::")
	compressed := marker != -1
	if compressed && strings.Contains(host[marker+1:], "::") {
		return false
	}
	if strings.HasPrefix(host, ":") && !strings.HasPrefix(host, "::") {
		return false
	}
	if strings.HasSuffix(host, ":") && !strings.HasSuffix(host, "::") {
		return false
	}
	groups := strings.Split(host, ":")
	// Trailing empty groups belong to the compression marker; fold them away
	// and restore the single group the marker stands for.
	for len(groups) > 0 && groups[len(groups)-1] == "" {
		groups = groups[:len(groups)-1]
	}
	if compressed {
		if strings.HasSuffix(host, "::") {
			groups = append(groups, "")
		} else if len(groups) > 0 && groups[0] == "" {
			groups = groups[1:]
		}
	}
	if len(groups) > maxIPv6Groups {
		return false
	}
	valid := 0
	empty := 0
	for i, group := range groups {
		if group == "" {
			empty++
			if empty > 1 {
				return false
			}
			valid++
			continue
		}
		empty = 0
		if i == len(groups)-1 && strings.Contains(group, ".") {
			if !isIPv4Address(group) {
				return false
			}
			valid += 2
			continue
		}
		if len(group) > maxIPv6DigitsInGroup {
			return false
		}
		for j := 0; j < len(group); j++ {
			if !isHexDigit(group[j]) {
				return false
			}
		}
		valid++
	}
	if valid > maxIPv6Groups {
		return false
	}
	return valid == maxIPv6Groups || compressed
}

// isRegName reports whether host is an RFC 3986 reg-name: dot-separated
// labels of alphanumerics and interior hyphens. A single trailing empty label
// (a trailing dot) is permitted.
func isRegName(host string) bool {
	labels := strings.Split(host, ".")
	for i, label := range labels {
		if label == "" {
			return i == len(labels)-1
		}
		for j := 0; j < len(label); j++ {
			c := label[j]
			switch {
			case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			case c == '-' && j > 0:
			default:
				return false
			}
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
