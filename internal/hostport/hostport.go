// Package hostport validates host names and port numbers and formats
// them for display.
package hostport

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

const (
	maxHostLen  = 255
	maxLabelLen = 63
)

// ValidPort reports whether port fits a TCP/UDP port number.
func ValidPort(port int) bool {
	return port >= 0 && port <= 65535
}

// ValidHost reports whether host is a usable DNS name: IDNA-decodable,
// at most 255 bytes, every label limited to letters, digits and
// interior hyphens. One trailing dot is tolerated.
func ValidHost(host string) bool {
	if host == "" {
		return false
	}
	if _, err := idna.Lookup.ToUnicode(host); err != nil {
		return false
	}
	if len(host) > maxHostLen {
		return false
	}
	host = strings.TrimSuffix(host, ".")
	for _, label := range strings.Split(host, ".") {
		if !validLabel(label) {
			return false
		}
	}
	return true
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > maxLabelLen {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// Format renders host and port for display. The port is dropped when
// it is the default for the scheme, 80 for http and 443 for https.
func Format(scheme string, host string, port int) string {
	if (port == 80 && scheme == "http") || (port == 443 && scheme == "https") {
		return host
	}
	return fmt.Sprintf("%s:%d", host, port)
}
