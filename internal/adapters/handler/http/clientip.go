package http

import (
	"net"
	"net/http"
	"strings"
)

// clientIP derives the voter's source address: first entry of
// X-Forwarded-For, then X-Real-IP, then the transport peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := normalizeIP(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := normalizeIP(xri); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalizeIP(host); ip != "" {
		return ip
	}

	return "unknown"
}

// normalizeIP strips the IPv4-mapped IPv6 prefix and lower-cases IPv6
// literals so the same client always yields the same stored address.
func normalizeIP(ip string) string {
	ip = strings.TrimSpace(ip)

	if rest, ok := strings.CutPrefix(ip, "::ffff:"); ok {
		ip = rest
	}

	if strings.Contains(ip, ":") {
		return strings.ToLower(ip)
	}

	return ip
}
