package github

import "net/http"

// NextPageLink returns the raw value of the response's Link header. The
// value is reported only when it is non-empty visible ASCII text.
func NextPageLink(h http.Header) (string, bool) {
	v := h.Get("Link")
	if v == "" || !isVisibleASCII(v) {
		return "", false
	}
	return v, true
}

func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\t' && (c < 0x20 || c > 0x7e) {
			return false
		}
	}
	return true
}
