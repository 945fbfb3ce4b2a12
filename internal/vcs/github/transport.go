package github

import "net/http"

const mediaTypeGitHubJSON = "application/vnd.github+json"

// headerTransport pins the Accept and User-Agent headers on every request.
// go-github sets its own v3 media type, which is replaced here.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func newHeaderTransport(base http.RoundTripper, userAgent string) *headerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &headerTransport{base: base, userAgent: userAgent}
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Accept", mediaTypeGitHubJSON)
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
