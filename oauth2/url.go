package oauth2

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// EncodeQuery percent-encodes a parameter map into an
// application/x-www-form-urlencoded string. Multi-valued parameters emit one
// key=value pair per element; pairs are joined with "&" in sorted key order.
// An empty map encodes to "".
func EncodeQuery(p Params) string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for key := range p {
		for _, value := range p.Strings(key) {
			values.Add(key, value)
		}
	}
	return values.Encode()
}

// ComposeURL merges a parameter map into the query component of an absolute
// URL. Any query string or fragment already on the URL is preserved verbatim:
// new parameters are appended to the raw query rather than re-encoded over
// it. Fails with ErrMalformedURL when the input does not parse as an
// absolute URL.
func ComposeURL(rawURL string, p Params) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", errors.Wrapf(ErrMalformedURL, "[ComposeURL] %q: %v", rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errors.Wrapf(ErrMalformedURL, "[ComposeURL] %q is not absolute", rawURL)
	}

	query := EncodeQuery(p)
	if query != "" {
		if parsed.RawQuery != "" {
			parsed.RawQuery = parsed.RawQuery + "&" + query
		} else {
			parsed.RawQuery = query
		}
	}
	return parsed.String(), nil
}
