// Package catalog retrieves the remote emoji catalog and decodes it into icons.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/eykd/gh-emoji/internal/domain"
	"github.com/eykd/gh-emoji/internal/logx"
)

// DefaultEndpoint is the GitHub emoji listing.
const DefaultEndpoint = "https://api.github.com/emojis"

// defaultUserAgent is sent on every request; the GitHub API rejects requests without one.
const defaultUserAgent = "gh-emoji"

// ErrMalformedCatalog is returned when the response body is not a JSON object.
var ErrMalformedCatalog = errors.New("catalog response is not a JSON object")

// RemoteError reports a non-success HTTP status from the catalog endpoint.
type RemoteError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Doer abstracts the subset of *http.Client used by the fetcher.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads the name to image URL mapping and converts it to a Catalog.
type Fetcher struct {
	endpoint  string
	client    Doer
	userAgent string
}

// NewFetcher creates a Fetcher for endpoint. A nil client uses http.DefaultClient.
func NewFetcher(endpoint string, client Doer) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{endpoint: endpoint, client: client, userAgent: defaultUserAgent}
}

// Fetch issues a single GET to the catalog endpoint and decodes the body.
// Entries keep the order in which they appear in the response.
func (f *Fetcher) Fetch(ctx context.Context) (domain.Catalog, error) {
	log := logx.Ctx(ctx).With("url", f.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	log.Debug("fetching catalog")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{URL: f.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	catalog, err := Decode(ctx, body)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog fetched", "icons", len(catalog))
	return catalog, nil
}

// Decode converts a JSON object of name to image URL into a Catalog,
// dropping entries that do not yield a valid icon.
func Decode(ctx context.Context, body []byte) (domain.Catalog, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedCatalog
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrMalformedCatalog
	}

	log := logx.Ctx(ctx)
	catalog := domain.Catalog{}
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if value.Type != gjson.String {
			log.Debug("skipping icon", "name", name, "reason", "url is not a string")
			return true
		}
		icon, ok := domain.NewIcon(name, value.String())
		if !ok {
			log.Debug("skipping icon", "name", name, "url", value.String())
			return true
		}
		catalog = append(catalog, icon)
		return true
	})
	return catalog, nil
}
