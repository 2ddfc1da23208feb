// internal/infra/icon/fetcher.go
package icon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	usecase "pumpblink/internal/application/usecase"
)

var (
	ErrUnsupportedScheme = errors.New("icon: unsupported URL scheme")
	ErrEmptyResource     = errors.New("icon: resource is empty")
)

// maxIconBytes caps the icon download. Anything larger is not a token icon.
const maxIconBytes = 10 << 20

// Fetcher downloads the icon resource behind an arbitrary URL with a bounded
// timeout. Single attempt, no retry.
type Fetcher struct {
	http *http.Client
}

var _ usecase.IconFetcherPort = (*Fetcher)(nil)

func NewFetcher() *Fetcher {
	return &Fetcher{
		http: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

// Fetch returns the resource bytes and a filename hint derived from the URL
// path.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, "", fmt.Errorf("icon: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("icon: create request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("icon: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("icon: fetch %s: status=%d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil, "", fmt.Errorf("icon: read body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyResource
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		name = "icon"
	}
	return data, name, nil
}
