// internal/infra/pumpfun/client.go
package pumpfun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	usecase "pumpblink/internal/application/usecase"
	tokendom "pumpblink/internal/domain/token"
)

// Default pump.fun IPFS pinning endpoint.
const defaultIPFSEndpoint = "https://pump.fun/api/ipfs"

// AccountReader reads raw on-chain account data.
type AccountReader interface {
	AccountData(ctx context.Context, address string) ([]byte, error)
}

// Client implements the protocol boundary: metadata pinning over HTTP plus
// instruction construction and global-state reads against the program.
type Client struct {
	accounts AccountReader
	http     *http.Client
	ipfsURL  string
}

var _ usecase.ProtocolPort = (*Client)(nil)

// NewClient creates a protocol client. ipfsURL falls back to the public
// pump.fun pinning endpoint when empty.
func NewClient(accounts AccountReader, ipfsURL string) *Client {
	u := strings.TrimSpace(ipfsURL)
	if u == "" {
		u = defaultIPFSEndpoint
	}
	u = strings.TrimRight(u, "/")

	return &Client{
		accounts: accounts,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		ipfsURL: u,
	}
}

// UploadMetadata pins the token metadata (icon plus name/symbol/description)
// and returns the metadata URI. Single attempt, no retry; the caller falls
// back on failure.
func (c *Client) UploadMetadata(ctx context.Context, meta tokendom.Metadata) (string, error) {
	if len(meta.Icon) == 0 {
		return "", fmt.Errorf("pumpfun: metadata icon is empty")
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	filename := strings.TrimSpace(meta.IconName)
	if filename == "" {
		filename = "icon"
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("pumpfun: create form file: %w", err)
	}
	if _, err := fw.Write(meta.Icon); err != nil {
		return "", fmt.Errorf("pumpfun: write icon: %w", err)
	}

	fields := map[string]string{
		"name":        meta.Name,
		"symbol":      meta.Symbol,
		"description": meta.Description,
		"showName":    "true",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", fmt.Errorf("pumpfun: write field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("pumpfun: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ipfsURL, body)
	if err != nil {
		return "", fmt.Errorf("pumpfun: create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pumpfun: upload metadata: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pumpfun: upload metadata failed: status=%d body=%s", resp.StatusCode, string(respBytes))
	}

	var res struct {
		MetadataURI string `json:"metadataUri"`
	}
	if err := json.Unmarshal(respBytes, &res); err != nil {
		return "", fmt.Errorf("pumpfun: decode upload response: %w", err)
	}
	if res.MetadataURI == "" {
		return "", fmt.Errorf("pumpfun: upload response has empty metadataUri")
	}

	log.Printf("[pumpfun] metadata pinned symbol=%s uri=%s", meta.Symbol, res.MetadataURI)
	return res.MetadataURI, nil
}
