package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
)

const (
	// MaxIPFSBlockSize is the default chunker size. Larger payloads are split
	// into a dag and no longer match the raw content id.
	MaxIPFSBlockSize = 262144

	defaultIPFSTimeout = 30 * time.Second
	maxResponseSize    = 4 << 20
)

type IPFSConfig struct {
	APIURL     string
	GatewayURL string
	Auth       string
	Timeout    time.Duration
}

// IPFSStore talks to the kubo RPC API. Reads fall back to a public gateway
// when the node cannot serve them.
type IPFSStore struct {
	apiURL     string
	gatewayURL string
	auth       string
	client     *http.Client
}

type ipfsAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

type ipfsErrorResponse struct {
	Message string `json:"Message"`
	Code    int    `json:"Code"`
}

func NewIPFSStore(cfg IPFSConfig) (*IPFSStore, error) {
	if cfg.APIURL == "" && cfg.GatewayURL == "" {
		return nil, errors.New("ipfs store needs an api url or a gateway url")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultIPFSTimeout
	}
	return &IPFSStore{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		gatewayURL: cfg.GatewayURL,
		auth:       cfg.Auth,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

func (s *IPFSStore) Anchor(ctx context.Context, data []byte) (string, error) {
	if s.apiURL == "" {
		return "", fmt.Errorf("%w: no ipfs api configured", common.ErrStoreUnavailable)
	}
	if len(data) > MaxIPFSBlockSize {
		return "", fmt.Errorf("metadata of %d bytes exceeds a single ipfs block", len(data))
	}
	expected := codec.ContentID(data)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", expected+".json")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("cid-version", "1")
	query.Set("raw-leaves", "true")
	query.Set("pin", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/api/v0/add?"+query.Encode(), body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", unavailable("ipfs add", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", unavailable("ipfs add", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: ipfs add returned %d: %s", common.ErrStoreUnavailable, resp.StatusCode, ipfsMessage(raw))
	}

	var added ipfsAddResponse
	if err := json.Unmarshal(raw, &added); err != nil {
		return "", unavailable("ipfs add", err)
	}
	if added.Hash != expected {
		return "", fmt.Errorf("ipfs returned content id %s, expected %s", added.Hash, expected)
	}

	log.WithField("cid", added.Hash).WithField("size", added.Size).Debug("[STORE] Pinned metadata on ipfs")
	return added.Hash, nil
}

func (s *IPFSStore) Resolve(ctx context.Context, contentID string) ([]byte, error) {
	if _, err := codec.ParseContentID(contentID); err != nil {
		return nil, err
	}

	var nodeErr error
	if s.apiURL != "" {
		data, err := s.cat(ctx, contentID)
		if err == nil {
			return verifyResolved(contentID, data)
		}
		if s.gatewayURL == "" || ctx.Err() != nil {
			return nil, err
		}
		nodeErr = err
		log.WithError(err).WithField("cid", contentID).Debug("[STORE] Falling back to ipfs gateway")
	}

	data, err := s.fetchGateway(ctx, contentID)
	if err != nil {
		if nodeErr != nil && errors.Is(err, common.ErrStoreUnavailable) {
			return nil, fmt.Errorf("%w (node: %s)", err, nodeErr.Error())
		}
		return nil, err
	}
	return verifyResolved(contentID, data)
}

func (s *IPFSStore) cat(ctx context.Context, contentID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/api/v0/cat?arg="+url.QueryEscape(contentID), nil)
	if err != nil {
		return nil, err
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, unavailable("ipfs cat", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, unavailable("ipfs cat", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := ipfsMessage(raw)
		if strings.Contains(strings.ToLower(msg), "not found") {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, contentID)
		}
		return nil, fmt.Errorf("%w: ipfs cat returned %d: %s", common.ErrStoreUnavailable, resp.StatusCode, msg)
	}
	return raw, nil
}

func (s *IPFSStore) fetchGateway(ctx context.Context, contentID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gatewayObjectURL(s.gatewayURL, contentID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, unavailable("ipfs gateway", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, contentID)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: ipfs gateway returned %d", common.ErrStoreUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, unavailable("ipfs gateway", err)
	}
	return raw, nil
}

func (s *IPFSStore) authorize(req *http.Request) {
	if s.auth != "" {
		req.Header.Set("Authorization", s.auth)
	}
}

// GatewayURL returns a public link to contentID, or "" without a gateway.
func (s *IPFSStore) GatewayURL(contentID string) string {
	if s.gatewayURL == "" {
		return ""
	}
	return gatewayObjectURL(s.gatewayURL, contentID)
}

func gatewayObjectURL(gateway string, contentID string) string {
	if strings.HasSuffix(gateway, "/") {
		return gateway + contentID
	}
	return gateway + "/" + contentID
}

func ipfsMessage(raw []byte) string {
	var e ipfsErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(raw))
}
