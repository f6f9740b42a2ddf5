package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfund/donation-pipeline/codec"
	"github.com/openfund/donation-pipeline/common"
)

type fakeIPFS struct {
	blobs      map[string][]byte
	auth       string
	addHash    string
	failAdd    bool
	failCat    bool
	lastAddURL string
}

func (f *fakeIPFS) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0/add", func(w http.ResponseWriter, r *http.Request) {
		f.lastAddURL = r.URL.String()
		f.auth = r.Header.Get("Authorization")
		if f.failAdd {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"Message":"node offline","Code":0,"Type":"error"}`))
			return
		}
		file, _, err := r.FormFile("file")
		assert.Nil(t, err)
		data, _ := io.ReadAll(file)
		hash := codec.ContentID(data)
		if f.addHash != "" {
			hash = f.addHash
		}
		f.blobs[hash] = data
		_ = json.NewEncoder(w).Encode(ipfsAddResponse{Name: "file", Hash: hash, Size: "10"})
	})
	mux.HandleFunc("/api/v0/cat", func(w http.ResponseWriter, r *http.Request) {
		if f.failCat {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"Message":"context deadline exceeded","Code":0}`))
			return
		}
		data, ok := f.blobs[r.URL.Query().Get("arg")]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"Message":"block was not found locally (offline): ipld: could not find","Code":0}`))
			return
		}
		_, _ = w.Write(data)
	})
	mux.HandleFunc("/ipfs/", func(w http.ResponseWriter, r *http.Request) {
		data, ok := f.blobs[strings.TrimPrefix(r.URL.Path, "/ipfs/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	})
	return mux
}

func newTestIPFS(t *testing.T) (*fakeIPFS, *httptest.Server) {
	f := &fakeIPFS{blobs: map[string][]byte{}}
	server := httptest.NewServer(f.handler(t))
	t.Cleanup(server.Close)
	return f, server
}

func TestIPFSStore(t *testing.T) {
	ctx := context.Background()
	data := []byte(`{"amount":1,"campaignId":"c"}`)

	t.Run("Anchor", func(t *testing.T) {
		f, server := newTestIPFS(t)
		s, err := NewIPFSStore(IPFSConfig{APIURL: server.URL, Auth: "Basic abc"})
		assert.Nil(t, err)

		id, err := s.Anchor(ctx, data)

		assert.Nil(t, err)
		assert.Equal(t, codec.ContentID(data), id)
		assert.Equal(t, "Basic abc", f.auth)
		assert.Contains(t, f.lastAddURL, "cid-version=1")
		assert.Contains(t, f.lastAddURL, "raw-leaves=true")
		assert.Contains(t, f.lastAddURL, "pin=true")
	})

	t.Run("Anchor Content Id Mismatch", func(t *testing.T) {
		f, server := newTestIPFS(t)
		f.addHash = codec.ContentID([]byte("other"))
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Anchor(ctx, data)

		assert.NotNil(t, err)
		assert.NotErrorIs(t, err, common.ErrStoreUnavailable)
	})

	t.Run("Anchor Node Error", func(t *testing.T) {
		f, server := newTestIPFS(t)
		f.failAdd = true
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Anchor(ctx, data)

		assert.ErrorIs(t, err, common.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "node offline")
	})

	t.Run("Anchor Unreachable", func(t *testing.T) {
		_, server := newTestIPFS(t)
		server.Close()
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Anchor(ctx, data)

		assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	})

	t.Run("Anchor Too Large", func(t *testing.T) {
		_, server := newTestIPFS(t)
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Anchor(ctx, make([]byte, MaxIPFSBlockSize+1))

		assert.NotNil(t, err)
	})

	t.Run("Resolve From Node", func(t *testing.T) {
		_, server := newTestIPFS(t)
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})
		id, _ := s.Anchor(ctx, data)

		resolved, err := s.Resolve(ctx, id)

		assert.Nil(t, err)
		assert.Equal(t, data, resolved)
	})

	t.Run("Resolve Not Found", func(t *testing.T) {
		_, server := newTestIPFS(t)
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Resolve(ctx, codec.ContentID([]byte("missing")))

		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("Resolve Falls Back To Gateway", func(t *testing.T) {
		f, server := newTestIPFS(t)
		id := codec.ContentID(data)
		f.blobs[id] = data
		f.failCat = true
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL, GatewayURL: server.URL + "/ipfs/"})

		resolved, err := s.Resolve(ctx, id)

		assert.Nil(t, err)
		assert.Equal(t, data, resolved)
	})

	t.Run("Gateway Only", func(t *testing.T) {
		f, server := newTestIPFS(t)
		id := codec.ContentID(data)
		f.blobs[id] = data
		s, _ := NewIPFSStore(IPFSConfig{GatewayURL: server.URL + "/ipfs"})

		resolved, err := s.Resolve(ctx, id)
		assert.Nil(t, err)
		assert.Equal(t, data, resolved)

		_, err = s.Anchor(ctx, data)
		assert.ErrorIs(t, err, common.ErrStoreUnavailable)

		assert.Equal(t, server.URL+"/ipfs/"+id, s.GatewayURL(id))
	})

	t.Run("Resolve Corrupted Content", func(t *testing.T) {
		f, server := newTestIPFS(t)
		id := codec.ContentID(data)
		f.blobs[id] = []byte("tampered")
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL})

		_, err := s.Resolve(ctx, id)

		assert.ErrorIs(t, err, common.ErrStoreUnavailable)
		assert.ErrorIs(t, err, common.ErrInvalidContentID)
	})

	t.Run("Resolve Gateway Not Found", func(t *testing.T) {
		f, server := newTestIPFS(t)
		f.failCat = true
		s, _ := NewIPFSStore(IPFSConfig{APIURL: server.URL, GatewayURL: server.URL + "/ipfs/"})

		_, err := s.Resolve(ctx, codec.ContentID([]byte("missing")))

		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
