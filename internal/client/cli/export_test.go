package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func TestCli_RunExport_PasswordMismatchBeforeNetwork(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	f := newTestFixture(t)
	authenticated(f)
	f.cli.apiClient = clientapi.NewClient(server.URL)

	f.io.ReadInputFunc = func(prompt string) (string, error) { return "password", nil }
	passwords := []string{"first password", "something else"}
	f.io.ReadPasswordFunc = func(prompt string) (string, error) {
		password := passwords[0]
		passwords = passwords[1:]
		return password, nil
	}

	err := f.cli.Run(context.Background(), "export", []string{"proj-1", filepath.Join(t.TempDir(), "out")})
	require.Error(t, err)
	assert.Equal(t, int64(0), requests.Load(), "validation failures must not reach the server")
}

func TestCli_RunExport_WritesBundle(t *testing.T) {
	blob := []byte("opaque export bytes")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/projects/proj-1/export", func(w http.ResponseWriter, r *http.Request) {
		var req api.ProjectExportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, api.EncryptionNone, req.Encryption.Method)
		assert.True(t, req.Options.IncludeScope)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ExportJobResponse{
			JobID:       "job-1",
			Status:      "completed",
			DownloadURL: "/api/v1/exports/download/job-1",
		})
	})
	mux.HandleFunc("/api/v1/exports/download/job-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(blob)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := newTestFixture(t)
	authenticated(f)
	f.cli.apiClient = clientapi.NewClient(server.URL)

	f.io.ReadInputFunc = func(prompt string) (string, error) { return "", nil } // default: none

	outputPath := filepath.Join(t.TempDir(), "assessment.penflow-project")
	err := f.cli.Run(context.Background(), "export", []string{"proj-1", outputPath})
	require.NoError(t, err)

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, blob, written)
	assert.Contains(t, f.io.output(), "Export completed")
}
