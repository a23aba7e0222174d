package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// importServer повторяет endpoints предпросмотра и импорта и считает запросы
type importServer struct {
	server *httptest.Server

	mu       sync.Mutex
	previews int
	imports  int
}

func newImportServer(t *testing.T) *importServer {
	t.Helper()

	s := &importServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/projects/import/preview", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.previews++
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ImportPreviewResponse{
			Type:         "project",
			Name:         "External Pentest",
			NodeCount:    12,
			ContextCount: 2,
			CommandCount: 7,
		})
	})
	mux.HandleFunc("/api/v1/projects/import", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.imports++
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ProjectImportResponse{
			ProjectID: "proj-new",
			Success:   true,
		})
	})
	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)

	return s
}

func (s *importServer) counts() (previews, imports int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previews, s.imports
}

func importFixture(t *testing.T, server *importServer) (*testFixture, string) {
	t.Helper()

	f := newTestFixture(t)
	authenticated(f)
	f.cli.apiClient = clientapi.NewClient(server.server.URL)

	bundle := filepath.Join(t.TempDir(), "assessment.penflow-project")
	require.NoError(t, os.WriteFile(bundle, []byte("opaque bundle bytes"), 0o600))
	return f, bundle
}

func TestCli_RunImport_CancelDoesNotMutate(t *testing.T) {
	server := newImportServer(t)
	f, bundle := importFixture(t, server)

	f.io.ReadPasswordFunc = func(prompt string) (string, error) { return "", nil }
	f.io.ConfirmFunc = func(prompt string) (bool, error) { return false, nil }

	err := f.cli.Run(context.Background(), "import", []string{bundle})
	require.NoError(t, err)

	previews, imports := server.counts()
	assert.Equal(t, 1, previews)
	assert.Equal(t, 0, imports, "cancelled import must not touch the server")
	assert.Contains(t, f.io.output(), "Nothing was imported")
}

func TestCli_RunImport_Confirmed(t *testing.T) {
	server := newImportServer(t)
	f, bundle := importFixture(t, server)

	f.io.ReadPasswordFunc = func(prompt string) (string, error) { return "", nil }
	f.io.ConfirmFunc = func(prompt string) (bool, error) { return true, nil }

	err := f.cli.Run(context.Background(), "import", []string{bundle})
	require.NoError(t, err)

	previews, imports := server.counts()
	assert.Equal(t, 1, previews)
	assert.Equal(t, 1, imports)

	output := f.io.output()
	assert.Contains(t, output, "External Pentest")
	assert.Contains(t, output, "proj-new")
}

func TestCli_RunImport_MissingFile(t *testing.T) {
	server := newImportServer(t)
	f, _ := importFixture(t, server)

	err := f.cli.Run(context.Background(), "import", []string{"/nonexistent/bundle"})
	require.Error(t, err)

	previews, imports := server.counts()
	assert.Equal(t, 0, previews)
	assert.Equal(t, 0, imports)
}
