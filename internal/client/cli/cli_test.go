package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/internal/client/auth"
	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/internal/client/iocli"
	"github.com/pwnflow/pwnflow-cli/internal/client/nodes"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage/boltdb"
	"github.com/pwnflow/pwnflow-cli/internal/editing"
	"github.com/pwnflow/pwnflow-cli/internal/models"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capturedIO собирает весь вывод команд в одну строку для assert.Contains
type capturedIO struct {
	*iocli.IOMock
	lines []string
}

func newCapturedIO() *capturedIO {
	captured := &capturedIO{}
	captured.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			captured.lines = append(captured.lines, fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			captured.lines = append(captured.lines, fmt.Sprintf(format, a...))
		},
	}
	return captured
}

func (c *capturedIO) output() string {
	return strings.Join(c.lines, "")
}

// testFixture собирает Cli с реальным bbolt хранилищем и моками сервисов
type testFixture struct {
	cli     *Cli
	io      *capturedIO
	auth    *auth.ServiceMock
	apiMock *nodes.APIMock
	cache   *cache.Store
	storage *boltdb.Storage
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "cli_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	capturedIO := newCapturedIO()
	authMock := &auth.ServiceMock{}
	apiMock := &nodes.APIMock{}
	cacheStore := cache.New()
	editingStore := editing.NewStore(nil, testLogger())
	nodeService := nodes.NewService(apiMock, cacheStore, editingStore, store, testLogger())

	cli := New(capturedIO, clientapi.NewClient("http://localhost:8000"), authMock,
		nodeService, cacheStore, store, store, testLogger())

	return &testFixture{
		cli:     cli,
		io:      capturedIO,
		auth:    authMock,
		apiMock: apiMock,
		cache:   cacheStore,
		storage: store,
	}
}

func authenticated(f *testFixture) {
	f.auth.RestoreFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return &storage.AuthData{
			Username:    "pentester",
			UserID:      "user-1",
			AccessToken: "test-token",
			ServerURL:   "http://localhost:8000",
			ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		}, nil
	}
}

func TestCli_RunLogin(t *testing.T) {
	f := newTestFixture(t)

	f.io.ReadInputFunc = func(prompt string) (string, error) {
		return "pentester", nil
	}
	f.io.ReadPasswordFunc = func(prompt string) (string, error) {
		return "correct horse battery", nil
	}
	f.auth.LoginFunc = func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
		assert.Equal(t, "pentester", username)
		assert.Equal(t, "correct horse battery", password)
		return &auth.LoginResult{
			Username:  username,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}

	err := f.cli.Run(context.Background(), "login", nil)
	require.NoError(t, err)

	assert.Contains(t, f.io.output(), "Login successful")
	assert.Len(t, f.auth.LoginCalls(), 1)
}

func TestCli_RunLogin_InvalidCredentials(t *testing.T) {
	f := newTestFixture(t)

	f.io.ReadInputFunc = func(prompt string) (string, error) { return "pentester", nil }
	f.io.ReadPasswordFunc = func(prompt string) (string, error) { return "wrong", nil }
	f.auth.LoginFunc = func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
		return nil, errors.New("invalid credentials")
	}

	err := f.cli.Run(context.Background(), "login", nil)
	assert.Error(t, err)
}

func TestCli_RunRegister_PasswordMismatch(t *testing.T) {
	f := newTestFixture(t)

	passwords := []string{"first password", "different password"}
	f.io.ReadInputFunc = func(prompt string) (string, error) { return "pentester", nil }
	f.io.ReadPasswordFunc = func(prompt string) (string, error) {
		password := passwords[0]
		passwords = passwords[1:]
		return password, nil
	}
	f.auth.RegisterFunc = func(ctx context.Context, username, email, password string) (*api.User, error) {
		t.Error("register must not be called when passwords do not match")
		return nil, nil
	}

	err := f.cli.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestCli_RunStatus(t *testing.T) {
	f := newTestFixture(t)

	f.auth.StatusFunc = func(ctx context.Context) (*auth.SessionStatus, error) {
		return &auth.SessionStatus{
			Authenticated: true,
			Username:      "pentester",
			ServerURL:     "http://localhost:8000",
			ExpiresAt:     time.Now().Add(30 * time.Minute),
		}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	output := f.io.output()
	assert.Contains(t, output, "Authenticated")
	assert.Contains(t, output, "pentester")
}

func TestCli_RunStatus_NotAuthenticated(t *testing.T) {
	f := newTestFixture(t)

	f.auth.StatusFunc = func(ctx context.Context) (*auth.SessionStatus, error) {
		return &auth.SessionStatus{Authenticated: false}, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, f.io.output(), "Not authenticated")
}

func TestCli_RunLogout_ClearsSnapshots(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	// Локальный снапшот от прошлой сессии
	require.NoError(t, f.storage.SaveSnapshot(ctx, &models.ProjectSnapshot{
		SavedAt: time.Now(),
		Project: api.Project{ID: "proj-1", Name: "External Pentest"},
	}))

	f.auth.LogoutFunc = func(ctx context.Context) error { return nil }

	err := f.cli.Run(ctx, "logout", nil)
	require.NoError(t, err)

	ids, err := f.storage.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "logout must remove cached project data")
	assert.Len(t, f.auth.LogoutCalls(), 1)
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	f := newTestFixture(t)

	err := f.cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCli_Nodes_RequiresActiveProject(t *testing.T) {
	f := newTestFixture(t)
	authenticated(f)

	err := f.cli.Run(context.Background(), "nodes", []string{"list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active project")
}

func TestCli_Nodes_RequiresAuth(t *testing.T) {
	f := newTestFixture(t)

	f.auth.RestoreFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return nil, storage.ErrAuthNotFound
	}

	err := f.cli.Run(context.Background(), "nodes", []string{"list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestCli_NodesSet_UpdatesStatus(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	authenticated(f)
	require.NoError(t, f.storage.SaveActiveProject(ctx, "proj-1"))

	f.apiMock.UpdateNodeFunc = func(ctx context.Context, projectID, nodeID string, req api.NodeUpdateRequest) (*api.Node, error) {
		assert.Equal(t, "proj-1", projectID)
		assert.Equal(t, "node-1", nodeID)
		require.NotNil(t, req.Status)
		return &api.Node{ID: nodeID, Title: "Recon", Status: *req.Status}, nil
	}

	err := f.cli.Run(ctx, "nodes", []string{"set", "node-1", "status", "IN_PROGRESS"})
	require.NoError(t, err)
	assert.Len(t, f.apiMock.UpdateNodeCalls(), 1)
}

func TestCli_NodesDelete_CancelDoesNothing(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	authenticated(f)
	require.NoError(t, f.storage.SaveActiveProject(ctx, "proj-1"))

	f.io.ConfirmFunc = func(prompt string) (bool, error) { return false, nil }
	f.apiMock.DeleteNodeFunc = func(ctx context.Context, projectID, nodeID string) error {
		t.Error("delete must not be called after cancellation")
		return nil
	}

	err := f.cli.Run(ctx, "nodes", []string{"delete", "node-1"})
	require.NoError(t, err)
	assert.Contains(t, f.io.output(), "Cancelled")
	assert.Empty(t, f.apiMock.DeleteNodeCalls())
}

func TestCli_NodesList_SavesSnapshot(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	authenticated(f)
	require.NoError(t, f.storage.SaveActiveProject(ctx, "proj-1"))

	f.apiMock.GetProjectGraphFunc = func(ctx context.Context, projectID string) (*api.NodesWithLinks, error) {
		return &api.NodesWithLinks{
			Nodes: []api.Node{{ID: "node-1", Title: "Recon", Status: api.NodeStatusNotStarted}},
		}, nil
	}

	err := f.cli.Run(ctx, "nodes", []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, f.io.output(), "Recon")

	snapshot, err := f.storage.GetSnapshot(ctx, "proj-1")
	require.NoError(t, err)
	assert.Len(t, snapshot.Nodes, 1)
}

func TestCli_ProjectsUse_RejectsMalformedID(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	authenticated(f)

	err := f.cli.Run(ctx, "projects", []string{"use", "not-a-uuid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a UUID")

	// Активный проект не должен меняться при невалидном id
	projectID, err := f.storage.GetActiveProject(ctx)
	require.NoError(t, err)
	assert.Empty(t, projectID)
}

func TestCli_NodesList_FallsBackToSnapshotOffline(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	authenticated(f)
	require.NoError(t, f.storage.SaveActiveProject(ctx, "proj-1"))

	require.NoError(t, f.storage.SaveSnapshot(ctx, &models.ProjectSnapshot{
		SavedAt: time.Now().UTC(),
		Project: api.Project{ID: "proj-1", Name: "External Pentest"},
		Nodes:   []api.Node{{ID: "node-1", Title: "Recon", Status: api.NodeStatusInProgress}},
	}))

	f.apiMock.GetProjectGraphFunc = func(ctx context.Context, projectID string) (*api.NodesWithLinks, error) {
		return nil, fmt.Errorf("dial tcp: connection refused")
	}

	err := f.cli.Run(ctx, "nodes", []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, f.io.output(), "local snapshot")
	assert.Contains(t, f.io.output(), "Recon")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "пентест…", truncate("пентест и еще текст", 7))
}
