package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/internal/client/auth"
	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/internal/client/iocli"
	"github.com/pwnflow/pwnflow-cli/internal/client/nodes"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
)

type Cli struct {
	io          iocli.IO
	apiClient   *clientapi.Client
	authService auth.Service
	nodeService nodes.Service
	cacheStore  *cache.Store
	metadata    storage.MetadataStorage
	snapshots   storage.SnapshotStorage
	logger      *slog.Logger
}

func New(
	io iocli.IO,
	apiClient *clientapi.Client,
	authService auth.Service,
	nodeService nodes.Service,
	cacheStore *cache.Store,
	metadata storage.MetadataStorage,
	snapshots storage.SnapshotStorage,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		nodeService: nodeService,
		cacheStore:  cacheStore,
		metadata:    metadata,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// requireSession восстанавливает сохраненную сессию и выставляет токен
// в API клиент. Команды, ходящие на сервер, вызывают его первым делом.
func (c *Cli) requireSession(ctx context.Context) (*storage.AuthData, error) {
	authData, err := c.authService.Restore(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'pwnflow login' first")
		}
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return authData, nil
}

// apiError обрабатывает ошибку запроса к серверу: 401 означает, что сессия
// больше не действительна, и локальное состояние авторизации сбрасывается.
func (c *Cli) apiError(ctx context.Context, err error) error {
	if errors.Is(err, clientapi.ErrUnauthorized) {
		c.authService.ForceLogout(ctx)
		c.io.Println("Session is no longer valid. Please run 'pwnflow login' again.")
	}
	return err
}

// activeProject возвращает проект, выбранный через 'projects use'
func (c *Cli) activeProject(ctx context.Context) (string, error) {
	projectID, err := c.metadata.GetActiveProject(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read active project: %w", err)
	}
	if projectID == "" {
		return "", fmt.Errorf("no active project. Run 'pwnflow projects use <id>' first")
	}
	return projectID, nil
}

func PrintUsage() {
	fmt.Println("Pwnflow Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pwnflow [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8000)")
	fmt.Println("  --db PATH       Path to local database (default: pwnflow-client.db)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  PWNFLOW_SERVER            Server URL (overridden by --server)")
	fmt.Println("  PWNFLOW_TOKEN_PASSPHRASE  Passphrase protecting the stored session token")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                     Register new user")
	fmt.Println("  login                        Login to server")
	fmt.Println("  logout                       Logout and clear local data")
	fmt.Println("  status                       Show authentication status")
	fmt.Println("  projects <subcommand>        Manage projects (list, show, create, delete, use, timeline, tag)")
	fmt.Println("  nodes <subcommand>           Manage nodes of the active project")
	fmt.Println("  scope <subcommand>           Manage scope assets (list, add, set-status, import-nmap, stats)")
	fmt.Println("  export <project-id> <file>   Export a project to a .penflow-project file")
	fmt.Println("  import <file> [project-id]   Import a project file (preview + confirm)")
	fmt.Println("  watch                        Stream live updates of the active project")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pwnflow login")
	fmt.Println("  pwnflow projects list")
	fmt.Println("  pwnflow projects use b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  pwnflow nodes list")
	fmt.Println("  pwnflow nodes set 7d12a0c1-ff00-4bb1-9e05-5d8f3b6f2a10 status IN_PROGRESS")
	fmt.Println("  pwnflow scope import-nmap scan.xml")
	fmt.Println("  pwnflow export b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 assessment.penflow-project")
	fmt.Println("  pwnflow --server https://pwnflow.example.com watch")
}
