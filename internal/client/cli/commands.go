package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду верхнего уровня
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "projects":
		return c.runProjects(ctx, args)
	case "nodes":
		return c.runNodes(ctx, args)
	case "scope":
		return c.runScope(ctx, args)
	case "export":
		return c.runExport(ctx, args)
	case "import":
		return c.runImport(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
