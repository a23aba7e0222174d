package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func (c *Cli) runScope(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pwnflow scope <list|add|set-status|import-nmap|stats>")
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	projectID, err := c.activeProject(ctx)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.runScopeList(ctx, projectID)
	case "add":
		return c.runScopeAdd(ctx, projectID)
	case "set-status":
		if len(args) < 3 {
			return fmt.Errorf("usage: pwnflow scope set-status <status> <asset-id>...")
		}
		return c.runScopeSetStatus(ctx, projectID, args[1], args[2:])
	case "import-nmap":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow scope import-nmap <file.xml>")
		}
		return c.runScopeImportNmap(ctx, projectID, args[1])
	case "stats":
		return c.runScopeStats(ctx, projectID)
	default:
		return fmt.Errorf("unknown scope subcommand: %s", args[0])
	}
}

func (c *Cli) runScopeList(ctx context.Context, projectID string) error {
	assets, err := c.apiClient.ListScopeAssets(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Set(cache.ScopeKey(projectID), assets)

	if len(assets) == 0 {
		c.io.Println("Scope is empty.")
		c.io.Println()
		c.io.Println("Use 'pwnflow scope add' or 'pwnflow scope import-nmap <file>' to populate it.")
		return nil
	}

	c.io.Printf("%d asset(s) in scope:\n", len(assets))
	c.io.Println()

	for _, asset := range assets {
		c.io.Printf("%s:%d/%s  [%s]\n", asset.IP, asset.Port, asset.Protocol, asset.Status)
		c.io.Printf("   ID: %s\n", asset.ID)
		if len(asset.Hostnames) > 0 {
			c.io.Printf("   Hostnames: %v\n", asset.Hostnames)
		}
		if asset.DiscoveredVia != "" {
			c.io.Printf("   Discovered via: %s\n", asset.DiscoveredVia)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runScopeAdd(ctx context.Context, projectID string) error {
	ip, err := c.io.ReadInput("IP address: ")
	if err != nil {
		return fmt.Errorf("failed to read ip: %w", err)
	}

	portInput, err := c.io.ReadInput("Port: ")
	if err != nil {
		return fmt.Errorf("failed to read port: %w", err)
	}
	port, err := strconv.Atoi(portInput)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %s", portInput)
	}

	protocol, err := c.io.ReadInput("Protocol (tcp/udp, default tcp): ")
	if err != nil {
		return fmt.Errorf("failed to read protocol: %w", err)
	}

	asset, err := c.apiClient.CreateScopeAsset(ctx, projectID, api.ScopeAssetCreateRequest{
		IP:            ip,
		Port:          port,
		Protocol:      protocol,
		DiscoveredVia: "manual",
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Invalidate(cache.ScopeKey(projectID))
	c.io.Println("✓ Asset added!")
	c.io.Printf("ID: %s\n", asset.ID)

	return nil
}

func (c *Cli) runScopeSetStatus(ctx context.Context, projectID, status string, assetIDs []string) error {
	switch status {
	case api.AssetStatusNotTested, api.AssetStatusTesting, api.AssetStatusClean,
		api.AssetStatusVulnerable, api.AssetStatusExploitable:
	default:
		return fmt.Errorf("invalid asset status: %s", status)
	}

	err := c.apiClient.BulkUpdateScopeStatus(ctx, projectID, api.BulkStatusUpdate{
		NewStatus: status,
		AssetIDs:  assetIDs,
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Invalidate(cache.ScopeKey(projectID))
	c.io.Printf("✓ %d asset(s) set to %s.\n", len(assetIDs), status)

	return nil
}

func (c *Cli) runScopeImportNmap(ctx context.Context, projectID, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read nmap file: %w", err)
	}

	stats, err := c.apiClient.ImportNmap(ctx, projectID, api.NmapImportRequest{
		XMLContent:    string(content),
		OpenPortsOnly: true,
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Invalidate(cache.ScopeKey(projectID))

	c.io.Println("✓ Nmap import completed!")
	c.io.Printf("Hosts processed:  %d\n", stats.HostsProcessed)
	c.io.Printf("Services created: %d\n", stats.ServicesCreated)
	c.io.Printf("Services updated: %d\n", stats.ServicesUpdated)
	c.io.Printf("Hostnames linked: %d\n", stats.HostnamesLinked)
	if stats.VhostsDetected > 0 {
		c.io.Printf("Vhosts detected:  %d\n", stats.VhostsDetected)
	}
	for _, msg := range stats.Errors {
		c.io.Printf("⚠️  %s\n", msg)
	}

	return nil
}

func (c *Cli) runScopeStats(ctx context.Context, projectID string) error {
	stats, err := c.apiClient.GetScopeStats(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("=== Scope Statistics ===")
	c.io.Printf("Total assets: %d\n", stats.TotalAssets)
	c.io.Printf("Total hosts:  %d\n", stats.TotalHosts)
	c.io.Printf("Completion:   %d%%\n", stats.CompletionPercentage)
	if len(stats.AssetsByStatus) > 0 {
		c.io.Println()
		for _, status := range []string{
			api.AssetStatusNotTested, api.AssetStatusTesting, api.AssetStatusClean,
			api.AssetStatusVulnerable, api.AssetStatusExploitable,
		} {
			if count, ok := stats.AssetsByStatus[status]; ok {
				c.io.Printf("  %-12s %d\n", status, count)
			}
		}
	}

	return nil
}
