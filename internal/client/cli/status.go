package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	status, err := c.authService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !status.Authenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'pwnflow login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", status.Username)
	c.io.Printf("Server:   %s\n", status.ServerURL)
	c.io.Printf("Token expires: %s\n", status.ExpiresAt.Format(time.RFC3339))

	remaining := time.Until(status.ExpiresAt)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	if projectID, err := c.metadata.GetActiveProject(ctx); err == nil && projectID != "" {
		c.io.Println()
		c.io.Printf("Active project: %s\n", projectID)
	}

	if cached, err := c.snapshots.ListSnapshots(ctx); err == nil && len(cached) > 0 {
		c.io.Printf("Cached snapshots: %d project(s)\n", len(cached))
	}

	return nil
}
