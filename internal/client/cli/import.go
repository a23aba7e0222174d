package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pwnflow import <file> [target-project-id]")
	}
	path := args[0]
	targetProjectID := ""
	if len(args) > 1 {
		targetProjectID = args[1]
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	filename := filepath.Base(path)

	password, err := c.io.ReadPassword("Password (empty if not encrypted): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Предпросмотр ничего не меняет на сервере
	preview, err := c.apiClient.PreviewProjectImport(ctx, filename, blob, password)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println()
	c.io.Printf("=== Import Preview: %s ===\n", preview.Name)
	if preview.Description != "" {
		c.io.Printf("About: %s\n", preview.Description)
	}
	c.io.Printf("Type:       %s\n", preview.Type)
	if preview.ExportedAt != "" {
		c.io.Printf("Exported:   %s\n", preview.ExportedAt)
	}
	c.io.Printf("Nodes:      %d\n", preview.NodeCount)
	c.io.Printf("Contexts:   %d\n", preview.ContextCount)
	c.io.Printf("Commands:   %d\n", preview.CommandCount)
	c.io.Printf("Variables:  %d\n", preview.VariableCount)
	c.io.Printf("Tags:       %d\n", preview.TagCount)
	if preview.ScopeAssetCount > 0 {
		c.io.Printf("Scope:      %d asset(s)\n", preview.ScopeAssetCount)
	}
	c.io.Println()

	mode := api.ImportModeNew
	prompt := "Import as a new project?"
	if targetProjectID != "" {
		mode = api.ImportModeMerge
		prompt = fmt.Sprintf("Merge into project %s?", targetProjectID)
	}

	confirmed, err := c.io.Confirm(prompt)
	if err != nil {
		return err
	}
	if !confirmed {
		// Отмена на предпросмотре - сервер не тронут
		c.io.Println("Cancelled. Nothing was imported.")
		return nil
	}

	result, err := c.apiClient.ImportProject(ctx, filename, blob, password, mode, targetProjectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Import completed!")
	c.io.Printf("Project ID: %s\n", result.ProjectID)
	if result.Message != "" {
		c.io.Println(result.Message)
	}

	return nil
}
