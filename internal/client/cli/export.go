package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pwnflow/pwnflow-cli/internal/validation"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: pwnflow export <project-id> <output-file>")
	}
	projectID, outputPath := args[0], args[1]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	method, err := c.io.ReadInput("Encryption (none/password/generated, default none): ")
	if err != nil {
		return fmt.Errorf("failed to read encryption method: %w", err)
	}
	if method == "" {
		method = api.EncryptionNone
	}

	encryption := api.ExportEncryption{Method: method}
	switch method {
	case api.EncryptionNone, api.EncryptionGenerated:
	case api.EncryptionPassword:
		// Пароль проверяется до каких-либо запросов к серверу
		password, err := c.io.ReadPassword("Export password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		confirmation, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}
		if err := validation.ValidateExportPassword(password, confirmation); err != nil {
			return err
		}
		encryption.Password = password
	default:
		return fmt.Errorf("unknown encryption method: %s", method)
	}

	c.io.Println("Requesting export...")

	job, err := c.apiClient.ExportProject(ctx, projectID, api.ProjectExportRequest{
		Encryption: encryption,
		Options: api.ExportOptions{
			IncludeVariables: true,
			IncludeScope:     true,
		},
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	blob, err := c.apiClient.DownloadExport(ctx, job.DownloadURL)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if err := os.WriteFile(outputPath, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	c.io.Println("✓ Export completed!")
	c.io.Printf("File: %s (%d bytes)\n", outputPath, len(blob))
	if job.GeneratedPassword != "" {
		c.io.Println()
		c.io.Printf("Generated password: %s\n", job.GeneratedPassword)
		c.io.Println("Store it now - the server will not show it again.")
	}

	return nil
}
