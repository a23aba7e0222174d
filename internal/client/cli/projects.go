package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/internal/validation"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pwnflow projects <list|show|create|delete|use|timeline|tag>")
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return c.runProjectsList(ctx)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow projects show <project-id>")
		}
		return c.runProjectsShow(ctx, args[1])
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow projects create <name>")
		}
		return c.runProjectsCreate(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow projects delete <project-id>...")
		}
		return c.runProjectsDelete(ctx, args[1:])
	case "use":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow projects use <project-id>")
		}
		return c.runProjectsUse(ctx, args[1])
	case "timeline":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow projects timeline <project-id>")
		}
		return c.runProjectsTimeline(ctx, args[1])
	case "tag":
		if len(args) < 4 {
			return fmt.Errorf("usage: pwnflow projects tag <project-id> <add|remove> <tag>")
		}
		return c.runProjectsTag(ctx, args[1], args[2], args[3])
	default:
		return fmt.Errorf("unknown projects subcommand: %s", args[0])
	}
}

func (c *Cli) runProjectsList(ctx context.Context) error {
	projects, err := c.apiClient.ListProjects(ctx)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Set(cache.ProjectListKey(), projects)

	if len(projects) == 0 {
		c.io.Println("No projects found.")
		c.io.Println()
		c.io.Println("Use 'pwnflow projects create <name>' to create one.")
		return nil
	}

	c.io.Printf("Found %d project(s):\n", len(projects))
	c.io.Println()

	for i, project := range projects {
		c.io.Printf("%d. %s\n", i+1, project.Name)
		c.io.Printf("   ID:       %s\n", project.ID)
		if project.Description != "" {
			c.io.Printf("   About:    %s\n", truncate(project.Description, 70))
		}
		c.io.Printf("   Nodes:    %d, contexts: %d\n", project.NodeCount, project.ContextCount)
		if len(project.CategoryTags) > 0 {
			c.io.Printf("   Tags:     %v\n", project.CategoryTags)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runProjectsShow(ctx context.Context, projectID string) error {
	if err := validation.ValidateID(projectID); err != nil {
		return err
	}

	project, err := c.apiClient.GetProject(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Set(cache.ProjectKey(project.ID), *project)

	c.io.Printf("Project: %s\n", project.Name)
	c.io.Printf("ID:      %s\n", project.ID)
	if project.Description != "" {
		c.io.Printf("About:   %s\n", project.Description)
	}
	c.io.Printf("Layout:  %s\n", project.LayoutDirection)
	c.io.Printf("Nodes:   %d\n", project.NodeCount)
	c.io.Printf("Contexts: %d\n", project.ContextCount)
	if len(project.CategoryTags) > 0 {
		c.io.Printf("Tags:    %v\n", project.CategoryTags)
	}
	if project.CreatedAt != nil {
		c.io.Printf("Created: %s\n", project.CreatedAt.Format(time.RFC3339))
	}

	return nil
}

func (c *Cli) runProjectsCreate(ctx context.Context, name string) error {
	if err := validation.ValidateProjectName(name); err != nil {
		return err
	}

	project, err := c.apiClient.CreateProject(ctx, api.ProjectCreateRequest{Name: name})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Project created!")
	c.io.Printf("ID: %s\n", project.ID)
	c.io.Printf("Run 'pwnflow projects use %s' to make it active.\n", project.ID)

	return nil
}

func (c *Cli) runProjectsDelete(ctx context.Context, projectIDs []string) error {
	for _, id := range projectIDs {
		if err := validation.ValidateID(id); err != nil {
			return err
		}
	}

	confirmed, err := c.io.Confirm(fmt.Sprintf("Delete %d project(s)? This cannot be undone.", len(projectIDs)))
	if err != nil {
		return err
	}
	if !confirmed {
		c.io.Println("Cancelled.")
		return nil
	}

	if len(projectIDs) == 1 {
		if err := c.apiClient.DeleteProject(ctx, projectIDs[0]); err != nil {
			return c.apiError(ctx, err)
		}
		c.cacheStore.Invalidate(cache.ProjectKey(projectIDs[0]))
	} else {
		result, err := c.apiClient.BulkDeleteProjects(ctx, projectIDs)
		if err != nil {
			return c.apiError(ctx, err)
		}
		for _, id := range projectIDs {
			c.cacheStore.Invalidate(cache.ProjectKey(id))
		}
		c.io.Printf("Deleted %d project(s).\n", result.Deleted)
		for _, msg := range result.Errors {
			c.io.Printf("⚠️  %s\n", msg)
		}
	}
	c.cacheStore.Invalidate(cache.ProjectListKey())

	c.io.Println("✓ Deleted.")
	return nil
}

func (c *Cli) runProjectsUse(ctx context.Context, projectID string) error {
	if err := validation.ValidateID(projectID); err != nil {
		return err
	}

	// Проверяем, что проект существует и доступен
	project, err := c.apiClient.GetProject(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if err := c.metadata.SaveActiveProject(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to save active project: %w", err)
	}

	c.cacheStore.Set(cache.ProjectKey(project.ID), *project)
	c.io.Printf("✓ Active project: %s (%s)\n", project.Name, project.ID)

	return nil
}

func (c *Cli) runProjectsTimeline(ctx context.Context, projectID string) error {
	if err := validation.ValidateID(projectID); err != nil {
		return err
	}

	entries, err := c.apiClient.GetProjectTimeline(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	if len(entries) == 0 {
		c.io.Println("No findings recorded yet.")
		return nil
	}

	c.io.Printf("Timeline: %d finding(s)\n", len(entries))
	c.io.Println()
	for _, entry := range entries {
		c.io.Printf("%s  %s\n", entry.Date.Format("2006-01-02"), entry.NodeTitle)
		c.io.Printf("    %s\n", truncate(entry.Content, 100))
		if entry.CreatedBy != "" {
			c.io.Printf("    by %s\n", entry.CreatedBy)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runProjectsTag(ctx context.Context, projectID, op, tag string) error {
	if err := validation.ValidateID(projectID); err != nil {
		return err
	}

	var project *api.Project
	var err error

	switch op {
	case "add":
		project, err = c.apiClient.AddProjectCategoryTag(ctx, projectID, tag)
	case "remove":
		project, err = c.apiClient.RemoveProjectCategoryTag(ctx, projectID, tag)
	default:
		return fmt.Errorf("unknown tag operation: %s (use add or remove)", op)
	}
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.cacheStore.Set(cache.ProjectKey(project.ID), *project)
	c.io.Printf("✓ Tags: %v\n", project.CategoryTags)

	return nil
}
