package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pwnflow/pwnflow-cli/internal/client/refresh"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// runWatch подключает канал живых обновлений к активному проекту и печатает
// события по мере поступления. Завершается по отмене контекста (Ctrl+C).
func (c *Cli) runWatch(ctx context.Context) error {
	authData, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	projectID, err := c.activeProject(ctx)
	if err != nil {
		return err
	}

	// Начальное состояние графа, чтобы события было к чему применять
	if _, err := c.nodeService.RefreshGraph(ctx, projectID); err != nil {
		return c.apiError(ctx, err)
	}

	channel := refresh.NewChannel(c.apiClient.BaseURL(), authData.AccessToken, projectID, c.logger)

	channel.OnStateChange = func(state refresh.State) {
		c.io.Printf("[%s] connection %s\n", time.Now().Format("15:04:05"), state)
	}
	channel.OnNodesChanged = func() {
		c.nodeService.HandleNodesChanged(projectID)
		c.io.Printf("[%s] nodes changed\n", time.Now().Format("15:04:05"))
		c.recordEvent(ctx)
	}
	channel.OnNodeUpdated = func(node api.Node) {
		c.nodeService.ApplyServerNode(projectID, node)
		c.io.Printf("[%s] node updated: %s %s\n", time.Now().Format("15:04:05"), statusGlyph(node.Status), node.Title)
		c.recordEvent(ctx)
	}
	channel.OnParentChanged = func() {
		c.nodeService.HandleNodesChanged(projectID)
		c.io.Printf("[%s] node links changed\n", time.Now().Format("15:04:05"))
		c.recordEvent(ctx)
	}
	channel.OnScopeUpdated = func() {
		c.io.Printf("[%s] scope updated\n", time.Now().Format("15:04:05"))
		c.recordEvent(ctx)
	}
	channel.OnImportCompleted = func() {
		c.nodeService.HandleNodesChanged(projectID)
		c.io.Printf("[%s] import completed\n", time.Now().Format("15:04:05"))
		c.recordEvent(ctx)
	}

	c.io.Printf("Watching project %s. Press Ctrl+C to stop.\n", projectID)

	if err := channel.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	// Сохраняем последнее состояние перед выходом
	if err := c.nodeService.SaveSnapshot(context.WithoutCancel(ctx), projectID); err != nil {
		c.logger.Warn("Failed to save project snapshot", "project_id", projectID, "error", err)
	}

	return nil
}

// recordEvent запоминает момент последнего примененного события
func (c *Cli) recordEvent(ctx context.Context) {
	if err := c.metadata.SaveLastRefreshTimestamp(ctx, time.Now().Unix()); err != nil {
		c.logger.Warn("Failed to record refresh timestamp", "error", err)
	}
}
