package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	clientapi "github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/internal/editing"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func (c *Cli) runNodes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pwnflow nodes <list|show|create|set|edit|move|delete|duplicate|link|unlink|tag|command|finding>")
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
		return c.runNodesList(ctx, projectID)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes show <node-id>")
		}
		return c.runNodesShow(ctx, projectID, args[1])
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes create <title>")
		}
		return c.runNodesCreate(ctx, projectID, args[1])
	case "set":
		if len(args) < 4 {
			return fmt.Errorf("usage: pwnflow nodes set <node-id> <title|description|status> <value>")
		}
		return c.runNodesSet(ctx, projectID, args[1], args[2], args[3])
	case "edit":
		if len(args) < 3 {
			return fmt.Errorf("usage: pwnflow nodes edit <node-id> <title|description|status>")
		}
		return c.runNodesEdit(ctx, projectID, args[1], args[2])
	case "move":
		if len(args) < 4 {
			return fmt.Errorf("usage: pwnflow nodes move <node-id> <x> <y>")
		}
		return c.runNodesMove(ctx, projectID, args[1], args[2], args[3])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes delete <node-id>...")
		}
		return c.runNodesDelete(ctx, projectID, args[1:])
	case "duplicate":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes duplicate <node-id>")
		}
		return c.runNodesDuplicate(ctx, projectID, args[1])
	case "link":
		if len(args) < 3 {
			return fmt.Errorf("usage: pwnflow nodes link <source-id> <target-id>")
		}
		return c.runNodesLink(ctx, projectID, args[1], args[2], true)
	case "unlink":
		if len(args) < 3 {
			return fmt.Errorf("usage: pwnflow nodes unlink <source-id> <target-id>")
		}
		return c.runNodesLink(ctx, projectID, args[1], args[2], false)
	case "tag":
		if len(args) < 4 {
			return fmt.Errorf("usage: pwnflow nodes tag <node-id> <add|remove> <tag>")
		}
		return c.runNodesTag(ctx, projectID, args[1], args[2], args[3])
	case "command":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes command <node-id>")
		}
		return c.runNodesCommand(ctx, projectID, args[1])
	case "finding":
		if len(args) < 2 {
			return fmt.Errorf("usage: pwnflow nodes finding <node-id>")
		}
		return c.runNodesFinding(ctx, projectID, args[1])
	default:
		return fmt.Errorf("unknown nodes subcommand: %s", args[0])
	}
}

func (c *Cli) runNodesList(ctx context.Context, projectID string) error {
	graph, err := c.nodeService.RefreshGraph(ctx, projectID)
	if err != nil {
		if errors.Is(err, clientapi.ErrUnauthorized) {
			return c.apiError(ctx, err)
		}
		// Сервер недоступен - пробуем показать локальный снапшот
		return c.runNodesListOffline(ctx, projectID, err)
	}

	// Обновляем локальный снапшот для офлайн-просмотра
	if err := c.nodeService.SaveSnapshot(ctx, projectID); err != nil {
		c.logger.Warn("Failed to save project snapshot", "project_id", projectID, "error", err)
	}

	if len(graph.Nodes) == 0 {
		c.io.Println("No nodes yet.")
		c.io.Println()
		c.io.Println("Use 'pwnflow nodes create <title>' to add the first one.")
		return nil
	}

	c.io.Printf("%d node(s), %d link(s):\n", len(graph.Nodes), len(graph.Links))
	c.io.Println()
	c.printNodeList(graph.Nodes)

	return nil
}

func (c *Cli) runNodesListOffline(ctx context.Context, projectID string, refreshErr error) error {
	snapshot, err := c.snapshots.GetSnapshot(ctx, projectID)
	if err != nil {
		return c.apiError(ctx, refreshErr)
	}

	c.io.Printf("⚠️  Server unreachable, showing local snapshot from %s\n",
		snapshot.SavedAt.Format(time.RFC3339))
	c.io.Println()
	c.io.Printf("%d node(s):\n", len(snapshot.Nodes))
	c.io.Println()
	c.printNodeList(snapshot.Nodes)

	return nil
}

func (c *Cli) printNodeList(nodes []api.Node) {
	for _, node := range nodes {
		c.io.Printf("%s %s\n", statusGlyph(node.Status), node.Title)
		c.io.Printf("   ID:     %s\n", node.ID)
		c.io.Printf("   Status: %s\n", node.Status)
		if len(node.Tags) > 0 {
			c.io.Printf("   Tags:   %v\n", node.Tags)
		}
		if node.Finding != nil {
			c.io.Printf("   Finding: %s\n", truncate(node.Finding.Content, 70))
		}
		c.io.Println()
	}
}

func (c *Cli) runNodesShow(ctx context.Context, projectID, nodeID string) error {
	node, err := c.nodeService.Node(ctx, projectID, nodeID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("%s %s\n", statusGlyph(node.Status), node.Title)
	c.io.Printf("ID:       %s\n", node.ID)
	c.io.Printf("Status:   %s\n", node.Status)
	c.io.Printf("Position: %.0f, %.0f\n", node.XPos, node.YPos)
	if node.Description != "" {
		c.io.Printf("About:    %s\n", node.Description)
	}
	if len(node.Tags) > 0 {
		c.io.Printf("Tags:     %v\n", node.Tags)
	}
	if len(node.Parents) > 0 {
		c.io.Printf("Parents:  %v\n", node.Parents)
	}
	if len(node.Children) > 0 {
		c.io.Printf("Children: %v\n", node.Children)
	}
	if len(node.Commands) > 0 {
		c.io.Println("Commands:")
		for _, command := range node.Commands {
			c.io.Printf("  %s: %s\n", command.Title, command.Command)
		}
	}
	if node.Finding != nil {
		c.io.Println("Finding:")
		c.io.Printf("  %s\n", node.Finding.Content)
	}

	return nil
}

func (c *Cli) runNodesCreate(ctx context.Context, projectID, title string) error {
	node, err := c.nodeService.CreateNode(ctx, projectID, api.NodeCreateRequest{Title: title})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Node created!")
	c.io.Printf("ID: %s\n", node.ID)

	return nil
}

func (c *Cli) runNodesSet(ctx context.Context, projectID, nodeID, field, value string) error {
	node, err := c.nodeService.UpdateNodeFields(ctx, projectID, nodeID, map[string]string{field: value})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ %s %s\n", statusGlyph(node.Status), node.Title)

	return nil
}

// runNodesEdit открывает сессию редактирования поля: текущее значение
// показывается, новое вводится и коммитится через editing store.
func (c *Cli) runNodesEdit(ctx context.Context, projectID, nodeID, field string) error {
	node, err := c.nodeService.Node(ctx, projectID, nodeID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	current := ""
	switch field {
	case "title":
		current = node.Title
	case "description":
		current = node.Description
	case "status":
		current = node.Status
	default:
		return fmt.Errorf("unknown node field: %s", field)
	}

	editingStore := editing.NewStore(c.nodeService.FieldCommitter(projectID), c.logger)
	editingStore.StartEditing(nodeID, field, current)

	c.io.Printf("Current %s: %s\n", field, current)
	value, err := c.io.ReadInput("New value (empty to cancel): ")
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}
	if value == "" {
		editingStore.CancelEdit(nodeID, field)
		c.io.Println("Cancelled.")
		return nil
	}

	editingStore.UpdateValue(nodeID, field, value, false)
	if !editingStore.CommitEdit(ctx, nodeID, field) {
		return fmt.Errorf("failed to commit %s", field)
	}

	c.io.Println("✓ Saved.")
	return nil
}

func (c *Cli) runNodesMove(ctx context.Context, projectID, nodeID, xArg, yArg string) error {
	x, err := strconv.ParseFloat(xArg, 64)
	if err != nil {
		return fmt.Errorf("invalid x position: %s", xArg)
	}
	y, err := strconv.ParseFloat(yArg, 64)
	if err != nil {
		return fmt.Errorf("invalid y position: %s", yArg)
	}

	err = c.nodeService.MoveNodes(ctx, projectID, []api.NodePositionUpdate{
		{ID: nodeID, XPos: x, YPos: y},
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Moved.")
	return nil
}

func (c *Cli) runNodesDelete(ctx context.Context, projectID string, nodeIDs []string) error {
	confirmed, err := c.io.Confirm(fmt.Sprintf("Delete %d node(s)?", len(nodeIDs)))
	if err != nil {
		return err
	}
	if !confirmed {
		c.io.Println("Cancelled.")
		return nil
	}

	if len(nodeIDs) == 1 {
		err = c.nodeService.DeleteNode(ctx, projectID, nodeIDs[0])
	} else {
		err = c.nodeService.BulkDeleteNodes(ctx, projectID, nodeIDs)
	}
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Deleted.")
	return nil
}

func (c *Cli) runNodesDuplicate(ctx context.Context, projectID, nodeID string) error {
	node, err := c.nodeService.DuplicateNode(ctx, projectID, nodeID)
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Node duplicated!")
	c.io.Printf("ID: %s\n", node.ID)

	return nil
}

func (c *Cli) runNodesLink(ctx context.Context, projectID, sourceID, targetID string, link bool) error {
	var err error
	if link {
		err = c.nodeService.LinkNodes(ctx, projectID, sourceID, targetID)
	} else {
		err = c.nodeService.UnlinkNodes(ctx, projectID, sourceID, targetID)
	}
	if err != nil {
		return c.apiError(ctx, err)
	}

	if link {
		c.io.Println("✓ Linked.")
	} else {
		c.io.Println("✓ Unlinked.")
	}
	return nil
}

func (c *Cli) runNodesTag(ctx context.Context, projectID, nodeID, op, tag string) error {
	var node *api.Node
	var err error

	switch op {
	case "add":
		node, err = c.nodeService.AddTag(ctx, projectID, nodeID, tag)
	case "remove":
		node, err = c.nodeService.RemoveTag(ctx, projectID, nodeID, tag)
	default:
		return fmt.Errorf("unknown tag operation: %s (use add or remove)", op)
	}
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Printf("✓ Tags: %v\n", node.Tags)
	return nil
}

func (c *Cli) runNodesCommand(ctx context.Context, projectID, nodeID string) error {
	title, err := c.io.ReadInput("Command title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	commandLine, err := c.io.ReadInput("Command (may use {{variables}}): ")
	if err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	command, err := c.nodeService.AddCommand(ctx, projectID, nodeID, api.CommandRequest{
		Title:       title,
		Command:     commandLine,
		Description: description,
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Command added!")
	c.io.Printf("ID: %s\n", command.ID)

	return nil
}

func (c *Cli) runNodesFinding(ctx context.Context, projectID, nodeID string) error {
	content, err := c.io.ReadInput("Finding (Markdown): ")
	if err != nil {
		return fmt.Errorf("failed to read finding: %w", err)
	}
	if content == "" {
		return fmt.Errorf("finding cannot be empty")
	}

	finding, err := c.nodeService.RecordFinding(ctx, projectID, nodeID, api.FindingRequest{
		Content: content,
	})
	if err != nil {
		return c.apiError(ctx, err)
	}

	c.io.Println("✓ Finding recorded!")
	c.io.Printf("ID: %s\n", finding.ID)

	return nil
}
