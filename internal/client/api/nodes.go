package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func nodesPath(projectID, suffix string) string {
	return fmt.Sprintf("/api/v1/projects/%s/nodes%s", url.PathEscape(projectID), suffix)
}

// GetProjectGraph возвращает все узлы проекта вместе с ребрами
func (c *Client) GetProjectGraph(ctx context.Context, projectID string) (*api.NodesWithLinks, error) {
	var resp api.NodesWithLinks
	if err := c.doRequest(ctx, "GET", nodesPath(projectID, "/"), nil, &resp); err != nil {
		return nil, fmt.Errorf("get project graph request failed: %w", err)
	}
	return &resp, nil
}

// GetNode возвращает узел по ID
func (c *Client) GetNode(ctx context.Context, projectID, nodeID string) (*api.Node, error) {
	var resp api.Node
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get node request failed: %w", err)
	}
	return &resp, nil
}

// CreateNode создает узел
func (c *Client) CreateNode(ctx context.Context, projectID string, req api.NodeCreateRequest) (*api.Node, error) {
	var resp api.Node
	if err := c.doRequest(ctx, "POST", nodesPath(projectID, "/"), req, &resp); err != nil {
		return nil, fmt.Errorf("create node request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNode частично обновляет узел: nil-поля не трогаются
func (c *Client) UpdateNode(ctx context.Context, projectID, nodeID string, req api.NodeUpdateRequest) (*api.Node, error) {
	var resp api.Node
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update node request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNode удаляет узел
func (c *Client) DeleteNode(ctx context.Context, projectID, nodeID string) error {
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete node request failed: %w", err)
	}
	return nil
}

// DuplicateNode создает копию узла вместе с командами и тегами
func (c *Client) DuplicateNode(ctx context.Context, projectID, nodeID string) (*api.Node, error) {
	var resp api.Node
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/duplicate")
	if err := c.doRequest(ctx, "POST", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("duplicate node request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNodePositions массово обновляет позиции узлов на канве
func (c *Client) UpdateNodePositions(ctx context.Context, projectID string, req api.BulkNodePositionUpdate) error {
	if err := c.doRequest(ctx, "PUT", nodesPath(projectID, "/bulk/positions"), req, nil); err != nil {
		return fmt.Errorf("bulk positions request failed: %w", err)
	}
	return nil
}

// BulkDeleteNodes удаляет несколько узлов за один запрос
func (c *Client) BulkDeleteNodes(ctx context.Context, projectID string, nodeIDs []string) error {
	req := api.BulkNodeDeleteRequest{NodeIDs: nodeIDs}
	if err := c.doRequest(ctx, "POST", nodesPath(projectID, "/bulk-delete"), req, nil); err != nil {
		return fmt.Errorf("bulk delete nodes request failed: %w", err)
	}
	return nil
}

// LinkNodes создает ребро от source к target
func (c *Client) LinkNodes(ctx context.Context, projectID, sourceID, targetID string) error {
	path := nodesPath(projectID, "/"+url.PathEscape(sourceID)+"/link/"+url.PathEscape(targetID))
	if err := c.doRequest(ctx, "POST", path, nil, nil); err != nil {
		return fmt.Errorf("link nodes request failed: %w", err)
	}
	return nil
}

// UnlinkNodes удаляет ребро между узлами
func (c *Client) UnlinkNodes(ctx context.Context, projectID, sourceID, targetID string) error {
	path := nodesPath(projectID, "/"+url.PathEscape(sourceID)+"/link/"+url.PathEscape(targetID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("unlink nodes request failed: %w", err)
	}
	return nil
}

// AddNodeTag добавляет тег к узлу
func (c *Client) AddNodeTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error) {
	var resp api.Node
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/tags/"+url.PathEscape(tag))
	if err := c.doRequest(ctx, "POST", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("add node tag request failed: %w", err)
	}
	return &resp, nil
}

// RemoveNodeTag снимает тег с узла
func (c *Client) RemoveNodeTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error) {
	var resp api.Node
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/tags/"+url.PathEscape(tag))
	if err := c.doRequest(ctx, "DELETE", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("remove node tag request failed: %w", err)
	}
	return &resp, nil
}

// ListNodeCommands возвращает команды узла
func (c *Client) ListNodeCommands(ctx context.Context, projectID, nodeID string) ([]api.Command, error) {
	var resp []api.Command
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/commands")
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list node commands request failed: %w", err)
	}
	return resp, nil
}

// CreateNodeCommand добавляет команду к узлу
func (c *Client) CreateNodeCommand(ctx context.Context, projectID, nodeID string, req api.CommandRequest) (*api.Command, error) {
	var resp api.Command
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/commands")
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return nil, fmt.Errorf("create node command request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNodeCommand обновляет команду узла
func (c *Client) UpdateNodeCommand(ctx context.Context, projectID, nodeID, commandID string, req api.CommandRequest) (*api.Command, error) {
	var resp api.Command
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/commands/"+url.PathEscape(commandID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update node command request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNodeCommand удаляет команду узла
func (c *Client) DeleteNodeCommand(ctx context.Context, projectID, nodeID, commandID string) error {
	path := nodesPath(projectID, "/"+url.PathEscape(nodeID)+"/commands/"+url.PathEscape(commandID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete node command request failed: %w", err)
	}
	return nil
}

// CreateFinding создает находку на узле
func (c *Client) CreateFinding(ctx context.Context, projectID, nodeID string, req api.FindingRequest) (*api.Finding, error) {
	var resp api.Finding
	path := fmt.Sprintf("/api/v1/projects/%s/nodes/%s/finding",
		url.PathEscape(projectID), url.PathEscape(nodeID))
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return nil, fmt.Errorf("create finding request failed: %w", err)
	}
	return &resp, nil
}

// GetNodeFinding возвращает находку узла
func (c *Client) GetNodeFinding(ctx context.Context, projectID, nodeID string) (*api.Finding, error) {
	var resp api.Finding
	path := fmt.Sprintf("/api/v1/projects/%s/nodes/%s/finding",
		url.PathEscape(projectID), url.PathEscape(nodeID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get finding request failed: %w", err)
	}
	return &resp, nil
}

// UpdateFinding обновляет находку
func (c *Client) UpdateFinding(ctx context.Context, projectID, findingID string, req api.FindingRequest) (*api.Finding, error) {
	var resp api.Finding
	path := fmt.Sprintf("/api/v1/projects/%s/findings/%s",
		url.PathEscape(projectID), url.PathEscape(findingID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update finding request failed: %w", err)
	}
	return &resp, nil
}

// DeleteFinding удаляет находку
func (c *Client) DeleteFinding(ctx context.Context, projectID, findingID string) error {
	path := fmt.Sprintf("/api/v1/projects/%s/findings/%s",
		url.PathEscape(projectID), url.PathEscape(findingID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete finding request failed: %w", err)
	}
	return nil
}
