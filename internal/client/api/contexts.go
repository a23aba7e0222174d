package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func contextsPath(projectID, suffix string) string {
	return fmt.Sprintf("/api/v1/projects/%s/contexts%s", url.PathEscape(projectID), suffix)
}

// ListContexts возвращает контексты проекта
func (c *Client) ListContexts(ctx context.Context, projectID string) ([]api.Context, error) {
	var resp []api.Context
	if err := c.doRequest(ctx, "GET", contextsPath(projectID, "/"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list contexts request failed: %w", err)
	}
	return resp, nil
}

// GetContext возвращает контекст проекта по ID
func (c *Client) GetContext(ctx context.Context, projectID, contextID string) (*api.Context, error) {
	var resp api.Context
	path := contextsPath(projectID, "/"+url.PathEscape(contextID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get context request failed: %w", err)
	}
	return &resp, nil
}

// CreateContext создает контекст
func (c *Client) CreateContext(ctx context.Context, projectID string, req api.ContextRequest) (*api.Context, error) {
	var resp api.Context
	if err := c.doRequest(ctx, "POST", contextsPath(projectID, "/"), req, &resp); err != nil {
		return nil, fmt.Errorf("create context request failed: %w", err)
	}
	return &resp, nil
}

// UpdateContext обновляет контекст
func (c *Client) UpdateContext(ctx context.Context, projectID, contextID string, req api.ContextRequest) (*api.Context, error) {
	var resp api.Context
	path := contextsPath(projectID, "/"+url.PathEscape(contextID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update context request failed: %w", err)
	}
	return &resp, nil
}

// DeleteContext удаляет контекст
func (c *Client) DeleteContext(ctx context.Context, projectID, contextID string) error {
	path := contextsPath(projectID, "/"+url.PathEscape(contextID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete context request failed: %w", err)
	}
	return nil
}

// CreateVariable добавляет переменную в контекст
func (c *Client) CreateVariable(ctx context.Context, projectID, contextID string, req api.VariableRequest) (*api.Variable, error) {
	var resp api.Variable
	path := contextsPath(projectID, "/"+url.PathEscape(contextID)+"/variables/")
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return nil, fmt.Errorf("create variable request failed: %w", err)
	}
	return &resp, nil
}

// UpdateVariable обновляет переменную контекста
func (c *Client) UpdateVariable(ctx context.Context, projectID, contextID, variableID string, req api.VariableRequest) (*api.Variable, error) {
	var resp api.Variable
	path := contextsPath(projectID, "/"+url.PathEscape(contextID)+"/variables/"+url.PathEscape(variableID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update variable request failed: %w", err)
	}
	return &resp, nil
}

// DeleteVariable удаляет переменную контекста
func (c *Client) DeleteVariable(ctx context.Context, projectID, contextID, variableID string) error {
	path := contextsPath(projectID, "/"+url.PathEscape(contextID)+"/variables/"+url.PathEscape(variableID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete variable request failed: %w", err)
	}
	return nil
}
