package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// ListTemplates возвращает шаблоны текущего пользователя
func (c *Client) ListTemplates(ctx context.Context) ([]api.Template, error) {
	var resp []api.Template
	if err := c.doRequest(ctx, "GET", "/api/v1/templates/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list templates request failed: %w", err)
	}
	return resp, nil
}

// CreateTemplate создает шаблон из существующего проекта
func (c *Client) CreateTemplate(ctx context.Context, req api.TemplateCreateRequest) (*api.Template, error) {
	var resp api.Template
	if err := c.doRequest(ctx, "POST", "/api/v1/templates/", req, &resp); err != nil {
		return nil, fmt.Errorf("create template request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTemplate удаляет шаблон
func (c *Client) DeleteTemplate(ctx context.Context, templateID string) error {
	path := fmt.Sprintf("/api/v1/templates/%s", url.PathEscape(templateID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete template request failed: %w", err)
	}
	return nil
}

// GetTemplateGraph возвращает узлы и ребра шаблона
func (c *Client) GetTemplateGraph(ctx context.Context, templateID string) (*api.NodesWithLinks, error) {
	var resp api.NodesWithLinks
	path := fmt.Sprintf("/api/v1/templates/%s/nodes", url.PathEscape(templateID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get template graph request failed: %w", err)
	}
	return &resp, nil
}

// ExportTemplate запускает экспорт шаблона
func (c *Client) ExportTemplate(ctx context.Context, templateID string, req api.TemplateExportRequest) (*api.ExportJobResponse, error) {
	var resp api.ExportJobResponse
	path := fmt.Sprintf("/api/v1/templates/%s/export", url.PathEscape(templateID))
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return nil, fmt.Errorf("export template request failed: %w", err)
	}
	return &resp, nil
}

// ListCategoryTags возвращает глобальные теги категорий
func (c *Client) ListCategoryTags(ctx context.Context) ([]api.CategoryTag, error) {
	var resp []api.CategoryTag
	if err := c.doRequest(ctx, "GET", "/api/v1/category-tags/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list category tags request failed: %w", err)
	}
	return resp, nil
}

// CreateCategoryTag создает глобальный тег категории
func (c *Client) CreateCategoryTag(ctx context.Context, name string) (*api.CategoryTag, error) {
	var resp api.CategoryTag
	req := api.CategoryTag{Name: name}
	if err := c.doRequest(ctx, "POST", "/api/v1/category-tags/", req, &resp); err != nil {
		return nil, fmt.Errorf("create category tag request failed: %w", err)
	}
	return &resp, nil
}
