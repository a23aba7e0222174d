package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

func scopePath(projectID, suffix string) string {
	return fmt.Sprintf("/api/v1/projects/%s/scope%s", url.PathEscape(projectID), suffix)
}

// ListScopeAssets возвращает все scope-активы проекта
func (c *Client) ListScopeAssets(ctx context.Context, projectID string) ([]api.ScopeAsset, error) {
	var resp []api.ScopeAsset
	if err := c.doRequest(ctx, "GET", scopePath(projectID, "/assets"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list scope assets request failed: %w", err)
	}
	return resp, nil
}

// GetScopeAsset возвращает scope-актив по ID
func (c *Client) GetScopeAsset(ctx context.Context, projectID, assetID string) (*api.ScopeAsset, error) {
	var resp api.ScopeAsset
	path := scopePath(projectID, "/assets/"+url.PathEscape(assetID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get scope asset request failed: %w", err)
	}
	return &resp, nil
}

// CreateScopeAsset создает scope-актив
func (c *Client) CreateScopeAsset(ctx context.Context, projectID string, req api.ScopeAssetCreateRequest) (*api.ScopeAsset, error) {
	var resp api.ScopeAsset
	if err := c.doRequest(ctx, "POST", scopePath(projectID, "/assets"), req, &resp); err != nil {
		return nil, fmt.Errorf("create scope asset request failed: %w", err)
	}
	return &resp, nil
}

// UpdateScopeAsset частично обновляет scope-актив
func (c *Client) UpdateScopeAsset(ctx context.Context, projectID, assetID string, req api.ScopeAssetUpdateRequest) (*api.ScopeAsset, error) {
	var resp api.ScopeAsset
	path := scopePath(projectID, "/assets/"+url.PathEscape(assetID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update scope asset request failed: %w", err)
	}
	return &resp, nil
}

// DeleteScopeAsset удаляет scope-актив
func (c *Client) DeleteScopeAsset(ctx context.Context, projectID, assetID string) error {
	path := scopePath(projectID, "/assets/"+url.PathEscape(assetID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete scope asset request failed: %w", err)
	}
	return nil
}

// BulkUpdateScopeStatus меняет статус сразу у нескольких активов
func (c *Client) BulkUpdateScopeStatus(ctx context.Context, projectID string, req api.BulkStatusUpdate) error {
	if err := c.doRequest(ctx, "POST", scopePath(projectID, "/assets/bulk-status-update"), req, nil); err != nil {
		return fmt.Errorf("bulk status update request failed: %w", err)
	}
	return nil
}

// BulkScopeTagOperation добавляет или снимает тег сразу у нескольких активов
func (c *Client) BulkScopeTagOperation(ctx context.Context, projectID string, req api.BulkTagOperation) error {
	if err := c.doRequest(ctx, "POST", scopePath(projectID, "/assets/bulk-tag-operation"), req, nil); err != nil {
		return fmt.Errorf("bulk tag operation request failed: %w", err)
	}
	return nil
}

// ImportNmap загружает XML-вывод nmap и создает активы из найденных сервисов
func (c *Client) ImportNmap(ctx context.Context, projectID string, req api.NmapImportRequest) (*api.ImportStats, error) {
	var resp api.ImportStats
	if err := c.doRequest(ctx, "POST", scopePath(projectID, "/import-nmap"), req, &resp); err != nil {
		return nil, fmt.Errorf("nmap import request failed: %w", err)
	}
	return &resp, nil
}

// GetScopeStats возвращает сводку по скоупу проекта
func (c *Client) GetScopeStats(ctx context.Context, projectID string) (*api.ScopeStats, error) {
	var resp api.ScopeStats
	if err := c.doRequest(ctx, "GET", scopePath(projectID, "/stats"), nil, &resp); err != nil {
		return nil, fmt.Errorf("scope stats request failed: %w", err)
	}
	return &resp, nil
}
