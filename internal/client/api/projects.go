package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// ListProjects возвращает все проекты текущего пользователя
func (c *Client) ListProjects(ctx context.Context) ([]api.Project, error) {
	var resp []api.Project
	if err := c.doRequest(ctx, "GET", "/api/v1/projects/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list projects request failed: %w", err)
	}
	return resp, nil
}

// GetProject возвращает проект по ID
func (c *Client) GetProject(ctx context.Context, projectID string) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/api/v1/projects/%s", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get project request failed: %w", err)
	}
	return &resp, nil
}

// CreateProject создает проект (опционально из шаблона)
func (c *Client) CreateProject(ctx context.Context, req api.ProjectCreateRequest) (*api.Project, error) {
	var resp api.Project
	if err := c.doRequest(ctx, "POST", "/api/v1/projects/", req, &resp); err != nil {
		return nil, fmt.Errorf("create project request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProject частично обновляет проект
func (c *Client) UpdateProject(ctx context.Context, projectID string, req api.ProjectUpdateRequest) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/api/v1/projects/%s", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update project request failed: %w", err)
	}
	return &resp, nil
}

// DeleteProject удаляет проект
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	path := fmt.Sprintf("/api/v1/projects/%s", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete project request failed: %w", err)
	}
	return nil
}

// BulkDeleteProjects удаляет несколько проектов за один запрос
func (c *Client) BulkDeleteProjects(ctx context.Context, ids []string) (*api.BulkDeleteResponse, error) {
	var resp api.BulkDeleteResponse
	req := api.BulkDeleteRequest{IDs: ids}
	if err := c.doRequest(ctx, "POST", "/api/v1/projects/bulk-delete", req, &resp); err != nil {
		return nil, fmt.Errorf("bulk delete projects request failed: %w", err)
	}
	return &resp, nil
}

// AddProjectCategoryTag добавляет тег категории к проекту
func (c *Client) AddProjectCategoryTag(ctx context.Context, projectID, tag string) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/api/v1/projects/%s/category-tags/%s",
		url.PathEscape(projectID), url.PathEscape(tag))
	if err := c.doRequest(ctx, "POST", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("add category tag request failed: %w", err)
	}
	return &resp, nil
}

// RemoveProjectCategoryTag снимает тег категории с проекта
func (c *Client) RemoveProjectCategoryTag(ctx context.Context, projectID, tag string) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/api/v1/projects/%s/category-tags/%s",
		url.PathEscape(projectID), url.PathEscape(tag))
	if err := c.doRequest(ctx, "DELETE", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("remove category tag request failed: %w", err)
	}
	return &resp, nil
}

// ImportTemplate вставляет узлы шаблона в существующий проект
func (c *Client) ImportTemplate(ctx context.Context, projectID string, req api.ImportTemplateRequest) error {
	var resp api.SuccessResponse
	path := fmt.Sprintf("/api/v1/projects/%s/import-template", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return fmt.Errorf("import template request failed: %w", err)
	}
	return nil
}

// GetProjectTimeline возвращает хронологию находок проекта
func (c *Client) GetProjectTimeline(ctx context.Context, projectID string) ([]api.TimelineEntry, error) {
	var resp []api.TimelineEntry
	path := fmt.Sprintf("/api/v1/projects/%s/timeline", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("project timeline request failed: %w", err)
	}
	return resp, nil
}

// ExportProject запускает экспорт проекта и возвращает описание задания
func (c *Client) ExportProject(ctx context.Context, projectID string, req api.ProjectExportRequest) (*api.ExportJobResponse, error) {
	var resp api.ExportJobResponse
	path := fmt.Sprintf("/api/v1/projects/%s/export", url.PathEscape(projectID))
	if err := c.doRequest(ctx, "POST", path, req, &resp); err != nil {
		return nil, fmt.Errorf("export project request failed: %w", err)
	}
	return &resp, nil
}

// DownloadExport скачивает готовый экспортированный бандл
func (c *Client) DownloadExport(ctx context.Context, downloadURL string) ([]byte, error) {
	blob, err := c.download(ctx, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("download export failed: %w", err)
	}
	return blob, nil
}

// PreviewProjectImport загружает бандл на предпросмотр.
// Сервер разбирает файл и возвращает счетчики, ничего не изменяя.
func (c *Client) PreviewProjectImport(ctx context.Context, filename string, blob []byte, password string) (*api.ImportPreviewResponse, error) {
	var resp api.ImportPreviewResponse
	fields := map[string]string{"password": password}
	if err := c.doMultipart(ctx, "/api/v1/projects/import/preview", filename, blob, fields, &resp); err != nil {
		return nil, fmt.Errorf("import preview request failed: %w", err)
	}
	return &resp, nil
}

// ImportProject загружает бандл и выполняет импорт
func (c *Client) ImportProject(ctx context.Context, filename string, blob []byte, password, mode, targetProjectID string) (*api.ProjectImportResponse, error) {
	var resp api.ProjectImportResponse
	fields := map[string]string{
		"password":          password,
		"import_mode":       mode,
		"target_project_id": targetProjectID,
	}
	if err := c.doMultipart(ctx, "/api/v1/projects/import", filename, blob, fields, &resp); err != nil {
		return nil, fmt.Errorf("import project request failed: %w", err)
	}
	return &resp, nil
}
