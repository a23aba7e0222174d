package api

import "time"

// Project представляет проект (граф атаки) на сервере
type Project struct {
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	ID              string     `json:"id"`               // UUID проекта
	OwnerID         string     `json:"owner_id"`         // UUID владельца
	Name            string     `json:"name"`             // название проекта
	Description     string     `json:"description"`      // описание (может быть пустым)
	LayoutDirection string     `json:"layout_direction"` // направление раскладки графа: TB, BT, LR, RL
	CategoryTags    []string   `json:"category_tags"`    // теги категорий
	NodeCount       int        `json:"node_count"`       // количество узлов
	ContextCount    int        `json:"context_count"`    // количество контекстов
}

// ProjectCreateRequest представляет запрос на создание проекта
type ProjectCreateRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	LayoutDirection  string   `json:"layout_direction,omitempty"`
	SourceTemplateID string   `json:"source_template_id,omitempty"` // создать из шаблона
	CategoryTags     []string `json:"category_tags,omitempty"`
}

// ProjectUpdateRequest представляет частичное обновление проекта.
// nil-поля не отправляются и не меняют значение на сервере.
type ProjectUpdateRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	LayoutDirection *string  `json:"layout_direction,omitempty"`
	CategoryTags    []string `json:"category_tags,omitempty"`
}

// BulkDeleteRequest представляет запрос на массовое удаление по списку ID
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkDeleteResponse представляет результат массового удаления
type BulkDeleteResponse struct {
	Deleted int      `json:"deleted"` // сколько удалено
	Errors  []string `json:"errors"`  // ошибки по отдельным ID
}

// Template представляет шаблон проекта
type Template struct {
	ID           string   `json:"id"`            // UUID шаблона
	OwnerID      string   `json:"owner_id"`      // UUID владельца
	Name         string   `json:"name"`          // название шаблона
	Description  string   `json:"description"`   // описание
	CategoryTags []string `json:"category_tags"` // теги категорий
	NodeCount    int      `json:"node_count"`    // количество узлов
	ContextCount int      `json:"context_count"` // количество контекстов
}

// TemplateCreateRequest представляет запрос на создание шаблона из проекта
type TemplateCreateRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	SourceProjectID string   `json:"source_project_id"` // проект-источник
	CategoryTags    []string `json:"category_tags,omitempty"`
}

// CategoryTag представляет глобальный тег категории
type CategoryTag struct {
	ID   string `json:"id"`   // UUID тега
	Name string `json:"name"` // имя тега
}

// ImportTemplateRequest представляет вставку шаблона в существующий проект.
// Узлы шаблона смещаются, чтобы не перекрывать уже существующие.
type ImportTemplateRequest struct {
	OffsetX    *int   `json:"offset_x,omitempty"`
	OffsetY    *int   `json:"offset_y,omitempty"`
	TemplateID string `json:"template_id"`
}

// SuccessResponse представляет типовой ответ сервера на операцию без данных
type SuccessResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// TimelineEntry представляет запись хронологии находок проекта
type TimelineEntry struct {
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FindingID string    `json:"finding_id"`
	NodeID    string    `json:"node_id"`
	NodeTitle string    `json:"node_title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"` // username автора
}
