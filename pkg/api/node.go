package api

import "time"

// Статусы узла, как их понимает сервер
const (
	NodeStatusNotStarted    = "NOT_STARTED"
	NodeStatusInProgress    = "IN_PROGRESS"
	NodeStatusSuccess       = "SUCCESS"
	NodeStatusFailed        = "FAILED"
	NodeStatusNotApplicable = "NOT_APPLICABLE"
)

// Command представляет команду, привязанную к узлу
type Command struct {
	ID          string `json:"id"`          // UUID команды
	Title       string `json:"title"`       // заголовок
	Command     string `json:"command"`     // сама команда (может содержать {{переменные}})
	Description string `json:"description"` // описание (может быть пустым)
}

// CommandRequest представляет создание или обновление команды
type CommandRequest struct {
	Title       string `json:"title"`
	Command     string `json:"command"`
	Description string `json:"description,omitempty"`
}

// Finding представляет находку (результат проверки), привязанную к узлу
type Finding struct {
	Date      time.Time `json:"date"`       // дата находки, указанная аудитором
	CreatedAt time.Time `json:"created_at"` // время создания записи
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
	ID        string    `json:"id"`         // UUID находки
	NodeID    string    `json:"node_id"`    // UUID узла
	CreatedBy string    `json:"created_by"` // UUID автора
	Content   string    `json:"content"`    // содержимое (Markdown)
}

// FindingRequest представляет создание или обновление находки
type FindingRequest struct {
	Date    *time.Time `json:"date,omitempty"` // по умолчанию сервер ставит текущее время
	Content string     `json:"content"`
}

// Node представляет узел графа атаки
type Node struct {
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Finding     *Finding   `json:"finding,omitempty"` // находка, если есть
	ID          string     `json:"id"`                // UUID узла
	Title       string     `json:"title"`             // заголовок узла
	Description string     `json:"description"`       // rich-text описание (может быть пустым)
	Status      string     `json:"status"`            // один из NodeStatus* статусов
	Tags        []string   `json:"tags"`              // теги узла
	Commands    []Command  `json:"commands"`          // команды узла
	Parents     []string   `json:"parents"`           // UUID родительских узлов
	Children    []string   `json:"children"`          // UUID дочерних узлов
	XPos        float64    `json:"x_pos"`             // позиция на канве
	YPos        float64    `json:"y_pos"`             // позиция на канве
}

// NodeCreateRequest представляет запрос на создание узла
type NodeCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"` // по умолчанию NOT_STARTED
	XPos        float64 `json:"x_pos"`
	YPos        float64 `json:"y_pos"`
}

// NodeUpdateRequest представляет частичное обновление узла.
// nil-поля не отправляются и не меняют значение на сервере.
type NodeUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	XPos        *float64 `json:"x_pos,omitempty"`
	YPos        *float64 `json:"y_pos,omitempty"`
}

// NodePositionUpdate представляет новую позицию одного узла
type NodePositionUpdate struct {
	ID   string  `json:"id"`
	XPos float64 `json:"x_pos"`
	YPos float64 `json:"y_pos"`
}

// BulkNodePositionUpdate представляет массовое перемещение узлов
type BulkNodePositionUpdate struct {
	Nodes []NodePositionUpdate `json:"nodes"`
}

// BulkNodeDeleteRequest представляет массовое удаление узлов
type BulkNodeDeleteRequest struct {
	NodeIDs []string `json:"node_ids"`
}

// NodeLink представляет ребро графа между двумя узлами
type NodeLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodesWithLinks представляет полный граф проекта: узлы и ребра
type NodesWithLinks struct {
	Nodes []Node     `json:"nodes"`
	Links []NodeLink `json:"links"`
}
