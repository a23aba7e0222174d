package api

import "encoding/json"

// Типы событий, которые сервер шлет по websocket каналу проекта
const (
	EventConnected       = "connected"        // подтверждение подключения
	EventPong            = "pong"             // ответ на keepalive ping
	EventNodesChanged    = "nodes_changed"    // список узлов изменился, нужен refetch
	EventNodeUpdated     = "node_updated"     // узел обновлен, payload содержит узел
	EventParentChanged   = "parent_changed"   // связи узлов изменились
	EventScopeUpdated    = "scope_updated"    // скоуп проекта изменился
	EventImportCompleted = "import_completed" // массовый импорт завершен
)

// WSAuthMessage представляет первый кадр после подключения: аутентификация
type WSAuthMessage struct {
	Token string `json:"token"`
}

// WSEvent представляет событие от сервера.
// Data присутствует только у событий с полезной нагрузкой (node_updated).
type WSEvent struct {
	Data      json.RawMessage `json:"data,omitempty"`
	Type      string          `json:"type"`
	ProjectID string          `json:"project_id,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// WSNodePayload представляет полезную нагрузку события node_updated
type WSNodePayload struct {
	Node Node `json:"node"`
}
