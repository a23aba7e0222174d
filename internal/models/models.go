package models

import (
	"time"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// FieldRef идентифицирует редактируемое поле сущности.
// Используется как ключ сессий редактирования и optimistic-обновлений.
type FieldRef struct {
	EntityID string // UUID сущности (узла, проекта и т.д.)
	Field    string // имя поля: title, description, status, ...
}

// Имена редактируемых полей узла
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
)

// ProjectSnapshot представляет последнее подтвержденное сервером состояние
// проекта. Хранится локально для офлайн-просмотра и начального наполнения кэша.
type ProjectSnapshot struct {
	SavedAt  time.Time     `json:"saved_at"` // когда снапшот был сохранен локально
	Project  api.Project   `json:"project"`
	Nodes    []api.Node    `json:"nodes"`
	Contexts []api.Context `json:"contexts"`
}

// Clone создает глубокую копию снапшота
func (s *ProjectSnapshot) Clone() *ProjectSnapshot {
	nodes := make([]api.Node, len(s.Nodes))
	for i := range s.Nodes {
		nodes[i] = CloneNode(&s.Nodes[i])
	}

	contexts := make([]api.Context, len(s.Contexts))
	copy(contexts, s.Contexts)
	for i := range contexts {
		contexts[i].Variables = append([]api.Variable(nil), contexts[i].Variables...)
	}

	project := s.Project
	project.CategoryTags = append([]string(nil), project.CategoryTags...)

	return &ProjectSnapshot{
		SavedAt:  s.SavedAt,
		Project:  project,
		Nodes:    nodes,
		Contexts: contexts,
	}
}

// CloneNode создает глубокую копию узла
func CloneNode(n *api.Node) api.Node {
	clone := *n
	clone.Tags = append([]string(nil), n.Tags...)
	clone.Commands = append([]api.Command(nil), n.Commands...)
	clone.Parents = append([]string(nil), n.Parents...)
	clone.Children = append([]string(nil), n.Children...)
	if n.Finding != nil {
		finding := *n.Finding
		clone.Finding = &finding
	}
	return clone
}

// ValidNodeStatus проверяет, что статус входит в множество, известное серверу
func ValidNodeStatus(status string) bool {
	switch status {
	case api.NodeStatusNotStarted,
		api.NodeStatusInProgress,
		api.NodeStatusSuccess,
		api.NodeStatusFailed,
		api.NodeStatusNotApplicable:
		return true
	}
	return false
}
