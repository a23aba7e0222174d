package nodes

import (
	"context"

	"github.com/pwnflow/pwnflow-cli/internal/editing"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API описывает операции сервера над узлами, которые использует сервис.
// Реализуется клиентом internal/client/api.
type API interface {
	GetProjectGraph(ctx context.Context, projectID string) (*api.NodesWithLinks, error)
	GetNode(ctx context.Context, projectID, nodeID string) (*api.Node, error)
	CreateNode(ctx context.Context, projectID string, req api.NodeCreateRequest) (*api.Node, error)
	UpdateNode(ctx context.Context, projectID, nodeID string, req api.NodeUpdateRequest) (*api.Node, error)
	DeleteNode(ctx context.Context, projectID, nodeID string) error
	DuplicateNode(ctx context.Context, projectID, nodeID string) (*api.Node, error)
	UpdateNodePositions(ctx context.Context, projectID string, req api.BulkNodePositionUpdate) error
	BulkDeleteNodes(ctx context.Context, projectID string, nodeIDs []string) error
	LinkNodes(ctx context.Context, projectID, sourceID, targetID string) error
	UnlinkNodes(ctx context.Context, projectID, sourceID, targetID string) error
	AddNodeTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error)
	RemoveNodeTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error)
	CreateNodeCommand(ctx context.Context, projectID, nodeID string, req api.CommandRequest) (*api.Command, error)
	CreateFinding(ctx context.Context, projectID, nodeID string, req api.FindingRequest) (*api.Finding, error)
}

// Service определяет интерфейс сервиса узлов: мутации применяются к кэшу
// оптимистично и откатываются при отказе сервера.
type Service interface {
	Graph(ctx context.Context, projectID string) (*api.NodesWithLinks, error)
	RefreshGraph(ctx context.Context, projectID string) (*api.NodesWithLinks, error)
	Node(ctx context.Context, projectID, nodeID string) (*api.Node, error)

	CreateNode(ctx context.Context, projectID string, req api.NodeCreateRequest) (*api.Node, error)
	UpdateNodeFields(ctx context.Context, projectID, nodeID string, fields map[string]string) (*api.Node, error)
	MoveNodes(ctx context.Context, projectID string, moves []api.NodePositionUpdate) error
	DeleteNode(ctx context.Context, projectID, nodeID string) error
	BulkDeleteNodes(ctx context.Context, projectID string, nodeIDs []string) error
	DuplicateNode(ctx context.Context, projectID, nodeID string) (*api.Node, error)
	LinkNodes(ctx context.Context, projectID, sourceID, targetID string) error
	UnlinkNodes(ctx context.Context, projectID, sourceID, targetID string) error
	AddTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error)
	RemoveTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error)
	AddCommand(ctx context.Context, projectID, nodeID string, req api.CommandRequest) (*api.Command, error)
	RecordFinding(ctx context.Context, projectID, nodeID string, req api.FindingRequest) (*api.Finding, error)

	// FieldCommitter возвращает функцию коммита для сессий редактирования
	// полей узлов данного проекта.
	FieldCommitter(projectID string) editing.CommitFunc

	// ApplyServerNode применяет узел из события node_updated к кэшу,
	// уважая правило подавления для редактируемых полей.
	ApplyServerNode(projectID string, node api.Node)

	// HandleNodesChanged инвалидирует список узлов после события
	// nodes_changed: подписчики кэша инициируют refetch.
	HandleNodesChanged(projectID string)

	// SaveSnapshot сохраняет текущее состояние проекта локально
	// для офлайн-просмотра.
	SaveSnapshot(ctx context.Context, projectID string) error
}
