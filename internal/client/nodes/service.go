package nodes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pwnflow/pwnflow-cli/internal/client/cache"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
	"github.com/pwnflow/pwnflow-cli/internal/editing"
	"github.com/pwnflow/pwnflow-cli/internal/models"
	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// service handles node mutations with optimistic cache updates
type service struct {
	api       API
	cache     *cache.Store
	editing   *editing.Store
	snapshots storage.SnapshotStorage
	logger    *slog.Logger
}

// NewService creates a new node service. snapshots may be nil if local
// persistence is not wired.
func NewService(apiClient API, cacheStore *cache.Store, editingStore *editing.Store, snapshots storage.SnapshotStorage, logger *slog.Logger) Service {
	return &service{
		api:       apiClient,
		cache:     cacheStore,
		editing:   editingStore,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Graph returns the project graph from cache, fetching it on a miss
func (s *service) Graph(ctx context.Context, projectID string) (*api.NodesWithLinks, error) {
	if cached, ok := s.cache.Get(cache.NodeListKey(projectID)); ok {
		if graph, ok := cached.(*api.NodesWithLinks); ok {
			return graph, nil
		}
	}
	return s.RefreshGraph(ctx, projectID)
}

// RefreshGraph fetches the project graph from the server and replaces the
// cached copy.
func (s *service) RefreshGraph(ctx context.Context, projectID string) (*api.NodesWithLinks, error) {
	key := cache.NodeListKey(projectID)

	// Регистрируем загрузку, чтобы optimistic-мутация могла ее отменить
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.cache.RegisterRefetch(key, cancel)

	graph, err := s.api.GetProjectGraph(fetchCtx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project graph: %w", err)
	}

	s.cache.Set(key, graph)
	for i := range graph.Nodes {
		s.cache.Set(cache.NodeKey(projectID, graph.Nodes[i].ID), graph.Nodes[i])
	}
	return graph, nil
}

// Node returns one node from cache, fetching it on a miss
func (s *service) Node(ctx context.Context, projectID, nodeID string) (*api.Node, error) {
	if cached, ok := s.cache.Get(cache.NodeKey(projectID, nodeID)); ok {
		if node, ok := cached.(api.Node); ok {
			return &node, nil
		}
	}

	node, err := s.api.GetNode(ctx, projectID, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch node: %w", err)
	}
	s.cache.Set(cache.NodeKey(projectID, nodeID), *node)
	return node, nil
}

// CreateNode creates a node on the server and adds it to the cached graph
func (s *service) CreateNode(ctx context.Context, projectID string, req api.NodeCreateRequest) (*api.Node, error) {
	if req.Status != "" && !models.ValidNodeStatus(req.Status) {
		return nil, fmt.Errorf("invalid node status: %s", req.Status)
	}

	node, err := s.api.CreateNode(ctx, projectID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	s.storeNode(projectID, *node, true)
	return node, nil
}

// UpdateNodeFields patches the named fields of a node. The cached node is
// updated before the request; a server rejection rolls the cache back to
// the exact pre-mutation state.
func (s *service) UpdateNodeFields(ctx context.Context, projectID, nodeID string, fields map[string]string) (*api.Node, error) {
	req, err := buildUpdateRequest(fields)
	if err != nil {
		return nil, err
	}

	keys := []cache.Key{cache.NodeKey(projectID, nodeID), cache.NodeListKey(projectID)}

	// Устаревший ответ in-flight загрузки не должен затереть optimistic значение
	s.cache.CancelRefetch(keys...)
	tx := s.cache.Begin(keys...)

	s.applyOptimistic(projectID, nodeID, fields)

	node, err := s.api.UpdateNode(ctx, projectID, nodeID, req)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update node: %w", err)
	}

	// Серверный ответ - источник истины, он заменяет optimistic значение
	s.storeNode(projectID, *node, false)
	tx.Commit()
	return node, nil
}

// MoveNodes updates node positions in one request. Positions are applied
// to the cached graph immediately and rolled back on failure.
func (s *service) MoveNodes(ctx context.Context, projectID string, moves []api.NodePositionUpdate) error {
	if len(moves) == 0 {
		return nil
	}

	key := cache.NodeListKey(projectID)
	s.cache.CancelRefetch(key)
	tx := s.cache.Begin(key)

	if graph, ok := s.cachedGraph(projectID); ok {
		patched := cloneGraph(graph)
		byID := make(map[string]*api.Node, len(patched.Nodes))
		for i := range patched.Nodes {
			byID[patched.Nodes[i].ID] = &patched.Nodes[i]
		}
		for _, move := range moves {
			if node, ok := byID[move.ID]; ok {
				node.XPos = move.XPos
				node.YPos = move.YPos
			}
		}
		s.cache.Set(key, patched)
	}

	err := s.api.UpdateNodePositions(ctx, projectID, api.BulkNodePositionUpdate{Nodes: moves})
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to move nodes: %w", err)
	}

	tx.Commit()
	return nil
}

// DeleteNode removes a node. The node disappears from the cached graph
// immediately and comes back on server rejection.
func (s *service) DeleteNode(ctx context.Context, projectID, nodeID string) error {
	keys := []cache.Key{cache.NodeKey(projectID, nodeID), cache.NodeListKey(projectID)}
	s.cache.CancelRefetch(keys...)
	tx := s.cache.Begin(keys...)

	s.removeFromGraph(projectID, nodeID)
	s.cache.Invalidate(cache.NodeKey(projectID, nodeID))

	if err := s.api.DeleteNode(ctx, projectID, nodeID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete node: %w", err)
	}

	tx.Commit()
	s.editing.ResetEntity(nodeID)
	return nil
}

// BulkDeleteNodes removes several nodes in one request
func (s *service) BulkDeleteNodes(ctx context.Context, projectID string, nodeIDs []string) error {
	if len(nodeIDs) == 0 {
		return nil
	}

	keys := make([]cache.Key, 0, len(nodeIDs)+1)
	keys = append(keys, cache.NodeListKey(projectID))
	for _, id := range nodeIDs {
		keys = append(keys, cache.NodeKey(projectID, id))
	}
	s.cache.CancelRefetch(keys...)
	tx := s.cache.Begin(keys...)

	for _, id := range nodeIDs {
		s.removeFromGraph(projectID, id)
		s.cache.Invalidate(cache.NodeKey(projectID, id))
	}

	if err := s.api.BulkDeleteNodes(ctx, projectID, nodeIDs); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete nodes: %w", err)
	}

	tx.Commit()
	for _, id := range nodeIDs {
		s.editing.ResetEntity(id)
	}
	return nil
}

// DuplicateNode clones a node server-side and caches the copy
func (s *service) DuplicateNode(ctx context.Context, projectID, nodeID string) (*api.Node, error) {
	node, err := s.api.DuplicateNode(ctx, projectID, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate node: %w", err)
	}

	s.storeNode(projectID, *node, true)
	return node, nil
}

// LinkNodes creates a parent-child edge between two nodes
func (s *service) LinkNodes(ctx context.Context, projectID, sourceID, targetID string) error {
	if err := s.api.LinkNodes(ctx, projectID, sourceID, targetID); err != nil {
		return fmt.Errorf("failed to link nodes: %w", err)
	}

	if graph, ok := s.cachedGraph(projectID); ok {
		patched := cloneGraph(graph)
		patched.Links = append(patched.Links, api.NodeLink{Source: sourceID, Target: targetID})
		s.cache.Set(cache.NodeListKey(projectID), patched)
	}
	return nil
}

// UnlinkNodes removes the edge between two nodes
func (s *service) UnlinkNodes(ctx context.Context, projectID, sourceID, targetID string) error {
	if err := s.api.UnlinkNodes(ctx, projectID, sourceID, targetID); err != nil {
		return fmt.Errorf("failed to unlink nodes: %w", err)
	}

	if graph, ok := s.cachedGraph(projectID); ok {
		patched := cloneGraph(graph)
		links := patched.Links[:0]
		for _, link := range patched.Links {
			if link.Source == sourceID && link.Target == targetID {
				continue
			}
			links = append(links, link)
		}
		patched.Links = links
		s.cache.Set(cache.NodeListKey(projectID), patched)
	}
	return nil
}

// AddTag attaches a tag to a node
func (s *service) AddTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error) {
	node, err := s.api.AddNodeTag(ctx, projectID, nodeID, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}

	s.storeNode(projectID, *node, false)
	return node, nil
}

// RemoveTag detaches a tag from a node
func (s *service) RemoveTag(ctx context.Context, projectID, nodeID, tag string) (*api.Node, error) {
	node, err := s.api.RemoveNodeTag(ctx, projectID, nodeID, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to remove tag: %w", err)
	}

	s.storeNode(projectID, *node, false)
	return node, nil
}

// AddCommand attaches a command to a node
func (s *service) AddCommand(ctx context.Context, projectID, nodeID string, req api.CommandRequest) (*api.Command, error) {
	command, err := s.api.CreateNodeCommand(ctx, projectID, nodeID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add command: %w", err)
	}

	s.cache.Invalidate(cache.NodeKey(projectID, nodeID))
	return command, nil
}

// RecordFinding attaches a finding to a node
func (s *service) RecordFinding(ctx context.Context, projectID, nodeID string, req api.FindingRequest) (*api.Finding, error) {
	finding, err := s.api.CreateFinding(ctx, projectID, nodeID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record finding: %w", err)
	}

	s.cache.Invalidate(cache.NodeKey(projectID, nodeID))
	return finding, nil
}

// FieldCommitter returns an editing commit function bound to this project
func (s *service) FieldCommitter(projectID string) editing.CommitFunc {
	return func(ctx context.Context, ref models.FieldRef, value string) error {
		_, err := s.UpdateNodeFields(ctx, projectID, ref.EntityID, map[string]string{ref.Field: value})
		return err
	}
}

// ApplyServerNode applies a node_updated event to the cache. Fields the
// user is editing right now keep their local value; the rest take the
// server value.
func (s *service) ApplyServerNode(projectID string, node api.Node) {
	patched := models.CloneNode(&node)

	current, hasCurrent := s.cachedNode(projectID, node.ID)
	for field, serverValue := range map[string]string{
		models.FieldTitle:       node.Title,
		models.FieldDescription: node.Description,
		models.FieldStatus:      node.Status,
	} {
		if s.editing.ApplyServerValue(node.ID, field, serverValue) {
			continue
		}
		// Обновление подавлено: оставляем значение, которое видит пользователь
		if hasCurrent {
			setNodeField(&patched, field, nodeField(&current, field))
		}
	}

	s.storeNode(projectID, patched, false)
}

// HandleNodesChanged drops the cached graph so watchers refetch it
func (s *service) HandleNodesChanged(projectID string) {
	s.cache.Invalidate(cache.NodeListKey(projectID))
}

// SaveSnapshot persists the current project state for offline viewing
func (s *service) SaveSnapshot(ctx context.Context, projectID string) error {
	if s.snapshots == nil {
		return nil
	}

	graph, err := s.Graph(ctx, projectID)
	if err != nil {
		return err
	}

	snapshot := &models.ProjectSnapshot{
		SavedAt: time.Now().UTC(),
		Nodes:   append([]api.Node(nil), graph.Nodes...),
	}

	if cached, ok := s.cache.Get(cache.ProjectKey(projectID)); ok {
		if project, ok := cached.(api.Project); ok {
			snapshot.Project = project
		}
	}
	if snapshot.Project.ID == "" {
		snapshot.Project.ID = projectID
	}

	if cached, ok := s.cache.Get(cache.ContextListKey(projectID)); ok {
		if contexts, ok := cached.([]api.Context); ok {
			snapshot.Contexts = contexts
		}
	}

	if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug("Project snapshot saved", "project_id", projectID, "nodes", len(snapshot.Nodes))
	return nil
}

// cachedGraph возвращает закэшированный граф проекта
func (s *service) cachedGraph(projectID string) (*api.NodesWithLinks, bool) {
	cached, ok := s.cache.Get(cache.NodeListKey(projectID))
	if !ok {
		return nil, false
	}
	graph, ok := cached.(*api.NodesWithLinks)
	return graph, ok
}

// cachedNode возвращает закэшированный узел, при промахе ищет его в графе
func (s *service) cachedNode(projectID, nodeID string) (api.Node, bool) {
	if cached, ok := s.cache.Get(cache.NodeKey(projectID, nodeID)); ok {
		if node, ok := cached.(api.Node); ok {
			return node, true
		}
	}
	if graph, ok := s.cachedGraph(projectID); ok {
		for i := range graph.Nodes {
			if graph.Nodes[i].ID == nodeID {
				return graph.Nodes[i], true
			}
		}
	}
	return api.Node{}, false
}

// storeNode кладет узел в оба представления кэша: детальное и граф.
// При addIfMissing узел, отсутствующий в графе, добавляется в него.
func (s *service) storeNode(projectID string, node api.Node, addIfMissing bool) {
	s.cache.Set(cache.NodeKey(projectID, node.ID), node)

	graph, ok := s.cachedGraph(projectID)
	if !ok {
		return
	}

	patched := cloneGraph(graph)
	found := false
	for i := range patched.Nodes {
		if patched.Nodes[i].ID == node.ID {
			patched.Nodes[i] = node
			found = true
			break
		}
	}
	if !found {
		if !addIfMissing {
			return
		}
		patched.Nodes = append(patched.Nodes, node)
	}
	s.cache.Set(cache.NodeListKey(projectID), patched)
}

// removeFromGraph убирает узел и его ребра из закэшированного графа
func (s *service) removeFromGraph(projectID, nodeID string) {
	graph, ok := s.cachedGraph(projectID)
	if !ok {
		return
	}

	patched := &api.NodesWithLinks{}
	for i := range graph.Nodes {
		if graph.Nodes[i].ID == nodeID {
			continue
		}
		patched.Nodes = append(patched.Nodes, graph.Nodes[i])
	}
	for _, link := range graph.Links {
		if link.Source == nodeID || link.Target == nodeID {
			continue
		}
		patched.Links = append(patched.Links, link)
	}
	s.cache.Set(cache.NodeListKey(projectID), patched)
}

// applyOptimistic применяет поля к закэшированным представлениям узла
func (s *service) applyOptimistic(projectID, nodeID string, fields map[string]string) {
	current, ok := s.cachedNode(projectID, nodeID)
	if !ok {
		return
	}

	patched := models.CloneNode(&current)
	for field, value := range fields {
		setNodeField(&patched, field, value)
	}
	s.storeNode(projectID, patched, false)
}

// buildUpdateRequest собирает частичное обновление из карты полей
func buildUpdateRequest(fields map[string]string) (api.NodeUpdateRequest, error) {
	var req api.NodeUpdateRequest
	if len(fields) == 0 {
		return req, fmt.Errorf("no fields to update")
	}

	for field, value := range fields {
		switch field {
		case models.FieldTitle:
			v := value
			req.Title = &v
		case models.FieldDescription:
			v := value
			req.Description = &v
		case models.FieldStatus:
			if !models.ValidNodeStatus(value) {
				return req, fmt.Errorf("invalid node status: %s", value)
			}
			v := value
			req.Status = &v
		default:
			return req, fmt.Errorf("unknown node field: %s", field)
		}
	}
	return req, nil
}

func nodeField(node *api.Node, field string) string {
	switch field {
	case models.FieldTitle:
		return node.Title
	case models.FieldDescription:
		return node.Description
	case models.FieldStatus:
		return node.Status
	}
	return ""
}

func setNodeField(node *api.Node, field, value string) {
	switch field {
	case models.FieldTitle:
		node.Title = value
	case models.FieldDescription:
		node.Description = value
	case models.FieldStatus:
		node.Status = value
	}
}

// cloneGraph делает неглубокую копию графа с собственными слайсами,
// чтобы не мутировать значение, которое уже читают подписчики кэша
func cloneGraph(graph *api.NodesWithLinks) *api.NodesWithLinks {
	return &api.NodesWithLinks{
		Nodes: append([]api.Node(nil), graph.Nodes...),
		Links: append([]api.NodeLink(nil), graph.Links...),
	}
}
