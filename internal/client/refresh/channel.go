package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// State represents the connection state of the refresh channel.
type State int

const (
	// StateDisconnected means not connected to the server.
	StateDisconnected State = iota
	// StateConnecting means attempting to connect.
	StateConnecting
	// StateConnected means connected and receiving events.
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Параметры переподключения и keepalive
const (
	defaultPingInterval = 30 * time.Second
	defaultBaseBackoff  = time.Second
	defaultMaxBackoff   = 30 * time.Second
	defaultMaxAttempts  = 5
)

// Channel manages the WebSocket connection to a project's live refresh feed.
// Сервер шлет события-инвалидации; канал разбирает их и дергает callbacks.
// Подключение авторизуется первым кадром с токеном.
type Channel struct {
	serverURL string
	token     string
	projectID string
	logger    *slog.Logger

	conn   *websocket.Conn
	connMu sync.Mutex

	state   State
	stateMu sync.RWMutex

	// OnStateChange вызывается при каждой смене состояния (optional)
	OnStateChange func(state State)

	// Callbacks для событий сервера (optional)
	OnNodesChanged    func()
	OnNodeUpdated     func(node api.Node)
	OnParentChanged   func()
	OnScopeUpdated    func()
	OnImportCompleted func()

	pingInterval time.Duration
	baseBackoff  time.Duration
	maxBackoff   time.Duration
	maxAttempts  int
}

// NewChannel creates a refresh channel for one project.
// serverURL is the HTTP(S) base URL of the server.
func NewChannel(serverURL, token, projectID string, logger *slog.Logger) *Channel {
	return &Channel{
		serverURL:    strings.TrimRight(serverURL, "/"),
		token:        token,
		projectID:    projectID,
		logger:       logger,
		pingInterval: defaultPingInterval,
		baseBackoff:  defaultBaseBackoff,
		maxBackoff:   defaultMaxBackoff,
		maxAttempts:  defaultMaxAttempts,
	}
}

// State returns the current connection state.
func (c *Channel) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

func (c *Channel) setState(state State) {
	c.stateMu.Lock()
	changed := c.state != state
	c.state = state
	c.stateMu.Unlock()

	if changed && c.OnStateChange != nil {
		c.OnStateChange(state)
	}
}

// wsURL строит адрес websocket endpoint из базового HTTP адреса сервера
func (c *Channel) wsURL() (string, error) {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
		// уже websocket
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = "/ws/projects/" + c.projectID
	return u.String(), nil
}

// Run connects and processes events until ctx is cancelled.
// Неудачный dial и мгновенный обрыв сессии одинаково расходуют бюджет
// попыток; каждая следующая попытка ждет экспоненциальную задержку.
// Бюджет сбрасывается только после сессии, прожившей хотя бы
// ping-интервал. После исчерпания попыток тихо завершается.
func (c *Channel) Run(ctx context.Context) error {
	backoff := c.baseBackoff
	attempts := 0

	for {
		if ctx.Err() != nil {
			c.setState(StateDisconnected)
			return ctx.Err()
		}

		err := c.connect(ctx)
		if err == nil {
			started := time.Now()
			err = c.handleMessages(ctx)
			c.closeConn()
			c.setState(StateDisconnected)

			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("refresh channel disconnected", "project_id", c.projectID, "error", err)

			// Обрыв сразу после подключения - признак хлопающего сервера,
			// такая сессия не сбрасывает бюджет попыток
			if time.Since(started) >= c.pingInterval {
				attempts = 0
				backoff = c.baseBackoff
			}
		} else {
			c.setState(StateDisconnected)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Debug("refresh channel connect failed",
				"project_id", c.projectID, "error", err)
		}

		attempts++
		if attempts > c.maxAttempts {
			// Дальше не пытаемся: живые обновления выключаются без ошибки
			c.logger.Warn("refresh channel gave up reconnecting",
				"project_id", c.projectID, "attempts", c.maxAttempts)
			return nil
		}

		c.logger.Debug("refresh channel reconnecting",
			"project_id", c.projectID, "attempt", attempts, "backoff", backoff)

		select {
		case <-ctx.Done():
			c.setState(StateDisconnected)
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}
	}
}

// connect устанавливает соединение и отправляет кадр аутентификации
func (c *Channel) connect(ctx context.Context) error {
	c.setState(StateConnecting)

	wsURL, err := c.wsURL()
	if err != nil {
		return err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return fmt.Errorf("dial failed: %w", err)
	}

	// Первый кадр - аутентификация токеном
	auth := api.WSAuthMessage{Token: c.token}
	if err := conn.WriteJSON(auth); err != nil {
		_ = conn.Close()
		return fmt.Errorf("auth frame failed: %w", err)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	c.setState(StateConnected)
	c.logger.Info("refresh channel connected", "project_id", c.projectID)
	return nil
}

func (c *Channel) closeConn() {
	c.connMu.Lock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()
}

// handleMessages читает события до обрыва соединения или отмены контекста
func (c *Channel) handleMessages(ctx context.Context) error {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn == nil {
		return fmt.Errorf("not connected")
	}

	// Закрываем соединение при отмене контекста, чтобы разблокировать чтение
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	// Keepalive: сервер ожидает текстовый "ping" и отвечает {"type":"pong"}
	pingDone := make(chan struct{})
	defer close(pingDone)
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pingDone:
				return
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
					return
				}
			}
		}
	}()

	for {
		// Пропавший сервер обнаруживается по отсутствию pong
		if err := conn.SetReadDeadline(time.Now().Add(2*c.pingInterval + time.Second)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read failed: %w", err)
		}

		c.dispatch(data)
	}
}

// dispatch разбирает событие сервера и вызывает соответствующий callback.
// Неизвестные типы событий игнорируются: сервер может быть новее клиента.
func (c *Channel) dispatch(data []byte) {
	var event api.WSEvent
	if err := json.Unmarshal(data, &event); err != nil {
		c.logger.Debug("refresh channel dropped malformed event", "error", err)
		return
	}

	switch event.Type {
	case api.EventConnected, api.EventPong:
		// служебные кадры

	case api.EventNodesChanged:
		if c.OnNodesChanged != nil {
			c.OnNodesChanged()
		}

	case api.EventNodeUpdated:
		if c.OnNodeUpdated == nil {
			return
		}
		var payload api.WSNodePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			c.logger.Debug("refresh channel dropped malformed node payload", "error", err)
			return
		}
		c.OnNodeUpdated(payload.Node)

	case api.EventParentChanged:
		if c.OnParentChanged != nil {
			c.OnParentChanged()
		}

	case api.EventScopeUpdated:
		if c.OnScopeUpdated != nil {
			c.OnScopeUpdated()
		}

	case api.EventImportCompleted:
		if c.OnImportCompleted != nil {
			c.OnImportCompleted()
		}

	default:
		c.logger.Debug("refresh channel ignored unknown event", "type", event.Type)
	}
}
