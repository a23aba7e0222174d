package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwnflow/pwnflow-cli/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)

	// Хвостовой слэш в адресе сервера отбрасывается
	assert.Equal(t, baseURL, NewClient(baseURL+"/").baseURL)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	// Создаем mock сервер
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод и путь
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Декодируем запрос
		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		// Проверяем поля запроса
		assert.Equal(t, "testuser", req.Username)
		assert.Equal(t, "test@example.com", req.Email)
		assert.NotEmpty(t, req.Password)

		// Возвращаем успешный ответ
		w.WriteHeader(http.StatusCreated)
		resp := api.User{
			ID:       "user-123",
			Username: "testuser",
			Email:    "test@example.com",
			IsActive: true,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	// Создаем клиент
	client := NewClient(server.URL)

	// Выполняем запрос
	ctx := context.Background()
	req := api.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	resp, err := client.Register(ctx, req)

	// Проверяем результат
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "user-123", resp.ID)
	assert.Equal(t, "testuser", resp.Username)
}

// TestClient_Register_Error проверяет обработку ошибок при регистрации
func TestClient_Register_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "User already exists",
			statusCode: http.StatusConflict,
			responseBody: api.ErrorResponse{
				Detail: "user already exists",
			},
			expectedErrMsg: "server error (409): user already exists",
		},
		{
			name:       "Invalid request",
			statusCode: http.StatusBadRequest,
			responseBody: api.ErrorResponse{
				Detail: "invalid username",
			},
			expectedErrMsg: "server error (400): invalid username",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "server error (500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)
			ctx := context.Background()
			req := api.RegisterRequest{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "password123",
			}

			resp, err := client.Register(ctx, req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

// TestClient_Login проверяет успешный логин через OAuth2 password flow
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/login/access-token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		// Сервер принимает form-поля, не JSON
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "testuser", r.PostForm.Get("username"))
		assert.Equal(t, "password123", r.PostForm.Get("password"))

		w.WriteHeader(http.StatusOK)
		resp := api.TokenResponse{
			AccessToken: "access_token_123",
			TokenType:   "bearer",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.Login(ctx, "testuser", "password123")

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "access_token_123", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

// TestClient_Login_InvalidCredentials проверяет обработку неверных учетных данных
func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		resp := api.ErrorResponse{
			Detail: "Incorrect username or password",
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.Login(ctx, "testuser", "wrong_password")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "server error (401): Incorrect username or password")
	// 401 всегда маппится на ErrUnauthorized
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

// TestClient_BearerToken проверяет, что установленный токен
// добавляется в заголовок Authorization каждого запроса
func TestClient_BearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]api.Project{{ID: "p-1", Name: "External Pentest"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("test_token")
	ctx := context.Background()

	projects, err := client.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p-1", projects[0].ID)
}

// TestClient_Unauthorized проверяет, что на 401 клиент возвращает ErrUnauthorized
// для любого endpoint - вызывающий код делает принудительный logout
func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Detail: "Could not validate credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("expired_token")
	ctx := context.Background()

	_, err := client.GetNode(ctx, "project-1", "node-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

// TestClient_UpdateNode проверяет частичное обновление: только непустые поля
func TestClient_UpdateNode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/projects/project-1/nodes/node-1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// В теле только status: nil-поля не сериализуются
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &raw))
		assert.Equal(t, map[string]interface{}{"status": "IN_PROGRESS"}, raw)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.Node{ID: "node-1", Status: api.NodeStatusInProgress})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	status := api.NodeStatusInProgress
	node, err := client.UpdateNode(ctx, "project-1", "node-1", api.NodeUpdateRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, api.NodeStatusInProgress, node.Status)
}

// TestClient_PreviewProjectImport проверяет multipart загрузку бандла на предпросмотр
func TestClient_PreviewProjectImport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/projects/import/preview", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "secret123", r.FormValue("password"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "demo.penflow-project", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("bundle-bytes"), content)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.ImportPreviewResponse{
			Type:      "project",
			Name:      "External Pentest",
			NodeCount: 42,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	preview, err := client.PreviewProjectImport(ctx, "demo.penflow-project", []byte("bundle-bytes"), "secret123")

	require.NoError(t, err)
	assert.Equal(t, "project", preview.Type)
	assert.Equal(t, 42, preview.NodeCount)
}

// TestClient_DownloadExport проверяет скачивание бинарного бандла как есть
func TestClient_DownloadExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/exports/download/job-1", r.URL.Path)
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("test_token")
	ctx := context.Background()

	blob, err := client.DownloadExport(ctx, "/api/v1/exports/download/job-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, blob)
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Создаем контекст с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	resp, err := client.ListProjects(ctx)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

// TestClient_InvalidJSON проверяет обработку невалидного JSON в ответе
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	resp, err := client.GetProject(ctx, "project-1")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestClient_HTTPClientRedirect проверяет обработку редиректов
func TestClient_HTTPClientRedirect(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusFound)
			return
		}

		// Заголовок Authorization должен пережить редиректы
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.Project{ID: "p-1", Name: "Success after redirect"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("test_token")
	ctx := context.Background()

	resp, err := client.GetProject(ctx, "p-1")

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "p-1", resp.ID)
	assert.Equal(t, 3, redirectCount) // Проверяем что было 3 редиректа
}
