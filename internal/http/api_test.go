package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting-api/internal/auth"
	"consulting-api/internal/repository/memory"
	"consulting-api/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	accounts := memory.NewAccountRepository()
	posts := memory.NewBlogPostRepository()
	testimonials := memory.NewTestimonialRepository()
	contacts := memory.NewContactRepository()

	secret := []byte("test-secret")
	authSvc := service.NewAuthService(accounts, service.AuthConfig{
		Secret:   secret,
		TokenTTL: time.Hour,
		Lockout: auth.LockoutPolicy{
			Threshold: 5,
			LockFor:   30 * time.Minute,
		},
		PasswordMinLength: 8,
	})

	handler := NewHandler(
		authSvc,
		service.NewBlogService(posts),
		service.NewTestimonialService(testimonials),
		service.NewContactService(contacts),
		service.NewUserService(accounts),
		secret,
		"",
		logger,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]any
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}

func registerAccount(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":      "Test User",
		"email":     email,
		"password":  "Valid1Pass",
		"user_type": role,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	return data["access_token"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ana Silva",
		"email":    "ana@example.com",
		"password": "Valid1Pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.NotEmpty(t, data["user_id"])
	assert.NotEmpty(t, data["access_token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "member", user["user_type"])
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)

	w, resp = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "Ana@Example.com",
		"password": "Valid1Pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ana Silva",
		"email":    "ana@example.com",
		"password": "alllowercase1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Password must contain at least one uppercase letter", resp["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, "ana@example.com", "")

	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Other",
		"email":    "ANA@example.com",
		"password": "Valid1Pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", resp["error"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, "ana@example.com", "")

	w1, resp1 := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "WrongPass1",
	})
	w2, resp2 := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "WrongPass1",
	})

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, resp1["error"], resp2["error"])
	assert.Equal(t, "Invalid email or password", resp1["error"])
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, "ana@example.com", "")

	for i := 0; i < 5; i++ {
		w, _ := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "ana@example.com",
			"password": "WrongPass1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i+1)
	}

	// Correct password no longer helps once the account is locked.
	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "Valid1Pass",
	})
	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Equal(t, "Account temporarily locked due to failed login attempts", resp["error"])
}

func TestProfileRequiresToken(t *testing.T) {
	router := newTestRouter(t)
	token := registerAccount(t, router, "ana@example.com", "")

	w, _ := doJSON(t, router, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/auth/profile", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, router, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := resp["data"].(map[string]any)
	assert.Equal(t, "ana@example.com", user["email"])
}

func TestChangePassword(t *testing.T) {
	router := newTestRouter(t)
	token := registerAccount(t, router, "ana@example.com", "")

	w, resp := doJSON(t, router, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"current_password": "WrongPass1",
		"new_password":     "Another1Pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Current password is incorrect", resp["error"])

	w, resp = doJSON(t, router, http.MethodPost, "/api/auth/change-password", token, gin.H{
		"current_password": "Valid1Pass",
		"new_password":     "Another1Pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password changed successfully", resp["message"])

	w, _ = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "Another1Pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlogAdminGating(t *testing.T) {
	router := newTestRouter(t)
	memberToken := registerAccount(t, router, "member@example.com", "")
	adminToken := registerAccount(t, router, "admin@example.com", "admin")

	post := gin.H{
		"title":    "Primeiro artigo",
		"content":  "Conteudo longo o suficiente para o filtro.",
		"category": "Artigo",
		"author":   "Ana Silva",
		"status":   "published",
	}

	w, _ := doJSON(t, router, http.MethodPost, "/api/blog/posts", "", post)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/blog/posts", memberToken, post)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/api/blog/posts", adminToken, post)
	require.Equal(t, http.StatusCreated, w.Code)
	id := resp["data"].(map[string]any)["_id"].(string)
	require.NotEmpty(t, id)

	// Draft posts stay hidden from the public listing.
	draft := gin.H{
		"title":    "Rascunho interno",
		"content":  "Ainda em revisao, nao publicar por enquanto.",
		"category": "Tutorial",
		"author":   "Ana Silva",
	}
	w, _ = doJSON(t, router, http.MethodPost, "/api/blog/posts", adminToken, draft)
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = doJSON(t, router, http.MethodGet, "/api/blog/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 1)

	w, resp = doJSON(t, router, http.MethodGet, "/api/blog/posts/admin", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 2)

	w, resp = doJSON(t, router, http.MethodGet, "/api/blog/posts/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Primeiro artigo", resp["data"].(map[string]any)["title"])
}

func TestGetPostRejectsOversizedID(t *testing.T) {
	router := newTestRouter(t)

	longID := strings.Repeat("a", 51)
	w, resp := doJSON(t, router, http.MethodGet, "/api/blog/posts/"+longID, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid post ID", resp["error"])
}

func TestContactSubmission(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/contacts", "", gin.H{
		"name":    "Carlos Mendes",
		"email":   "carlos@example.com",
		"company": "TechStart",
		"message": "Gostaria de saber mais sobre consultoria em IA.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, resp["data"].(map[string]any)["_id"])

	w, resp = doJSON(t, router, http.MethodGet, "/api/contacts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].(map[string]any)["status"])
}

func TestContactValidation(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/contacts", "", gin.H{
		"name":  "Carlos Mendes",
		"email": "carlos@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	msg := fmt.Sprintf("%v", resp["error"])
	assert.Contains(t, msg, "message")
}

func TestTestimonialLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/testimonials", "", gin.H{
		"client_name": "Maria Santos",
		"company":     "InovaTech",
		"position":    "CEO",
		"text":        "Excelente trabalho, recomendo.",
		"rating":      5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := resp["data"].(map[string]any)["_id"].(string)

	w, resp = doJSON(t, router, http.MethodPut, "/api/testimonials/"+id, "", gin.H{
		"rating": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Testimonial updated successfully", resp["message"])

	w, _ = doJSON(t, router, http.MethodDelete, "/api/testimonials/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, router, http.MethodGet, "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 0)
}

func TestUserDirectory(t *testing.T) {
	router := newTestRouter(t)
	registerAccount(t, router, "ana@example.com", "")

	w, resp := doJSON(t, router, http.MethodPost, "/api/users", "", gin.H{
		"name":      "Convidado",
		"email":     "guest@example.com",
		"user_type": "premium",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := resp["data"].(map[string]any)["_id"].(string)

	w, resp = doJSON(t, router, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["data"].([]any)
	assert.Len(t, items, 2)
	for _, it := range items {
		user := it.(map[string]any)
		_, hasHash := user["password_hash"]
		assert.False(t, hasHash)
	}

	w, resp = doJSON(t, router, http.MethodPost, "/api/users/"+id+"/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Last login updated successfully", resp["message"])
}
