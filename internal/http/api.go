package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"consulting-api/internal/auth"
	"consulting-api/internal/domain"
	"consulting-api/internal/service"
)

const ctxAccountID = "account_id"

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth         service.AuthService
	blog         service.BlogService
	testimonials service.TestimonialService
	contacts     service.ContactService
	users        service.UserService
	secret       []byte
	staticDir    string
	logger       *logrus.Logger
}

func NewHandler(
	authSvc service.AuthService,
	blog service.BlogService,
	testimonials service.TestimonialService,
	contacts service.ContactService,
	users service.UserService,
	secret []byte,
	staticDir string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		auth:         authSvc,
		blog:         blog,
		testimonials: testimonials,
		contacts:     contacts,
		users:        users,
		secret:       secret,
		staticDir:    staticDir,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.GET("/profile", h.requireAuth(), h.getProfile)
			authGroup.POST("/change-password", h.requireAuth(), h.changePassword)
		}

		blog := api.Group("/blog")
		{
			blog.GET("/posts", h.listPosts)
			blog.GET("/posts/admin", h.requireAuth(), h.requireAdmin(), h.listAllPosts)
			blog.GET("/posts/:id", h.getPost)
			blog.POST("/posts", h.requireAuth(), h.requireAdmin(), h.createPost)
			blog.PUT("/posts/:id", h.requireAuth(), h.requireAdmin(), h.updatePost)
			blog.DELETE("/posts/:id", h.requireAuth(), h.requireAdmin(), h.deletePost)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", h.listTestimonials)
			testimonials.POST("", h.createTestimonial)
			testimonials.PUT("/:id", h.updateTestimonial)
			testimonials.DELETE("/:id", h.deleteTestimonial)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", h.listContacts)
			contacts.POST("", h.createContact)
			contacts.PUT("/:id", h.updateContact)
			contacts.DELETE("/:id", h.deleteContact)
		}

		users := api.Group("/users")
		{
			users.GET("", h.listUsers)
			users.POST("", h.createUser)
			users.PUT("/:id", h.updateUser)
			users.POST("/:id/login", h.touchUserLogin)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	if h.staticDir != "" {
		router.NoRoute(h.serveStatic)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireAuth extracts and verifies the bearer token, storing the account id
// in the request context.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			respondError(c, http.StatusUnauthorized, "Missing or invalid authorization header")
			c.Abort()
			return
		}
		accountID, err := auth.VerifyToken(strings.TrimPrefix(header, prefix), h.secret)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ctxAccountID, accountID)
		c.Next()
	}
}

// requireAdmin must run after requireAuth.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, err := h.auth.GetProfile(c.Request.Context(), c.GetString(ctxAccountID))
		if err != nil || acct.Role != domain.RoleAdmin {
			respondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// serveStatic falls back to the SPA bundle for unknown non-API routes.
func (h *Handler) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondError(c, http.StatusNotFound, "Not found")
		return
	}

	requested := filepath.Join(h.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}

	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "index.html not found")
		return
	}
	c.File(index)
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondServiceError translates typed service errors to transport status
// codes. Unrecognized errors become an opaque 500.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	var locked *service.AccountLockedError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Reason)
	case errors.As(err, &locked):
		respondError(c, http.StatusLocked, "Account temporarily locked due to failed login attempts")
	case errors.Is(err, service.ErrDuplicateEmail):
		respondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	default:
		h.logger.WithError(err).Error("request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func validResourceID(id string) bool {
	return id != "" && len(id) <= 50
}
