package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type authRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Handle serves POST /api/auth, dispatching on the "action" field.
func (h *Handler) Handle(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	switch req.Action {
	case "login":
		h.login(c, req)
	case "register":
		h.register(c, req)
	case "verify":
		h.verify(c, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	}
}

func (h *Handler) login(c *gin.Context, req authRequest) {
	admin, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	case err != nil:
		log.Printf("❌ login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"username": admin.Username,
	})
}

func (h *Handler) register(c *gin.Context, req authRequest) {
	_, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	case errors.Is(err, ErrAdminExists):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin already exists. Contact system administrator."})
		return
	case err != nil:
		log.Printf("❌ register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	log.Printf("✅ admin %s registered", req.Username)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
	})
}

func (h *Handler) verify(c *gin.Context, req authRequest) {
	_, username, err := ValidateToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid": false,
			"error": "Invalid or expired token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"username": username,
	})
}
