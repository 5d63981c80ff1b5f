package handler

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cardinalnav/campus-backend-go/internal/middleware"
	"github.com/cardinalnav/campus-backend-go/internal/models"
	"github.com/cardinalnav/campus-backend-go/pkg/response"
)

// AuthHandler issues setup-mode tokens. Accounts are kept in memory; the
// default admin password is "admin123".
type AuthHandler struct {
	secret []byte

	mu    sync.Mutex
	users map[string]*models.User
}

// NewAuthHandler creates an auth handler seeded with the admin account.
func NewAuthHandler(secret []byte) *AuthHandler {
	return &AuthHandler{
		secret: secret,
		users: map[string]*models.User{
			"admin": {
				ID:       "user_001",
				Username: "admin",
				Password: "$2a$10$R/xhHKCYEuiEacz45p8qYe6v.m7moYu0GF0BspZgWXeZg5SIAJhAy",
				Email:    "admin@example.com",
			},
		},
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid login payload")
		return
	}

	h.mu.Lock()
	user, exists := h.users[req.Username]
	h.mu.Unlock()
	if !exists || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid username or password")
		return
	}

	claims := &middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "campus-nav",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		response.InternalError(c, "Failed to sign token")
		return
	}

	response.Success(c, LoginResponse{Token: token, Username: user.Username})
}

// RegisterRequest is the account creation payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid registration payload")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.users[req.Username]; exists {
		response.Conflict(c, "Username already taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalError(c, "Failed to hash password")
		return
	}

	h.users[req.Username] = &models.User{
		ID:       "user_" + req.Username,
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
	}
	response.Success(c, gin.H{"username": req.Username})
}
