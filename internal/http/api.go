package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
	"github.com/tusarkanta004/skill-swap-platform/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	swaps  service.SwapService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, swaps service.SwapService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		swaps:  swaps,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.POST("/auth/login", h.login)
		api.POST("/auth/register", h.register)
		api.GET("/users/public", h.listPublicUsers)
		api.GET("/users/:id", h.getUser)
		api.POST("/swap-requests", h.createSwapRequest)
		api.GET("/swap-requests/user/:userId", h.listSwapRequestsByUser)
		api.PATCH("/swap-requests/:id/status", h.updateSwapRequestStatus)
		api.DELETE("/swap-requests/:id", h.deleteSwapRequest)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
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

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username      string   `json:"username" binding:"required"`
	Password      string   `json:"password" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Location      *string  `json:"location"`
	Avatar        *string  `json:"avatar"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  *string  `json:"availability"`
	IsPublic      *bool    `json:"isPublic"`
}

type createSwapRequestRequest struct {
	FromUserID int64   `json:"fromUserId" binding:"required"`
	ToUserID   int64   `json:"toUserId" binding:"required"`
	Message    *string `json:"message"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userToAuthResponse(user)})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username:      req.Username,
		Password:      req.Password,
		Name:          req.Name,
		Email:         req.Email,
		Location:      req.Location,
		Avatar:        req.Avatar,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  req.Availability,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userToAuthResponse(user)})
}

func (h *Handler) listPublicUsers(c *gin.Context) {
	users, err := h.users.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	// ids start at 1, so a malformed segment parses to 0 and simply misses
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) createSwapRequest(c *gin.Context) {
	var req createSwapRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	request, err := h.swaps.Create(c.Request.Context(), req.FromUserID, req.ToUserID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, swapToResponse(request))
}

func (h *Handler) listSwapRequestsByUser(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.Param("userId"), 10, 64)

	requests, err := h.swaps.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resp := make([]SwapRequestResponse, len(requests))
	for i := range requests {
		resp[i] = swapToResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) updateSwapRequestStatus(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	request, err := h.swaps.UpdateStatus(c.Request.Context(), id, domain.SwapStatus(req.Status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, swapToResponse(request))
}

func (h *Handler) deleteSwapRequest(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	deleted, err := h.swaps.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

// UserResponse is the full stored record, password included. The public
// listing and profile endpoints return users verbatim; only the auth
// endpoints use the redacted projection below.
type UserResponse struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Password      string   `json:"password"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Location      *string  `json:"location"`
	Avatar        *string  `json:"avatar"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  *string  `json:"availability"`
	Rating        int      `json:"rating"`
	IsPublic      bool     `json:"isPublic"`
}

// AuthUserResponse is the projection returned by login and register.
type AuthUserResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Location *string `json:"location"`
	Avatar   *string `json:"avatar"`
}

type SwapRequestResponse struct {
	ID         int64             `json:"id"`
	FromUserID int64             `json:"fromUserId"`
	ToUserID   int64             `json:"toUserId"`
	Status     domain.SwapStatus `json:"status"`
	Message    *string           `json:"message"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Password:      user.Password,
		Name:          user.Name,
		Email:         user.Email,
		Location:      user.Location,
		Avatar:        user.Avatar,
		SkillsOffered: user.SkillsOffered,
		SkillsWanted:  user.SkillsWanted,
		Availability:  user.Availability,
		Rating:        user.Rating,
		IsPublic:      user.IsPublic,
	}
}

func userToAuthResponse(user *domain.User) AuthUserResponse {
	return AuthUserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Location: user.Location,
		Avatar:   user.Avatar,
	}
}

func swapToResponse(request *domain.SwapRequest) SwapRequestResponse {
	return SwapRequestResponse{
		ID:         request.ID,
		FromUserID: request.FromUserID,
		ToUserID:   request.ToUserID,
		Status:     request.Status,
		Message:    request.Message,
	}
}
