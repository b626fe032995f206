package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

type registerInput struct {
	Name     string      `json:"name" binding:"omitempty,max=50"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6,max=72"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=tenant landlord"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(u *models.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email, "role": u.Role}
}

func (h *Controller) session(c *gin.Context, status int, user *models.User) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		abort(c, apierrors.Internal("generate token", err))
		return
	}
	utils.Success(c, status, gin.H{"token": token, "user": userPayload(user)})
}

// Register creates an account and signs it in.
func (h *Controller) Register(c *gin.Context) {
	var input registerInput
	if !bindJSON(c, &input) {
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleTenant
	}
	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Role:     role,
	}
	if err := user.HashPassword(); err != nil {
		abort(c, apierrors.Internal("hash password", err))
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			abort(c, apierrors.Conflict("User with this email already exists"))
			return
		}
		abort(c, apierrors.Internal("create user", err))
		return
	}

	h.logger.Info("user registered", "user_id", user.ID.Hex(), "role", user.Role)
	h.session(c, http.StatusCreated, user)
}

// Login exchanges credentials for a token.
func (h *Controller) Login(c *gin.Context) {
	var input loginInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	user, err := h.store.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if errors.Is(err, store.ErrNotFound) {
		abort(c, apierrors.Unauthorized("Invalid credentials"))
		return
	}
	if err != nil {
		abort(c, apierrors.Internal("find user", err))
		return
	}

	if !user.ComparePassword(input.Password) {
		abort(c, apierrors.Unauthorized("Invalid credentials"))
		return
	}

	h.session(c, http.StatusOK, user)
}

// Me returns the authenticated user.
func (h *Controller) Me(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	user, err := h.store.FindUserByID(ctx, caller.ID)
	if err != nil {
		abort(c, storeError(err, "User"))
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}
