package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register creates a customer account. Admins are only created by the startup seed.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" form:"name" binding:"required,max=255"`
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required,min=8"`
	}
	var req request
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var taken int64
	if err := uc.DB.WithContext(c.Request.Context()).Model(&models.User{}).Where("email = ?", email).Count(&taken).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if taken > 0 {
		respondServiceError(c, services.NewValidationError("email", "a user with that email already exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}
	if err := uc.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	utils.RespondRedirect(c, http.StatusCreated, "User registered", middlewares.LoginPath, gin.H{
		"user_id": user.ID,
	})
}

// Login returns a JWT. A "next" query parameter is echoed back as the redirect target.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" form:"email" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	var user models.User
	err := uc.DB.WithContext(c.Request.Context()).Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, err)
			return
		}
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s, role: %s", user.Email, user.Role)

	next := c.Query("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	utils.RespondRedirect(c, http.StatusOK, "Login successful", next, gin.H{
		"token":     token,
		"user_role": user.Role,
	})
}

// Logout revokes the bearer token used for this request.
func (uc *UserController) Logout(c *gin.Context) {
	token := middlewares.CurrentToken(c)
	until := time.Now().Add(24 * time.Hour)
	if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	utils.BlacklistToken(token, until)

	utils.RespondRedirect(c, http.StatusOK, "Logged out", "/", nil)
}

// GetProfile
func (uc *UserController) GetProfile(c *gin.Context) {
	p := middlewares.CurrentPrincipal(c)

	var user models.User
	if err := uc.DB.WithContext(c.Request.Context()).First(&user, p.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}
