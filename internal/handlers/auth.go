package handlers

import (
	"errors"
	"net/http"

	"github.com/shishant-cloud/quiz-portal-personal-project/internal/middleware"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/models"
	"github.com/shishant-cloud/quiz-portal-personal-project/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60

type AuthHandler struct {
	authService    *services.AuthService
	adminAccessKey string
}

func NewAuthHandler(authService *services.AuthService, adminAccessKey string) *AuthHandler {
	return &AuthHandler{authService: authService, adminAccessKey: adminAccessKey}
}

type SignupForm struct {
	Username string `form:"username" binding:"required,min=3,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type AdminSignupForm struct {
	SignupForm
	AccessKey string `form:"access_key"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) ShowAdminSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_signup.html", gin.H{"Flash": popFlash(c)})
}

// AdminSignup registers an admin account. The configured access key gates
// registration; a wrong key creates no record.
func (h *AuthHandler) AdminSignup(c *gin.Context) {
	var form AdminSignupForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "All fields are required")
		c.Redirect(http.StatusFound, "/admin/signup")
		return
	}

	if form.AccessKey != h.adminAccessKey {
		setFlash(c, "Invalid Admin Access Key!")
		c.Redirect(http.StatusFound, "/admin/signup")
		return
	}

	if _, err := h.authService.Register(form.Username, form.Email, form.Password, models.RoleAdmin); err != nil {
		h.flashRegisterError(c, err, "/admin/signup")
		return
	}

	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *AuthHandler) ShowUserSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "user_signup.html", gin.H{"Flash": popFlash(c)})
}

func (h *AuthHandler) UserSignup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "All fields are required")
		c.Redirect(http.StatusFound, "/user/signup")
		return
	}

	if _, err := h.authService.Register(form.Username, form.Email, form.Password, models.RoleStudent); err != nil {
		h.flashRegisterError(c, err, "/user/signup")
		return
	}

	setFlash(c, "Registration successful!")
	c.Redirect(http.StatusFound, "/user/login")
}

func (h *AuthHandler) flashRegisterError(c *gin.Context, err error, backTo string) {
	if errors.Is(err, services.ErrUsernameTaken) {
		setFlash(c, "Username already taken")
	} else {
		setFlash(c, "Registration failed, please try again")
	}
	c.Redirect(http.StatusFound, backTo)
}

func (h *AuthHandler) ShowAdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Flash": popFlash(c)})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, models.RoleAdmin, "/admin/login", "/admin/dashboard")
}

func (h *AuthHandler) ShowUserLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "user_login.html", gin.H{"Flash": popFlash(c)})
}

func (h *AuthHandler) UserLogin(c *gin.Context) {
	h.login(c, models.RoleStudent, "/user/login", "/student/dashboard")
}

func (h *AuthHandler) login(c *gin.Context, role, loginPath, dashboardPath string) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Invalid Credentials")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	user, err := h.authService.Login(form.Username, form.Password, role)
	if err != nil {
		setFlash(c, "Invalid Credentials")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		setFlash(c, "Login failed, please try again")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, dashboardPath)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
