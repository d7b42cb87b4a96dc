package controller

import (
	"errors"
	"strconv"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	NIK      string `json:"nik" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in by NIK
// @Description Authenticates a participant or admin and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "Token and account"
// @Failure 400 {object} util.Response "Malformed request"
// @Failure 401 {object} util.Response "Wrong NIK or password"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.NIK, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrNIKAtauSandiSalah) {
			util.Error(ctx, 401, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token, "user": user})
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

// swagger:model AdminRequest
type AdminRequest struct {
	NIK      string   `json:"nik"`
	Nama     string   `json:"nama"`
	Jabatan  string   `json:"jabatan"`
	Peran    string   `json:"peran"`
	JobSites []string `json:"jobSites"`
	Password string   `json:"password"`
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags admins
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admins [get]
func (c *AuthController) ListAdmins(ctx *gin.Context) {
	admins, err := c.AuthService.ListAdmins()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, admins)
}

// CreateAdmin godoc
// @Summary Register an admin account
// @Tags admins
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AdminRequest true "Admin account"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "NIK already registered"
// @Router /api/admins [post]
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	var req AdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.NIK == "" || req.Nama == "" || req.Password == "" {
		util.BadRequest(ctx, "NIK, nama dan password wajib diisi")
		return
	}

	admin := &model.User{
		NIK:      req.NIK,
		Nama:     req.Nama,
		Jabatan:  req.Jabatan,
		Peran:    req.Peran,
		JobSites: req.JobSites,
		Password: req.Password,
	}
	if err := c.AuthService.CreateAdmin(admin); err != nil {
		if errors.Is(err, util.ErrNIKTerdaftar) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, admin)
}

// UpdateAdmin godoc
// @Summary Update an admin account
// @Tags admins
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Admin ID"
// @Param   body body AdminRequest true "Fields to update"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admins/{id} [put]
func (c *AuthController) UpdateAdmin(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req AdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated := &model.User{
		NIK:      req.NIK,
		Nama:     req.Nama,
		Jabatan:  req.Jabatan,
		Peran:    req.Peran,
		JobSites: req.JobSites,
	}
	admin, err := c.AuthService.UpdateAdmin(uint(id), updated, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNIKTerdaftar):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrMasterAdminTerakhir):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, admin)
}

// DeleteAdmin godoc
// @Summary Delete an admin account
// @Tags admins
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Admin ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "Last master admin"
// @Router /api/admins/{id} [delete]
func (c *AuthController) DeleteAdmin(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.AuthService.DeleteAdmin(uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrMasterAdminTerakhir):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
