package controller

import (
	"errors"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MasterDataController struct {
	MasterDataService *service.MasterDataService
}

func NewMasterDataController(masterDataService *service.MasterDataService) *MasterDataController {
	return &MasterDataController{MasterDataService: masterDataService}
}

// swagger:model MasterOptionRequest
type MasterOptionRequest struct {
	Category string `json:"category" binding:"required"`
	Value    string `json:"value" binding:"required"`
}

// ListAll godoc
// @Summary All master option lists
// @Tags masterdata
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/masterdata [get]
func (c *MasterDataController) ListAll(ctx *gin.Context) {
	lists, err := c.MasterDataService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lists)
}

// AddOption godoc
// @Summary Add a master option
// @Tags masterdata
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body MasterOptionRequest true "Option"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/masterdata [post]
func (c *MasterDataController) AddOption(ctx *gin.Context) {
	var req MasterOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MasterDataService.AddOption(req.Category, req.Value); err != nil {
		if errors.Is(err, util.ErrKategoriTidakValid) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.Error(ctx, 409, err.Error())
		}
		return
	}
	util.Created(ctx, nil)
}

// swagger:model MasterListRequest
type MasterListRequest struct {
	Values []string `json:"values" binding:"required"`
}

// ReplaceList godoc
// @Summary Replace a whole option list
// @Description Swaps the ordered values of one category; values still held by participants cannot be dropped
// @Tags masterdata
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   category path string true "Category"
// @Param   body body MasterListRequest true "Ordered values"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "Removed value still in use"
// @Router /api/masterdata/{category} [put]
func (c *MasterDataController) ReplaceList(ctx *gin.Context) {
	var req MasterListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MasterDataService.ReplaceList(ctx.Param("category"), req.Values); err != nil {
		switch {
		case errors.Is(err, util.ErrKategoriTidakValid):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrMasterDataDipakai):
			util.Error(ctx, 409, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteOption godoc
// @Summary Delete a master option
// @Description Refused while any participant still uses the value
// @Tags masterdata
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body MasterOptionRequest true "Option"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response "Value still in use"
// @Router /api/masterdata [delete]
func (c *MasterDataController) DeleteOption(ctx *gin.Context) {
	var req MasterOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MasterDataService.DeleteOption(req.Category, req.Value); err != nil {
		switch {
		case errors.Is(err, util.ErrKategoriTidakValid):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrMasterDataNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrMasterDataDipakai):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// GetLogo godoc
// @Summary Current organization logo URL
// @Tags masterdata
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Router /api/masterdata/logo [get]
func (c *MasterDataController) GetLogo(ctx *gin.Context) {
	url, err := c.MasterDataService.GetLogo()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// UploadLogo godoc
// @Summary Upload the organization logo
// @Tags masterdata
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Logo file"
// @Success 200 {object} util.Response{data=object} "Stored URL"
// @Router /api/masterdata/logo [post]
func (c *MasterDataController) UploadLogo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file wajib diunggah")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	url, err := c.MasterDataService.UploadLogo(ctx.Request.Context(), file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
