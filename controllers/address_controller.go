package controllers

import (
	"strconv"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/Eduardo-pena2000/parmesana-web-app/pkg/resp"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/Eduardo-pena2000/parmesana-web-app/utils"
	"github.com/gin-gonic/gin"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: repo}
}

type addressReq struct {
	Label          string `json:"label"`
	Street         string `json:"street" binding:"required"`
	ExteriorNumber string `json:"exteriorNumber"`
	InteriorNumber string `json:"interiorNumber"`
	Neighborhood   string `json:"neighborhood" binding:"required"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	References     string `json:"references"`
	IsDefault      bool   `json:"isDefault"`
}

// GET /api/addresses
func (ac *AddressController) List(c *gin.Context) {
	out, err := ac.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"addresses": out})
}

// POST /api/addresses
func (ac *AddressController) Create(c *gin.Context) {
	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr := entity.Address{
		UserID:         utils.CurrentUserID(c),
		Label:          req.Label,
		Street:         req.Street,
		ExteriorNumber: req.ExteriorNumber,
		InteriorNumber: req.InteriorNumber,
		Neighborhood:   req.Neighborhood,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		References:     req.References,
		IsDefault:      req.IsDefault,
		IsActive:       true,
	}
	if err := ac.Repo.Create(&addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, "Dirección guardada", gin.H{"address": addr})
}

// PATCH /api/addresses/:id
func (ac *AddressController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{
		"label":           req.Label,
		"street":          req.Street,
		"exterior_number": req.ExteriorNumber,
		"interior_number": req.InteriorNumber,
		"neighborhood":    req.Neighborhood,
		"city":            req.City,
		"state":           req.State,
		"postal_code":     req.PostalCode,
		"references":      req.References,
		"is_default":      req.IsDefault,
	}
	if err := ac.Repo.Update(uint(id), uid, fields); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// DELETE /api/addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ac.Repo.Delete(uint(id), uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
