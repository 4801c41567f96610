package controllers

import (
	"errors"
	"strconv"

	"github.com/Eduardo-pena2000/parmesana-web-app/pkg/resp"
	"github.com/Eduardo-pena2000/parmesana-web-app/services"
	"github.com/Eduardo-pena2000/parmesana-web-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Service *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrItemUnavailable),
			errors.Is(err, services.ErrMissingAddress):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, "Pedido creado exitosamente", gin.H{"order": order})
}

// GET /api/orders?status=&page=&limit=
func (oc *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := oc.Service.ListForUser(uid, c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/stats
func (oc *OrderController) Stats(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	stats, err := oc.Service.StatsForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Service.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Pedido no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /api/orders/number/:orderNumber
func (oc *OrderController) DetailByNumber(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := oc.Service.DetailByNumber(uid, c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Pedido no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PUT /api/orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	order, err := oc.Service.Cancel(uid, uint(id), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Pedido no encontrado")
		case errors.Is(err, services.ErrOrderNotCancellable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PUT /api/orders/:id/rate
func (oc *OrderController) Rate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Rate(uid, uint(id), req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Pedido no encontrado")
		case errors.Is(err, services.ErrInvalidRating), errors.Is(err, services.ErrOrderNotRateable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// PUT /api/orders/:id/status (staff)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.AdvanceStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Pedido no encontrado")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"order": order})
}
