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

type ReservationController struct{ Service *services.ReservationService }

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

// POST /api/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := rc.Service.Create(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSlot),
			errors.Is(err, services.ErrReservationInPast),
			errors.Is(err, services.ErrNoTablesAvailable),
			errors.Is(err, services.ErrInvalidGuests):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, "Reservación creada exitosamente", gin.H{"reservation": res})
}

// GET /api/reservations/my-reservations
func (rc *ReservationController) ListMine(c *gin.Context) {
	out, err := rc.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(out), "reservations": out})
}

// PUT /api/reservations/:id/cancel
func (rc *ReservationController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	res, err := rc.Service.Cancel(uid, uint(id), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Reservación no encontrada")
		case errors.Is(err, services.ErrReservationNotCancellable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"reservation": res})
}
