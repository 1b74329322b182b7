package controllers

import (
	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// POST /api/reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	var req entity.Reservation
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, err)
		return
	}

	id, err := ctl.Reservations.Create(c.Request.Context(), req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"status": "ok", "id": id})
}
