// services/reservation_service.go
package services

import (
	"context"

	"backend/entity"
)

// ReservationService forwards validated reservations to the store. There is
// no fallback on this path: a failed write surfaces to the caller.
type ReservationService struct {
	Store Gateway
}

func NewReservationService(store Gateway) *ReservationService {
	return &ReservationService{Store: store}
}

func (s *ReservationService) Create(ctx context.Context, r entity.Reservation) (string, error) {
	return s.Store.Insert(ctx, "reservation", r)
}
