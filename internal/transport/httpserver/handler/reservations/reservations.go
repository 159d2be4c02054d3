package reservations

import (
	"errors"
	"net/http"
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/internal/transport/httpserver/handler/common"
)

const conflictMessage = "이미 해당 시간에 예약이 있습니다."

type createReservationRequest struct {
	FacilityID string    `json:"facility_id" validate:"required"`
	MemberID   *string   `json:"member_id"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Purpose    string    `json:"purpose" validate:"max=500"`
}

type facilityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type memberSummaryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

type reservationResponse struct {
	ID         string                 `json:"id"`
	FacilityID string                 `json:"facility_id"`
	MemberID   *string                `json:"member_id"`
	StartTime  time.Time              `json:"start_time"`
	EndTime    time.Time              `json:"end_time"`
	Purpose    string                 `json:"purpose"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	Facility   *facilityResponse      `json:"facility,omitempty"`
	Member     *memberSummaryResponse `json:"member,omitempty"`
}

type seedResponse struct {
	Created int `json:"created"`
}

func (h *Handlers) ListFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.Reservations.ListFacilities(r.Context())
	if err != nil {
		h.log.InternalError("facilities.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]facilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		response = append(response, mapFacility(facility))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) SeedFacilities(w http.ResponseWriter, r *http.Request) {
	created, err := h.Reservations.SeedFacilities(r.Context(), h.seeds)
	if err != nil {
		h.log.InternalError("facilities.seed: seed failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, seedResponse{Created: created})
}

func (h *Handlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, err := common.ParseDateParam(query.Get("from"), h.loc)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid from")
		return
	}
	facilityID, err := common.ParseUUIDParam(query.Get("facility_id"))
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid facility_id")
		return
	}

	filter := reservationdomain.ListFilter{FacilityID: facilityID}
	if value := query.Get("status"); value != "" {
		status, err := reservationdomain.ParseStatus(value)
		if err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid status")
			return
		}
		filter.Status = status
	}
	if from != nil {
		filter.From = *from
	}

	reservations, err := h.Reservations.ListReservations(r.Context(), filter)
	if err != nil {
		h.log.InternalError("reservations.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]reservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		response = append(response, mapReservation(reservation))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	reservation, err := h.Reservations.CreateReservation(r.Context(), reservationdomain.CreateReservationInput{
		FacilityID: req.FacilityID,
		MemberID:   req.MemberID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservationdomain.ErrReservationConflict):
			h.log.BusinessError("reservations.create: slot taken", err, "facility_id", req.FacilityID)
			common.WriteError(w, http.StatusConflict, "reservation_conflict", conflictMessage)
		case errors.Is(err, reservationdomain.ErrFacilityNotFound):
			h.log.BusinessError("reservations.create: facility not found", err, "facility_id", req.FacilityID)
			common.WriteError(w, http.StatusNotFound, "facility_not_found", "facility not found")
		case errors.Is(err, reservationdomain.ErrMemberNotFound):
			h.log.BusinessError("reservations.create: member not found", err, "facility_id", req.FacilityID)
			common.WriteError(w, http.StatusNotFound, "member_not_found", "member not found")
		case errors.Is(err, reservationdomain.ErrInvalidTimeRange), errors.Is(err, reservationdomain.ErrFacilityRequired):
			h.log.BusinessError("reservations.create: invalid request", err, "facility_id", req.FacilityID)
			common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("reservations.create: create failed", err, "facility_id", req.FacilityID)
			common.WriteError(w, http.StatusInternalServerError, "internal_error", "예약 생성 실패")
		}
		return
	}

	common.WriteData(w, http.StatusCreated, mapReservation(*reservation))
}

func mapFacility(facility reservationdomain.Facility) facilityResponse {
	return facilityResponse{
		ID:        facility.ID,
		Name:      facility.Name,
		Location:  facility.Location,
		Capacity:  facility.Capacity,
		CreatedAt: facility.CreatedAt,
	}
}

func mapReservation(reservation reservationdomain.Reservation) reservationResponse {
	response := reservationResponse{
		ID:         reservation.ID,
		FacilityID: reservation.FacilityID,
		MemberID:   reservation.MemberID,
		StartTime:  reservation.StartTime,
		EndTime:    reservation.EndTime,
		Purpose:    reservation.Purpose,
		Status:     string(reservation.Status),
		CreatedAt:  reservation.CreatedAt,
	}
	if reservation.Facility != nil {
		facility := mapFacility(*reservation.Facility)
		response.Facility = &facility
	}
	if reservation.Member != nil {
		response.Member = &memberSummaryResponse{
			ID:    reservation.Member.ID,
			Name:  reservation.Member.Name,
			Phone: reservation.Member.Phone,
		}
	}
	return response
}
