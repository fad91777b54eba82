package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/models"
	"github.com/NGanna24/mi-gban-sub000/slots"
)

type ReservationHandler struct {
	repo *repos.ReservationRepo
}

func NewReservationHandler(repo *repos.ReservationRepo) *ReservationHandler {
	return &ReservationHandler{repo}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if req.ListingID <= 0 {
		return BadRequest("Listing ID is required.")
	}
	if _, err := time.Parse("2006-01-02", req.VisitDate); err != nil {
		return BadRequest("Visit date must be YYYY-MM-DD.")
	}
	if !slots.Valid(req.TimeSlot) {
		return BadRequest("Time slot is not in the visit schedule.")
	}

	id, err := h.repo.CreateReservation(data.Reservation{
		ListingID: req.ListingID,
		VisitorID: user.ID,
		VisitDate: req.VisitDate,
		TimeSlot:  req.TimeSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, repos.ErrListingNotFound):
			return NotFound("Listing not found.")
		case errors.Is(err, repos.ErrListingUnavailable):
			return BadRequest("Listing is not available for visits.")
		case errors.Is(err, repos.ErrSlotTaken):
			return Conflict("This time slot is already booked.")
		}
		return InternalError(err, "create reservation: ")
	}

	return Created(id)
}

// GetAvailability returns the free slots of the daily template for a
// listing on a given date.
func (h *ReservationHandler) GetAvailability(w http.ResponseWriter, r *http.Request) Result {
	listingID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	date := r.URL.Query().Get("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return BadRequest("Date must be YYYY-MM-DD.")
	}

	taken, err := h.repo.GetTakenSlots(listingID, date)
	if err != nil {
		return InternalError(err, "get availability: ")
	}

	return Ok(models.AvailabilityResponse{
		ListingID: listingID,
		Date:      date,
		Available: slots.Available(taken),
	})
}

func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	reservations, err := h.repo.GetReservationsByVisitor(user.ID)
	if err != nil {
		return InternalError(err, "get reservations: ")
	}

	res := models.GetReservationsResponse{Reservations: make([]models.Reservation, 0, len(reservations))}
	for _, item := range reservations {
		res.Reservations = append(res.Reservations, models.Reservation{
			ID:        item.ID,
			ListingID: item.ListingID,
			VisitDate: item.VisitDate,
			TimeSlot:  item.TimeSlot,
			Status:    string(item.Status),
			CreatedAt: item.CreatedAt,
		})
	}

	return Ok(res)
}
