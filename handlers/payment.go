package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type PaymentHandler struct {
	payments *repos.PaymentRepo
	listings *repos.ListingRepo
}

func NewPaymentHandler(payments *repos.PaymentRepo, listings *repos.ListingRepo) *PaymentHandler {
	return &PaymentHandler{payments: payments, listings: listings}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if req.Amount <= 0 {
		return BadRequest("Amount must be positive.")
	}
	if req.Method == "" {
		return BadRequest("Payment method is required.")
	}

	listing, err := h.listings.GetListingByID(req.ListingID)
	if err != nil {
		return InternalError(err, "create payment: get listing: ")
	}
	if listing == nil {
		return NotFound("Listing not found.")
	}

	id, err := h.payments.CreatePayment(data.Payment{
		PayerID:   user.ID,
		ListingID: req.ListingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Status:    "recorded",
	})
	if err != nil {
		return InternalError(err, "create payment: ")
	}

	return Created(id)
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	payments, err := h.payments.GetPaymentsByPayer(user.ID)
	if err != nil {
		return InternalError(err, "get payments: ")
	}

	res := models.GetPaymentsResponse{Payments: make([]models.Payment, 0, len(payments))}
	for _, p := range payments {
		res.Payments = append(res.Payments, models.Payment{
			ID:        p.ID,
			ListingID: p.ListingID,
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}

	return Ok(res)
}
