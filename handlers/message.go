package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/models"
	"github.com/NGanna24/mi-gban-sub000/notifiers"
)

type MessageHandler struct {
	mailer   *notifiers.Mailer
	listings *repos.ListingRepo
	users    *repos.UserRepo
}

func NewMessageHandler(mailer *notifiers.Mailer, listings *repos.ListingRepo, users *repos.UserRepo) *MessageHandler {
	return &MessageHandler{mailer: mailer, listings: listings, users: users}
}

// ContactAgency forwards a user's enquiry about a listing to the agency
// that owns it.
func (h *MessageHandler) ContactAgency(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.ContactAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if strings.TrimSpace(req.Message) == "" {
		return BadRequest("Message is required.")
	}

	listing, err := h.listings.GetListingByID(req.ListingID)
	if err != nil {
		return InternalError(err, "contact agency: get listing: ")
	}
	if listing == nil {
		return NotFound("Listing not found.")
	}

	owner, err := h.users.GetUserByID(listing.OwnerID)
	if err != nil {
		return InternalError(err, "contact agency: get owner: ")
	}
	if owner == nil {
		return NotFound("Listing owner not found.")
	}

	mail, err := h.mailer.ListingEnquiryEmail(owner.Email, *listing, user, req.Message)
	if err != nil {
		return InternalError(err, "contact agency: build email: ")
	}
	if err := h.mailer.Send(mail); err != nil {
		return InternalError(err, "contact agency: send email: ")
	}

	return Ok(nil)
}
