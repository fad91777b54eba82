package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NGanna24/mi-gban-sub000/config"
	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/lang"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type ListingHandler struct {
	repo *repos.ListingRepo
}

func NewListingHandler(repo *repos.ListingRepo) *ListingHandler {
	return &ListingHandler{repo}
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if msg := validateListing(req.Title, req.City, req.PropertyType, req.Transaction, req.Price, req.BillingPeriod); msg != "" {
		return BadRequest(msg)
	}

	listing := data.Listing{
		OwnerID:       user.ID,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Language:      lang.Detect(req.Description),
		City:          strings.TrimSpace(req.City),
		District:      strings.TrimSpace(req.District),
		PropertyType:  req.PropertyType,
		Transaction:   enums.TransactionType(req.Transaction),
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
		Status:        enums.ListingStatusAvailable,
		Attributes:    toAttributes(req.Attributes),
	}

	media := make([]data.ListingMedia, 0, len(req.Media))
	for _, m := range req.Media {
		media = append(media, data.ListingMedia{
			URL:        m.URL,
			PreviewURL: m.PreviewURL,
			PublicID:   m.PublicID,
		})
	}

	id, err := h.repo.CreateListing(listing, media)
	if err != nil {
		return InternalError(err, "create listing: ")
	}

	return Created(id)
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	listing, err := h.repo.GetListingByID(id)
	if err != nil {
		return InternalError(err, "get listing: ")
	}
	if listing == nil {
		return NotFound("Listing not found.")
	}

	media, err := h.repo.GetMedia(id)
	if err != nil {
		return InternalError(err, "get listing media: ")
	}

	return Ok(ToModelListing(*listing, media))
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	var req models.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if msg := validateListing(req.Title, req.City, req.PropertyType, req.Transaction, req.Price, req.BillingPeriod); msg != "" {
		return BadRequest(msg)
	}

	listing := data.Listing{
		ID:            id,
		OwnerID:       user.ID,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Language:      lang.Detect(req.Description),
		City:          strings.TrimSpace(req.City),
		District:      strings.TrimSpace(req.District),
		PropertyType:  req.PropertyType,
		Transaction:   enums.TransactionType(req.Transaction),
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
	}

	if err := h.repo.UpdateListing(listing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound("Listing not found.")
		}
		return InternalError(err, "update listing: ")
	}

	return Ok(nil)
}

func (h *ListingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	status := enums.ListingStatus(req.Status)
	if !status.Valid() {
		return BadRequest("Invalid status.")
	}

	listing, err := h.repo.GetListingByID(id)
	if err != nil {
		return InternalError(err, "update status: get listing: ")
	}
	if listing == nil || listing.OwnerID != user.ID {
		return NotFound("Listing not found.")
	}

	if err := h.repo.UpdateStatus(id, status); err != nil {
		return InternalError(err, "update listing status: ")
	}

	return Ok(nil)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	if err := h.repo.DeleteListing(id, user.ID); err != nil {
		return InternalError(err, "delete listing: ")
	}

	return Ok(nil)
}

// RecordView counts a listing view, deduplicated per viewer and per IP
// inside the configured windows.
func (h *ListingHandler) RecordView(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid listing ID.")
	}

	var viewerID *uuid.UUID
	if user, ok := r.Context().Value("user").(data.User); ok {
		viewerID = &user.ID
	}

	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	if idx := strings.Index(ip, ","); idx > 0 {
		ip = strings.TrimSpace(ip[:idx])
	}

	userWindow := time.Duration(config.Config.ViewDedupUserHours) * time.Hour
	ipWindow := time.Duration(config.Config.ViewDedupIPHours) * time.Hour
	if err := h.repo.RecordView(id, viewerID, ip, userWindow, ipWindow); err != nil {
		return InternalError(err, "record view: ")
	}

	return Ok(nil)
}

func validateListing(title, city, propertyType, transaction string, price int64, billingPeriod *string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if strings.TrimSpace(city) == "" {
		return "City is required."
	}
	if strings.TrimSpace(propertyType) == "" {
		return "Property type is required."
	}
	if !enums.TransactionType(transaction).Valid() {
		return "Transaction type must be rent or sale."
	}
	if price < 0 {
		return "Price cannot be negative."
	}
	if billingPeriod != nil && enums.TransactionType(transaction) != enums.TransactionRent {
		return "Billing period only applies to rentals."
	}
	return ""
}

func toAttributes(attrs map[string]float64) []data.ListingAttribute {
	out := make([]data.ListingAttribute, 0, len(attrs))
	for nom, valeur := range attrs {
		out = append(out, data.ListingAttribute{Nom: nom, Valeur: valeur})
	}
	return out
}

// ToModelListing shapes a listing row for JSON responses.
func ToModelListing(l data.Listing, media []data.ListingMedia) models.Listing {
	attrs := make(map[string]float64, len(l.Attributes))
	for _, a := range l.Attributes {
		attrs[a.Nom] = a.Valeur
	}

	items := make([]models.MediaItem, 0, len(media))
	for _, m := range media {
		items = append(items, models.MediaItem{
			URL:        m.URL,
			PreviewURL: m.PreviewURL,
			PublicID:   m.PublicID,
		})
	}

	return models.Listing{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		Description:   l.Description,
		Language:      l.Language,
		City:          l.City,
		District:      l.District,
		PropertyType:  l.PropertyType,
		Transaction:   string(l.Transaction),
		Price:         l.Price,
		BillingPeriod: l.BillingPeriod,
		Status:        string(l.Status),
		ViewCount:     l.ViewCount,
		Attributes:    attrs,
		Media:         items,
		CreatedAt:     l.CreatedAt,
	}
}
