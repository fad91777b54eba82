package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type AlertHandler struct {
	repo *repos.AlertRepo
}

func NewAlertHandler(repo *repos.AlertRepo) *AlertHandler {
	return &AlertHandler{repo}
}

func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Name is required.")
	}

	frequency := enums.Frequency(req.Frequency)
	if req.Frequency == "" {
		frequency = enums.FrequencyDaily
	}
	if !frequency.Valid() {
		return BadRequest("Frequency must be quotidien, hebdomadaire or mensuel.")
	}

	if msg := validateCriteria(req.Criteria); msg != "" {
		return BadRequest(msg)
	}

	alert := toDataAlert(req.Criteria)
	alert.UserID = user.ID
	alert.Name = name
	alert.Frequency = frequency
	alert.Active = true

	id, err := h.repo.CreateAlert(alert)
	if err != nil {
		return InternalError(err, "create alert: ")
	}

	return Created(id)
}

func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	alerts, err := h.repo.GetAlertsByUserID(user.ID)
	if err != nil {
		return InternalError(err, "get alerts: ")
	}

	res := &models.GetAlertsResponse{Alerts: make([]models.Alert, 0)}
	for _, a := range alerts {
		res.Alerts = append(res.Alerts, toModelAlert(a))
	}

	return Ok(res)
}

func (h *AlertHandler) GetAlert(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid alert ID.")
	}

	alert, err := h.repo.GetAlertByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get alert: ")
	}
	if alert == nil {
		return NotFound("Alert not found.")
	}

	return Ok(toModelAlert(*alert))
}

func (h *AlertHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid alert ID.")
	}

	var req models.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Name is required.")
	}

	frequency := enums.Frequency(req.Frequency)
	if !frequency.Valid() {
		return BadRequest("Frequency must be quotidien, hebdomadaire or mensuel.")
	}

	if msg := validateCriteria(req.Criteria); msg != "" {
		return BadRequest(msg)
	}

	alert := toDataAlert(req.Criteria)
	alert.ID = id
	alert.UserID = user.ID
	alert.Name = name
	alert.Frequency = frequency
	alert.Active = req.Active

	if err := h.repo.UpdateAlert(alert); err != nil {
		return InternalError(err, "update alert: ")
	}

	return Ok(nil)
}

func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid alert ID.")
	}

	if err := h.repo.DeleteAlert(id, user.ID); err != nil {
		return InternalError(err, "delete alert: ")
	}

	return Ok(nil)
}

// validateCriteria rejects empty and contradictory saved searches before
// any write happens. An alert needs at least one discriminating criterion:
// type, city, district, minimum price or minimum surface.
func validateCriteria(c models.AlertCriteria) string {
	if c.PropertyType == nil && c.City == nil && c.District == nil &&
		c.PriceMin == nil && c.SurfaceMin == nil {
		return "Alert needs at least one criterion: property type, city, district, minimum price or minimum surface."
	}
	if c.Transaction != nil && !enums.TransactionType(*c.Transaction).Valid() {
		return "Transaction type must be rent or sale."
	}
	if c.PriceMin != nil && c.PriceMax != nil && *c.PriceMin > *c.PriceMax {
		return "Minimum price cannot exceed maximum price."
	}
	if c.SurfaceMin != nil && c.SurfaceMax != nil && *c.SurfaceMin > *c.SurfaceMax {
		return "Minimum surface cannot exceed maximum surface."
	}
	return ""
}

func toDataAlert(c models.AlertCriteria) data.Alert {
	alert := data.Alert{
		PropertyType: c.PropertyType,
		City:         c.City,
		District:     c.District,
		PriceMin:     c.PriceMin,
		PriceMax:     c.PriceMax,
		SurfaceMin:   c.SurfaceMin,
		SurfaceMax:   c.SurfaceMax,
		MinBedrooms:  c.MinBedrooms,
		MinBathrooms: c.MinBathrooms,
		Amenities:    pq.StringArray{},
	}
	if c.Transaction != nil {
		t := enums.TransactionType(*c.Transaction)
		alert.Transaction = &t
	}
	if c.Amenities != nil {
		alert.Amenities = pq.StringArray(c.Amenities)
	}
	return alert
}

func toModelAlert(a data.Alert) models.Alert {
	criteria := models.AlertCriteria{
		PropertyType: a.PropertyType,
		City:         a.City,
		District:     a.District,
		PriceMin:     a.PriceMin,
		PriceMax:     a.PriceMax,
		SurfaceMin:   a.SurfaceMin,
		SurfaceMax:   a.SurfaceMax,
		MinBedrooms:  a.MinBedrooms,
		MinBathrooms: a.MinBathrooms,
		Amenities:    a.Amenities,
	}
	if a.Transaction != nil {
		t := string(*a.Transaction)
		criteria.Transaction = &t
	}

	return models.Alert{
		ID:                a.ID,
		Name:              a.Name,
		Criteria:          criteria,
		Frequency:         string(a.Frequency),
		Active:            a.Active,
		LastNotifiedAt:    a.LastNotifiedAt,
		NotificationCount: a.NotificationCount,
		LastMatchCount:    a.LastMatchCount,
		CreatedAt:         a.CreatedAt,
	}
}
