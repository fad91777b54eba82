package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type NotificationHandler struct {
	repo *repos.NotificationRepo
}

func NewNotificationHandler(repo *repos.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{repo}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := 20
	offset := (page - 1) * perPage

	entries, total, err := h.repo.GetEntriesByUserID(user.ID, perPage, offset)
	if err != nil {
		return InternalError(err, "get notifications: ")
	}

	res := models.GetNotificationsResponse{
		Notifications: make([]models.Notification, 0, len(entries)),
		Total:         total,
		Page:          page,
		PerPage:       perPage,
	}
	for _, e := range entries {
		res.Notifications = append(res.Notifications, models.Notification{
			ID:         e.ID,
			AlertID:    e.AlertID,
			MatchCount: e.MatchCount,
			ListingIDs: e.ListingIDs,
			Status:     string(e.Status),
			CreatedAt:  e.CreatedAt,
		})
	}

	return Ok(res)
}

func (h *NotificationHandler) UpdateNotification(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid notification ID.")
	}

	var req models.UpdateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	status := enums.NotificationStatus(req.Status)
	if !status.Valid() || status == enums.NotificationUnread {
		return BadRequest("Status must be read or ignored.")
	}

	updated, err := h.repo.SetStatus(id, user.ID, status)
	if err != nil {
		return InternalError(err, "update notification: ")
	}
	if !updated {
		return NotFound("Notification not found.")
	}

	return Ok(nil)
}
