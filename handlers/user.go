package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type UserHandler struct {
	userRepo *repos.UserRepo
}

func NewUserHandler(repo *repos.UserRepo) *UserHandler {
	return &UserHandler{
		userRepo: repo,
	}
}

func (h UserHandler) InitializeUser(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)
	exists, err := h.userRepo.GetUserByID(user.ID)
	if err != nil {
		return InternalError(err, "initialize user: get user")
	}
	if exists != nil {
		return Ok(map[string]interface{}{"id": user.ID})
	}

	id, err := h.userRepo.InsertUser(user)
	if err != nil {
		return InternalError(err, "initialize user: insert user")
	}

	return Created(id)
}

// RegisterPushToken stores the device token alerts are delivered to.
// Users without one are excluded from the notification sweep.
func (h UserHandler) RegisterPushToken(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}
	if req.Token == "" {
		return BadRequest("Token is required.")
	}

	if err := h.userRepo.SetPushToken(user.ID, req.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NotFound("User not found.")
		}
		return InternalError(err, "register push token: ")
	}

	return Ok(nil)
}
