package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lib/pq"

	"github.com/NGanna24/mi-gban-sub000/data"
	"github.com/NGanna24/mi-gban-sub000/data/repos"
	"github.com/NGanna24/mi-gban-sub000/enums"
	"github.com/NGanna24/mi-gban-sub000/models"
)

type PreferenceHandler struct {
	repo *repos.PreferenceRepo
}

func NewPreferenceHandler(repo *repos.PreferenceRepo) *PreferenceHandler {
	return &PreferenceHandler{repo}
}

func (h *PreferenceHandler) GetProfile(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	profile, err := h.repo.GetProfile(user.ID)
	if err != nil {
		return InternalError(err, "get preference profile: ")
	}
	if profile == nil {
		return Ok(models.PreferenceProfile{Cities: []string{}, PropertyTypes: []string{}})
	}

	res := models.PreferenceProfile{
		Cities:        profile.Cities,
		PropertyTypes: profile.PropertyTypes,
		BudgetCeiling: profile.BudgetCeiling,
	}
	if profile.Project != nil {
		p := string(*profile.Project)
		res.Project = &p
	}

	return Ok(res)
}

func (h *PreferenceHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) Result {
	user := r.Context().Value("user").(data.User)

	var req models.PreferenceProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	profile := data.PreferenceProfile{
		UserID:        user.ID,
		Cities:        pq.StringArray(req.Cities),
		PropertyTypes: pq.StringArray(req.PropertyTypes),
		BudgetCeiling: req.BudgetCeiling,
	}
	if profile.Cities == nil {
		profile.Cities = pq.StringArray{}
	}
	if profile.PropertyTypes == nil {
		profile.PropertyTypes = pq.StringArray{}
	}
	if req.Project != nil {
		p := enums.Project(*req.Project)
		if p != enums.ProjectBuy && p != enums.ProjectRent && p != enums.ProjectVisit {
			return BadRequest("Project must be buy, rent or visit.")
		}
		profile.Project = &p
	}

	if err := h.repo.UpsertProfile(profile); err != nil {
		return InternalError(err, "update preference profile: ")
	}

	return Ok(nil)
}
