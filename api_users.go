package main

import (
	"net/http"
	"strings"
)

// POST /api/users
func (a *app) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		errorJSON(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	form, err := bodyValues(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid body")
		return
	}
	username := strings.TrimSpace(form.Get("username"))
	if username == "" {
		errorJSON(w, http.StatusBadRequest, "username required")
		return
	}

	u := User{ID: newID(), Username: username}
	if err := a.db.Create(&u).Error; err != nil {
		log.Errorf("[users] create: %v", err)
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(u))
}

// GET /api/users
func (a *app) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		errorJSON(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	var users []User
	if err := a.db.Order("created_at ASC").Find(&users).Error; err != nil {
		log.Errorf("[users] list: %v", err)
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	writeJSON(w, http.StatusOK, out)
}
