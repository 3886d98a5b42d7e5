package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

/* ---------- Public JSON ---------- */

type exerciseDTO struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"` // the owning user's id, as the original API did
}

type logDTO struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []logEntry `json:"log"`
}

/* ---------- Helpers ---------- */

// lookupUser resolves the {id} path param. A missing row is the one failure
// handlers classify themselves (404); everything else is unclassified.
func (a *app) lookupUser(w http.ResponseWriter, r *http.Request) (User, bool) {
	var user User
	err := a.db.First(&user, "id = ?", chi.URLParam(r, "id")).Error
	if err == gorm.ErrRecordNotFound {
		errorJSON(w, http.StatusNotFound, "User not found")
		return User{}, false
	} else if err != nil {
		log.Errorf("[exercises] lookup user: %v", err)
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return User{}, false
	}
	return user, true
}

/* ---------- HTTP: create ---------- */

// POST /api/users/{id}/exercises
func (a *app) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		errorJSON(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	user, ok := a.lookupUser(w, r)
	if !ok {
		return
	}

	form, err := bodyValues(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid body")
		return
	}
	description := strings.TrimSpace(form.Get("description"))
	if description == "" {
		errorJSON(w, http.StatusBadRequest, "description required")
		return
	}
	duration, ok := parseDuration(form.Get("duration"))
	if !ok {
		errorJSON(w, http.StatusBadRequest, "duration must be a number")
		return
	}

	// absent or unparsable date falls back to now
	when := time.Now().UTC()
	if t, ok := parseDate(strings.TrimSpace(form.Get("date"))); ok {
		when = t
	}

	ex := Exercise{
		ID:          newID(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        when,
	}
	if err := a.db.Create(&ex).Error; err != nil {
		log.Errorf("[exercises] create: %v", err)
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, exerciseDTO{
		Username:    user.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        dateStamp(ex.Date),
		ID:          user.ID,
	})
}

/* ---------- HTTP: log retrieval ---------- */

// GET /api/users/{id}/logs?from=&to=&limit=
func (a *app) handleGetLogs(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		errorJSON(w, http.StatusInternalServerError, "database unavailable")
		return
	}
	user, ok := a.lookupUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	tx := a.db.Where("user_id = ?", user.ID)
	if t, ok := parseDate(strings.TrimSpace(q.Get("from"))); ok {
		tx = tx.Where("date >= ?", t)
	}
	if t, ok := parseDate(strings.TrimSpace(q.Get("to"))); ok {
		tx = tx.Where("date <= ?", t)
	}
	// oldest first; ties broken by insertion
	tx = tx.Order("date ASC, created_at ASC")
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil && n >= 1 {
		tx = tx.Limit(n)
	}

	var recs []Exercise
	if err := tx.Find(&recs).Error; err != nil {
		log.Errorf("[exercises] log query: %v", err)
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	entries := make([]logEntry, 0, len(recs))
	for _, e := range recs {
		entries = append(entries, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        dateStamp(e.Date),
		})
	}
	writeJSON(w, http.StatusOK, logDTO{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID,
		Log:      entries,
	})
}
