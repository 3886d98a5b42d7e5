package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// newID returns a 24-hex-character unique id.
// If crypto/rand fails, we fall back to a timestamp-based id.
func newID() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	return hex.EncodeToString([]byte(time.Now().UTC().Format("20060102T150405.000000000")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// dateStamp renders a date the way JS Date#toDateString does, e.g. "Mon Jan 01 2024".
func dateStamp(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// parseDate accepts the calendar form clients send (2006-01-02) and, as a
// courtesy, full RFC3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseDuration coerces the duration field to whole minutes.
func parseDuration(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// bodyValues flattens a JSON or form-encoded request body into url.Values so
// the handlers coerce fields one way regardless of how the client posted
// (the served page submits forms, API clients send JSON).
func bodyValues(r *http.Request) (url.Values, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		v := url.Values{}
		for k, val := range raw {
			switch t := val.(type) {
			case string:
				v.Set(k, t)
			case float64:
				v.Set(k, strconv.FormatFloat(t, 'f', -1, 64))
			case bool:
				v.Set(k, strconv.FormatBool(t))
			case nil:
				// leave unset
			default:
				b, _ := json.Marshal(t)
				v.Set(k, string(b))
			}
		}
		return v, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}
