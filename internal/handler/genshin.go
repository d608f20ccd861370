package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paimonbot/paimonbot/internal/service"
)

// GenshinHandler exposes the dispatcher over HTTP for the bot frontend.
// Every response is a service.Reply; error replies keep status 200 because
// the reply text is the user-facing outcome, not a transport failure.
type GenshinHandler struct {
	genshin *service.Genshin
	logger  *slog.Logger
}

// NewGenshinHandler creates a new GenshinHandler.
func NewGenshinHandler(genshin *service.Genshin, logger *slog.Logger) *GenshinHandler {
	return &GenshinHandler{genshin: genshin, logger: logger}
}

// Routes mounts the player-data endpoints on r.
func (h *GenshinHandler) Routes(r chi.Router) {
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Post("/cookie", h.SetCookie)
		r.Put("/uid", h.SetUID)
		r.Delete("/", h.DeleteUser)
		r.Get("/accounts", h.GameAccounts)
		r.Get("/notes", h.Notes)
		r.Post("/redeem", h.Redeem)
		r.Post("/checkin", h.CheckIn)
		r.Get("/abyss", h.Abyss)
		r.Get("/diary", h.Diary)
		r.Get("/record-card", h.RecordCard)
		r.Get("/characters", h.Characters)
	})
	r.Get("/showcase/{uid}", h.Showcase)
}

func userID(r *http.Request) string {
	return chi.URLParam(r, "userID")
}

// SetCookie stores a pasted cookie for the user.
// POST /api/v1/users/{userID}/cookie
func (h *GenshinHandler) SetCookie(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cookie string `json:"cookie"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cookie == "" {
		writeError(w, http.StatusBadRequest, "cookie field is required")
		return
	}
	writeJSON(w, http.StatusOK, h.genshin.SetCookie(r.Context(), userID(r), req.Cookie))
}

// SetUID binds a game UID to the user.
// PUT /api/v1/users/{userID}/uid
func (h *GenshinHandler) SetUID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID string `json:"uid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID == "" {
		writeError(w, http.StatusBadRequest, "uid field is required")
		return
	}
	writeJSON(w, http.StatusOK, h.genshin.SetUID(userID(r), req.UID))
}

// DeleteUser removes the user's stored data.
// DELETE /api/v1/users/{userID}
func (h *GenshinHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.genshin.DeleteUserData(userID(r)))
}

// GameAccounts lists the game accounts bound to the user's cookie.
// GET /api/v1/users/{userID}/accounts
func (h *GenshinHandler) GameAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.genshin.GameAccounts(r.Context(), userID(r)))
}

// Notes returns the real-time notes. With scheduled=true the short layout
// is used and 204 is returned while resin sits below the alert threshold.
// GET /api/v1/users/{userID}/notes[?scheduled=true]
func (h *GenshinHandler) Notes(w http.ResponseWriter, r *http.Request) {
	scheduled := r.URL.Query().Get("scheduled") == "true"
	reply := h.genshin.RealtimeNotes(r.Context(), userID(r), scheduled)
	if reply == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// Redeem redeems a gift code.
// POST /api/v1/users/{userID}/redeem
func (h *GenshinHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeError(w, http.StatusBadRequest, "code field is required")
		return
	}
	writeJSON(w, http.StatusOK, h.genshin.RedeemCode(r.Context(), userID(r), req.Code))
}

// CheckIn claims the daily reward.
// POST /api/v1/users/{userID}/checkin
func (h *GenshinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Honkai bool `json:"honkai"`
	}
	// Empty body means genshin only.
	_ = json.NewDecoder(r.Body).Decode(&req)
	writeJSON(w, http.StatusOK, h.genshin.ClaimDailyReward(r.Context(), userID(r), req.Honkai, false))
}

// Abyss returns the spiral abyss results.
// GET /api/v1/users/{userID}/abyss[?previous=true][&full=true]
func (h *GenshinHandler) Abyss(w http.ResponseWriter, r *http.Request) {
	previous := r.URL.Query().Get("previous") == "true"
	full := r.URL.Query().Get("full") == "true"
	writeJSON(w, http.StatusOK, h.genshin.SpiralAbyss(r.Context(), userID(r), previous, full))
}

// Diary returns one month of the traveler's diary.
// GET /api/v1/users/{userID}/diary[?month=N]
func (h *GenshinHandler) Diary(w http.ResponseWriter, r *http.Request) {
	month := 0
	if raw := r.URL.Query().Get("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			writeError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}
		month = n
	}
	writeJSON(w, http.StatusOK, h.genshin.TravelerDiary(r.Context(), userID(r), month))
}

// RecordCard returns the user's public record card.
// GET /api/v1/users/{userID}/record-card
func (h *GenshinHandler) RecordCard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.genshin.RecordCard(r.Context(), userID(r)))
}

// Characters lists the user's owned characters, or one character's detail
// view when ?name= is given.
// GET /api/v1/users/{userID}/characters[?name=Bennett]
func (h *GenshinHandler) Characters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.genshin.Characters(r.Context(), userID(r), r.URL.Query().Get("name")))
}

// Showcase returns the public showcase for any UID.
// GET /api/v1/showcase/{uid}
func (h *GenshinHandler) Showcase(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")
	if len(uid) != 9 {
		writeError(w, http.StatusBadRequest, "uid must be 9 digits")
		return
	}
	writeJSON(w, http.StatusOK, h.genshin.Showcase(r.Context(), uid))
}
