// Package service is the dispatcher between inbound commands and the game
// APIs. Every operation resolves the caller's stored credential, issues the
// upstream calls and reduces the outcome to a Reply; failures become
// user-facing texts, never propagated errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paimonbot/paimonbot/internal/enka"
	"github.com/paimonbot/paimonbot/internal/format"
	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/metrics"
	"github.com/paimonbot/paimonbot/internal/model"
	"github.com/paimonbot/paimonbot/internal/store"
)

// AccountAPI is the per-cookie client surface the dispatcher needs.
type AccountAPI interface {
	GameAccounts(ctx context.Context) ([]hoyo.Account, error)
	DailyNote(ctx context.Context, uid string) (*hoyo.Notes, error)
	SpiralAbyss(ctx context.Context, uid string, previous bool) (*hoyo.SpiralAbyss, error)
	RecordCards(ctx context.Context) ([]hoyo.RecordCard, error)
	PartialUserStats(ctx context.Context, uid string) (*hoyo.UserStats, error)
	Characters(ctx context.Context, uid string) ([]hoyo.Character, error)
	Diary(ctx context.Context, uid string, month int) (*hoyo.Diary, error)
	RedeemCode(ctx context.Context, uid, code string) error
	ClaimDailyReward(ctx context.Context, game hoyo.Game) (*hoyo.Award, error)
	CommunityCheckIn(ctx context.Context) error
}

// ClientFactory builds an API client scoped to one stored cookie.
type ClientFactory func(cookie string) AccountAPI

// ShowcaseAPI fetches public showcase snapshots.
type ShowcaseAPI interface {
	Fetch(ctx context.Context, uid string) (*enka.Showcase, error)
}

// Reply is the result of one dispatched operation: a text line, a rendered
// embed, or both.
type Reply struct {
	Text  string       `json:"text,omitempty"`
	Embed *model.Embed `json:"embed,omitempty"`
	Error bool         `json:"error,omitempty"`
}

// Options configure a Genshin service.
type Options struct {
	Store          *store.Store
	Clients        ClientFactory
	Showcase       ShowcaseAPI
	Logger         *slog.Logger
	Metrics        metrics.Recorder
	Retry          RetryPolicy
	Names          format.NameFunc
	ResinThreshold int
}

// Genshin dispatches player-data operations.
type Genshin struct {
	store          *store.Store
	clients        ClientFactory
	showcase       ShowcaseAPI
	logger         *slog.Logger
	metrics        metrics.Recorder
	retry          RetryPolicy
	names          format.NameFunc
	resinThreshold int
	now            func() time.Time
}

// NewGenshin creates the dispatcher.
func NewGenshin(opts Options) *Genshin {
	g := &Genshin{
		store:          opts.Store,
		clients:        opts.Clients,
		showcase:       opts.Showcase,
		logger:         opts.Logger,
		metrics:        opts.Metrics,
		retry:          opts.Retry,
		names:          opts.Names,
		resinThreshold: opts.ResinThreshold,
		now:            time.Now,
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.metrics == nil {
		g.metrics = metrics.NewNoop()
	}
	if g.retry.MaxAttempts == 0 {
		g.retry = DefaultRetryPolicy()
	}
	if g.names == nil {
		g.names = format.FallbackName
	}
	return g
}

// SetCookie validates and stores a pasted cookie. The reply either confirms
// the auto-assigned UID or lists the bound accounts for a follow-up UID
// choice.
func (g *Genshin) SetCookie(ctx context.Context, userID, raw string) *Reply {
	defer g.observe("set_cookie", g.now())

	result, err := g.store.SetCookie(ctx, userID, raw)
	if err != nil {
		return g.fail("set_cookie", userID, err)
	}
	g.metrics.IncDispatch("set_cookie", "ok")
	g.metrics.SetUserCount(g.store.Len())

	if result.UID != "" {
		return &Reply{Text: fmt.Sprintf("Cookie saved. UID %s was bound automatically.", result.UID)}
	}

	var b strings.Builder
	if len(result.Accounts) == 1 {
		b.WriteString("Cookie saved. Bind your game account with the uid command:\n")
	} else {
		b.WriteString("Cookie saved. Several game accounts are bound; pick one with the uid command:\n")
	}
	for _, acct := range result.Accounts {
		fmt.Fprintf(&b, "· %s Lv.%d %s (%s)\n", acct.UID, acct.Level, acct.Nickname, acct.RegionName)
	}
	return &Reply{Text: b.String()}
}

// SetUID assigns one of the bound game UIDs to the caller.
func (g *Genshin) SetUID(userID, uid string) *Reply {
	defer g.observe("set_uid", g.now())

	if err := g.store.SetUID(userID, uid); err != nil {
		return g.fail("set_uid", userID, err)
	}
	g.metrics.IncDispatch("set_uid", "ok")
	return &Reply{Text: fmt.Sprintf("UID %s bound.", uid)}
}

// DeleteUserData removes the caller's stored credential and usage tracking.
func (g *Genshin) DeleteUserData(userID string) *Reply {
	defer g.observe("delete_user", g.now())

	if err := g.store.Delete(userID); err != nil {
		return g.fail("delete_user", userID, err)
	}
	g.metrics.IncDispatch("delete_user", "ok")
	g.metrics.SetUserCount(g.store.Len())
	return &Reply{Text: "Your data has been deleted."}
}

// GameAccounts lists the game accounts bound to the caller's cookie.
func (g *Genshin) GameAccounts(ctx context.Context, userID string) *Reply {
	defer g.observe("game_accounts", g.now())

	api, _, err := g.client(userID, false, true)
	if err != nil {
		return g.fail("game_accounts", userID, err)
	}
	accounts, err := api.GameAccounts(ctx)
	if err != nil {
		return g.fail("game_accounts", userID, err)
	}
	g.metrics.IncDispatch("game_accounts", "ok")

	if len(accounts) == 0 {
		return &Reply{Text: "No game accounts are bound to this cookie."}
	}
	var b strings.Builder
	for _, acct := range accounts {
		fmt.Fprintf(&b, "· %s Lv.%d %s (%s)\n", acct.UID, acct.Level, acct.Nickname, acct.RegionName)
	}
	return &Reply{Text: b.String()}
}

// RealtimeNotes fetches the live resource counters. In scheduled mode the
// record is not touched, the short layout is used and nil is returned while
// resin sits below the alert threshold.
func (g *Genshin) RealtimeNotes(ctx context.Context, userID string, scheduled bool) *Reply {
	defer g.observe("notes", g.now())

	api, rec, err := g.client(userID, true, !scheduled)
	if err != nil {
		return g.fail("notes", userID, err)
	}
	notes, err := api.DailyNote(ctx, rec.UID)
	if err != nil {
		return g.fail("notes", userID, err)
	}
	g.metrics.IncDispatch("notes", "ok")

	if scheduled && notes.CurrentResin < g.resinThreshold {
		return nil
	}
	return embedReply(format.Notes(notes, rec.UID, scheduled, g.now()))
}

// RedeemCode redeems a gift code against the caller's bound UID.
func (g *Genshin) RedeemCode(ctx context.Context, userID, code string) *Reply {
	defer g.observe("redeem", g.now())

	api, rec, err := g.client(userID, true, true)
	if err != nil {
		return g.fail("redeem", userID, err)
	}
	if err := api.RedeemCode(ctx, rec.UID, code); err != nil {
		return g.fail("redeem", userID, err)
	}
	g.metrics.IncDispatch("redeem", "ok")
	return &Reply{Text: fmt.Sprintf("Code %s redeemed. Check your in-game mail.", code)}
}

// ClaimDailyReward performs the HoYoLAB daily check-in. An already-claimed
// day counts as success. With honkai set the Honkai Impact check-in runs as
// well; the community check-in always runs last and its failure is isolated
// from the game result.
func (g *Genshin) ClaimDailyReward(ctx context.Context, userID string, honkai, scheduled bool) *Reply {
	defer g.observe("checkin", g.now())

	api, _, err := g.client(userID, true, !scheduled)
	if err != nil {
		return g.fail("checkin", userID, err)
	}

	var b strings.Builder
	games := []hoyo.Game{hoyo.GameGenshin}
	if honkai {
		games = append(games, hoyo.GameHonkai)
	}
	for _, game := range games {
		b.WriteString(g.claimOne(ctx, userID, api, game))
	}

	if err := api.CommunityCheckIn(ctx); err != nil {
		g.logger.Warn("community check-in failed", "user_id", userID, "error", err)
		b.WriteString("HoYoLAB Community: check-in failed\n")
	} else {
		b.WriteString("HoYoLAB Community: checked in\n")
	}

	g.metrics.IncDispatch("checkin", "ok")
	return &Reply{Text: b.String()}
}

func (g *Genshin) claimOne(ctx context.Context, userID string, api AccountAPI, game hoyo.Game) string {
	var award *hoyo.Award
	policy := g.retry
	policy.OnRetry = func(attempt int, err error) {
		g.metrics.IncCheckInRetry()
		g.logger.Warn("check-in attempt failed, retrying",
			"user_id", userID, "game", string(game), "attempt", attempt, "error", err)
	}

	err := policy.Do(ctx, func() error {
		var claimErr error
		award, claimErr = api.ClaimDailyReward(ctx, game)
		return claimErr
	})
	switch {
	case errors.Is(err, hoyo.ErrAlreadyClaimed):
		return fmt.Sprintf("%s: already checked in today\n", game.DisplayName())
	case errors.Is(err, hoyo.ErrAccountNotFound):
		return fmt.Sprintf("%s: no game account bound\n", game.DisplayName())
	case err != nil:
		g.logger.Error("check-in failed", "user_id", userID, "game", string(game), "error", err)
		return fmt.Sprintf("%s: check-in failed: %v\n", game.DisplayName(), err)
	}
	return fmt.Sprintf("%s: got %s ×%d\n", game.DisplayName(), award.Name, award.Count)
}

// SpiralAbyss fetches the season results. The record-card endpoint is hit
// first so the upstream refreshes its cached battle data.
func (g *Genshin) SpiralAbyss(ctx context.Context, userID string, previous, full bool) *Reply {
	defer g.observe("abyss", g.now())

	api, rec, err := g.client(userID, true, true)
	if err != nil {
		return g.fail("abyss", userID, err)
	}
	if _, err := api.RecordCards(ctx); err != nil {
		g.logger.Warn("battle data refresh failed", "user_id", userID, "error", err)
	}
	abyss, err := api.SpiralAbyss(ctx, rec.UID, previous)
	if err != nil {
		return g.fail("abyss", userID, err)
	}
	g.metrics.IncDispatch("abyss", "ok")

	if abyss.TotalBattleTimes == 0 {
		return &Reply{Text: "No spiral abyss data for this season."}
	}
	embed := format.AbyssOverview(abyss, g.names)
	embed = format.AbyssFloors(embed, abyss, full, g.names)
	return embedReply(embed)
}

// TravelerDiary fetches one month of primogem and mora income.
func (g *Genshin) TravelerDiary(ctx context.Context, userID string, month int) *Reply {
	defer g.observe("diary", g.now())

	if month == 0 {
		month = int(g.now().Month())
	}
	api, rec, err := g.client(userID, true, true)
	if err != nil {
		return g.fail("diary", userID, err)
	}
	diary, err := api.Diary(ctx, rec.UID, month)
	if err != nil {
		return g.fail("diary", userID, err)
	}
	g.metrics.IncDispatch("diary", "ok")
	return embedReply(format.Diary(diary, month))
}

// RecordCard fetches the public record card plus the aggregate statistics.
func (g *Genshin) RecordCard(ctx context.Context, userID string) *Reply {
	defer g.observe("record_card", g.now())

	api, rec, err := g.client(userID, true, true)
	if err != nil {
		return g.fail("record_card", userID, err)
	}
	cards, err := api.RecordCards(ctx)
	if err != nil {
		return g.fail("record_card", userID, err)
	}
	var card *hoyo.RecordCard
	for i := range cards {
		if cards[i].GameRoleID == rec.UID {
			card = &cards[i]
			break
		}
	}
	if card == nil {
		return g.fail("record_card", userID, hoyo.ErrAccountNotFound)
	}
	stats, err := api.PartialUserStats(ctx, rec.UID)
	if err != nil {
		return g.fail("record_card", userID, err)
	}
	g.metrics.IncDispatch("record_card", "ok")
	return embedReply(format.RecordCard(card, stats))
}

// Characters lists the caller's owned characters. A non-empty name narrows
// the reply to one character's detail view.
func (g *Genshin) Characters(ctx context.Context, userID, name string) *Reply {
	defer g.observe("characters", g.now())

	api, rec, err := g.client(userID, true, true)
	if err != nil {
		return g.fail("characters", userID, err)
	}
	chars, err := api.Characters(ctx, rec.UID)
	if err != nil {
		return g.fail("characters", userID, err)
	}
	if name != "" {
		for i := range chars {
			if strings.EqualFold(chars[i].Name, name) {
				g.metrics.IncDispatch("characters", "ok")
				return embedReply(format.Character(&chars[i]))
			}
		}
		g.metrics.IncDispatch("characters", "rejected")
		return &Reply{Text: fmt.Sprintf("You don't own a character named %q.", name), Error: true}
	}
	g.metrics.IncDispatch("characters", "ok")
	return embedReply(format.CharacterList(chars))
}

// Showcase fetches the public showcase for an arbitrary UID. No stored
// credential is involved.
func (g *Genshin) Showcase(ctx context.Context, uid string) *Reply {
	defer g.observe("showcase", g.now())

	if g.showcase == nil {
		return &Reply{Text: "Showcase lookups are not enabled.", Error: true}
	}
	sc, err := g.showcase.Fetch(ctx, uid)
	if err != nil {
		g.logger.Error("showcase fetch failed", "uid", uid, "error", err)
		g.metrics.IncDispatch("showcase", "failed")
		return &Reply{Text: "Could not fetch that profile. Check the UID and try again.", Error: true}
	}
	g.metrics.IncDispatch("showcase", "ok")
	return embedReply(format.Showcase(sc, g.names))
}

// client resolves the caller's record and builds a cookie-scoped API client.
// touch=false keeps scheduled polls from extending retention.
func (g *Genshin) client(userID string, requireUID, touch bool) (AccountAPI, *storeRecord, error) {
	if err := g.store.Check(userID, requireUID, touch); err != nil {
		return nil, nil, err
	}
	rec, ok := g.store.Get(userID)
	if !ok {
		return nil, nil, store.ErrNoRecord
	}
	return g.clients(rec.Cookie), &storeRecord{Cookie: rec.Cookie, UID: rec.UID}, nil
}

// fail logs the failure with its cause and converts it to the user-facing
// text for its category.
func (g *Genshin) fail(op, userID string, err error) *Reply {
	g.logger.Error("dispatch failed", "op", op, "user_id", userID, "error", err)
	g.metrics.IncDispatch(op, "failed")
	return &Reply{Text: userText(err), Error: true}
}

func (g *Genshin) observe(op string, start time.Time) {
	g.metrics.ObserveDispatchDuration(op, g.now().Sub(start))
}

// userText maps the error taxonomy to user-facing messages. Recognized
// categories get fixed instructional texts; unrecognized API refusals and
// transport failures carry their raw code and text so the user can report
// them.
func userText(err error) string {
	var apiErr *hoyo.APIError
	switch {
	case errors.Is(err, hoyo.ErrMalformedCookie):
		return "That does not look like a HoYoLAB cookie. Paste the full cookie string from the browser."
	case errors.Is(err, store.ErrNoRecord), errors.Is(err, store.ErrNoCookie):
		return "No cookie on file. Set your cookie first."
	case errors.Is(err, store.ErrNoUID):
		return "No game UID bound. Pick one with the uid command."
	case errors.Is(err, store.ErrNoGameAccount):
		return "This cookie has no Genshin Impact account bound to it."
	case errors.Is(err, hoyo.ErrInvalidCookies):
		return "Your cookie has expired. Please set a new one."
	case errors.Is(err, hoyo.ErrDataNotPublic):
		return "Your battle records are private. Enable them in the HoYoLAB privacy settings."
	case errors.Is(err, hoyo.ErrAccountNotFound):
		return "Game account not found. Check the bound UID."
	case errors.As(err, &apiErr):
		return fmt.Sprintf("The API refused the request: [%d] %s", apiErr.Retcode, apiErr.Message)
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

type storeRecord struct {
	Cookie string
	UID    string
}

func embedReply(e *model.Embed) *Reply {
	return &Reply{Embed: e}
}
