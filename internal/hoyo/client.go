package hoyo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Default upstream hosts.
const (
	DefaultGameRecordBaseURL = "https://bbs-api-os.hoyolab.com"
	DefaultAccountBaseURL    = "https://api-account-os.hoyolab.com"
	DefaultEventBaseURL      = "https://sg-hk4e-api.hoyolab.com"
)

// DefaultTimeout bounds every API call end to end.
const DefaultTimeout = 10 * time.Second

// Daily check-in activity ids per game.
const (
	genshinActID = "e202102251931481"
	honkaiActID  = "e202110291205111"
)

// Options configure a Client. Zero values fall back to defaults.
type Options struct {
	GameRecordBaseURL string
	AccountBaseURL    string
	EventBaseURL      string
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// Client issues authenticated calls on behalf of one stored cookie.
// Clients are cheap to build; the dispatcher makes one per operation.
type Client struct {
	http        *http.Client
	recordBase  string
	accountBase string
	eventBase   string
	cookie      string
	lang        string
}

// New creates a Client scoped to the given normalized cookie.
func New(cookie string, opts Options) *Client {
	c := &Client{
		http:        opts.HTTPClient,
		recordBase:  opts.GameRecordBaseURL,
		accountBase: opts.AccountBaseURL,
		eventBase:   opts.EventBaseURL,
		cookie:      cookie,
		lang:        "en-us",
	}
	if c.recordBase == "" {
		c.recordBase = DefaultGameRecordBaseURL
	}
	if c.accountBase == "" {
		c.accountBase = DefaultAccountBaseURL
	}
	if c.eventBase == "" {
		c.eventBase = DefaultEventBaseURL
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = NewHTTPClient(timeout)
	}
	return c
}

// NewHTTPClient creates an HTTP client configured for API calls,
// with bounded dial, TLS and header timeouts.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// envelope is the response wrapper every endpoint shares.
type envelope struct {
	Retcode int             `json:"retcode"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// GameAccounts lists the game accounts bound to the cookie's HoYoLAB account.
func (c *Client) GameAccounts(ctx context.Context) ([]Account, error) {
	q := url.Values{"game_biz": {"hk4e_global"}}
	var out struct {
		List []Account `json:"list"`
	}
	if err := c.get(ctx, c.accountBase, "/account/binding/api/getUserGameRolesByCookie", q, &out); err != nil {
		return nil, err
	}
	return out.List, nil
}

// DailyNote fetches the real-time notes for a game UID.
func (c *Client) DailyNote(ctx context.Context, uid string) (*Notes, error) {
	q := url.Values{
		"role_id": {uid},
		"server":  {RegionFromUID(uid)},
	}
	var notes Notes
	if err := c.get(ctx, c.recordBase, "/game_record/genshin/api/dailyNote", q, &notes); err != nil {
		return nil, err
	}
	return &notes, nil
}

// SpiralAbyss fetches spiral abyss results for the current season, or the
// previous one when previous is true.
func (c *Client) SpiralAbyss(ctx context.Context, uid string, previous bool) (*SpiralAbyss, error) {
	scheduleType := "1"
	if previous {
		scheduleType = "2"
	}
	q := url.Values{
		"role_id":       {uid},
		"server":        {RegionFromUID(uid)},
		"schedule_type": {scheduleType},
	}
	var abyss SpiralAbyss
	if err := c.get(ctx, c.recordBase, "/game_record/genshin/api/spiralAbyss", q, &abyss); err != nil {
		return nil, err
	}
	return &abyss, nil
}

// RecordCards fetches the record cards of every bound game account. The
// upstream also refreshes its cached battle data on this call, so abyss and
// stats queries issue it first.
func (c *Client) RecordCards(ctx context.Context) ([]RecordCard, error) {
	q := url.Values{"uid": {accountID(c.cookie)}}
	var out struct {
		List []RecordCard `json:"list"`
	}
	if err := c.get(ctx, c.recordBase, "/game_record/card/wapi/getGameRecordCard", q, &out); err != nil {
		return nil, err
	}
	return out.List, nil
}

// PartialUserStats fetches the aggregate statistics for a game UID.
func (c *Client) PartialUserStats(ctx context.Context, uid string) (*UserStats, error) {
	q := url.Values{
		"role_id": {uid},
		"server":  {RegionFromUID(uid)},
	}
	var stats UserStats
	if err := c.get(ctx, c.recordBase, "/game_record/genshin/api/index", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Characters lists the owned characters with equipment details.
func (c *Client) Characters(ctx context.Context, uid string) ([]Character, error) {
	body := map[string]string{
		"role_id": uid,
		"server":  RegionFromUID(uid),
	}
	var out struct {
		Avatars []Character `json:"avatars"`
	}
	if err := c.post(ctx, c.recordBase, "/game_record/genshin/api/character", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Avatars, nil
}

// Diary fetches one month of the traveler's diary.
func (c *Client) Diary(ctx context.Context, uid string, month int) (*Diary, error) {
	q := url.Values{
		"uid":    {uid},
		"region": {RegionFromUID(uid)},
		"month":  {strconv.Itoa(month)},
		"lang":   {c.lang},
	}
	var diary Diary
	if err := c.get(ctx, c.eventBase, "/event/ysledgeros/month_info", q, &diary); err != nil {
		return nil, err
	}
	return &diary, nil
}

// RedeemCode redeems a gift code for the given game UID.
func (c *Client) RedeemCode(ctx context.Context, uid, code string) error {
	q := url.Values{
		"uid":      {uid},
		"region":   {RegionFromUID(uid)},
		"cdkey":    {code},
		"game_biz": {"hk4e_global"},
		"lang":     {"en"},
	}
	return c.get(ctx, c.eventBase, "/common/apicdkey/api/webExchangeCdkey", q, nil)
}

// ClaimDailyReward performs the daily check-in for the given game and
// returns the reward item. ErrAlreadyClaimed is returned when today's
// reward was claimed before.
func (c *Client) ClaimDailyReward(ctx context.Context, game Game) (*Award, error) {
	base := "/event/sol"
	actID := genshinActID
	if game == GameHonkai {
		base = "/event/mani"
		actID = honkaiActID
	}
	actQ := url.Values{"act_id": {actID}, "lang": {c.lang}}

	if err := c.post(ctx, c.eventBase, base+"/sign", actQ, map[string]string{"act_id": actID}, nil); err != nil {
		return nil, err
	}

	var info rewardInfo
	if err := c.get(ctx, c.eventBase, base+"/info", actQ, &info); err != nil {
		return nil, err
	}
	if !info.IsSign {
		// The sign call reported success but did not register. Seen
		// intermittently upstream; callers retry this retcode.
		return nil, &APIError{Retcode: 0, Message: "check-in was not registered"}
	}

	var home struct {
		Awards []Award `json:"awards"`
	}
	if err := c.get(ctx, c.eventBase, base+"/home", actQ, &home); err != nil {
		return nil, err
	}
	idx := info.TotalSignDay - 1
	if idx < 0 || idx >= len(home.Awards) {
		return nil, &APIError{Retcode: 0, Message: "reward list out of range"}
	}
	return &home.Awards[idx], nil
}

// CommunityCheckIn performs the HoYoLAB community daily check-in.
func (c *Client) CommunityCheckIn(ctx context.Context) error {
	return c.post(ctx, c.recordBase, "/community/apihub/api/signIn", nil, map[string]string{"gids": "2"}, nil)
}

func (c *Client) get(ctx context.Context, base, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinURL(base, path, query), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, base, path string, query url.Values, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(base, path, query), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do sends the request and decodes the shared response envelope. Non-zero
// retcodes are reduced to the package error taxonomy.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", c.cookie)
	req.Header.Set("DS", generateDS())
	req.Header.Set("x-rpc-app_version", "1.5.0")
	req.Header.Set("x-rpc-client_type", "5")
	req.Header.Set("x-rpc-language", c.lang)
	req.Header.Set("User-Agent", "Paimonbot/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("hoyolab request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hoyolab request: unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Retcode != 0 {
		return apiError(env.Retcode, env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

func joinURL(base, path string, query url.Values) string {
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
