package hoyo

import (
	"bytes"
	"strconv"
	"time"
)

// Game selects which title an operation targets.
type Game string

const (
	GameGenshin Game = "genshin"
	GameHonkai  Game = "honkai3rd"
)

// DisplayName returns the English title used in user-facing messages.
func (g Game) DisplayName() string {
	switch g {
	case GameHonkai:
		return "Honkai Impact 3"
	default:
		return "Genshin Impact"
	}
}

// Seconds is a duration-in-seconds field. The API encodes these as JSON
// strings ("3600"), occasionally as bare numbers.
type Seconds int64

// UnmarshalJSON accepts both "3600" and 3600.
func (s *Seconds) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*s = Seconds(n)
	return nil
}

// Duration converts the field to a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

// UnixTime is a unix-seconds timestamp field, encoded as a JSON string.
type UnixTime int64

// UnmarshalJSON accepts both "1650250800" and 1650250800.
func (t *UnixTime) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*t = 0
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*t = UnixTime(n)
	return nil
}

// Time converts the field to a time.Time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Account is one game account bound to a HoYoLAB account.
type Account struct {
	GameBiz    string `json:"game_biz"`
	UID        string `json:"game_uid"`
	Nickname   string `json:"nickname"`
	Level      int    `json:"level"`
	Region     string `json:"region"`
	RegionName string `json:"region_name"`
}

// Expedition is one dispatched expedition in the real-time notes.
type Expedition struct {
	Status       string  `json:"status"` // "Ongoing" or "Finished"
	RemainedTime Seconds `json:"remained_time"`
}

// Finished reports whether the expedition has completed.
func (e Expedition) Finished() bool {
	return e.Status == "Finished"
}

// Transformer is the parametric transformer state in the real-time notes.
type Transformer struct {
	Obtained     bool `json:"obtained"`
	RecoveryTime struct {
		Day     int  `json:"Day"`
		Hour    int  `json:"Hour"`
		Minute  int  `json:"Minute"`
		Second  int  `json:"Second"`
		Reached bool `json:"reached"`
	} `json:"recovery_time"`
}

// Notes are the live player resource counters.
type Notes struct {
	CurrentResin           int          `json:"current_resin"`
	MaxResin               int          `json:"max_resin"`
	ResinRecoveryTime      Seconds      `json:"resin_recovery_time"`
	FinishedTaskNum        int          `json:"finished_task_num"`
	TotalTaskNum           int          `json:"total_task_num"`
	RemainResinDiscountNum int          `json:"remain_resin_discount_num"`
	CurrentHomeCoin        int          `json:"current_home_coin"`
	MaxHomeCoin            int          `json:"max_home_coin"`
	HomeCoinRecoveryTime   Seconds      `json:"home_coin_recovery_time"`
	Transformer            *Transformer `json:"transformer"`
	Expeditions            []Expedition `json:"expeditions"`
	CurrentExpeditionNum   int          `json:"current_expedition_num"`
	MaxExpeditionNum       int          `json:"max_expedition_num"`
}

// Award is one daily check-in reward item.
type Award struct {
	Name  string `json:"name"`
	Count int    `json:"cnt"`
	Icon  string `json:"icon"`
}

// rewardInfo is the check-in progress for the current month.
type rewardInfo struct {
	TotalSignDay int  `json:"total_sign_day"`
	IsSign       bool `json:"is_sign"`
}

// RankAvatar is one character entry in an abyss leaderboard rank.
type RankAvatar struct {
	AvatarID   int    `json:"avatar_id"`
	AvatarIcon string `json:"avatar_icon"`
	Value      int    `json:"value"`
}

// BattleAvatar is one character used in an abyss battle.
type BattleAvatar struct {
	ID    int    `json:"id"`
	Icon  string `json:"icon"`
	Level int    `json:"level"`
}

// AbyssBattle is one half of a chamber.
type AbyssBattle struct {
	Index   int            `json:"index"`
	Avatars []BattleAvatar `json:"avatars"`
}

// AbyssLevel is one chamber of a floor.
type AbyssLevel struct {
	Index   int           `json:"index"`
	Star    int           `json:"star"`
	MaxStar int           `json:"max_star"`
	Battles []AbyssBattle `json:"battles"`
}

// AbyssFloor is one floor of the spiral abyss.
type AbyssFloor struct {
	Index  int          `json:"index"`
	Star   int          `json:"star"`
	Levels []AbyssLevel `json:"levels"`
}

// SpiralAbyss is one season of spiral abyss results.
type SpiralAbyss struct {
	ScheduleID       int          `json:"schedule_id"`
	StartTime        UnixTime     `json:"start_time"`
	EndTime          UnixTime     `json:"end_time"`
	TotalBattleTimes int          `json:"total_battle_times"`
	TotalStar        int          `json:"total_star"`
	MaxFloor         string       `json:"max_floor"`
	DefeatRank       []RankAvatar `json:"defeat_rank"`
	DamageRank       []RankAvatar `json:"damage_rank"`
	TakeDamageRank   []RankAvatar `json:"take_damage_rank"`
	EnergySkillRank  []RankAvatar `json:"energy_skill_rank"`
	NormalSkillRank  []RankAvatar `json:"normal_skill_rank"`
	Floors           []AbyssFloor `json:"floors"`
}

// DiaryCategory is one income-source slice of the traveler's diary.
type DiaryCategory struct {
	ActionID int    `json:"action_id"`
	Action   string `json:"action"`
	Num      int    `json:"num"`
	Percent  int    `json:"percent"`
}

// MonthData is the per-month aggregation of the traveler's diary.
type MonthData struct {
	CurrentPrimogems int             `json:"current_primogems"`
	CurrentMora      int             `json:"current_mora"`
	LastPrimogems    int             `json:"last_primogems"`
	LastMora         int             `json:"last_mora"`
	PrimogemsRate    int             `json:"primogem_rate"`
	MoraRate         int             `json:"mora_rate"`
	GroupBy          []DiaryCategory `json:"group_by"`
}

// Diary is one month of the traveler's diary.
type Diary struct {
	UID       int       `json:"uid"`
	Nickname  string    `json:"nickname"`
	DataMonth int       `json:"data_month"`
	MonthData MonthData `json:"month_data"`
}

// CardEntry is one name/value stat on a record card.
type CardEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RecordCard is the public summary card of one bound game account.
type RecordCard struct {
	GameID     int         `json:"game_id"`
	GameRoleID string      `json:"game_role_id"`
	Nickname   string      `json:"nickname"`
	Region     string      `json:"region"`
	RegionName string      `json:"region_name"`
	Level      int         `json:"level"`
	Data       []CardEntry `json:"data"`
}

// Stats are the aggregate player statistics.
type Stats struct {
	ActiveDays      int    `json:"active_day_number"`
	Achievements    int    `json:"achievement_number"`
	Characters      int    `json:"avatar_number"`
	SpiralAbyss     string `json:"spiral_abyss"`
	LuxuriousChests int    `json:"luxurious_chest_number"`
	PreciousChests  int    `json:"precious_chest_number"`
	ExquisiteChests int    `json:"exquisite_chest_number"`
	CommonChests    int    `json:"common_chest_number"`
	Anemoculi       int    `json:"anemoculus_number"`
	Geoculi         int    `json:"geoculus_number"`
	Electroculi     int    `json:"electroculus_number"`
}

// UserStats is the partial user summary the record-card view links to.
type UserStats struct {
	Stats Stats `json:"stats"`
}

// Weapon is a character's equipped weapon.
type Weapon struct {
	Name       string `json:"name"`
	Rarity     int    `json:"rarity"`
	Level      int    `json:"level"`
	AffixLevel int    `json:"affix_level"`
}

// ArtifactSet names the set an artifact belongs to.
type ArtifactSet struct {
	Name string `json:"name"`
}

// Artifact is one equipped artifact.
type Artifact struct {
	Name    string      `json:"name"`
	Pos     int         `json:"pos"`
	PosName string      `json:"pos_name"`
	Set     ArtifactSet `json:"set"`
}

// Constellation is one constellation slot of a character.
type Constellation struct {
	Pos       int    `json:"pos"`
	Name      string `json:"name"`
	IsActived bool   `json:"is_actived"`
}

// Character is one owned character with equipment details.
type Character struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Element        string          `json:"element"`
	Icon           string          `json:"icon"`
	Rarity         int             `json:"rarity"`
	Level          int             `json:"level"`
	Fetter         int             `json:"fetter"`
	Constellation  int             `json:"actived_constellation_num"`
	Weapon         Weapon          `json:"weapon"`
	Reliquaries    []Artifact      `json:"reliquaries"`
	Constellations []Constellation `json:"constellations"`
}
