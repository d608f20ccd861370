package format

import (
	"strings"
	"testing"
	"time"

	"github.com/paimonbot/paimonbot/internal/enka"
	"github.com/paimonbot/paimonbot/internal/hoyo"
)

func TestResinColor(t *testing.T) {
	tests := []struct {
		resin int
		want  int
	}{
		{0, 0x28c828},
		{40, 0x78c828},
		{79, 0xc6c828},
		{80, 0xc8c828},
		{120, 0xc87828},
		{160, 0xc82828},
	}
	for _, tt := range tests {
		if got := ResinColor(tt.resin); got != tt.want {
			t.Errorf("ResinColor(%d) = %#x, want %#x", tt.resin, got, tt.want)
		}
	}
}

func TestResinColorRampMonotonic(t *testing.T) {
	// Red channel only rises up to 80, green only falls after.
	for r := 1; r < 80; r++ {
		if ResinColor(r) < ResinColor(r-1) {
			t.Fatalf("ramp not rising at resin %d", r)
		}
	}
	for r := 81; r <= 160; r++ {
		if ResinColor(r) > ResinColor(r-1) {
			t.Fatalf("ramp not falling at resin %d", r)
		}
	}
}

func sampleNotes() *hoyo.Notes {
	return &hoyo.Notes{
		CurrentResin:           39,
		MaxResin:               160,
		ResinRecoveryTime:      3600,
		FinishedTaskNum:        3,
		TotalTaskNum:           4,
		RemainResinDiscountNum: 2,
		CurrentHomeCoin:        1200,
		MaxHomeCoin:            2400,
		HomeCoinRecoveryTime:   7200,
		Expeditions: []hoyo.Expedition{
			{Status: "Finished"},
			{Status: "Ongoing", RemainedTime: 1800},
		},
	}
}

func TestNotesFull(t *testing.T) {
	now := time.Date(2024, 4, 18, 12, 0, 0, 0, time.UTC)
	embed := Notes(sampleNotes(), "812345678", false, now)

	desc := embed.Description
	for _, want := range []string{
		"Asia 812***678",
		"Current Resin: 39/160",
		"Full Recovery Time: Today 13:00",
		"Daily Commissions: 1 left",
		"Weekly Boss Discounts: 2 left",
		"Realm Currency: 1200/2400",
		"Expeditions Completed: 1/2",
		"Expedition 1: Completed",
		"Expedition 2: done Today 12:30",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("description missing %q:\n%s", want, desc)
		}
	}
	if embed.Color != ResinColor(39) {
		t.Errorf("color = %#x", embed.Color)
	}
}

func TestNotesShortOmitsSections(t *testing.T) {
	now := time.Date(2024, 4, 18, 12, 0, 0, 0, time.UTC)
	embed := Notes(sampleNotes(), "812345678", true, now)

	for _, absent := range []string{"Commissions", "Discounts", "Expedition"} {
		if strings.Contains(embed.Description, absent) {
			t.Errorf("short form should omit %q:\n%s", absent, embed.Description)
		}
	}
	if !strings.Contains(embed.Description, "Current Resin: 39/160") {
		t.Errorf("short form should keep resin:\n%s", embed.Description)
	}
}

func TestNotesFullResin(t *testing.T) {
	n := sampleNotes()
	n.CurrentResin = 160
	n.ResinRecoveryTime = 0

	embed := Notes(n, "812345678", false, time.Now())
	if !strings.Contains(embed.Description, "Full Recovery Time: FULL!") {
		t.Errorf("capped resin should render FULL!:\n%s", embed.Description)
	}
}

func TestNotesTransformer(t *testing.T) {
	n := sampleNotes()
	n.Transformer = &hoyo.Transformer{Obtained: true}
	n.Transformer.RecoveryTime.Day = 3

	embed := Notes(n, "812345678", false, time.Now())
	if !strings.Contains(embed.Description, "Parametric Transformer: 3 days left") {
		t.Errorf("missing transformer line:\n%s", embed.Description)
	}

	n.Transformer.RecoveryTime.Day = 0
	n.Transformer.RecoveryTime.Reached = true
	embed = Notes(n, "812345678", false, time.Now())
	if !strings.Contains(embed.Description, "Parametric Transformer: ready") {
		t.Errorf("reached transformer should be ready:\n%s", embed.Description)
	}
}

func TestClockAt(t *testing.T) {
	now := time.Date(2024, 4, 18, 12, 0, 0, 0, time.UTC) // Thursday

	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "Today 12:30"},
		{20 * time.Hour, "Tomorrow 08:00"},
		{50 * time.Hour, "Saturday 14:00"},
	}
	for _, tt := range tests {
		if got := clockAt(now, tt.in); got != tt.want {
			t.Errorf("clockAt(+%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45678, "-45,678"},
	}
	for _, tt := range tests {
		if got := comma(tt.n); got != tt.want {
			t.Errorf("comma(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestDiary(t *testing.T) {
	d := &hoyo.Diary{
		Nickname: "Aether",
		MonthData: hoyo.MonthData{
			CurrentPrimogems: 3215,
			CurrentMora:      1234567,
			LastPrimogems:    4800,
			LastMora:         900000,
			PrimogemsRate:    -33,
			MoraRate:         37,
			GroupBy: []hoyo.DiaryCategory{
				{Action: "Daily Activity", Percent: 40},
				{Action: "Events", Percent: 30},
				{Action: "Adventure", Percent: 20},
				{Action: "Other", Percent: 10},
			},
		},
	}

	embed := Diary(d, 4)
	if embed.Title != "Aether's Traveler's Notes: Month 4" {
		t.Errorf("title = %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "Primogem income is down 33%") {
		t.Errorf("description = %q", embed.Description)
	}
	if !strings.Contains(embed.Description, "Mora income is up 37%") {
		t.Errorf("description = %q", embed.Description)
	}

	if len(embed.Fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(embed.Fields))
	}
	obtained := embed.Fields[0]
	if !strings.Contains(obtained.Value, "Primogems: 3215 (20 wishes)") {
		t.Errorf("obtained = %q", obtained.Value)
	}
	if !strings.Contains(obtained.Value, "Mora: 1,234,567") {
		t.Errorf("obtained = %q", obtained.Value)
	}
	if !strings.Contains(embed.Fields[1].Value, "Daily Activity: 40%") {
		t.Errorf("composition 1 = %q", embed.Fields[1].Value)
	}
	if !strings.Contains(embed.Fields[2].Value, "Other: 10%") {
		t.Errorf("composition 2 = %q", embed.Fields[2].Value)
	}
}

func TestWishes(t *testing.T) {
	tests := []struct {
		primogems int
		want      int
	}{
		{0, 0},
		{79, 0},
		{80, 1},
		{160, 1},
		{240, 2},
		{3215, 20},
	}
	for _, tt := range tests {
		if got := wishes(tt.primogems); got != tt.want {
			t.Errorf("wishes(%d) = %d, want %d", tt.primogems, got, tt.want)
		}
	}
}

func sampleAbyss() *hoyo.SpiralAbyss {
	return &hoyo.SpiralAbyss{
		ScheduleID:       59,
		StartTime:        1650250800,
		EndTime:          1651546799,
		TotalBattleTimes: 12,
		TotalStar:        30,
		MaxFloor:         "12-3",
		DefeatRank:       []hoyo.RankAvatar{{AvatarID: 10000002, Value: 213}},
		DamageRank:       []hoyo.RankAvatar{{AvatarID: 10000046, Value: 98765}},
		Floors: []hoyo.AbyssFloor{
			{
				Index: 11,
				Levels: []hoyo.AbyssLevel{
					{Index: 1, Star: 3, Battles: []hoyo.AbyssBattle{
						{Index: 1, Avatars: []hoyo.BattleAvatar{{ID: 10000002}, {ID: 10000046}}},
						{Index: 2, Avatars: []hoyo.BattleAvatar{{ID: 10000030}}},
					}},
				},
			},
			{
				Index: 12,
				Levels: []hoyo.AbyssLevel{
					{Index: 1, Star: 2, Battles: []hoyo.AbyssBattle{
						{Index: 1, Avatars: []hoyo.BattleAvatar{{ID: 10000002}}},
						{Index: 2, Avatars: []hoyo.BattleAvatar{{ID: 10000046}}},
					}},
				},
			},
		},
	}
}

func TestAbyssOverview(t *testing.T) {
	embed := AbyssOverview(sampleAbyss(), FallbackName)

	if !strings.Contains(embed.Description, "Phase 59:") {
		t.Errorf("description = %q", embed.Description)
	}
	if len(embed.Fields) != 1 {
		t.Fatalf("fields = %d", len(embed.Fields))
	}
	f := embed.Fields[0]
	if !strings.Contains(f.Name, "Deepest Descent: 12-3") {
		t.Errorf("field name = %q", f.Name)
	}
	if !strings.Contains(f.Value, "[Most Defeats] #10000002: 213") {
		t.Errorf("field value = %q", f.Value)
	}
	if strings.Contains(f.Value, "36 stars") {
		t.Errorf("no crown below 36 stars: %q", f.Value)
	}
}

func TestAbyssOverviewCrown(t *testing.T) {
	a := sampleAbyss()
	a.TotalStar = 36
	embed := AbyssOverview(a, FallbackName)
	if !strings.Contains(embed.Fields[0].Value, "36 stars") {
		t.Errorf("expected crown line: %q", embed.Fields[0].Value)
	}
}

func TestAbyssFloorsLastOnly(t *testing.T) {
	embed := AbyssOverview(sampleAbyss(), FallbackName)
	embed = AbyssFloors(embed, sampleAbyss(), false, FallbackName)

	// Overview field plus one chamber of floor 12.
	if len(embed.Fields) != 2 {
		t.Fatalf("fields = %d", len(embed.Fields))
	}
	chamber := embed.Fields[1]
	if !strings.Contains(chamber.Name, "12-1") {
		t.Errorf("chamber name = %q", chamber.Name)
	}
	if !strings.Contains(chamber.Value, "#10000002") {
		t.Errorf("chamber value = %q", chamber.Value)
	}
}

func TestAbyssFloorsFull(t *testing.T) {
	embed := AbyssOverview(sampleAbyss(), FallbackName)
	embed = AbyssFloors(embed, sampleAbyss(), true, FallbackName)
	if len(embed.Fields) != 3 {
		t.Fatalf("fields = %d, want floors 11 and 12", len(embed.Fields))
	}
}

func TestCharacterEmbed(t *testing.T) {
	c := &hoyo.Character{
		Name:          "Hu Tao",
		Element:       "Pyro",
		Rarity:        5,
		Level:         90,
		Fetter:        10,
		Constellation: 1,
		Weapon:        hoyo.Weapon{Name: "Staff of Homa", Rarity: 5, Level: 90, AffixLevel: 1},
		Constellations: []hoyo.Constellation{
			{Pos: 1, Name: "Crimson Bouquet", IsActived: true},
			{Pos: 2, Name: "Ominous Rainfall", IsActived: false},
		},
		Reliquaries: []hoyo.Artifact{
			{PosName: "Flower of Life", Set: hoyo.ArtifactSet{Name: "Crimson Witch of Flames"}},
		},
	}

	embed := Character(c)
	if embed.Color != elementColors["pyro"] {
		t.Errorf("color = %#x", embed.Color)
	}
	if embed.Fields[0].Name != "5★ Hu Tao" {
		t.Errorf("field name = %q", embed.Fields[0].Name)
	}
	var consts string
	for _, f := range embed.Fields {
		if f.Name == "Constellations" {
			consts = f.Value
		}
	}
	if !strings.Contains(consts, "C1: Crimson Bouquet") {
		t.Errorf("constellations = %q", consts)
	}
	if strings.Contains(consts, "Ominous Rainfall") {
		t.Errorf("inactive constellation rendered: %q", consts)
	}
}

func TestRecordCardEmbed(t *testing.T) {
	card := &hoyo.RecordCard{
		Nickname:   "Aether",
		GameRoleID: "812345678",
		Level:      58,
		RegionName: "America",
		Data: []hoyo.CardEntry{
			{Name: "Active Days", Value: "365"},
			{Name: "Characters", Value: "40"},
		},
	}
	stats := &hoyo.UserStats{Stats: hoyo.Stats{
		Achievements: 812,
		Characters:   40,
		SpiralAbyss:  "12-3",
	}}

	embed := RecordCard(card, stats)
	if embed.Title != "Aether's Record Card" {
		t.Errorf("title = %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "812345678") || !strings.Contains(embed.Description, "AR 58") {
		t.Errorf("description = %q", embed.Description)
	}
	if embed.Fields[0].Name != "Active Days" {
		t.Errorf("first field = %q", embed.Fields[0].Name)
	}
}

func TestShowcaseEmbed(t *testing.T) {
	sc := &enka.Showcase{
		UID: "812345678",
		PlayerInfo: enka.PlayerInfo{
			Nickname:             "Aether",
			Signature:            "exploring",
			Level:                60,
			WorldLevel:           8,
			FinishAchievementNum: 812,
			TowerFloorIndex:      12,
			TowerLevelIndex:      3,
			ShowAvatarInfoList: []enka.ShowAvatar{
				{AvatarID: 10000002, Level: 90},
			},
		},
		HasDetails: false,
	}

	embed := Showcase(sc, FallbackName)
	if embed.Title != "Aether's Profile" {
		t.Errorf("title = %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "Asia") {
		t.Errorf("description = %q", embed.Description)
	}
	var adventure string
	for _, f := range embed.Fields {
		if f.Name == "Adventure" {
			adventure = f.Value
		}
	}
	if !strings.Contains(adventure, "Spiral Abyss: 12-3") {
		t.Errorf("adventure = %q", adventure)
	}
	if embed.Footer == "" {
		t.Error("private details should set the footer note")
	}
}
