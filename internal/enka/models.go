// Package enka fetches public character-showcase snapshots. The API is
// credential-less and keyed by game UID.
package enka

// ProfilePicture identifies the avatar shown on the player's profile.
type ProfilePicture struct {
	AvatarID int `json:"avatarId"`
}

// ShowAvatar is one character the player chose to display.
type ShowAvatar struct {
	AvatarID int `json:"avatarId"`
	Level    int `json:"level"`
}

// PlayerInfo is the public profile block of a showcase snapshot.
type PlayerInfo struct {
	Nickname             string         `json:"nickname"`
	Signature            string         `json:"signature"`
	Level                int            `json:"level"`
	WorldLevel           int            `json:"worldLevel"`
	FinishAchievementNum int            `json:"finishAchievementNum"`
	TowerFloorIndex      int            `json:"towerFloorIndex"`
	TowerLevelIndex      int            `json:"towerLevelIndex"`
	NameCardID           int            `json:"nameCardId"`
	ProfilePicture       ProfilePicture `json:"profilePicture"`
	ShowAvatarInfoList   []ShowAvatar   `json:"showAvatarInfoList"`
}

// Showcase is one player's showcase snapshot.
type Showcase struct {
	UID        string     `json:"-"`
	PlayerInfo PlayerInfo `json:"playerInfo"`
	// Detailed character builds are present only when the player has not
	// set in-game details to private.
	HasDetails bool `json:"-"`
}

// rawShowcase mirrors the wire shape; HasDetails is derived from the
// presence of avatarInfoList.
type rawShowcase struct {
	PlayerInfo     PlayerInfo `json:"playerInfo"`
	AvatarInfoList []struct {
		AvatarID int `json:"avatarId"`
	} `json:"avatarInfoList"`
}
