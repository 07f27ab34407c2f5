package entity

import "fmt"

// ratioEpsilon is the tolerance within which two ratios rank as equal.
const ratioEpsilon = 0.00001

type PlayerKind string

const (
	HumanKind      PlayerKind = "human"
	AIKind         PlayerKind = "ai"
	AdvancedAIKind PlayerKind = "advanced-ai"
)

// Player is a persisted player record.
type Player struct {
	Username    string     `json:"username"`
	FamilyName  string     `json:"family_name"`
	GivenName   string     `json:"given_name"`
	Kind        PlayerKind `json:"kind"`
	GamesPlayed int        `json:"games_played"`
	GamesWon    int        `json:"games_won"`
	GamesDrawn  int        `json:"games_drawn"`
}

func NewPlayer(username, familyName, givenName string, kind PlayerKind) *Player {
	return &Player{
		Username:   username,
		FamilyName: familyName,
		GivenName:  givenName,
		Kind:       kind,
	}
}

// Copy returns a detached copy of the record.
func (that *Player) Copy() *Player {
	player := *that
	return &player
}

func (that *Player) WinRatio() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}
	return float64(that.GamesWon) / float64(that.GamesPlayed)
}

func (that *Player) DrawRatio() float64 {
	if that.GamesPlayed == 0 {
		return 0
	}
	return float64(that.GamesDrawn) / float64(that.GamesPlayed)
}

func (that *Player) RecordWin() {
	that.GamesWon++
}

func (that *Player) RecordDraw() {
	that.GamesDrawn++
}

func (that *Player) RecordPlayed() {
	that.GamesPlayed++
}

func (that *Player) ResetStats() {
	that.GamesPlayed = 0
	that.GamesWon = 0
	that.GamesDrawn = 0
}

func (that *Player) String() string {
	return fmt.Sprintf("%s,%s,%s,%d games,%d wins,%d draws",
		that.Username, that.FamilyName, that.GivenName, that.GamesPlayed, that.GamesWon, that.GamesDrawn)
}

// RanksAbove reports whether the player ranks higher than other: higher win ratio first,
// then higher draw ratio, then username in alphabetical order.
func (that *Player) RanksAbove(other *Player) bool {
	if cmp := compareRatio(that.WinRatio(), other.WinRatio()); cmp != 0 {
		return cmp > 0
	}

	if cmp := compareRatio(that.DrawRatio(), other.DrawRatio()); cmp != 0 {
		return cmp > 0
	}

	return that.Username < other.Username
}

func compareRatio(a, b float64) int {
	switch {
	case a+ratioEpsilon > b && a-ratioEpsilon < b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
