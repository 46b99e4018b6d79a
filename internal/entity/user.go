package entity

type User struct {
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// PlayerStats are the ranking counters kept per display name.
type PlayerStats struct {
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Points  int     `json:"points"`
	WinRate float64 `json:"win_rate"`
}
