package entity

// Question is a catalog item. The JSON field names mirror what the web
// client expects, correctAnswer included.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Period        string   `json:"period,omitempty"`
	Subject       string   `json:"subject,omitempty"`
}

// MoveResult is the post-move summary broadcast to both players.
type MoveResult struct {
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name"`
	CellIndex     int    `json:"cell_index"`
	IsCorrect     bool   `json:"is_correct"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer"`
}
