package protocol

import "github.com/quizarena/tictactrivia-backend/internal/entity"

// Message type tags shared by both directions of the realtime channel.
const (
	TypePing               = "ping"
	TypePong               = "pong"
	TypeConnected          = "connected"
	TypeJoinRoom           = "join_room"
	TypeRoomState          = "room_state"
	TypePlayerJoined       = "player_joined"
	TypeGetQuestion        = "get_question"
	TypeQuestion           = "question"
	TypePlayerAnswering    = "player_answering"
	TypeMakeMove           = "make_move"
	TypeGameUpdate         = "game_update"
	TypeLeaveRoom          = "leave_room"
	TypePlayerDisconnected = "player_disconnected"
	TypeGameReset          = "game_reset"
	TypeError              = "error"
)

// ClientMessage is the inbound envelope. Fields are a union over all client
// message kinds; the dispatcher validates what each type requires.
type ClientMessage struct {
	Type           string           `json:"type"`
	RoomCode       string           `json:"room_code,omitempty"`
	CellIndex      *int             `json:"cell_index,omitempty"`
	Subject        string           `json:"subject,omitempty"`
	SelectedAnswer string           `json:"selected_answer,omitempty"`
	Question       *entity.Question `json:"question,omitempty"`
}

type Pong struct {
	Type string `json:"type"`
}

func NewPong() Pong {
	return Pong{Type: TypePong}
}

type Connected struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id"`
}

func NewConnected(playerID string) Connected {
	return Connected{Type: TypeConnected, PlayerID: playerID}
}

type RoomState struct {
	Type string       `json:"type"`
	Room *entity.Room `json:"room"`
}

func NewRoomState(room *entity.Room) RoomState {
	return RoomState{Type: TypeRoomState, Room: room}
}

type PlayerJoined struct {
	Type        string       `json:"type"`
	PlayerName  string       `json:"player_name"`
	PlayerCount int          `json:"player_count"`
	Room        *entity.Room `json:"room"`
}

func NewPlayerJoined(playerName string, room *entity.Room) PlayerJoined {
	return PlayerJoined{
		Type:        TypePlayerJoined,
		PlayerName:  playerName,
		PlayerCount: room.PlayerCount(),
		Room:        room,
	}
}

type Question struct {
	Type      string           `json:"type"`
	Question  *entity.Question `json:"question"`
	CellIndex int              `json:"cell_index"`
	Subject   string           `json:"subject"`
}

func NewQuestion(question *entity.Question, cellIndex int) Question {
	return Question{
		Type:      TypeQuestion,
		Question:  question,
		CellIndex: cellIndex,
		Subject:   question.Subject,
	}
}

// PlayerAnswering tells the opponent a cell is being contested. It carries
// no question content on purpose.
type PlayerAnswering struct {
	Type       string `json:"type"`
	PlayerName string `json:"player_name"`
	CellIndex  int    `json:"cell_index"`
	Subject    string `json:"subject"`
}

func NewPlayerAnswering(playerName string, cellIndex int, subject string) PlayerAnswering {
	return PlayerAnswering{
		Type:       TypePlayerAnswering,
		PlayerName: playerName,
		CellIndex:  cellIndex,
		Subject:    subject,
	}
}

type GameUpdate struct {
	Type string             `json:"type"`
	Room *entity.Room       `json:"room"`
	Move *entity.MoveResult `json:"move"`
}

func NewGameUpdate(room *entity.Room, move *entity.MoveResult) GameUpdate {
	return GameUpdate{Type: TypeGameUpdate, Room: room, Move: move}
}

type PlayerDisconnected struct {
	Type       string `json:"type"`
	PlayerName string `json:"player_name"`
}

func NewPlayerDisconnected(playerName string) PlayerDisconnected {
	return PlayerDisconnected{Type: TypePlayerDisconnected, PlayerName: playerName}
}

type GameReset struct {
	Type string       `json:"type"`
	Room *entity.Room `json:"room"`
}

func NewGameReset(room *entity.Room) GameReset {
	return GameReset{Type: TypeGameReset, Room: room}
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
