package game

import "encoding/json"

// Envelope WS envelope: {"type":"...","payload":{...}}
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AuthPayload входящие
type AuthPayload struct {
	Token string `json:"token"`
}

type SubmitGuessPayload struct {
	Guess string `json:"guess"`
}

// Attempt — один принятый ход.
type Attempt struct {
	Guess string `json:"guess"`
	Bulls int    `json:"bulls"`
	Cows  int    `json:"cows"`
}

// GuessResultPayload исходящие
type GuessResultPayload struct {
	Bulls    int  `json:"bulls"`
	Cows     int  `json:"cows"`
	Won      bool `json:"won"`
	Attempts int  `json:"attempts"`
}

type StatePayload struct {
	RoundID  string    `json:"roundId"`
	Length   int       `json:"length"`
	Phase    Phase     `json:"phase"` // awaiting_guess|won
	Attempts int       `json:"attempts"`
	History  []Attempt `json:"history"`
	Secret   string    `json:"secret,omitempty"` // только после won
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
