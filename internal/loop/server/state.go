package server

// ClientHandle represents a client's registration with the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client; closed on unregister
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// TopScoreEntry is one session's best finished game.
type TopScoreEntry struct {
	Username string
	Score    int
	Level    int // Level reached when the game ended
	clientID int // Ties go to the earlier session
}
