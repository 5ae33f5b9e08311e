package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// MatchNotifier pushes match events to connected users over Socket.IO.
// Each user joins a room named by their own userId.
type MatchNotifier struct {
	Server *socketio.Server
}

// NewMatchNotifier initializes the Socket.IO server and its event handlers
func NewMatchNotifier() *MatchNotifier {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		c.Join(userID)
		log.Printf("👥 Socket %s joined room %s\n", c.ID(), userID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return &MatchNotifier{Server: server}
}

// NotifyMatch tells both participants that a channel now exists for them
func (n *MatchNotifier) NotifyMatch(userA, userB, channelID string, newChannel bool) {
	payload := map[string]interface{}{
		"channelId":  channelID,
		"newChannel": newChannel,
		"users":      []string{userA, userB},
	}
	n.Server.BroadcastToRoom("/", userA, "match", payload)
	n.Server.BroadcastToRoom("/", userB, "match", payload)
}
