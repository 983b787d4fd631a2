package client

import (
	"fmt"
	"sync"

	"chat-mvp/backend/internal/models"

	"github.com/gookit/color"
)

// View renders the conversation to the terminal. Every render replaces the
// whole message list, mirroring what each poll returns.
type View struct {
	currentUser string
	otherUser   string
	mu          sync.Mutex
}

// NewView creates a conversation view for the two participants
func NewView(currentUser, otherUser string) *View {
	return &View{
		currentUser: currentUser,
		otherUser:   otherUser,
	}
}

// Render clears the screen and prints the full conversation
func (v *View) Render(messages []models.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// ANSI clear screen + cursor home
	fmt.Print("\033[2J\033[H")

	color.Bold.Printf("Chat with %s\n", v.otherUser)
	color.Gray.Println("Type a message and press Enter to send. Ctrl+D quits.")
	fmt.Println()

	for _, msg := range messages {
		ts := msg.Timestamp.Local().Format("15:04:05")
		if msg.Sender == v.currentUser {
			color.Cyan.Printf("[%s] %s: ", ts, msg.Sender)
		} else {
			color.Green.Printf("[%s] %s: ", ts, msg.Sender)
		}
		fmt.Println(msg.Content)
	}

	fmt.Print("\n> ")
}
