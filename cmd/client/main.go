package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"chat-mvp/backend/internal/client"
	"chat-mvp/backend/internal/models"
	"chat-mvp/backend/pkg/config"
	"chat-mvp/backend/pkg/logger"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

// The client has two states: logged out (credential prompt) and logged in
// (conversation view). There is no way back; expired tokens mean restarting.
func main() {
	godotenv.Load()

	cfg := config.New()

	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = false
	log := logger.New(logConfig)

	apiClient := client.New(cfg.Client.ServerURL)
	reader := bufio.NewReader(os.Stdin)

	// Logged out: prompt until the server accepts the credentials
	var username string
	for {
		fmt.Print("Username: ")
		u, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fmt.Print("Password: ")
		p, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		u = strings.TrimSpace(u)
		p = strings.TrimSpace(p)

		if err := apiClient.Login(context.Background(), u, p); err != nil {
			color.Red.Println("Login failed, try again.")
			continue
		}

		username = u
		break
	}

	// The other participant is the opposite member of the fixed two-name pair
	otherUser := deriveOtherUser(username, cfg.Chat.Users)

	view := client.NewView(username, otherUser)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller := client.NewPoller(
		cfg.Client.PollInterval,
		func(ctx context.Context) ([]models.Message, error) {
			return apiClient.Conversation(ctx, otherUser)
		},
		view.Render,
		log,
	)
	go poller.Run(ctx)

	// Logged in: every non-empty line is a message. The sent message shows up
	// on the next poll tick, not immediately.
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF tears the view down; the poller observes the cancel
			cancel()
			fmt.Println()
			return
		}

		content := strings.TrimRight(line, "\n")
		if strings.TrimSpace(content) == "" {
			continue
		}

		if err := apiClient.Send(ctx, otherUser, content); err != nil {
			log.Warn("Failed to send message", "error", err.Error())
		}
	}
}

// deriveOtherUser returns the member of the pair that did not log in. The
// comparison is case-insensitive to match the server's allow-list check.
func deriveOtherUser(username string, users []string) string {
	for _, u := range users {
		if !strings.EqualFold(u, username) {
			return u
		}
	}
	return username
}
