package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	catalogapp "gigconnect_client/internal/catalog/app"
	catalogrepo "gigconnect_client/internal/catalog/repository"
	chatapp "gigconnect_client/internal/chat/app"
	chatdomain "gigconnect_client/internal/chat/domain"
	chatrepo "gigconnect_client/internal/chat/repository"
	profilerepo "gigconnect_client/internal/profile/repository"
	sessionapp "gigconnect_client/internal/session/app"
	sessionrepo "gigconnect_client/internal/session/repository"
	"gigconnect_client/pkg/config"
	"gigconnect_client/pkg/httpclient"
	"gigconnect_client/pkg/logger"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.ChatClient, config.EnvConfig.ChatClientLogPath)

	cfg := config.LoadConfig[config.ChatClient](config.EnvConfig.ChatClient, config.EnvConfig.ChatClientYAMLPath)

	httpClient := httpclient.New(cfg.APIBaseURL, time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	session := sessionapp.NewSessionUseCase(sessionrepo.NewRESTAuthRepository(httpClient))
	httpClient.SetTokenSource(session.Token)

	ctx := context.Background()
	stdin := bufio.NewScanner(os.Stdin)

	email, password := config.EnvConfig.Email, config.EnvConfig.Password
	if email == "" {
		email = prompt(stdin, "email: ")
		password = prompt(stdin, "password: ")
	}
	if _, err := session.Login(ctx, email, password); err != nil {
		logger.Log.Fatal("login failed", zap.Error(err))
	}
	claims := session.Claims()
	fmt.Printf("logged in as %s (%s)\n", claims.UserID, claims.Role)

	catalog := catalogapp.NewCatalogUseCase(catalogrepo.NewRESTCatalogRepository(httpClient))
	if conversations, err := catalog.MyConversations(ctx); err == nil {
		for _, c := range conversations {
			fmt.Printf("  %s (%s) unread=%d — %s\n", c.CounterpartName, c.CounterpartID, c.UnreadCount, c.LastMessage)
		}
	}

	counterpartID := prompt(stdin, "counterpart user id: ")
	bookingID := prompt(stdin, "booking id (empty for direct): ")

	msgRepo := chatrepo.NewRESTMessageRepository(httpClient)
	if p, err := profilerepo.NewRESTProfileRepository(httpClient).Get(ctx, counterpartID); err == nil {
		fmt.Printf("--- chatting with %s (%s) ---\n", p.Name(), p.Role)
	}

	socket := chatrepo.NewWebsocketSocket(cfg.SocketURL, chatrepo.Connection{
		RetryCount:    cfg.Socket.RetryCount,
		RetryInterval: time.Duration(cfg.Socket.RetryInterval) * time.Second,
	})

	view, err := chatapp.OpenView(ctx, chatapp.ViewDeps{
		MsgRepo: msgRepo,
		Socket:  socket,
		Claims:  claims,
		Bearer:  session.Token(),
		Handlers: chatapp.Handlers{
			OnChange:       func() { /* redrawn on next prompt */ },
			OnTyping:       func(active bool) { renderTyping(active) },
			OnNotification: func(content string) { fmt.Printf("\n[notification] %s\n", content) },
			OnBookingUpdate: func(bookingID, status string) {
				fmt.Printf("\n[booking %s] status → %s\n", bookingID, status)
			},
			OnError: func(err error) { fmt.Printf("\n[error] %v\n", err) },
		},
	}, counterpartID, bookingID)
	if err != nil {
		logger.Log.Fatal("open conversation failed", zap.Error(err))
	}
	defer view.Close()

	for _, m := range view.Client.Messages() {
		renderMessage(claims.UserID, m)
	}
	if !view.Policy.CanCompose {
		fmt.Println(view.Policy.Notice)
	}

	fmt.Println(`commands: "/file <path> [caption]", "/history", "/quit"`)
	for {
		line := prompt(stdin, "> ")
		switch {
		case line == "/quit":
			return
		case line == "/history":
			for _, m := range view.Client.Messages() {
				renderMessage(claims.UserID, m)
			}
		case strings.HasPrefix(line, "/file "):
			sendFile(ctx, view, strings.TrimPrefix(line, "/file "))
		case line == "":
		default:
			if err := view.Client.SignalTyping(line); err != nil {
				logger.Log.Debug("typing signal", zap.Error(err))
			}
			if _, err := view.Send(line); err != nil {
				fmt.Printf("send failed: %v\n", err)
			}
		}
	}
}

func sendFile(ctx context.Context, view *chatapp.ConversationView, args string) {
	parts := strings.SplitN(args, " ", 2)
	path := parts[0]
	caption := ""
	if len(parts) == 2 {
		caption = parts[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("read file: %v\n", err)
		return
	}
	if _, err := view.SendFile(ctx, filepath.Base(path), mimeFor(path), data, caption); err != nil {
		fmt.Printf("send file failed: %v\n", err)
	}
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func renderMessage(selfID string, m chatdomain.Message) {
	who := "them"
	if m.SenderID == selfID {
		who = "me"
	}
	read := ""
	if m.ReadAt != nil {
		read = " ✓"
	}
	body := m.Content
	if m.IsFile {
		body = fmt.Sprintf("[file] %s %s", m.FileName, m.FileURL)
	}
	fmt.Printf("[%s][%s]%s %s\n", who, m.Status, read, body)
}

func renderTyping(active bool) {
	if active {
		fmt.Print("\n[typing...]\n")
	}
}

func prompt(stdin *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !stdin.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(stdin.Text())
}
