package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Language(ctx context.Context, code string) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context) error
	Albums(ctx context.Context) error
	NewAlbum(ctx context.Context) error
	DeleteAlbum(ctx context.Context) error
	Images(ctx context.Context) error
	AddImage(ctx context.Context) error
	DeleteImage(ctx context.Context) error
	Recommend(ctx context.Context) error
	Nearby(ctx context.Context) error
	AIRecommend(ctx context.Context) error
	Recognize(ctx context.Context, path string) error
	Chat(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the TravelMate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help               — show available commands
//	  - lang <code>        — switch interface language
//	  - recommend          — destinations by interest
//	  - nearby             — destinations near a location
//	  - ai                 — free-form AI recommendations
//	  - recognize <file>   — recognize a landmark photo
//	  - chat               — talk to the travel assistant
//	  - exit | quit        — leave the program
//
//	Not logged in:
//	  - login | register | forgot
//
//	Logged in:
//	  - profile | avatar | albums | newalbum | delalbum | logout
//	  - images | addimage | delimage
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: profile, avatar, albums, newalbum, delalbum, images, addimage, delimage, recommend, nearby, ai, recognize, chat, lang, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, recommend, nearby, ai, recognize, chat, lang, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "lang":
			if len(args) == 0 {
				printlnFn("Usage: lang <code>")
				continue
			}
			_ = a.Language(ctx, args[0])

		case "profile":
			_ = a.Profile(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "albums":
			_ = a.Albums(ctx)

		case "newalbum":
			_ = a.NewAlbum(ctx)

		case "delalbum":
			_ = a.DeleteAlbum(ctx)

		case "images":
			_ = a.Images(ctx)

		case "addimage":
			_ = a.AddImage(ctx)

		case "delimage":
			_ = a.DeleteImage(ctx)

		case "recommend":
			_ = a.Recommend(ctx)

		case "nearby":
			_ = a.Nearby(ctx)

		case "ai":
			_ = a.AIRecommend(ctx)

		case "recognize":
			if len(args) == 0 {
				printlnFn("Usage: recognize <file>")
				continue
			}
			_ = a.Recognize(ctx, args[0])

		case "chat":
			_ = a.Chat(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
