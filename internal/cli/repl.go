package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// repl runs the read-eval-print loop. The first token of a line is the
// command; while logged in, a line that is not a known command is sent to
// DocBot as a chat prompt. The loop exits on EOF or "exit"/"quit".
//
// Commands while not logged in: help, register, login, exit.
// Commands while logged in: help, new, save, history, view <name>, retry,
// symptoms, report, logout, exit; anything else is chat.
func (a *App) repl(ctx context.Context) {
	for {
		fmt.Printf("docbot %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd := strings.Fields(line)[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: new, save, history, view <name>, retry, symptoms, report, logout, exit")
				printlnFn("Anything else you type is sent to DocBot as a question.")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "new", "save", "history", "view", "retry", "symptoms", "report":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			switch cmd {
			case "new":
				_ = a.NewConversation(ctx)
			case "save":
				_ = a.Save(ctx)
			case "history":
				_ = a.History(ctx)
			case "view":
				name := strings.TrimSpace(strings.TrimPrefix(line, "view"))
				_ = a.View(ctx, name)
			case "retry":
				_ = a.Retry(ctx)
			case "symptoms":
				_ = a.Symptoms(ctx)
			case "report":
				_ = a.Report(ctx)
			}

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if a.isLoggedIn() {
				_ = a.Chat(ctx, line)
			} else {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
