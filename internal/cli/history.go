package cli

import (
	"context"
	"errors"
	"os"

	"github.com/docbotdev/docbot/internal/chatlog"
	"github.com/docbotdev/docbot/internal/common"
)

// History lists saved chat logs, most recent first.
func (a *App) History(ctx context.Context) error {
	names, err := chatlog.ListExports(a.config.ChatLogDir)
	if err != nil {
		printlnFn("Error listing chat logs:", err)
		return err
	}
	if len(names) == 0 {
		printlnFn("No saved chat logs found yet.")
		return nil
	}
	for _, name := range names {
		printlnFn("  " + name)
	}
	return nil
}

// View prints the content of one saved chat log. With no name given, the
// user is prompted for one.
func (a *App) View(ctx context.Context, name string) error {
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Chat log filename", os.Stdout)
		if err != nil {
			return err
		}
	}

	text, err := chatlog.ReadExport(a.config.ChatLogDir, name)
	if err != nil {
		if errors.Is(err, common.ErrorExportNotFound) {
			printlnFn("Chat log not found:", name)
		} else {
			printlnFn("Error reading chat log:", err)
		}
		return err
	}
	printlnFn(text)
	return nil
}
