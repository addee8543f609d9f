package chatlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/docbotdev/docbot/internal/common"
	"github.com/docbotdev/docbot/internal/filex"
)

const (
	filePrefix      = "chat_log_"
	fileExt         = ".txt"
	timestampLayout = "20060102_150405"

	userPrefix      = "🧑 You: "
	assistantPrefix = "🤖 DocBot: "

	headerTitle = "AI Doctor Chatbot - Chat Log"
	footerLine  = "--- End of Chat Log ---"
)

// Export serializes conv to a new chat_log_<YYYYMMDD_HHMMSS>.txt file under
// dir, creating dir if absent, and returns the filename. An empty
// conversation returns common.ErrorNothingToExport and writes nothing. The
// file is written to a temporary path and renamed, so a partial write is
// never readable under the final name.
func Export(dir string, conv *Conversation, now time.Time) (string, error) {
	if conv.Len() == 0 {
		return "", common.ErrorNothingToExport
	}

	absDir, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("error preparing chat log directory: %w", err)
	}

	ts := now.Format(timestampLayout)
	name := filePrefix + ts + fileExt

	var b strings.Builder
	b.WriteString(headerTitle + "\n")
	fmt.Fprintf(&b, "Date: %s\n\n", strings.ReplaceAll(ts, "_", " "))
	for _, msg := range conv.Messages() {
		prefix := userPrefix
		if msg.Role == RoleAssistant {
			prefix = assistantPrefix
		}
		fmt.Fprintf(&b, "%s%s\n\n", prefix, msg.Content)
	}
	b.WriteString(footerLine)

	if err := writeFileAtomic(absDir, name, []byte(b.String())); err != nil {
		return "", fmt.Errorf("error saving chat log: %w", err)
	}
	return name, nil
}

// writeFileAtomic writes data to a temp file in dir and renames it to name.
func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}

// ListExports returns the chat log filenames under dir, filtered to the
// chat_log_*.txt naming scheme and sorted descending, which is
// reverse-chronological given the timestamp embedded in the name. A missing
// directory yields an empty list.
func ListExports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error listing chat logs: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt) {
			names = append(names, name)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// ReadExport returns the text of a previously exported chat log. A missing
// file maps to common.ErrorExportNotFound; names that try to escape dir are
// rejected the same way.
func ReadExport(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", common.ErrorExportNotFound
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", common.ErrorExportNotFound
		}
		return "", fmt.Errorf("error reading chat log %s: %w", name, err)
	}
	return string(data), nil
}
