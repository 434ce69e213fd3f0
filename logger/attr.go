package logger

import (
	"log/slog"
	"path/filepath"
)

// TruncSourceAttr shortens the file in a [log/slog.SourceKey] attribute
// to its parent directory and base name.
//
// e.g., /home/dlk/hostcfg/http/api/api.go => api/api.go
func TruncSourceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	src.File = trimSource(src.File)
	return slog.Any(a.Key, src)
}

// DeleteLevelAttr removes the level from records where it adds nothing, e.g., HTTP request logs.
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}

	return a
}

// DeleteMessageAttr removes the message from records where it adds nothing, e.g., HTTP request logs.
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.MessageKey {
		return slog.Attr{}
	}

	return a
}

// ReplaceFatalLevel names LevelFatal "FATAL" instead of "ERROR+4".
func ReplaceFatalLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 || a.Key != slog.LevelKey {
		return a
	}

	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelFatal {
		return slog.String(slog.LevelKey, "FATAL")
	}

	return a
}

func trimSource(file string) string {
	dir, base := filepath.Split(file)
	return filepath.Join(filepath.Base(dir), base)
}
