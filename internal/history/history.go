// Package history keeps an append-only JSON log of generated resumes.
// Logging is best effort: a broken or unwritable history file is reported
// through the logger and never fails the operation that produced the resume.
package history

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one generated resume as stored in the history file.
type Entry struct {
	types.ResumeFields
	Template   string `json:"template"`
	ResumeText string `json:"resumeText"`
	Timestamp  string `json:"timestamp"`
}

type Log struct {
	mu     sync.Mutex
	cfg    config.HistoryConfig
	logger *errors.Logger
	now    func() time.Time
}

func NewLog(cfg config.HistoryConfig, logger *errors.Logger) *Log {
	return &Log{cfg: cfg, logger: logger, now: time.Now}
}

// Enabled reports whether appends will be persisted.
func (l *Log) Enabled() bool {
	return l != nil && l.cfg.Enabled && l.cfg.FilePath != ""
}

// Append records a generated resume. A corrupt existing file is treated as
// empty so history keeps working after manual edits.
func (l *Log) Append(fields types.ResumeFields, template, resumeText string) {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil && l.logger != nil {
		l.logger.Warn("history file unreadable, starting a new log",
			"path", l.cfg.FilePath, "error", err)
	}

	entries = append(entries, Entry{
		ResumeFields: fields,
		Template:     template,
		ResumeText:   resumeText,
		Timestamp:    l.now().Format(timestampLayout),
	})

	if err := l.write(entries); err != nil && l.logger != nil {
		l.logger.Warn("failed to write history file",
			"path", l.cfg.FilePath, "error", err)
	}
}

// Entries returns the logged resumes, oldest first.
func (l *Log) Entries() ([]Entry, error) {
	if !l.Enabled() {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Log) read() ([]Entry, error) {
	data, err := os.ReadFile(l.cfg.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable, "cannot read history file", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInvalidFormat, "history file is not a JSON array", err)
	}
	return entries, nil
}

func (l *Log) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return errors.NewInternalError(errors.ErrCodeInvalidFormat, "cannot encode history", err)
	}
	if err := os.WriteFile(l.cfg.FilePath, data, 0o644); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable, "cannot write history file", err)
	}
	return nil
}
