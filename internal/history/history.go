// Package history provides SQLite-based persistence for chat transcripts.
// The database is opened lazily and created on first use.
// If opening the DB or executing queries fails, the store falls back to in-memory storage.
package history

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/comigor/hellollm/internal/logger"
	"github.com/comigor/hellollm/internal/prompt"
)

// Store keeps transcripts in SQLite with an in-memory copy as fallback.
type Store struct {
	path string

	mu       sync.Mutex
	messages []Message // in-memory fallback

	dbOnce  sync.Once
	db      *sql.DB
	initErr error
}

// New returns a store backed by the SQLite file at path. Nothing is opened until first use.
func New(path string) *Store {
	return &Store{path: path}
}

// initDB lazily opens the SQLite database and creates the messages table if it doesn't exist.
func (s *Store) initDB() {
	var err error
	s.db, err = sql.Open("sqlite", "file:"+s.path+"?_busy_timeout=10000&_fk=1")
	if err != nil {
		s.initErr = err
		logger.L.Warn("sqlite open failed; using in-memory history", "error", err)
		return
	}
	if _, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		role TEXT,
		content TEXT,
		model TEXT,
		created_at DATETIME
	);`); err != nil {
		s.initErr = err
		logger.L.Warn("sqlite table creation failed; using in-memory history", "error", err)
		return
	}
	logger.L.Debug("sqlite history DB initialized", "path", s.path)
}

// Save persists a message to the SQLite database when available and always keeps
// an in-memory copy as fallback.
func (s *Store) Save(msg Message) {
	s.dbOnce.Do(s.initDB)

	if s.initErr == nil && s.db != nil {
		res, err := s.db.Exec(`INSERT INTO messages (session_id, role, content, model, created_at) VALUES (?,?,?,?,?);`,
			msg.SessionID, msg.Role, msg.Content, msg.Model, msg.CreatedAt)
		if err != nil {
			logger.L.Error("failed to store message in sqlite; falling back to memory", "error", err)
		} else if id, err := res.LastInsertId(); err == nil {
			msg.ID = id
		}
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

// List returns all messages of a session in chronological order.
func (s *Store) List(sessionID string) []Message {
	s.dbOnce.Do(s.initDB)
	var out []Message
	if s.initErr == nil && s.db != nil {
		rows, err := s.db.Query(`SELECT id, session_id, role, content, model, created_at FROM messages WHERE session_id = ? ORDER BY id ASC;`, sessionID)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var m Message
				if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Model, &m.CreatedAt); err == nil {
					out = append(out, m)
				}
			}
			return out
		}
		logger.L.Warn("sqlite query failed; reading in-memory history", "error", err)
	}
	s.mu.Lock()
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	s.mu.Unlock()
	return out
}

// Close releases the database handle, if one was opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores every turn of conv followed by the assistant reply.
func (s *Store) Record(sessionID, model string, conv prompt.Conversation, reply string) {
	now := time.Now().UTC()
	for _, m := range conv {
		s.Save(Message{SessionID: sessionID, Role: string(m.Role), Content: m.Content, CreatedAt: now})
	}
	s.Save(Message{SessionID: sessionID, Role: string(prompt.RoleAssistant), Content: reply, Model: model, CreatedAt: now})
}
