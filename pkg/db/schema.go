// Package db provides SQLite storage for the action history of interactive sessions.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Action history table
-- One row per completed menu action
CREATE TABLE IF NOT EXISTS action_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,          -- UUID of the interactive session
    action TEXT NOT NULL,              -- e.g. 'create-folder', 'snapshot'
    work_dir TEXT NOT NULL,            -- working directory at the time
    detail TEXT NOT NULL DEFAULT '',   -- free text, e.g. target name or quiz score
    performed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_action_history_session
    ON action_history(session_id);

CREATE INDEX IF NOT EXISTS idx_action_history_action
    ON action_history(action);

-- Quiz results table
CREATE TABLE IF NOT EXISTS quiz_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    correct INTEGER NOT NULL,
    total INTEGER NOT NULL,
    played_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Key-value metadata
CREATE TABLE IF NOT EXISTS history_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
