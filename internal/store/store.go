package store

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// AccountFilter narrows account list queries.
type AccountFilter struct {
	Type            ledger.AccountType
	ParentID        *string // nil = any, pointer to "" = roots only
	IncludeInactive bool
}

// Store is the sqlite-backed persistence layer for the chart of accounts and
// the journal. A single-connection writer serializes all mutations, which is
// what keeps the rename path-rebuild cascade atomic relative to other writes.
type Store struct {
	writer *sql.DB
	reader *sql.DB
	log    *zap.Logger
}

func Open(dbPath string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", dbPath)

	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(runtime.NumCPU())

	s := &Store{writer: writer, reader: reader, log: log}

	if err := s.migrate(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	return s, nil
}

func (s *Store) Close() error {
	err1 := s.writer.Close()
	err2 := s.reader.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
