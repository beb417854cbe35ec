package sqlite

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/fwojciec/reportqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ reportqa.ChunkService = (*ChunkService)(nil)

// ChunkService implements reportqa.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// CreateChunks inserts all chunks in a single transaction.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*reportqa.Chunk) error {
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, document_id, content, embedding, page, position, tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range chunks {
		c.ID = uuid.New().String()
		if _, err := stmt.ExecContext(ctx, c.ID, c.DocumentID, c.Content, encodeEmbedding(c.Embedding),
			c.Metadata.Page, c.Metadata.Position, c.Metadata.Tokens); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", c.Metadata.Position, err)
		}
	}

	return tx.Commit()
}

// FindChunks retrieves chunks matching the filter, ordered by position.
func (s *ChunkService) FindChunks(ctx context.Context, filter reportqa.ChunkFilter) ([]*reportqa.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, content, embedding, page, position, tokens FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY document_id, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*reportqa.Chunk
	for rows.Next() {
		var c reportqa.Chunk
		var blob []byte
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Content, &blob,
			&c.Metadata.Page, &c.Metadata.Position, &c.Metadata.Tokens); err != nil {
			return nil, err
		}
		if c.Embedding, err = decodeEmbedding(blob); err != nil {
			return nil, err
		}
		chunks = append(chunks, &c)
	}

	return chunks, rows.Err()
}

// encodeEmbedding stores a vector as little-endian float32s.
func encodeEmbedding(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	b := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

func decodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, reportqa.Errorf(reportqa.EINTERNAL, "corrupt embedding: %d bytes", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v, nil
}
