package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// ChunkRepository handles persistence of course sections
type ChunkRepository struct {
	chunks *Collection[models.Chunk]
}

// NewChunkRepository creates a new chunk repository
func NewChunkRepository(backend storage.Backend) *ChunkRepository {
	return &ChunkRepository{
		chunks: NewCollection(backend, storage.KeyChunks, func(c models.Chunk) string { return c.ID }),
	}
}

// GetChunks retrieves the chunks of courseID, or every chunk when courseID is empty
func (r *ChunkRepository) GetChunks(courseID string) ([]models.Chunk, error) {
	var (
		chunks []models.Chunk
		err    error
	)
	if courseID == "" {
		chunks, err = r.chunks.List()
	} else {
		chunks, err = r.chunks.FindBy(func(c models.Chunk) bool { return c.CourseID == courseID })
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chunks: %w", err)
	}
	return chunks, nil
}

// GetChunkByID retrieves a chunk by ID, or nil when absent
func (r *ChunkRepository) GetChunkByID(id string) (*models.Chunk, error) {
	chunk, err := r.chunks.Find(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get chunk: %w", err)
	}
	return chunk, nil
}

// SaveChunk inserts the chunk or replaces the stored record with the same ID
func (r *ChunkRepository) SaveChunk(chunk *models.Chunk) error {
	if err := r.chunks.Upsert(*chunk); err != nil {
		return fmt.Errorf("failed to save chunk: %w", err)
	}
	return nil
}
