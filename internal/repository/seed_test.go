package repository

import (
	"testing"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	seeded, err := store.Seed(now)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.KeyBadges, storage.KeyCourses, storage.KeyChunks}, seeded)

	badges, _ := store.Badges.GetBadges()
	courses, _ := store.Courses.GetCourses()
	chunks, _ := store.Chunks.GetChunks("")

	seeded, err = store.Seed(now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, seeded)

	badges2, _ := store.Badges.GetBadges()
	courses2, _ := store.Courses.GetCourses()
	chunks2, _ := store.Chunks.GetChunks("")
	assert.Equal(t, badges, badges2)
	assert.Equal(t, courses, courses2)
	assert.Equal(t, chunks, chunks2)

	assert.Len(t, badges, 4)
	assert.Len(t, courses, 3)
	assert.Len(t, chunks, 8)
}

func TestSeedNeverOverwrites(t *testing.T) {
	store := newTestStore(t)

	custom := &models.Course{ID: "c9", Title: "Custom"}
	require.NoError(t, store.Courses.SaveCourse(custom))

	seeded, err := store.Seed(time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{storage.KeyBadges, storage.KeyChunks}, seeded)

	courses, err := store.Courses.GetCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c9", courses[0].ID)
}

func TestSeedTreatsEmptyCollectionAsPresent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Backend().Set(storage.KeyBadges, []byte("[]")))

	_, err := store.Seed(time.Now())
	require.NoError(t, err)

	badges, err := store.Badges.GetBadges()
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestDefaultChunksFollowIDConvention(t *testing.T) {
	for _, c := range DefaultChunks() {
		assert.Equal(t, models.ChunkID(c.CourseID, c.Order), c.ID)
	}
}
