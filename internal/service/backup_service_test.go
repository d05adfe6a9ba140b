package service

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"edumarket/internal/models"
	"edumarket/internal/repository"
	"edumarket/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBackupRoundTrip(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)
	_, err := env.learning.PurchaseChunk(sess, "1-1")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, NewBackupService(env.store.Backend(), zap.NewNop()).Export(path))

	target := storage.NewMemoryBackend()
	require.NoError(t, target.Set(storage.KeyReviews, []byte(`[{"id":"stale"}]`)))
	require.NoError(t, NewBackupService(target, zap.NewNop()).Import(path))

	for _, key := range storage.AllKeys {
		want, wantFound, err := env.store.Backend().Get(key)
		require.NoError(t, err)
		got, gotFound, err := target.Get(key)
		require.NoError(t, err)
		assert.Equal(t, wantFound, gotFound, key)
		assert.JSONEq(t, string(orEmpty(want)), string(orEmpty(got)), key)
	}

	restored := repository.NewStore(target)
	current, err := restored.Sessions.GetCurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, sess.User().ID, current.ID)
}

func TestBackupImportRejects(t *testing.T) {
	svc := NewBackupService(storage.NewMemoryBackend(), zap.NewNop())

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{"},
		{name: "wrong version", doc: `{"version":"0.1","collections":{}}`},
		{name: "unknown key", doc: `{"version":"1.0","collections":{"families":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, svc.ImportFromReader(strings.NewReader(tt.doc)))
		})
	}
}

func TestBackupExportRejectsCorruptValue(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyCourses, []byte("{oops")))

	var buf bytes.Buffer
	err := NewBackupService(backend, zap.NewNop()).ExportToWriter(&buf)
	assert.ErrorContains(t, err, storage.KeyCourses)
}

func orEmpty(b []byte) []byte {
	if b == nil {
		return []byte("null")
	}
	return b
}
