package section_sqlite_repo

import (
	"context"
	"database/sql"
	"path/filepath"
	"spin_wheel/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "wheel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoad_MissingSlotGivesDefaults(t *testing.T) {
	r := NewSectionSQLiteRepository(openTestDB(t), "spinWheelSections", 20)

	sections, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections, 20)
	assert.Equal(t, 0, model.CountFilled(sections))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r := NewSectionSQLiteRepository(openTestDB(t), "spinWheelSections", 20)
	ctx := context.Background()

	in := model.NewSections(20)
	in[2].Statements = model.Statements{"x", "y", "z"}
	in[19].Statements = model.Statements{"last", "one", "here"}

	require.NoError(t, r.Save(ctx, in))
	// повторная запись обновляет тот же слот
	in[5].Statements = model.Statements{"p", "q", "r"}
	require.NoError(t, r.Save(ctx, in))

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSlotsAreIndependent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	a := NewSectionSQLiteRepository(db, "a", 20)
	b := NewSectionSQLiteRepository(db, "b", 20)

	require.NoError(t, a.Save(ctx, model.NewSections(3)))

	out, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 20)
}

func TestLoad_Corrupt(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO wheel_storage (slot_key, payload) VALUES (?, ?)", "k", "garbage")
	require.NoError(t, err)

	_, err = NewSectionSQLiteRepository(db, "k", 20).Load(ctx)
	assert.ErrorIs(t, err, model.ErrPersistence)
}

func TestSave_ClosedDB(t *testing.T) {
	db := openTestDB(t)
	r := NewSectionSQLiteRepository(db, "k", 20)
	require.NoError(t, db.Close())

	err := r.Save(context.Background(), model.NewSections(1))
	assert.ErrorIs(t, err, model.ErrPersistence)
}
