package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/internal/model"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:a.db?_foreign_keys=on", SQLiteDSN("file:a.db"))
	assert.Equal(t, "file:a.db?mode=memory&_foreign_keys=on", SQLiteDSN("file:a.db?mode=memory"))
	assert.Equal(t, "file:a.db?_foreign_keys=off", SQLiteDSN("file:a.db?_foreign_keys=off"))
	assert.Equal(t, "file:yatube.db?_foreign_keys=on", SQLiteDSN(""))
}

func TestInitDB_SQLiteMemory(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}}
	db, err := InitDB(cfg)
	require.NoError(t, err)
	defer Close(db)

	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table", m)
	}
	assert.True(t, db.Migrator().HasIndex(&model.Follow{}, "idx_follow_pair"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
