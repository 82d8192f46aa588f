package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/infras/database/dbtest"
	"github.com/narasux/chemreact/pkg/model"
)

func TestMigrate(t *testing.T) {
	db := dbtest.NewDB(t)

	for _, m := range []any{
		&model.Element{},
		&model.Molecule{},
		&model.Reaction{},
		&model.ReactionParticipant{},
		&model.ExplanationRecord{},
	} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasColumn(&model.Element{}, "group_number"))

	version, err := database.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "20251019_141500", version)

	// 重复执行无副作用
	require.NoError(t, database.Migrate(db, ""))
}

func TestGenMigrationID(t *testing.T) {
	assert.Regexp(t, `^\d{8}_\d{6}$`, database.GenMigrationID())
}
