package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turtacn/MolCanvas/internal/infrastructure/database/postgres"
)

func TestRunMigrations_InvalidSourceURL(t *testing.T) {
	err := postgres.RunMigrations("postgres://u:p@localhost:5432/db", "bogus-scheme://nowhere")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migrate instance")
}

func TestRollbackMigration_ZeroSteps(t *testing.T) {
	err := postgres.RollbackMigration("postgres://u:p@localhost:5432/db", "file://migrations", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be greater than 0")
}

func TestRollbackMigration_NegativeSteps(t *testing.T) {
	err := postgres.RollbackMigration("postgres://u:p@localhost:5432/db", "file://migrations", -2)
	assert.Error(t, err)
}

//Personal.AI order the ending
