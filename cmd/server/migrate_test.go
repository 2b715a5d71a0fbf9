package main

import (
	"testing"

	"github.com/Seba01D/pm-app/internal/database"

	"github.com/stretchr/testify/assert"
)

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	for _, steps := range []string{"0", "-1"} {
		t.Run(steps, func(t *testing.T) {
			rootCmd.SetArgs([]string{"migrate", "down", "--steps=" + steps})

			err := rootCmd.Execute()

			assert.ErrorIs(t, err, database.ErrInvalidSteps)
		})
	}
}
