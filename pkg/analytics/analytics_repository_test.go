package analytics

import (
	"reflect"
	"strings"
	"testing"

	"foodwise-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWasteSnapshotConflictKey(t *testing.T) {
	conflict := wasteSnapshotConflict()

	var columns []string
	for _, column := range conflict.Columns {
		columns = append(columns, column.Name)
	}
	assert.Equal(t, []string{"user_id", "period", "captured_on"}, columns)
	assert.NotEmpty(t, conflict.DoUpdates, "conflicting rows must be overwritten, not ignored")
}

func TestWasteSnapshotUniqueIndexCoversNaturalKey(t *testing.T) {
	snapshotType := reflect.TypeOf(entities.WasteSnapshot{})

	for _, name := range []string{"UserID", "Period", "CapturedOn"} {
		field, ok := snapshotType.FieldByName(name)
		require.True(t, ok, "field %s missing", name)
		assert.Contains(t, field.Tag.Get("gorm"), "uniqueIndex:idx_waste_user_period_date",
			"field %s must be part of the snapshot's unique index", name)
	}
}
