package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGrams(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 2000.0, tables.ToGrams(2, "kg"))
	assert.Equal(t, 500.0, tables.ToGrams(500, "g"))
	assert.Equal(t, 453.592, tables.ToGrams(1, "lb"))
	assert.Equal(t, 56.699, tables.ToGrams(2, "oz"))
	assert.Equal(t, 1000.0, tables.ToGrams(1, "l"))
	assert.Equal(t, 250.0, tables.ToGrams(250, "ml"))
	assert.Equal(t, 480.0, tables.ToGrams(2, "cup"))
	assert.Equal(t, 450.0, tables.ToGrams(3, "piece"))
	assert.Equal(t, 400.0, tables.ToGrams(2, "serving"))
	assert.Equal(t, 1000.0, tables.ToGrams(2, "pack"))
}

func TestToGramsCaseInsensitive(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 1000.0, tables.ToGrams(1, "KG"))
	assert.Equal(t, 1000.0, tables.ToGrams(1, "Kg"))
}

func TestToGramsUnknownUnitFallsBack(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 300.0, tables.ToGrams(3, "bunch"))
	assert.Equal(t, 100.0, tables.ToGrams(1, ""))
}
