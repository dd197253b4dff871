package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The passport columns must be wide enough for input that passes request
// validation: a 2-letter series and a 7-digit number.
func TestPassportColumnWidths(t *testing.T) {
	typ := reflect.TypeOf(Passport{})

	series, ok := typ.FieldByName("Series")
	require.True(t, ok)
	assert.Contains(t, series.Tag.Get("gorm"), "varchar(2)")

	number, ok := typ.FieldByName("Number")
	require.True(t, ok)
	assert.Contains(t, number.Tag.Get("gorm"), "varchar(7)")
}
