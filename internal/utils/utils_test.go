package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID      string  `db:"id"`
	Name    *string `db:"full_name"`
	Skipped string  `db:"-"`
	NoTag   string
	hidden  string `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"id", "full_name"}, StructTagValues(row{}))
	assert.Equal(t, []string{"id", "full_name"}, StructTagValues(&row{}))
	assert.Panics(t, func() { StructTagValues("not a struct") })
}

func TestStructToMap(t *testing.T) {
	name := "Asha"
	got := StructToMap(&row{ID: "p1", Name: &name, Skipped: "x", NoTag: "y", hidden: "z"})

	assert.Equal(t, map[string]any{"id": "p1", "full_name": &name}, got)
}

func TestErrorWrapOrNil(t *testing.T) {
	base := errors.New("boom")

	assert.NoError(t, ErrorWrapOrNil(nil, "ignored"))
	assert.Equal(t, base, ErrorWrapOrNil(base, ""))

	wrapped := ErrorWrapOrNil(base, "failed to create request")
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "failed to create request: boom", wrapped.Error())
}

func TestNanoID(t *testing.T) {
	id := NanoID()

	assert.Len(t, id, NanoidSize)
	assert.Empty(t, strings.Trim(id, nanoidAlphabet))
	assert.NotEqual(t, id, NanoID())
	assert.Len(t, NanoIDSize(8), 8)
}
