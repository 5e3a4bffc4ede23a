package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_List(t *testing.T) {
	c := New()

	templates := c.List()

	require.Len(t, templates, 10, "catalog should carry all templates")
	assert.Equal(t, 1, templates[0].ID, "catalog order should be stable")
	assert.Equal(t, "Modern Professional", templates[0].Name, "first template mismatch")

	// The returned slice is a copy; mutating it must not corrupt the catalog
	templates[0].Name = "mutated"
	assert.Equal(t, "Modern Professional", c.List()[0].Name, "catalog should be immutable")
}

func TestCatalog_FindByID(t *testing.T) {
	c := New()

	t.Run("known id", func(t *testing.T) {
		tpl, ok := c.FindByID(2)

		require.True(t, ok, "template 2 should exist")
		assert.Equal(t, "Creative Designer", tpl.Name, "name mismatch")
		assert.Equal(t, "resume-creative", tpl.ClassName, "class mismatch")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := c.FindByID(99)
		assert.False(t, ok, "unknown template should not resolve")
	})
}

func TestCatalog_Exists(t *testing.T) {
	c := New()

	for id := 1; id <= 10; id++ {
		assert.True(t, c.Exists(id), "template %d should exist", id)
	}
	assert.False(t, c.Exists(0), "id 0 should not exist")
	assert.False(t, c.Exists(11), "id 11 should not exist")
}

func TestCatalog_StyleClass(t *testing.T) {
	c := New()

	class, ok := c.StyleClass(1)
	require.True(t, ok, "template 1 should exist")
	assert.Equal(t, "resume-modern", class, "style class mismatch")

	_, ok = c.StyleClass(42)
	assert.False(t, ok, "unknown template has no style class")
}
