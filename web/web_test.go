package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_ParseAllViews(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"categoria_index.html", "categoria_form.html",
		"estudio_index.html", "estudio_form.html",
		"videojuego_index.html", "videojuego_form.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_EscapesFlash(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "categoria_index.html", map[string]interface{}{
		"title": "Categorias",
		"error": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.Contains(t, buf.String(), "No hay registros")
}

func TestFuncs(t *testing.T) {
	date := funcs["date"].(func(time.Time) string)
	assert.Equal(t, "1995-03-11", date(time.Date(1995, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", date(time.Time{}))

	price := funcs["price"].(func(float64) string)
	assert.Equal(t, "29.99", price(29.99))
}
