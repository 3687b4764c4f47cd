package controller

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudioController_Lifecycle(t *testing.T) {
	client, catalog := setupControllerTest(t)

	w := client.post("/estudios/new", url.Values{"nombre": {"Capcom"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, client.follow(w).Body.String(), "Estudio creado correctamente")

	w = client.post("/estudios/new", url.Values{"nombre": {"Capcom"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Ya existe estudio con nombre Capcom")

	studios, err := catalog.studios.ListStudios()
	require.NoError(t, err)
	require.Len(t, studios, 1)

	list := client.get("/estudios")
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Capcom")

	w = client.post("/estudios/"+studios[0].ID.String()+"/delete", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, client.follow(w).Body.String(), "Estudio eliminado correctamente")
}
