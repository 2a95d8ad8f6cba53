package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-pos/internal/application/dto"
)

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(b, out))
	}
	return resp.StatusCode
}

// El catálogo del POS solo muestra productos activos: los desactivados no
// aparecen ni en el listado ni en la búsqueda.
func TestProductHandler_ListaExcluyeInactivos(t *testing.T) {
	app, _ := buildTestApp(t, true)

	var products []dto.ProductResponse
	status := getJSON(t, app, "/api/products/", &products)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].IsActive)
}

func TestProductHandler_BusquedaExcluyeInactivos(t *testing.T) {
	app, _ := buildTestApp(t, true)

	// "Café" coincide con el producto activo y con el desactivado.
	var products []dto.ProductResponse
	status := getJSON(t, app, "/api/products/search?q=Caf%C3%A9", &products)

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}
