package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRecipeViaAPI(t *testing.T, app *testApp, token, title, category string) string {
	t.Helper()
	body, contentType := recipeForm(t, validRecipeFields(title, category), "")
	w := app.do(t, http.MethodPost, "/api/recipes", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	id, ok := resp["recipeId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func TestCreateRecipe(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "create@example.com")

	body, contentType := recipeForm(t, validRecipeFields("Aloo Gobi", "veg"), "")
	w := app.do(t, http.MethodPost, "/api/recipes", token, body, contentType)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Recipe created", resp["message"])
	assert.NotEmpty(t, resp["recipeId"])
}

func TestCreateRecipeMissingFields(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "missingfields@example.com")

	fields := validRecipeFields("Aloo Gobi", "veg")
	delete(fields, "title")
	body, contentType := recipeForm(t, fields, "")
	w := app.do(t, http.MethodPost, "/api/recipes", token, body, contentType)

	assertFailureEnvelope(t, w, http.StatusBadRequest, "All fields are required")
}

func TestCreateRecipeInvalidCategory(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "badcategory@example.com")

	body, contentType := recipeForm(t, validRecipeFields("Aloo Gobi", "seafood"), "")
	w := app.do(t, http.MethodPost, "/api/recipes", token, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipeWithImage(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "withimage@example.com")

	body, contentType := recipeForm(t, validRecipeFields("Aloo Gobi", "veg"), "gobi.jpg")
	w := app.do(t, http.MethodPost, "/api/recipes", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code)

	id := decodeBody(t, w)["recipeId"].(string)
	getResp := app.do(t, http.MethodGet, "/api/recipes/"+id, token, nil, "")
	require.Equal(t, http.StatusOK, getResp.Code)

	recipe := decodeBody(t, getResp)["recipe"].(map[string]interface{})
	assert.Contains(t, recipe["image_url"], "gobi.jpg")
}

func TestListRecipes(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "list@example.com")

	createRecipeViaAPI(t, app, token, "Aloo Gobi", "veg")
	createRecipeViaAPI(t, app, token, "Paneer Butter Masala", "veg")
	createRecipeViaAPI(t, app, token, "Chicken Burger", "non-veg")

	w := app.do(t, http.MethodGet, "/api/recipes?category=veg&page=1&limit=1", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].(map[string]interface{})
	assert.Equal(t, float64(2), recipes["total"])
	assert.Equal(t, float64(1), recipes["page"])
	assert.Equal(t, float64(1), recipes["pageSize"])
	assert.Len(t, recipes["rows"].([]interface{}), 1)
}

func TestListRecipesEmptyResult(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "empty@example.com")

	w := app.do(t, http.MethodGet, "/api/recipes?title=Biryani", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	recipes := decodeBody(t, w)["recipes"].(map[string]interface{})
	assert.Equal(t, float64(0), recipes["total"])
	assert.Empty(t, recipes["rows"])
}

func TestGetRecipeWithReactionFlow(t *testing.T) {
	app := setupTestApp(t)
	owner := app.registerUser(t, "owner@example.com")
	viewer := app.registerUser(t, "viewer@example.com")

	id := createRecipeViaAPI(t, app, owner, "Aloo Gobi", "veg")

	// Fresh recipe carries no reaction for the viewer.
	w := app.do(t, http.MethodGet, "/api/recipes/"+id, viewer, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	recipe := decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Nil(t, recipe["reaction"])

	w = app.doJSON(t, http.MethodPatch, fmt.Sprintf("/api/recipes/%s/reactions", id), viewer,
		map[string]string{"reaction": "like"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Reaction saved successfully", decodeBody(t, w)["message"])

	w = app.do(t, http.MethodGet, "/api/recipes/"+id, viewer, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	recipe = decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Equal(t, "like", recipe["reaction"])

	// The owner's view is untouched by the viewer's reaction.
	w = app.do(t, http.MethodGet, "/api/recipes/"+id, owner, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	recipe = decodeBody(t, w)["recipe"].(map[string]interface{})
	assert.Nil(t, recipe["reaction"])
}

func TestReactionValidation(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "reactvalidate@example.com")
	id := createRecipeViaAPI(t, app, token, "Aloo Gobi", "veg")

	w := app.doJSON(t, http.MethodPatch, fmt.Sprintf("/api/recipes/%s/reactions", id), token,
		map[string]string{})
	assertFailureEnvelope(t, w, http.StatusBadRequest, "Reaction is required")

	w = app.doJSON(t, http.MethodPatch, fmt.Sprintf("/api/recipes/%s/reactions", id), token,
		map[string]string{"reaction": "love"})
	assertFailureEnvelope(t, w, http.StatusBadRequest, "Invalid reaction type")
}

func TestGetRecipeNotFound(t *testing.T) {
	app := setupTestApp(t)
	token := app.registerUser(t, "getmissing@example.com")

	w := app.do(t, http.MethodGet, "/api/recipes/b8f4f3e0-0000-0000-0000-000000000000", token, nil, "")
	assertFailureEnvelope(t, w, http.StatusNotFound, "Recipe not found")

	// Malformed ids get the same answer as missing ones.
	w = app.do(t, http.MethodGet, "/api/recipes/not-a-uuid", token, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipeByNonOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := app.registerUser(t, "realowner@example.com")
	intruder := app.registerUser(t, "intruder@example.com")

	id := createRecipeViaAPI(t, app, owner, "Aloo Gobi", "veg")

	body, contentType := recipeForm(t, validRecipeFields("Hijacked", "veg"), "")
	w := app.do(t, http.MethodPut, "/api/recipes/"+id, intruder, body, contentType)

	assertFailureEnvelope(t, w, http.StatusNotFound, "Recipe not found or unauthorized")
}

func TestUpdateRecipeByOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := app.registerUser(t, "updater@example.com")

	id := createRecipeViaAPI(t, app, owner, "Aloo Gobi", "veg")

	body, contentType := recipeForm(t, validRecipeFields("Aloo Gobi Masala", "veg"), "")
	w := app.do(t, http.MethodPut, "/api/recipes/"+id, owner, body, contentType)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe updated", decodeBody(t, w)["message"])

	getResp := app.do(t, http.MethodGet, "/api/recipes/"+id, owner, nil, "")
	recipe := decodeBody(t, getResp)["recipe"].(map[string]interface{})
	assert.Equal(t, "Aloo Gobi Masala", recipe["title"])
}

func TestDeleteRecipe(t *testing.T) {
	app := setupTestApp(t)
	owner := app.registerUser(t, "deleter@example.com")

	id := createRecipeViaAPI(t, app, owner, "Aloo Gobi", "veg")

	w := app.do(t, http.MethodDelete, "/api/recipes/"+id, owner, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe deleted", decodeBody(t, w)["message"])

	getResp := app.do(t, http.MethodGet, "/api/recipes/"+id, owner, nil, "")
	assert.Equal(t, http.StatusNotFound, getResp.Code)
}

func TestDeleteRecipeByNonOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := app.registerUser(t, "delowner@example.com")
	intruder := app.registerUser(t, "delintruder@example.com")

	id := createRecipeViaAPI(t, app, owner, "Aloo Gobi", "veg")

	w := app.do(t, http.MethodDelete, "/api/recipes/"+id, intruder, nil, "")
	assertFailureEnvelope(t, w, http.StatusNotFound, "Recipe not found or unauthorized")
}

func TestRecipesRequireAuthentication(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/api/recipes", "", nil, "")
	assertFailureEnvelope(t, w, http.StatusUnauthorized, "Unauthorized")

	w = app.do(t, http.MethodGet, "/api/recipes", "bogus-token", nil, "")
	assertFailureEnvelope(t, w, http.StatusUnauthorized, "Unauthorized")
}
