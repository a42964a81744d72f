package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Himanshur25/recipe-master/internal/apperr"
	"github.com/Himanshur25/recipe-master/internal/middleware"
	"github.com/Himanshur25/recipe-master/internal/model"
	"github.com/Himanshur25/recipe-master/internal/service"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	imageStore    service.ImageStore
}

func NewRecipeHandler(recipeService *service.RecipeService, imageStore service.ImageStore) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		imageStore:    imageStore,
	}
}

// RecipeForm is the multipart body of create and update requests; the
// optional image file rides alongside it.
type RecipeForm struct {
	Title       string `form:"title" binding:"required"`
	Ingredient  string `form:"ingredient" binding:"required"`
	Instruction string `form:"instruction" binding:"required"`
	Category    string `form:"category" binding:"required,oneof=veg non-veg"`
}

type ReactionRequest struct {
	Reaction string `json:"reaction"`
}

func (h *RecipeHandler) List(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}

	// The engine applies its filter allow-list; unknown keys are dropped
	// there, not rejected here.
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "limit", 0)

	result, err := h.recipeService.List(c.Request.Context(), callerID, filters, page, pageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": result})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, apperr.NotFound("Recipe not found"))
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), recipeID, callerID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) Create(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}

	var form RecipeForm
	if err := c.ShouldBind(&form); err != nil {
		Fail(c, apperr.BadRequest("All fields are required"))
		return
	}

	imageURL, err := h.uploadedImage(c)
	if err != nil {
		Fail(c, err)
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), callerID, service.RecipeInput{
		Title:       form.Title,
		Ingredient:  form.Ingredient,
		Instruction: form.Instruction,
		Category:    form.Category,
	}, imageURL)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Recipe created",
		"recipeId": recipe.ID,
	})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, errNotOwnedResponse())
		return
	}

	var form RecipeForm
	if err := c.ShouldBind(&form); err != nil {
		Fail(c, apperr.BadRequest("All fields are required"))
		return
	}

	imageURL, err := h.uploadedImage(c)
	if err != nil {
		Fail(c, err)
		return
	}

	err = h.recipeService.Update(c.Request.Context(), recipeID, callerID, service.RecipeInput{
		Title:       form.Title,
		Ingredient:  form.Ingredient,
		Instruction: form.Instruction,
		Category:    form.Category,
	}, imageURL)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated"})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, errNotOwnedResponse())
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), recipeID, callerID); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func (h *RecipeHandler) React(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		Fail(c, apperr.Unauthorized())
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, apperr.NotFound("Recipe not found"))
		return
	}

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reaction == "" {
		Fail(c, apperr.BadRequest("Reaction is required"))
		return
	}
	if !model.ValidReaction(req.Reaction) {
		Fail(c, apperr.BadRequest("Invalid reaction type"))
		return
	}

	if err := h.recipeService.React(c.Request.Context(), recipeID, callerID, req.Reaction); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reaction saved successfully"})
}

// uploadedImage stores the optional multipart image and returns its public
// URL, or "" when no file was sent.
func (h *RecipeHandler) uploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", apperr.BadRequest("Invalid image upload")
	}

	url, err := h.imageStore.Upload(c.Request.Context(), file)
	if err != nil {
		return "", err
	}
	return url, nil
}

func errNotOwnedResponse() error {
	// A malformed id gets the same answer as a missing or non-owned
	// recipe so the contract stays uniform.
	return apperr.NotFound("Recipe not found or unauthorized")
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
