package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Himanshur25/recipe-master/internal/apperr"
	"github.com/Himanshur25/recipe-master/internal/model"
)

const defaultPageSize = 8

// listFilters is the allow-list of queryable fields. Keys outside this
// list are silently ignored so arbitrary field names never reach the
// query layer. Title matches by substring, the rest exactly; the reaction
// predicate applies to the caller's own reaction via the join condition.
var listFilters = []struct {
	key      string
	column   string
	contains bool
}{
	{key: "category", column: "recipes.category"},
	{key: "title", column: "recipes.title", contains: true},
	{key: "reaction", column: "reactions.reaction"},
}

// RecipeInput carries the caller-supplied recipe fields.
type RecipeInput struct {
	Title       string
	Ingredient  string
	Instruction string
	Category    string
}

// RecipeRow is a recipe decorated with the caller's own reaction. Reaction
// is nil when the caller never reacted.
type RecipeRow struct {
	ID                uuid.UUID  `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Title             string     `json:"title"`
	Ingredient        string     `json:"ingredient"`
	Instruction       string     `json:"instruction"`
	Category          string     `json:"category"`
	ImageURL          string     `json:"image_url"`
	UserID            uuid.UUID  `json:"user_id"`
	Reaction          *string    `json:"reaction"`
	ReactionCreatedAt *time.Time `json:"reaction_created_at,omitempty"`
	ReactionUpdatedAt *time.Time `json:"reaction_updated_at,omitempty"`
}

// ListResult is one page of recipes plus the total match count, from which
// clients derive hasNextPage.
type ListResult struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Rows     []RecipeRow `json:"rows"`
}

// RecipeService is the query and reaction engine. The store handle and the
// image store are injected so tests can substitute doubles.
type RecipeService struct {
	db     *gorm.DB
	images ImageStore
}

func NewRecipeService(db *gorm.DB, images ImageStore) *RecipeService {
	return &RecipeService{
		db:     db,
		images: images,
	}
}

func errRecipeNotOwned() error {
	// Deliberately the same failure for "missing" and "not owned" so
	// non-owners cannot probe for existence.
	return apperr.NotFound("Recipe not found or unauthorized")
}

// listQuery builds the shared FROM + JOIN + WHERE part used by both the
// count query and the data query. The reactions join is constrained to the
// caller so a row carries at most the caller's own reaction.
func (s *RecipeService) listQuery(ctx context.Context, callerID uuid.UUID, filters map[string]string) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Joins("LEFT JOIN reactions ON reactions.recipe_id = recipes.id AND reactions.user_id = ?", callerID)

	for _, f := range listFilters {
		value, ok := filters[f.key]
		if !ok || value == "" {
			continue
		}
		if f.contains {
			q = q.Where(f.column+" LIKE ?", "%"+value+"%")
		} else {
			q = q.Where(f.column+" = ?", value)
		}
	}
	return q
}

const reactionColumns = "recipes.*, reactions.reaction AS reaction, " +
	"reactions.created_at AS reaction_created_at, reactions.updated_at AS reaction_updated_at"

// List returns one page of recipes matching the allow-listed filters,
// decorated with the caller's reactions, plus the total match count. The
// count and data queries share one predicate set; a page past the end
// yields an empty row list with the total intact.
func (s *RecipeService) List(ctx context.Context, callerID uuid.UUID, filters map[string]string, page, pageSize int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize

	var total int64
	if err := s.listQuery(ctx, callerID, filters).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, err
	}

	rows := make([]RecipeRow, 0, pageSize)
	err := s.listQuery(ctx, callerID, filters).
		Select(reactionColumns).
		Order("recipes.created_at DESC, recipes.id ASC").
		Limit(pageSize).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Rows:     rows,
	}, nil
}

// Get returns a single recipe decorated with the caller's own reaction.
// Any authenticated user may read any recipe.
func (s *RecipeService) Get(ctx context.Context, recipeID, callerID uuid.UUID) (*RecipeRow, error) {
	var rows []RecipeRow
	err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Joins("LEFT JOIN reactions ON reactions.recipe_id = recipes.id AND reactions.user_id = ?", callerID).
		Select(reactionColumns).
		Where("recipes.id = ?", recipeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("Recipe not found")
	}
	return &rows[0], nil
}

// Create stores a new recipe owned by the caller.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, in RecipeInput, imageURL string) (*model.Recipe, error) {
	recipe := model.Recipe{
		Title:       in.Title,
		Ingredient:  in.Ingredient,
		Instruction: in.Instruction,
		Category:    in.Category,
		ImageURL:    imageURL,
		UserID:      ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update mutates a recipe only when it exists and the caller owns it; both
// predicates sit in one UPDATE so the check and the write are atomic. A
// replaced image is released from storage afterwards, best-effort.
func (s *RecipeService) Update(ctx context.Context, recipeID, callerID uuid.UUID, in RecipeInput, imageURL string) error {
	// Previous image reference, needed for release after the write.
	var current model.Recipe
	err := s.db.WithContext(ctx).Select("image_url").
		Where("id = ? AND user_id = ?", recipeID, callerID).
		First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errRecipeNotOwned()
		}
		return err
	}

	values := map[string]interface{}{
		"title":       in.Title,
		"ingredient":  in.Ingredient,
		"instruction": in.Instruction,
		"category":    in.Category,
	}
	if imageURL != "" {
		values["image_url"] = imageURL
	}

	res := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, callerID).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errRecipeNotOwned()
	}

	if imageURL != "" && current.ImageURL != "" && current.ImageURL != imageURL {
		s.releaseImage(ctx, current.ImageURL)
	}
	return nil
}

// Delete removes a recipe under the same ownership contract as Update.
// The recipe's reactions go with it in the same transaction; its image is
// released best-effort afterwards.
func (s *RecipeService) Delete(ctx context.Context, recipeID, callerID uuid.UUID) error {
	var current model.Recipe
	err := s.db.WithContext(ctx).Select("image_url").
		Where("id = ? AND user_id = ?", recipeID, callerID).
		First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errRecipeNotOwned()
		}
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", recipeID, callerID).Delete(&model.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errRecipeNotOwned()
		}
		return tx.Where("recipe_id = ?", recipeID).Delete(&model.Reaction{}).Error
	})
	if err != nil {
		return err
	}

	if current.ImageURL != "" {
		s.releaseImage(ctx, current.ImageURL)
	}
	return nil
}

// React upserts the caller's reaction to a recipe. The store's ON CONFLICT
// primitive keyed on (recipe_id, user_id) makes the write atomic under
// concurrent calls; repeated calls overwrite the value and refresh the
// timestamp, never erroring on "already reacted".
func (s *RecipeService) React(ctx context.Context, recipeID, callerID uuid.UUID, value string) error {
	if !model.ValidReaction(value) {
		return apperr.BadRequest("Invalid reaction type")
	}

	var recipe model.Recipe
	err := s.db.WithContext(ctx).Select("id").First(&recipe, "id = ?", recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Recipe not found")
		}
		return err
	}

	reaction := model.Reaction{
		RecipeID: recipeID,
		UserID:   callerID,
		Reaction: value,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reaction", "updated_at"}),
	}).Create(&reaction).Error
}

// releaseImage deletes a replaced or orphaned image object. Failures are
// logged and never surfaced to the request.
func (s *RecipeService) releaseImage(ctx context.Context, imageURL string) {
	if s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, imageURL); err != nil {
		log.Printf("[RecipeService] failed to release image %s: %v", imageURL, err)
	}
}
