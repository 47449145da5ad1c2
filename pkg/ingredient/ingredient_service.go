package ingredient

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/pkg/mealplan"
	"fitcoach-backend/pkg/usda"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// lookupInterval spaces calls to the external nutrition database.
const lookupInterval = 100 * time.Millisecond

type (
	// NutritionLookup is implemented by usda.Client.
	NutritionLookup interface {
		Search(ctx context.Context, query string) (domain.NutritionLookupResult, error)
	}

	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredients(ctx context.Context, search string, page, limit int) ([]domain.IngredientResponse, int64, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		UploadIngredientImage(ctx context.Context, id string, req domain.UploadImageRequest) (domain.IngredientResponse, error)
		Lookup(ctx context.Context, query string) (domain.NutritionLookupResult, error)
		BulkLookup(ctx context.Context, req domain.BulkLookupRequest) (domain.BulkLookupResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		s3                   storage.AwsS3
		lookup               NutritionLookup
		limiter              *rate.Limiter
	}
)

// NewIngredientService accepts a nil lookup when no API key is configured.
func NewIngredientService(ingredientRepository IngredientRepository, s3 storage.AwsS3, lookup NutritionLookup) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		s3:                   s3,
		lookup:               lookup,
		limiter:              rate.NewLimiter(rate.Every(lookupInterval), 1),
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	normalized := mealplan.NormalizeName(req.Name)
	if normalized == "" {
		return domain.IngredientResponse{}, domain.ErrIngredientNameEmpty
	}

	if err := s.ensureNameFree(ctx, normalized, ""); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		NormalizedName: normalized,
		Calories:       req.Calories,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fat:            req.Fat,
		Fiber:          req.Fiber,
		UnitWeightG:    req.UnitWeightG,
		Category:       req.Category,
		Source:         domain.IngredientSourceManual,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if req.Name != nil {
		normalized := mealplan.NormalizeName(*req.Name)
		if normalized == "" {
			return domain.IngredientResponse{}, domain.ErrIngredientNameEmpty
		}
		if normalized != ingredient.NormalizedName {
			if err := s.ensureNameFree(ctx, normalized, ingredient.ID.String()); err != nil {
				return domain.IngredientResponse{}, err
			}
		}
		ingredient.Name = strings.TrimSpace(*req.Name)
		ingredient.NormalizedName = normalized
	}
	if req.Calories != nil {
		ingredient.Calories = *req.Calories
	}
	if req.Protein != nil {
		ingredient.Protein = *req.Protein
	}
	if req.Carbs != nil {
		ingredient.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		ingredient.Fat = *req.Fat
	}
	if req.Fiber != nil {
		ingredient.Fiber = *req.Fiber
	}
	if req.UnitWeightG != nil {
		ingredient.UnitWeightG = *req.UnitWeightG
	}
	if req.Category != nil {
		ingredient.Category = *req.Category
	}

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return err
	}

	used, err := s.ingredientRepository.CountRecipeUsage(ctx, id)
	if err != nil {
		return err
	}
	if used > 0 {
		return domain.ErrIngredientInUse
	}

	if ingredient.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(ingredient.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) GetIngredients(ctx context.Context, search string, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, strings.TrimSpace(search), page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, item := range ingredients {
		response = append(response, toIngredientResponse(item))
	}
	return response, count, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UploadIngredientImage(ctx context.Context, id string, req domain.UploadImageRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.getIngredient(ctx, id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(ingredient.ImageURL); existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile("", req.Image, "ingredients", storage.AllowImage...)
	}
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) Lookup(ctx context.Context, query string) (domain.NutritionLookupResult, error) {
	if s.lookup == nil {
		return domain.NutritionLookupResult{}, domain.ErrLookupUnavailable
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.NutritionLookupResult{}, err
	}
	return s.lookup.Search(ctx, query)
}

// BulkLookup resolves names one after another. Names already in the table are
// reported as existing without a remote call; a failed name does not stop the
// rest of the batch.
func (s *ingredientService) BulkLookup(ctx context.Context, req domain.BulkLookupRequest) (domain.BulkLookupResponse, error) {
	if s.lookup == nil {
		return domain.BulkLookupResponse{}, domain.ErrLookupUnavailable
	}

	res := domain.BulkLookupResponse{Items: []domain.BulkLookupItem{}}
	seen := make(map[string]bool)

	for _, raw := range req.Names {
		name := strings.TrimSpace(raw)
		normalized := mealplan.NormalizeName(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		item := domain.BulkLookupItem{Name: name}

		existing, err := s.ingredientRepository.GetIngredientByNormalizedName(ctx, normalized)
		if err == nil {
			resp := toIngredientResponse(existing)
			item.Status = domain.LookupStatusExists
			item.Ingredient = &resp
			res.Items = append(res.Items, item)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, err
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return res, err
		}

		result, err := s.lookup.Search(ctx, name)
		switch {
		case errors.Is(err, usda.ErrNoMatch):
			item.Status = domain.LookupStatusNotFound
		case err != nil:
			log.Warnf("nutrition lookup for %q failed: %v", name, err)
			item.Status = domain.LookupStatusError
			item.Error = err.Error()
		default:
			res.Found++
			item.Status = domain.LookupStatusFound
			item.Result = &result
			if req.Save {
				created, err := s.createFromLookup(ctx, name, normalized, result)
				if err != nil {
					return res, err
				}
				resp := toIngredientResponse(created)
				item.Ingredient = &resp
				res.Created++
			}
		}
		res.Items = append(res.Items, item)
	}

	return res, nil
}

func (s *ingredientService) createFromLookup(ctx context.Context, name, normalized string, result domain.NutritionLookupResult) (*entities.Ingredient, error) {
	ingredient := &entities.Ingredient{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: normalized,
		Calories:       result.Calories,
		Protein:        result.Protein,
		Carbs:          result.Carbs,
		Fat:            result.Fat,
		Fiber:          result.Fiber,
		Source:         domain.IngredientSourceUSDA,
		ExternalID:     result.ExternalID,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) getIngredient(ctx context.Context, id string) (*entities.Ingredient, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) ensureNameFree(ctx context.Context, normalized, selfID string) error {
	existing, err := s.ingredientRepository.GetIngredientByNormalizedName(ctx, normalized)
	if err == nil && existing.ID.String() != selfID {
		return domain.ErrIngredientNameExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func toIngredientResponse(item *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Calories:    item.Calories,
		Protein:     item.Protein,
		Carbs:       item.Carbs,
		Fat:         item.Fat,
		Fiber:       item.Fiber,
		UnitWeightG: item.UnitWeightG,
		Category:    item.Category,
		Source:      item.Source,
		ExternalID:  item.ExternalID,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
	}
}

// FactsIndex builds the name index used for plan totals and returns the known
// piece weights for the shopping list.
func FactsIndex(ctx context.Context, repo IngredientRepository) (*mealplan.Index, map[string]float64, error) {
	ingredients, err := repo.GetAllIngredients(ctx)
	if err != nil {
		return nil, nil, err
	}

	facts := make(map[string]mealplan.Facts, len(ingredients))
	weights := make(map[string]float64)
	for _, item := range ingredients {
		facts[item.NormalizedName] = mealplan.Facts{
			Calories:    item.Calories,
			Protein:     item.Protein,
			Carbs:       item.Carbs,
			Fat:         item.Fat,
			UnitWeightG: item.UnitWeightG,
		}
		if item.UnitWeightG > 0 {
			weights[item.NormalizedName] = item.UnitWeightG
		}
	}
	return mealplan.NewIndex(facts), weights, nil
}
