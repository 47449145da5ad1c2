package ingredient

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/testdb"
	"fitcoach-backend/pkg/usda"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	results map[string]domain.NutritionLookupResult
	calls   []time.Time
}

func (f *fakeLookup) Search(_ context.Context, query string) (domain.NutritionLookupResult, error) {
	f.calls = append(f.calls, time.Now())
	if query == "broken" {
		return domain.NutritionLookupResult{}, errors.New("upstream timeout")
	}
	res, ok := f.results[query]
	if !ok {
		return domain.NutritionLookupResult{}, usda.ErrNoMatch
	}
	return res, nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadFile(_ string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/new.png"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeStorage) UploadBytes(fileName string, _ []byte, _ string, folder string) (string, error) {
	return folder + "/" + fileName, nil
}

func (f *fakeStorage) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	f.uploaded = append(f.uploaded, objectKey)
	return objectKey, nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	if len(link) > len("https://cdn.test/") {
		return link[len("https://cdn.test/"):]
	}
	return ""
}

func newTestService(t *testing.T, lookup NutritionLookup) (IngredientService, IngredientRepository, *fakeStorage) {
	repo := NewIngredientRepository(testdb.New(t))
	s3 := &fakeStorage{}
	return NewIngredientService(repo, s3, lookup), repo, s3
}

func TestCreateIngredientRejectsDuplicateNames(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Rolled Oats", Calories: 380, Protein: 13})
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientSourceManual, created.Source)

	_, err = svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "rolled  oat"})
	assert.ErrorIs(t, err, domain.ErrIngredientNameExists)
}

func TestUpdateIngredientPatchesOnlyGivenFields(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Egg", Calories: 140, Protein: 12, UnitWeightG: 50})
	require.NoError(t, err)

	calories := 143.0
	updated, err := svc.UpdateIngredient(ctx, created.ID, domain.UpdateIngredientRequest{Calories: &calories})
	require.NoError(t, err)
	assert.Equal(t, 143.0, updated.Calories)
	assert.Equal(t, 12.0, updated.Protein)
	assert.Equal(t, 50.0, updated.UnitWeightG)

	_, err = svc.UpdateIngredient(ctx, uuid.NewString(), domain.UpdateIngredientRequest{})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	_, err = svc.GetIngredientByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestDeleteIngredientInUse(t *testing.T) {
	db := testdb.New(t)
	repo := NewIngredientRepository(db)
	svc := NewIngredientService(repo, &fakeStorage{}, nil)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Rice"})
	require.NoError(t, err)

	recipe := &entities.Recipe{ID: uuid.New(), Title: "Rice bowl", Servings: 1}
	require.NoError(t, db.Create(recipe).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{
		ID: uuid.New(), RecipeID: recipe.ID, IngredientID: uuid.MustParse(created.ID), Quantity: 100, Unit: "g",
	}).Error)

	assert.ErrorIs(t, svc.DeleteIngredient(ctx, created.ID), domain.ErrIngredientInUse)

	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error)
	require.NoError(t, svc.DeleteIngredient(ctx, created.ID))

	_, err = svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Rice"})
	assert.NoError(t, err, "name is free again after delete")
}

func TestUploadIngredientImage(t *testing.T) {
	svc, _, s3 := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Salmon"})
	require.NoError(t, err)

	res, err := svc.UploadIngredientImage(ctx, created.ID, domain.UploadImageRequest{Image: &multipart.FileHeader{Filename: "a.png"}})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/ingredients/new.png", res.ImageURL)

	require.NoError(t, svc.DeleteIngredient(ctx, created.ID))
	assert.Equal(t, []string{"ingredients/new.png"}, s3.deleted)
}

func TestGetIngredientsSearch(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	for _, name := range []string{"Chicken breast", "Chickpeas", "Broccoli"} {
		_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: name})
		require.NoError(t, err)
	}

	items, total, err := svc.GetIngredients(ctx, "chick", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken breast", items[0].Name)

	items, total, err = svc.GetIngredients(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 1)
}

func TestLookupWithoutClient(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.Lookup(context.Background(), "egg")
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)

	_, err = svc.BulkLookup(context.Background(), domain.BulkLookupRequest{Names: []string{"egg"}})
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestBulkLookupSpacesCallsAndSaves(t *testing.T) {
	lookup := &fakeLookup{results: map[string]domain.NutritionLookupResult{
		"Banana":  {ExternalID: "1105314", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
		"Avocado": {ExternalID: "171705", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7},
	}}
	svc, repo, _ := newTestService(t, lookup)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Egg"})
	require.NoError(t, err)

	res, err := svc.BulkLookup(ctx, domain.BulkLookupRequest{
		Names: []string{"Banana", "eggs", "Avocado", "dragonfruit", "broken", "bananas"},
		Save:  true,
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 5, "bananas is a duplicate of Banana")
	statuses := map[string]string{}
	for _, item := range res.Items {
		statuses[item.Name] = item.Status
	}
	assert.Equal(t, map[string]string{
		"Banana":      domain.LookupStatusFound,
		"eggs":        domain.LookupStatusExists,
		"Avocado":     domain.LookupStatusFound,
		"dragonfruit": domain.LookupStatusNotFound,
		"broken":      domain.LookupStatusError,
	}, statuses)
	assert.Equal(t, 2, res.Found)
	assert.Equal(t, 2, res.Created)

	require.Len(t, lookup.calls, 4, "existing ingredients are not looked up")
	for i := 1; i < len(lookup.calls); i++ {
		gap := lookup.calls[i].Sub(lookup.calls[i-1])
		assert.GreaterOrEqual(t, gap, 90*time.Millisecond)
	}

	saved, err := repo.GetIngredientByNormalizedName(ctx, "avocado")
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientSourceUSDA, saved.Source)
	assert.Equal(t, "171705", saved.ExternalID)
	assert.Equal(t, 14.7, saved.Fat)
}

func TestFactsIndex(t *testing.T) {
	svc, repo, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Eggs", Calories: 140, UnitWeightG: 50})
	require.NoError(t, err)
	_, err = svc.CreateIngredient(ctx, domain.CreateIngredientRequest{Name: "Oats", Calories: 380})
	require.NoError(t, err)

	idx, weights, err := FactsIndex(ctx, repo)
	require.NoError(t, err)

	f, ok := idx.Find("boiled egg")
	require.True(t, ok)
	assert.Equal(t, 140.0, f.Calories)
	assert.Equal(t, map[string]float64{"egg": 50}, weights)
}
