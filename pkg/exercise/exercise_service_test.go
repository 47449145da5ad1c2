package exercise

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/internal/utils/testdb"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideos struct {
	lastQuery string
}

func (f *fakeVideos) SearchVideos(_ context.Context, query string, maxResults int) ([]domain.VideoResult, error) {
	f.lastQuery = query
	return []domain.VideoResult{{VideoID: "v1", Title: query}}, nil
}

func newService(t *testing.T, videos VideoSearcher) ExerciseService {
	return NewExerciseService(NewExerciseRepository(testdb.New(t)), storage.Disabled(), videos)
}

func TestExerciseCRUD(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	created, err := svc.CreateExercise(ctx, domain.CreateExerciseRequest{
		Name: "Goblet squat", MuscleGroup: " Legs ", Difficulty: "beginner", Equipment: "kettlebell",
	})
	require.NoError(t, err)
	assert.Equal(t, "legs", created.MuscleGroup)

	_, err = svc.CreateExercise(ctx, domain.CreateExerciseRequest{Name: "Pull-up", MuscleGroup: "back", Difficulty: "intermediate"})
	require.NoError(t, err)

	items, total, err := svc.GetExercises(ctx, domain.ExerciseFilter{MuscleGroup: "LEGS", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Goblet squat", items[0].Name)

	_, total, err = svc.GetExercises(ctx, domain.ExerciseFilter{Difficulty: "intermediate", Search: "pull", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	difficulty := "intermediate"
	updated, err := svc.UpdateExercise(ctx, created.ID, domain.UpdateExerciseRequest{Difficulty: &difficulty})
	require.NoError(t, err)
	assert.Equal(t, "intermediate", updated.Difficulty)
	assert.Equal(t, "kettlebell", updated.Equipment)

	require.NoError(t, svc.DeleteExercise(ctx, created.ID))
	_, err = svc.GetExerciseByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)

	_, err = svc.GetExerciseByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}

func TestSearchVideos(t *testing.T) {
	videos := &fakeVideos{}
	svc := newService(t, videos)

	res, err := svc.SearchVideos(context.Background(), " deadlift ")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "deadlift exercise form", videos.lastQuery)

	_, err = svc.SearchVideos(context.Background(), "romanian deadlift with dumbbells")
	require.NoError(t, err)
	assert.Equal(t, "romanian deadlift with dumbbells", videos.lastQuery)

	_, err = newService(t, nil).SearchVideos(context.Background(), "squat")
	assert.ErrorIs(t, err, domain.ErrVideoSearchUnavailable)
}
