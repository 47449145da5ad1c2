package exercise

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/storage"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// VideoSearcher is implemented by youtube.Client.
	VideoSearcher interface {
		SearchVideos(ctx context.Context, query string, maxResults int) ([]domain.VideoResult, error)
	}

	ExerciseService interface {
		CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (domain.ExerciseResponse, error)
		UpdateExercise(ctx context.Context, id string, req domain.UpdateExerciseRequest) (domain.ExerciseResponse, error)
		DeleteExercise(ctx context.Context, id string) error
		GetExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.ExerciseResponse, int64, error)
		GetExerciseByID(ctx context.Context, id string) (domain.ExerciseResponse, error)
		UploadExerciseImage(ctx context.Context, id string, req domain.UploadImageRequest) (domain.ExerciseResponse, error)
		SearchVideos(ctx context.Context, query string) ([]domain.VideoResult, error)
	}

	exerciseService struct {
		exerciseRepository ExerciseRepository
		s3                 storage.AwsS3
		videos             VideoSearcher
	}
)

func NewExerciseService(exerciseRepository ExerciseRepository, s3 storage.AwsS3, videos VideoSearcher) ExerciseService {
	return &exerciseService{
		exerciseRepository: exerciseRepository,
		s3:                 s3,
		videos:             videos,
	}
}

func (s *exerciseService) CreateExercise(ctx context.Context, req domain.CreateExerciseRequest) (domain.ExerciseResponse, error) {
	exercise := &entities.Exercise{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		MuscleGroup:  strings.ToLower(strings.TrimSpace(req.MuscleGroup)),
		Equipment:    req.Equipment,
		Difficulty:   req.Difficulty,
		Instructions: req.Instructions,
		VideoURL:     req.VideoURL,
	}
	if err := s.exerciseRepository.CreateExercise(ctx, exercise); err != nil {
		return domain.ExerciseResponse{}, err
	}
	return toExerciseResponse(exercise), nil
}

func (s *exerciseService) UpdateExercise(ctx context.Context, id string, req domain.UpdateExerciseRequest) (domain.ExerciseResponse, error) {
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return domain.ExerciseResponse{}, err
	}

	if req.Name != nil {
		exercise.Name = strings.TrimSpace(*req.Name)
	}
	if req.MuscleGroup != nil {
		exercise.MuscleGroup = strings.ToLower(strings.TrimSpace(*req.MuscleGroup))
	}
	if req.Equipment != nil {
		exercise.Equipment = *req.Equipment
	}
	if req.Difficulty != nil {
		exercise.Difficulty = *req.Difficulty
	}
	if req.Instructions != nil {
		exercise.Instructions = *req.Instructions
	}
	if req.VideoURL != nil {
		exercise.VideoURL = *req.VideoURL
	}

	if err := s.exerciseRepository.UpdateExercise(ctx, exercise); err != nil {
		return domain.ExerciseResponse{}, err
	}
	return toExerciseResponse(exercise), nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id string) error {
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return err
	}
	if objectKey := s.s3.GetObjectKeyFromLink(exercise.ImageURL); objectKey != "" {
		_ = s.s3.DeleteFile(objectKey)
	}
	return s.exerciseRepository.DeleteExercise(ctx, id)
}

func (s *exerciseService) GetExercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.ExerciseResponse, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	exercises, count, err := s.exerciseRepository.GetExercises(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		response = append(response, toExerciseResponse(e))
	}
	return response, count, nil
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id string) (domain.ExerciseResponse, error) {
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return domain.ExerciseResponse{}, err
	}
	return toExerciseResponse(exercise), nil
}

func (s *exerciseService) UploadExerciseImage(ctx context.Context, id string, req domain.UploadImageRequest) (domain.ExerciseResponse, error) {
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return domain.ExerciseResponse{}, err
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(exercise.ImageURL); existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile("", req.Image, "exercises", storage.AllowImage...)
	}
	if err != nil {
		return domain.ExerciseResponse{}, err
	}

	exercise.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.exerciseRepository.UpdateExercise(ctx, exercise); err != nil {
		return domain.ExerciseResponse{}, err
	}
	return toExerciseResponse(exercise), nil
}

// SearchVideos appends "exercise form" to short queries so results lean
// towards technique videos.
func (s *exerciseService) SearchVideos(ctx context.Context, query string) ([]domain.VideoResult, error) {
	if s.videos == nil {
		return nil, domain.ErrVideoSearchUnavailable
	}
	query = strings.TrimSpace(query)
	if len(strings.Fields(query)) <= 2 {
		query += " exercise form"
	}
	return s.videos.SearchVideos(ctx, query, 8)
}

func (s *exerciseService) getExercise(ctx context.Context, id string) (*entities.Exercise, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	exercise, err := s.exerciseRepository.GetExerciseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func toExerciseResponse(e *entities.Exercise) domain.ExerciseResponse {
	return domain.ExerciseResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		MuscleGroup:  e.MuscleGroup,
		Equipment:    e.Equipment,
		Difficulty:   e.Difficulty,
		Instructions: e.Instructions,
		VideoURL:     e.VideoURL,
		ImageURL:     e.ImageURL,
		CreatedAt:    e.CreatedAt,
	}
}
