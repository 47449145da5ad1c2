package exercise

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	ExerciseRepository interface {
		CreateExercise(ctx context.Context, exercise *entities.Exercise) error
		GetExerciseByID(ctx context.Context, id string) (*entities.Exercise, error)
		GetExercises(ctx context.Context, filter domain.ExerciseFilter) ([]*entities.Exercise, int64, error)
		UpdateExercise(ctx context.Context, exercise *entities.Exercise) error
		DeleteExercise(ctx context.Context, id string) error
	}

	exerciseRepository struct {
		db *gorm.DB
	}
)

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) CreateExercise(ctx context.Context, exercise *entities.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) GetExerciseByID(ctx context.Context, id string) (*entities.Exercise, error) {
	var exercise entities.Exercise
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) GetExercises(ctx context.Context, filter domain.ExerciseFilter) ([]*entities.Exercise, int64, error) {
	var exercises []*entities.Exercise
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Exercise{})
	if filter.MuscleGroup != "" {
		query = query.Where("LOWER(muscle_group) = LOWER(?)", filter.MuscleGroup)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("name asc").Find(&exercises).Error; err != nil {
		return nil, 0, err
	}
	return exercises, count, nil
}

func (r *exerciseRepository) UpdateExercise(ctx context.Context, exercise *entities.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

func (r *exerciseRepository) DeleteExercise(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Exercise{}).Error
}
