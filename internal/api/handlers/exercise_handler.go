package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/exercise"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExerciseHandler interface {
		CreateExercise(c *fiber.Ctx) error
		UpdateExercise(c *fiber.Ctx) error
		DeleteExercise(c *fiber.Ctx) error
		GetExercises(c *fiber.Ctx) error
		GetExerciseDetail(c *fiber.Ctx) error
		UploadExerciseImage(c *fiber.Ctx) error
		SearchVideos(c *fiber.Ctx) error
	}

	exerciseHandler struct {
		exerciseService exercise.ExerciseService
		validator       *validator.Validate
	}
)

func NewExerciseHandler(exerciseService exercise.ExerciseService, validator *validator.Validate) ExerciseHandler {
	return &exerciseHandler{
		exerciseService: exerciseService,
		validator:       validator,
	}
}

func (h *exerciseHandler) CreateExercise(c *fiber.Ctx) error {
	req := new(domain.CreateExerciseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExercise, err)
	}

	res, err := h.exerciseService.CreateExercise(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateExercise, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateExercise)
}

func (h *exerciseHandler) UpdateExercise(c *fiber.Ctx) error {
	req := new(domain.UpdateExerciseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExercise, err)
	}

	res, err := h.exerciseService.UpdateExercise(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateExercise, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateExercise)
}

func (h *exerciseHandler) DeleteExercise(c *fiber.Ctx) error {
	if err := h.exerciseService.DeleteExercise(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteExercise, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExercise)
}

func (h *exerciseHandler) GetExercises(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)
	filter := domain.ExerciseFilter{
		MuscleGroup: c.Query("muscle_group"),
		Difficulty:  c.Query("difficulty"),
		Search:      c.Query("search"),
		Page:        page,
		Limit:       limit,
	}

	exercises, total, err := h.exerciseService.GetExercises(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetExercises, err)
	}

	return presenters.SuccessResponse(c, paginated(exercises, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetExercises)
}

func (h *exerciseHandler) GetExerciseDetail(c *fiber.Ctx) error {
	res, err := h.exerciseService.GetExerciseByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetExercises, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExercises)
}

func (h *exerciseHandler) UploadExerciseImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.exerciseService.UploadExerciseImage(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *exerciseHandler) SearchVideos(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVideoSearch, fiber.NewError(fiber.StatusBadRequest, "query is required"))
	}

	videos, err := h.exerciseService.SearchVideos(c.Context(), query)
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusBadRequest {
			status = fiber.StatusBadGateway
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedVideoSearch, err)
	}

	return presenters.SuccessResponse(c, videos, fiber.StatusOK, domain.MessageSuccessVideoSearch)
}
