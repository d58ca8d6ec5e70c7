package handlers

import (
	"strconv"

	"meal-planner/domain"
	"meal-planner/internal/api/presenters"
	"meal-planner/pkg/recommendation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GenerateDailyPlan(c *fiber.Ctx) error
		RecommendMeal(c *fiber.Ctx) error
		GetAlternatives(c *fiber.Ctx) error
		AcceptPlan(c *fiber.Ctx) error
		CheckBalance(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GenerateDailyPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DailyPlanRequest)

	// an empty body asks for today's plan
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateDailyPlan, err)
	}

	res, err := h.recommendationService.GenerateDailyPlan(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGenerateDailyPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateDailyPlan)
}

func (h *recommendationHandler) RecommendMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MealRecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecommendMeal, err)
	}

	res, err := h.recommendationService.RecommendMeal(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedRecommendMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecommendMeal)
}

func (h *recommendationHandler) GetAlternatives(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	count, err := strconv.Atoi(c.Query("count", strconv.Itoa(recommendation.DefaultAlternativeCount)))
	if err != nil || count < 1 {
		count = recommendation.DefaultAlternativeCount
	}

	res, err := h.recommendationService.GetAlternatives(c.Context(), userID, c.Params("food_id"), count)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetAlternatives, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAlternatives)
}

func (h *recommendationHandler) AcceptPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AcceptPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptPlan, err)
	}

	res, err := h.recommendationService.AcceptPlan(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedAcceptPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAcceptPlan)
}

func (h *recommendationHandler) CheckBalance(c *fiber.Ctx) error {
	req := new(domain.BalanceCheckRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckBalance, err)
	}

	res, err := h.recommendationService.CheckBalance(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCheckBalance, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckBalance)
}
