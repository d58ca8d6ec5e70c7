package food

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSearchResults = 50

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, category string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		SearchFoodItems(ctx context.Context, keyword string) ([]domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.FoodItemResponse, error)
		GetCatalog(ctx context.Context) ([]domain.Food, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	if req.Calories < 0 || req.Protein < 0 || req.Carbohydrates < 0 || req.Fat < 0 || req.Fiber < 0 {
		return domain.FoodItemResponse{}, domain.ErrNegativeNutrition
	}

	foodItem := &entities.FoodItem{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		Fiber:         req.Fiber,
		Category:      strings.ToLower(req.Category),
		Tags:          domain.NormalizeTags(req.Tags),
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.getFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		foodItem.Name = strings.TrimSpace(req.Name)
	}
	if req.Category != "" {
		foodItem.Category = strings.ToLower(req.Category)
	}
	if req.Tags != nil {
		foodItem.Tags = domain.NormalizeTags(req.Tags)
	}

	for _, field := range []struct {
		val *float64
		dst *float64
	}{
		{req.Calories, &foodItem.Calories},
		{req.Protein, &foodItem.Protein},
		{req.Carbohydrates, &foodItem.Carbohydrates},
		{req.Fat, &foodItem.Fat},
		{req.Fiber, &foodItem.Fiber},
	} {
		if field.val == nil {
			continue
		}
		if *field.val < 0 {
			return domain.FoodItemResponse{}, domain.ErrNegativeNutrition
		}
		*field.dst = *field.val
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string) error {
	foodItem, err := s.getFoodItem(ctx, id)
	if err != nil {
		return err
	}

	if foodItem.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
				log.Warnf("failed to delete image %s: %v", objectKey, err)
			}
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, category string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, strings.ToLower(category), page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, ToResponse(item))
	}
	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getFoodItem(ctx, id)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToResponse(foodItem), nil
}

func (s *foodService) SearchFoodItems(ctx context.Context, keyword string) ([]domain.FoodItemResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrEmptySearchKeyword
	}

	foodItems, err := s.foodRepository.SearchFoodItems(ctx, keyword, maxSearchResults)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, ToResponse(item))
	}
	return response, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.getFoodItem(ctx, req.FoodItemID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return domain.FoodItemResponse{}, domain.ErrInvalidImageFormat
	}

	link, err := s.s3.UploadFile(ctx, fmt.Sprintf("%s%s", uuid.NewString(), ext), req.Image, "foods")
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if foodItem.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(ctx, objectKey)
		}
	}

	foodItem.ImageURL = link
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return ToResponse(foodItem), nil
}

// GetCatalog snapshots the whole catalog for one planning run.
func (s *foodService) GetCatalog(ctx context.Context) ([]domain.Food, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]domain.Food, 0, len(foodItems))
	for _, item := range foodItems {
		catalog = append(catalog, ToDomain(item))
	}
	return catalog, nil
}

func (s *foodService) getFoodItem(ctx context.Context, id string) (*entities.FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}
	return foodItem, nil
}
