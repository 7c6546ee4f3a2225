package menu

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"Savoria-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error

		GetFoods(ctx context.Context, categoryID string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) error
		DeleteFood(ctx context.Context, id string) error
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (string, error)
	}

	menuService struct {
		menuRepository MenuRepository
		cache          cache.Client
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, cacheClient cache.Client, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		cache:          cacheClient,
		s3:             s3,
	}
}

func (s *menuService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	var cached []domain.CategoryResponse
	if s.cache.Get(ctx, cache.KeyCategories, &cached) {
		return cached, nil
	}

	categories, err := s.menuRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		count, err := s.menuRepository.CountAvailableFoods(ctx, category.ID.String())
		if err != nil {
			return nil, err
		}
		result = append(result, domain.CategoryResponse{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
			FoodsCount:  count,
		})
	}

	_ = s.cache.Set(ctx, cache.KeyCategories, result, cache.TTLCategories)
	return result, nil
}

func (s *menuService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.menuRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	s.invalidateMenuCaches(ctx, category.ID.String())

	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
	}, nil
}

func (s *menuService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.menuRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.menuRepository.UpdateCategory(ctx, category); err != nil {
		return err
	}

	s.invalidateMenuCaches(ctx, id)
	return nil
}

func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.menuRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if err := s.menuRepository.DeleteCategory(ctx, id); err != nil {
		return err
	}

	s.invalidateMenuCaches(ctx, id)
	return nil
}

func (s *menuService) GetFoods(ctx context.Context, categoryID string) ([]domain.FoodResponse, error) {
	cacheKey := cache.KeyFoods(categoryID)

	var cached []domain.FoodResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	foods, err := s.menuRepository.GetAvailableFoods(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		result = append(result, foodResponse(food))
	}

	_ = s.cache.Set(ctx, cacheKey, result, cache.TTLFoods)
	return result, nil
}

func (s *menuService) GetFoodByID(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.menuRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, err
	}
	return foodResponse(food), nil
}

func (s *menuService) CreateFood(ctx context.Context, req domain.CreateFoodRequest) (domain.FoodResponse, error) {
	if req.Price <= 0 {
		return domain.FoodResponse{}, domain.ErrInvalidPrice
	}

	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.FoodResponse{}, domain.ErrParseUUID
	}

	if _, err := s.menuRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrCategoryNotFound
		}
		return domain.FoodResponse{}, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	food := &entities.Food{
		ID:          uuid.New(),
		CategoryID:  categoryUUID,
		Name:        req.Name,
		Description: req.Description,
		Price:       domain.RoundCents(req.Price),
		IsAvailable: available,
	}

	if err := s.menuRepository.CreateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, err
	}

	s.invalidateMenuCaches(ctx, req.CategoryID)
	return foodResponse(food), nil
}

func (s *menuService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest) error {
	food, err := s.menuRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if req.Name != "" {
		food.Name = req.Name
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return domain.ErrInvalidPrice
		}
		food.Price = domain.RoundCents(*req.Price)
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		food.CategoryID = categoryUUID
	}
	if req.IsAvailable != nil {
		food.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepository.UpdateFood(ctx, food); err != nil {
		return err
	}

	s.invalidateMenuCaches(ctx, food.CategoryID.String())
	return nil
}

func (s *menuService) DeleteFood(ctx context.Context, id string) error {
	food, err := s.menuRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	if err := s.menuRepository.DeleteFood(ctx, id); err != nil {
		return err
	}

	s.invalidateMenuCaches(ctx, food.CategoryID.String())
	return nil
}

func (s *menuService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (string, error) {
	food, err := s.menuRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFoodNotFound
		}
		return "", err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("food-%s", food.ID.String()),
		req.Image,
		"foods",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateFood(ctx, food); err != nil {
		return "", err
	}

	s.invalidateMenuCaches(ctx, food.CategoryID.String())
	return food.ImageURL, nil
}

func (s *menuService) invalidateMenuCaches(ctx context.Context, categoryID string) {
	_ = s.cache.Delete(ctx,
		cache.KeyCategories,
		cache.KeyFoods(""),
		cache.KeyFoods(categoryID),
	)
}

func foodResponse(food *entities.Food) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:          food.ID.String(),
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		ImageURL:    food.ImageURL,
		CategoryID:  food.CategoryID.String(),
		IsAvailable: food.IsAvailable,
	}
	if food.Category != nil {
		res.CategoryName = food.Category.Name
	}
	return res
}
