package menu

import (
	"Savoria-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error
		CountAvailableFoods(ctx context.Context, categoryID string) (int64, error)

		GetAvailableFoods(ctx context.Context, categoryID string) ([]*entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		CreateFood(ctx context.Context, food *entities.Food) error
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{}).Error
}

func (r *menuRepository) CountAvailableFoods(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("category_id = ? AND is_available = ?", categoryID, true).
		Count(&count).Error
	return count, err
}

func (r *menuRepository) GetAvailableFoods(ctx context.Context, categoryID string) ([]*entities.Food, error) {
	var foods []*entities.Food

	query := r.db.WithContext(ctx).Preload("Category").Where("is_available = ?", true)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if err := query.Order("name asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *menuRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *menuRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *menuRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *menuRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}
