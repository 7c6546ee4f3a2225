package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetFoods       = "foods retrieved successfully"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageSuccessCreateFood     = "food created successfully"
	MessageSuccessUpdateFood     = "food updated successfully"
	MessageSuccessDeleteFood     = "food deleted successfully"
	MessageSuccessUploadFoodImg  = "food image uploaded successfully"

	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedGetFoods       = "failed to retrieve foods"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedCreateFood     = "failed to create food"
	MessageFailedUpdateFood     = "failed to update food"
	MessageFailedDeleteFood     = "failed to delete food"
	MessageFailedUploadFoodImg  = "failed to upload food image"

	ErrCategoryNotFound = errors.New("category not found")
	ErrFoodNotFound     = errors.New("food item not found")
	ErrInvalidPrice     = errors.New("price must be positive")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		FoodsCount  int64  `json:"foods_count"`
	}

	CreateFoodRequest struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description" validate:"omitempty"`
		Price       float64 `json:"price" validate:"required,gt=0"`
		CategoryID  string  `json:"category_id" validate:"required,uuid"`
		IsAvailable *bool   `json:"is_available" validate:"omitempty"`
	}

	UpdateFoodRequest struct {
		Name        string   `json:"name" validate:"omitempty"`
		Description *string  `json:"description" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gt=0"`
		CategoryID  string   `json:"category_id" validate:"omitempty,uuid"`
		IsAvailable *bool    `json:"is_available" validate:"omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodResponse struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		ImageURL     string  `json:"image_url,omitempty"`
		CategoryID   string  `json:"category_id"`
		CategoryName string  `json:"category_name"`
		IsAvailable  bool    `json:"is_available"`
	}
)
