package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "item removed from cart"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove item from cart"

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartOwnerMissing = errors.New("cart owner missing")
)

type (
	// CartOwner is the tagged owner of a cart: an authenticated user or an
	// anonymous guest session, exactly one set.
	CartOwner struct {
		UserID     string
		SessionKey string
	}

	AddToCartRequest struct {
		FoodID   string `json:"food_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}

	CartItemResponse struct {
		ID         string  `json:"id"`
		FoodID     string  `json:"food_id"`
		FoodName   string  `json:"food_name"`
		FoodPrice  float64 `json:"food_price"`
		FoodImage  string  `json:"food_image,omitempty"`
		Quantity   int     `json:"quantity"`
		TotalPrice float64 `json:"total_price"`
	}

	CartResponse struct {
		Items      []CartItemResponse `json:"items"`
		TotalPrice float64            `json:"total_price"`
		TotalItems int                `json:"total_items"`
	}
)

func (o CartOwner) IsAuthenticated() bool {
	return o.UserID != ""
}
