package cart

import (
	"Savoria-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartRepository interface {
		GetCartByUserID(ctx context.Context, userID uuid.UUID) (*entities.Cart, error)
		GetCartBySessionKey(ctx context.Context, sessionKey string) (*entities.Cart, error)
		CreateCart(ctx context.Context, cart *entities.Cart) error
		DeleteCart(ctx context.Context, id uuid.UUID) error

		GetCartItems(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error)
		GetCartItem(ctx context.Context, cartID, foodID uuid.UUID) (*entities.CartItem, error)
		GetCartItemByID(ctx context.Context, itemID, cartID uuid.UUID) (*entities.CartItem, error)
		CreateCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateCartItem(ctx context.Context, item *entities.CartItem) error
		DeleteCartItem(ctx context.Context, id uuid.UUID) error
		DeleteCartItems(ctx context.Context, cartID uuid.UUID) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartByUserID(ctx context.Context, userID uuid.UUID) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetCartBySessionKey(ctx context.Context, sessionKey string) (*entities.Cart, error) {
	var cart entities.Cart
	if err := r.db.WithContext(ctx).Where("session_key = ?", sessionKey).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *entities.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("cart_id = ?", id).Delete(&entities.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Cart{}).Error
}

func (r *cartRepository) GetCartItems(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetCartItem(ctx context.Context, cartID, foodID uuid.UUID) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND food_id = ?", cartID, foodID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, itemID, cartID uuid.UUID) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) CreateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) DeleteCartItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&entities.CartItem{}).Error
}
