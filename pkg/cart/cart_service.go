package cart

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"Savoria-Backend/pkg/menu"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		GetCartSummary(ctx context.Context, owner domain.CartOwner) (domain.CartResponse, error)
		AddToCart(ctx context.Context, owner domain.CartOwner, req domain.AddToCartRequest) (domain.CartItemResponse, error)
		UpdateCartItem(ctx context.Context, owner domain.CartOwner, itemID string, req domain.UpdateCartItemRequest) (*domain.CartItemResponse, error)
		RemoveCartItem(ctx context.Context, owner domain.CartOwner, itemID string) error
		MergeGuestCart(ctx context.Context, userID string, sessionKey string) error
	}

	cartService struct {
		cartRepository CartRepository
		menuRepository menu.MenuRepository
		cache          cache.Client
	}
)

func NewCartService(cartRepository CartRepository, menuRepository menu.MenuRepository, cacheClient cache.Client) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
		cache:          cacheClient,
	}
}

// getOrCreateCart locates the owner's cart, creating it lazily on first use.
func (s *cartService) getOrCreateCart(ctx context.Context, owner domain.CartOwner) (*entities.Cart, error) {
	if owner.IsAuthenticated() {
		userUUID, err := uuid.Parse(owner.UserID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}

		cart, err := s.cartRepository.GetCartByUserID(ctx, userUUID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		cart = &entities.Cart{ID: uuid.New(), UserID: &userUUID}
		if err := s.cartRepository.CreateCart(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}

	if owner.SessionKey == "" {
		return nil, domain.ErrCartOwnerMissing
	}

	cart, err := s.cartRepository.GetCartBySessionKey(ctx, owner.SessionKey)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sessionKey := owner.SessionKey
	cart = &entities.Cart{ID: uuid.New(), SessionKey: &sessionKey}
	if err := s.cartRepository.CreateCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) GetCartSummary(ctx context.Context, owner domain.CartOwner) (domain.CartResponse, error) {
	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return domain.CartResponse{}, err
	}

	cacheKey := cache.KeyCart(cart.ID.String())

	var cached domain.CartResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	items, err := s.cartRepository.GetCartItems(ctx, cart.ID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	summary := SummarizeItems(items)
	_ = s.cache.Set(ctx, cacheKey, summary, cache.TTLCart)
	return summary, nil
}

func (s *cartService) AddToCart(ctx context.Context, owner domain.CartOwner, req domain.AddToCartRequest) (domain.CartItemResponse, error) {
	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return domain.CartItemResponse{}, err
	}

	food, err := s.menuRepository.GetFoodByID(ctx, req.FoodID)
	if err != nil || !food.IsAvailable {
		return domain.CartItemResponse{}, domain.ErrFoodNotFound
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// Get-or-create then increment. Two concurrent first-adds of the same
	// food can both miss and both create a row; the backing store is the
	// only serialization here.
	item, err := s.cartRepository.GetCartItem(ctx, cart.ID, food.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartItemResponse{}, err
		}
		item = &entities.CartItem{
			ID:       uuid.New(),
			CartID:   cart.ID,
			FoodID:   food.ID,
			Quantity: quantity,
		}
		if err := s.cartRepository.CreateCartItem(ctx, item); err != nil {
			return domain.CartItemResponse{}, err
		}
	} else {
		item.Quantity += quantity
		if err := s.cartRepository.UpdateCartItem(ctx, item); err != nil {
			return domain.CartItemResponse{}, err
		}
	}

	_ = s.cache.Delete(ctx, cache.KeyCart(cart.ID.String()))

	return itemResponse(item, food), nil
}

func (s *cartService) UpdateCartItem(ctx context.Context, owner domain.CartOwner, itemID string, req domain.UpdateCartItemRequest) (*domain.CartItemResponse, error) {
	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return nil, err
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	item, err := s.cartRepository.GetCartItemByID(ctx, itemUUID, cart.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}

	// Zero or negative quantity removes the line.
	if req.Quantity <= 0 {
		if err := s.cartRepository.DeleteCartItem(ctx, item.ID); err != nil {
			return nil, err
		}
		_ = s.cache.Delete(ctx, cache.KeyCart(cart.ID.String()))
		return nil, nil
	}

	item.Quantity = req.Quantity
	if err := s.cartRepository.UpdateCartItem(ctx, item); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.KeyCart(cart.ID.String()))

	res := itemResponse(item, item.Food)
	return &res, nil
}

func (s *cartService) RemoveCartItem(ctx context.Context, owner domain.CartOwner, itemID string) error {
	cart, err := s.getOrCreateCart(ctx, owner)
	if err != nil {
		return err
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	item, err := s.cartRepository.GetCartItemByID(ctx, itemUUID, cart.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if err := s.cartRepository.DeleteCartItem(ctx, item.ID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.KeyCart(cart.ID.String()))
	return nil
}

// MergeGuestCart folds the guest session's cart into the user's cart on
// login. Absence of a guest cart is the normal case, not a failure, which
// also makes a repeated merge of the same session a no-op.
func (s *cartService) MergeGuestCart(ctx context.Context, userID string, sessionKey string) error {
	if sessionKey == "" {
		return nil
	}

	guestCart, err := s.cartRepository.GetCartBySessionKey(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	userCart, err := s.getOrCreateCart(ctx, domain.CartOwner{UserID: userID})
	if err != nil {
		return err
	}

	guestItems, err := s.cartRepository.GetCartItems(ctx, guestCart.ID)
	if err != nil {
		return err
	}

	for _, guestItem := range guestItems {
		userItem, err := s.cartRepository.GetCartItem(ctx, userCart.ID, guestItem.FoodID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			newItem := &entities.CartItem{
				ID:       uuid.New(),
				CartID:   userCart.ID,
				FoodID:   guestItem.FoodID,
				Quantity: guestItem.Quantity,
			}
			if err := s.cartRepository.CreateCartItem(ctx, newItem); err != nil {
				return err
			}
			continue
		}

		userItem.Quantity += guestItem.Quantity
		if err := s.cartRepository.UpdateCartItem(ctx, userItem); err != nil {
			return err
		}
	}

	if err := s.cartRepository.DeleteCart(ctx, guestCart.ID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx,
		cache.KeyCart(guestCart.ID.String()),
		cache.KeyCart(userCart.ID.String()),
	)
	return nil
}

// SummarizeItems computes the cart summary from its lines. Exported for the
// checkout path, which totals the live cart before snapshotting it.
func SummarizeItems(items []*entities.CartItem) domain.CartResponse {
	summary := domain.CartResponse{Items: make([]domain.CartItemResponse, 0, len(items))}

	for _, item := range items {
		res := itemResponse(item, item.Food)
		summary.Items = append(summary.Items, res)
		summary.TotalPrice = domain.RoundCents(summary.TotalPrice + res.TotalPrice)
		summary.TotalItems += item.Quantity
	}

	return summary
}

func itemResponse(item *entities.CartItem, food *entities.Food) domain.CartItemResponse {
	res := domain.CartItemResponse{
		ID:       item.ID.String(),
		FoodID:   item.FoodID.String(),
		Quantity: item.Quantity,
	}
	if food != nil {
		res.FoodName = food.Name
		res.FoodPrice = food.Price
		res.FoodImage = food.ImageURL
		res.TotalPrice = domain.RoundCents(food.Price * float64(item.Quantity))
	}
	return res
}
