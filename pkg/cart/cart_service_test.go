package cart

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryCache mirrors the real client's marshal/unmarshal behavior and
// records deletions so tests can assert invalidation.
type memoryCache struct {
	entries map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	data, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

type fakeCartRepository struct {
	carts map[uuid.UUID]*entities.Cart
	items map[uuid.UUID]*entities.CartItem
	foods map[uuid.UUID]*entities.Food
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{
		carts: make(map[uuid.UUID]*entities.Cart),
		items: make(map[uuid.UUID]*entities.CartItem),
		foods: make(map[uuid.UUID]*entities.Food),
	}
}

func (r *fakeCartRepository) GetCartByUserID(_ context.Context, userID uuid.UUID) (*entities.Cart, error) {
	for _, c := range r.carts {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepository) GetCartBySessionKey(_ context.Context, sessionKey string) (*entities.Cart, error) {
	for _, c := range r.carts {
		if c.SessionKey != nil && *c.SessionKey == sessionKey {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepository) CreateCart(_ context.Context, cart *entities.Cart) error {
	r.carts[cart.ID] = cart
	return nil
}

func (r *fakeCartRepository) DeleteCart(_ context.Context, id uuid.UUID) error {
	for itemID, item := range r.items {
		if item.CartID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.carts, id)
	return nil
}

func (r *fakeCartRepository) GetCartItems(_ context.Context, cartID uuid.UUID) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	for _, item := range r.items {
		if item.CartID == cartID {
			item.Food = r.foods[item.FoodID]
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCartRepository) GetCartItem(_ context.Context, cartID, foodID uuid.UUID) (*entities.CartItem, error) {
	for _, item := range r.items {
		if item.CartID == cartID && item.FoodID == foodID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepository) GetCartItemByID(_ context.Context, itemID, cartID uuid.UUID) (*entities.CartItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.CartID != cartID {
		return nil, gorm.ErrRecordNotFound
	}
	item.Food = r.foods[item.FoodID]
	return item, nil
}

func (r *fakeCartRepository) CreateCartItem(_ context.Context, item *entities.CartItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCartRepository) UpdateCartItem(_ context.Context, item *entities.CartItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeCartRepository) DeleteCartItem(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCartRepository) DeleteCartItems(_ context.Context, cartID uuid.UUID) error {
	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeMenuRepository struct {
	foods map[uuid.UUID]*entities.Food
}

func (r *fakeMenuRepository) GetCategories(context.Context) ([]*entities.Category, error) {
	return nil, nil
}
func (r *fakeMenuRepository) GetCategoryByID(context.Context, string) (*entities.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeMenuRepository) CreateCategory(context.Context, *entities.Category) error { return nil }
func (r *fakeMenuRepository) UpdateCategory(context.Context, *entities.Category) error { return nil }
func (r *fakeMenuRepository) DeleteCategory(context.Context, string) error             { return nil }
func (r *fakeMenuRepository) CountAvailableFoods(context.Context, string) (int64, error) {
	return 0, nil
}
func (r *fakeMenuRepository) GetAvailableFoods(context.Context, string) ([]*entities.Food, error) {
	return nil, nil
}
func (r *fakeMenuRepository) GetFoodByID(_ context.Context, id string) (*entities.Food, error) {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	food, ok := r.foods[foodID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return food, nil
}
func (r *fakeMenuRepository) CreateFood(context.Context, *entities.Food) error { return nil }
func (r *fakeMenuRepository) UpdateFood(context.Context, *entities.Food) error { return nil }
func (r *fakeMenuRepository) DeleteFood(context.Context, string) error         { return nil }

func setupCartTest() (*fakeCartRepository, CartService) {
	repo := newFakeCartRepository()
	menuRepo := &fakeMenuRepository{foods: repo.foods}
	service := NewCartService(repo, menuRepo, cache.NewNoop())
	return repo, service
}

func addFood(repo *fakeCartRepository, name string, price float64) *entities.Food {
	food := &entities.Food{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		IsAvailable: true,
	}
	repo.foods[food.ID] = food
	return food
}

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	_, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 1})
	require.NoError(t, err)

	res, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Quantity)

	summary, err := service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.TotalItems)
}

func TestAddToCartUnavailableFood(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	soup := addFood(repo, "Soup of Yesterday", 4.99)
	soup.IsAvailable = false
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	_, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: soup.ID.String(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)

	_, err = service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: uuid.NewString(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestCartSummaryTotals(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	sticks := addFood(repo, "Mozzarella Sticks", 8.99)
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	_, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: sticks.ID.String(), Quantity: 1})
	require.NoError(t, err)

	summary, err := service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	assert.InDelta(t, 34.97, summary.TotalPrice, 0.001)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Len(t, summary.Items, 2)
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	added, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)

	res, err := service.UpdateCartItem(ctx, owner, added.ID, domain.UpdateCartItemRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Nil(t, res)

	summary, err := service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestUpdateCartItemNotFound(t *testing.T) {
	_, service := setupCartTest()
	ctx := context.Background()
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	_, err := service.UpdateCartItem(ctx, owner, uuid.NewString(), domain.UpdateCartItemRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)

	err = service.RemoveCartItem(ctx, owner, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestMergeGuestCart(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	sticks := addFood(repo, "Mozzarella Sticks", 8.99)

	sessionKey := uuid.NewString()
	guest := domain.CartOwner{SessionKey: sessionKey}
	userID := uuid.New()
	user := domain.CartOwner{UserID: userID.String()}

	// The user already has wings in their cart; the guest adds more wings
	// plus a new item.
	_, err := service.AddToCart(ctx, user, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 1})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, guest, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, guest, domain.AddToCartRequest{FoodID: sticks.ID.String(), Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, service.MergeGuestCart(ctx, userID.String(), sessionKey))

	summary, err := service.GetCartSummary(ctx, user)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, 4, summary.TotalItems)

	// The guest cart is gone after the merge.
	_, err = repo.GetCartBySessionKey(ctx, sessionKey)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMergeGuestCartIdempotent(t *testing.T) {
	repo, service := setupCartTest()
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	sessionKey := uuid.NewString()
	userID := uuid.New()

	_, err := service.AddToCart(ctx, domain.CartOwner{SessionKey: sessionKey}, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, service.MergeGuestCart(ctx, userID.String(), sessionKey))
	// A second merge of the same session finds no guest cart and changes
	// nothing.
	require.NoError(t, service.MergeGuestCart(ctx, userID.String(), sessionKey))

	summary, err := service.GetCartSummary(ctx, domain.CartOwner{UserID: userID.String()})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalItems)
}

func TestCartMutationsInvalidateCache(t *testing.T) {
	repo := newFakeCartRepository()
	menuRepo := &fakeMenuRepository{foods: repo.foods}
	mc := newMemoryCache()
	service := NewCartService(repo, menuRepo, mc)
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	owner := domain.CartOwner{SessionKey: uuid.NewString()}

	added, err := service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 1})
	require.NoError(t, err)

	cart, err := repo.GetCartBySessionKey(ctx, owner.SessionKey)
	require.NoError(t, err)
	cartKey := cache.KeyCart(cart.ID.String())
	assert.Contains(t, mc.deleted, cartKey)

	// Warm the cache, then verify each mutation evicts the entry again.
	_, err = service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	require.Contains(t, mc.entries, cartKey)

	_, err = service.AddToCart(ctx, owner, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 1})
	require.NoError(t, err)
	assert.NotContains(t, mc.entries, cartKey)

	_, err = service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	require.Contains(t, mc.entries, cartKey)

	_, err = service.UpdateCartItem(ctx, owner, added.ID, domain.UpdateCartItemRequest{Quantity: 5})
	require.NoError(t, err)
	assert.NotContains(t, mc.entries, cartKey)

	_, err = service.GetCartSummary(ctx, owner)
	require.NoError(t, err)
	require.Contains(t, mc.entries, cartKey)

	require.NoError(t, service.RemoveCartItem(ctx, owner, added.ID))
	assert.NotContains(t, mc.entries, cartKey)
}

func TestMergeGuestCartInvalidatesBothCarts(t *testing.T) {
	repo := newFakeCartRepository()
	menuRepo := &fakeMenuRepository{foods: repo.foods}
	mc := newMemoryCache()
	service := NewCartService(repo, menuRepo, mc)
	ctx := context.Background()

	wings := addFood(repo, "Buffalo Wings", 12.99)
	sessionKey := uuid.NewString()
	userID := uuid.New()
	guest := domain.CartOwner{SessionKey: sessionKey}
	user := domain.CartOwner{UserID: userID.String()}

	_, err := service.AddToCart(ctx, guest, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, user, domain.AddToCartRequest{FoodID: wings.ID.String(), Quantity: 1})
	require.NoError(t, err)

	guestCart, err := repo.GetCartBySessionKey(ctx, sessionKey)
	require.NoError(t, err)
	userCart, err := repo.GetCartByUserID(ctx, userID)
	require.NoError(t, err)

	// Stale summaries for both carts must not survive the merge.
	_, err = service.GetCartSummary(ctx, guest)
	require.NoError(t, err)
	_, err = service.GetCartSummary(ctx, user)
	require.NoError(t, err)

	require.NoError(t, service.MergeGuestCart(ctx, userID.String(), sessionKey))

	assert.NotContains(t, mc.entries, cache.KeyCart(guestCart.ID.String()))
	assert.NotContains(t, mc.entries, cache.KeyCart(userCart.ID.String()))
	assert.Contains(t, mc.deleted, cache.KeyCart(userCart.ID.String()))
}

func TestSummarizeItemsRounding(t *testing.T) {
	food := &entities.Food{ID: uuid.New(), Name: "Greek Salad", Price: 12.99}
	items := []*entities.CartItem{
		{ID: uuid.New(), FoodID: food.ID, Quantity: 3, Food: food},
	}

	summary := SummarizeItems(items)
	assert.InDelta(t, 38.97, summary.TotalPrice, 0.001)
	assert.Equal(t, 3, summary.TotalItems)
}
