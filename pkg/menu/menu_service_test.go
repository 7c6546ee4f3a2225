package menu

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMenuRepository struct {
	categories map[uuid.UUID]*entities.Category
	foods      map[uuid.UUID]*entities.Food
	listCalls  int
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{
		categories: make(map[uuid.UUID]*entities.Category),
		foods:      make(map[uuid.UUID]*entities.Food),
	}
}

func (r *fakeMenuRepository) GetCategories(context.Context) ([]*entities.Category, error) {
	r.listCalls++
	var categories []*entities.Category
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *fakeMenuRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	category, ok := r.categories[categoryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (r *fakeMenuRepository) CreateCategory(_ context.Context, category *entities.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeMenuRepository) UpdateCategory(_ context.Context, category *entities.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeMenuRepository) DeleteCategory(_ context.Context, id string) error {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, categoryID)
	return nil
}

func (r *fakeMenuRepository) CountAvailableFoods(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, food := range r.foods {
		if food.CategoryID.String() == categoryID && food.IsAvailable {
			count++
		}
	}
	return count, nil
}

func (r *fakeMenuRepository) GetAvailableFoods(_ context.Context, categoryID string) ([]*entities.Food, error) {
	r.listCalls++
	var foods []*entities.Food
	for _, food := range r.foods {
		if !food.IsAvailable {
			continue
		}
		if categoryID != "" && food.CategoryID.String() != categoryID {
			continue
		}
		foods = append(foods, food)
	}
	return foods, nil
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

func (r *fakeMenuRepository) CreateFood(_ context.Context, food *entities.Food) error {
	r.foods[food.ID] = food
	return nil
}

func (r *fakeMenuRepository) UpdateFood(_ context.Context, food *entities.Food) error {
	r.foods[food.ID] = food
	return nil
}

func (r *fakeMenuRepository) DeleteFood(_ context.Context, id string) error {
	foodID, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	delete(r.foods, foodID)
	return nil
}

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

type fakeStorage struct{}

func (fakeStorage) UploadFile(name string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + name, nil
}

func (fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func setupMenuTest() (*fakeMenuRepository, *memoryCache, MenuService) {
	repo := newFakeMenuRepository()
	mc := newMemoryCache()
	service := NewMenuService(repo, mc, fakeStorage{})
	return repo, mc, service
}

func addCategory(repo *fakeMenuRepository, name string) *entities.Category {
	category := &entities.Category{ID: uuid.New(), Name: name}
	repo.categories[category.ID] = category
	return category
}

func addMenuFood(repo *fakeMenuRepository, category *entities.Category, name string, price float64) *entities.Food {
	food := &entities.Food{
		ID:          uuid.New(),
		CategoryID:  category.ID,
		Name:        name,
		Price:       price,
		IsAvailable: true,
	}
	repo.foods[food.ID] = food
	return food
}

func TestGetCategoriesServedFromCache(t *testing.T) {
	repo, mc, service := setupMenuTest()
	ctx := context.Background()

	appetizers := addCategory(repo, "Appetizers")
	addMenuFood(repo, appetizers, "Buffalo Wings", 12.99)

	first, err := service.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, int64(1), first[0].FoodsCount)
	require.Contains(t, mc.entries, cache.KeyCategories)

	// The second read hits the cache, not the repository.
	second, err := service.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestGetFoodsServedFromCache(t *testing.T) {
	repo, mc, service := setupMenuTest()
	ctx := context.Background()

	appetizers := addCategory(repo, "Appetizers")
	addMenuFood(repo, appetizers, "Buffalo Wings", 12.99)
	hidden := addMenuFood(repo, appetizers, "Soup of Yesterday", 4.99)
	hidden.IsAvailable = false

	foods, err := service.GetFoods(ctx, appetizers.ID.String())
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Buffalo Wings", foods[0].Name)
	require.Contains(t, mc.entries, cache.KeyFoods(appetizers.ID.String()))

	_, err = service.GetFoods(ctx, appetizers.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCategoryWritesInvalidateCaches(t *testing.T) {
	_, mc, service := setupMenuTest()
	ctx := context.Background()

	created, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Desserts"})
	require.NoError(t, err)
	assert.Contains(t, mc.deleted, cache.KeyCategories)
	assert.Contains(t, mc.deleted, cache.KeyFoods(""))
	assert.Contains(t, mc.deleted, cache.KeyFoods(created.ID))

	warm := func() {
		_, err := service.GetCategories(ctx)
		require.NoError(t, err)
		require.Contains(t, mc.entries, cache.KeyCategories)
	}

	warm()
	require.NoError(t, service.UpdateCategory(ctx, created.ID, domain.UpdateCategoryRequest{Name: "Sweets"}))
	assert.NotContains(t, mc.entries, cache.KeyCategories)

	warm()
	require.NoError(t, service.DeleteCategory(ctx, created.ID))
	assert.NotContains(t, mc.entries, cache.KeyCategories)

	err = service.UpdateCategory(ctx, uuid.NewString(), domain.UpdateCategoryRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestFoodWritesInvalidateCaches(t *testing.T) {
	repo, mc, service := setupMenuTest()
	ctx := context.Background()

	appetizers := addCategory(repo, "Appetizers")
	categoryKey := cache.KeyFoods(appetizers.ID.String())

	warm := func() {
		_, err := service.GetFoods(ctx, appetizers.ID.String())
		require.NoError(t, err)
		_, err = service.GetFoods(ctx, "")
		require.NoError(t, err)
		require.Contains(t, mc.entries, categoryKey)
		require.Contains(t, mc.entries, cache.KeyFoods(""))
	}

	warm()
	created, err := service.CreateFood(ctx, domain.CreateFoodRequest{
		Name:       "Buffalo Wings",
		Price:      12.99,
		CategoryID: appetizers.ID.String(),
	})
	require.NoError(t, err)
	assert.NotContains(t, mc.entries, categoryKey)
	assert.NotContains(t, mc.entries, cache.KeyFoods(""))
	assert.Contains(t, mc.deleted, cache.KeyCategories)

	warm()
	newPrice := 13.49
	require.NoError(t, service.UpdateFood(ctx, created.ID, domain.UpdateFoodRequest{Price: &newPrice}))
	assert.NotContains(t, mc.entries, categoryKey)
	assert.NotContains(t, mc.entries, cache.KeyFoods(""))

	warm()
	require.NoError(t, service.DeleteFood(ctx, created.ID))
	assert.NotContains(t, mc.entries, categoryKey)
	assert.NotContains(t, mc.entries, cache.KeyFoods(""))
}

func TestCreateFoodValidation(t *testing.T) {
	repo, _, service := setupMenuTest()
	ctx := context.Background()

	appetizers := addCategory(repo, "Appetizers")

	_, err := service.CreateFood(ctx, domain.CreateFoodRequest{
		Name:       "Free Wings",
		Price:      0,
		CategoryID: appetizers.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = service.CreateFood(ctx, domain.CreateFoodRequest{
		Name:       "Orphan Wings",
		Price:      9.99,
		CategoryID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = service.GetFoodByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestUploadFoodImageInvalidatesCaches(t *testing.T) {
	repo, mc, service := setupMenuTest()
	ctx := context.Background()

	appetizers := addCategory(repo, "Appetizers")
	wings := addMenuFood(repo, appetizers, "Buffalo Wings", 12.99)

	_, err := service.GetFoods(ctx, appetizers.ID.String())
	require.NoError(t, err)

	url, err := service.UploadFoodImage(ctx, domain.UploadFoodImageRequest{
		FoodID: wings.ID.String(),
		Image:  &multipart.FileHeader{Filename: "wings.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/foods/food-"+wings.ID.String(), url)
	assert.Equal(t, url, wings.ImageURL)
	assert.NotContains(t, mc.entries, cache.KeyFoods(appetizers.ID.String()))
}
