package impl

import (
	"context"
	"log/slog"
	"testing"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	mockRepo "dashboard/internal/mocks/repository"
	mockService "dashboard/internal/mocks/service"
	"dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainservice "dashboard/internal/domain/service"
)

// productServiceFixtures holds all test dependencies for catalog service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	mediaStore  *mockService.MockMediaStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	mediaStore := mockService.NewMockMediaStore(t)
	logger := slog.New(slog.DiscardHandler)
	service := NewProductService(productRepo, mediaStore, logger)

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		mediaStore:  mediaStore,
	}
}

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func stringPtr(v string) *string    { return &v }

func storedProduct() *entity.Product {
	return &entity.Product{
		ProductID:           "prod-1",
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductPrice:        120,
		ProductDescriptions: "Lightweight shell",
		ProductTags:         []string{"outdoor"},
		ProductSKU:          "TJ-001",
		ProductStock:        10,
		ProductVariants: []entity.ProductVariant{
			{Name: "Size", Options: []string{"S", "M", "L"}},
		},
		ProductImages: []entity.ProductImage{
			{URL: "https://res.cloudinary.com/demo/product_images/a.jpg", PublicID: "product_images/a"},
			{URL: "https://res.cloudinary.com/demo/product_images/b.jpg", PublicID: "product_images/b"},
		},
		Thumbnail: entity.ProductImage{URL: "https://res.cloudinary.com/demo/product_images/a.jpg", PublicID: "product_images/a"},
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductPrice:        120,
		ProductDescriptions: "Lightweight shell",
		ProductSKU:          "TJ-001",
		ProductStock:        10,
		ProductImages:       []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Trail Jacket").
		Return(nil, repository.ErrProductNotFound)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/a.jpg", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/a.jpg", PublicID: "product_images/a"}, nil)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/b.jpg", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/b.jpg", PublicID: "product_images/b"}, nil)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEmpty(t, product.ProductID)
	assert.Equal(t, "Trail Jacket", product.ProductName)
	assert.Len(t, product.ProductImages, 2)
	assert.Equal(t, "https://cdn/a.jpg", product.ProductImages[0].URL)
	assert.Equal(t, product.ProductImages[0], product.Thumbnail)
	assert.Nil(t, product.ProductDiscount)
	assert.NotNil(t, product.ProductTags)
	assert.NotNil(t, product.ProductVariants)
	assert.False(t, product.CreatedAt.IsZero())
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
}

func TestProductService_CreateProduct_ZeroDiscountIsKept(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductPrice:        120,
		ProductDiscount:     float64Ptr(0),
		ProductDescriptions: "Lightweight shell",
		ProductSKU:          "TJ-001",
		ProductStock:        10,
		ProductImages:       []string{"https://example.com/a.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Trail Jacket").
		Return(nil, repository.ErrProductNotFound)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/a.jpg", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/a.jpg", PublicID: "product_images/a"}, nil)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, product.ProductDiscount)
	assert.Equal(t, float64(0), *product.ProductDiscount)
}

func TestProductService_UpdateProduct_MergesSuppliedFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductPrice:    float64Ptr(99.5),
		ProductDiscount: float64Ptr(0),
		ProductStock:    intPtr(0),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Run(func(_ context.Context, _ string, patch *repository.ProductPatch) {
			require.NotNil(t, patch.ProductPrice)
			assert.Equal(t, 99.5, *patch.ProductPrice)
			require.NotNil(t, patch.ProductDiscount)
			assert.Equal(t, float64(0), *patch.ProductDiscount)
			require.NotNil(t, patch.ProductStock)
			assert.Equal(t, 0, *patch.ProductStock)
			assert.Nil(t, patch.ProductName)
			assert.Nil(t, patch.ProductImages)
			assert.Nil(t, patch.Thumbnail)
			assert.False(t, patch.UpdatedAt.IsZero())
		}).
		Return(nil)

	updated := storedProduct()
	updated.ProductPrice = 99.5
	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(updated, nil).
		Once()

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	require.NoError(t, err)
	assert.Equal(t, 99.5, product.ProductPrice)
}

func TestProductService_UpdateProduct_WithoutImagesLeavesMediaUntouched(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductDescriptions: stringPtr("Updated copy"),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Return(nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	_, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	require.NoError(t, err)
	fx.mediaStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	fx.mediaStore.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_ReusesOwnedImages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	keptURL := existing.ProductImages[0].URL
	input := &usecase.UpdateProductInput{
		ProductImages: []string{keptURL, "https://example.com/new.png"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	// The whole current set is cleared before the new set is assembled.
	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/a").
		Return(nil)
	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/b").
		Return(nil)

	fx.mediaStore.EXPECT().
		Owns(keptURL).
		Return(true)
	fx.mediaStore.EXPECT().
		Owns("https://example.com/new.png").
		Return(false)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/new.png", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/new.png", PublicID: "product_images/new"}, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Run(func(_ context.Context, _ string, patch *repository.ProductPatch) {
			require.Len(t, patch.ProductImages, 2)
			assert.Equal(t, existing.ProductImages[0], patch.ProductImages[0])
			assert.Equal(t, entity.ProductImage{URL: "https://cdn/new.png", PublicID: "product_images/new"}, patch.ProductImages[1])
			require.NotNil(t, patch.Thumbnail)
			assert.Equal(t, patch.ProductImages[0], *patch.Thumbnail)
		}).
		Return(nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	_, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_RenameToFreeName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductName: stringPtr("Summit Jacket"),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Summit Jacket").
		Return(nil, repository.ErrProductNotFound)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Run(func(_ context.Context, _ string, patch *repository.ProductPatch) {
			require.NotNil(t, patch.ProductName)
			assert.Equal(t, "Summit Jacket", *patch.ProductName)
		}).
		Return(nil)

	renamed := storedProduct()
	renamed.ProductName = "Summit Jacket"
	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(renamed, nil).
		Once()

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	require.NoError(t, err)
	assert.Equal(t, "Summit Jacket", product.ProductName)
}

func TestProductService_GetProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil)

	product, err := fx.service.GetProduct(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, existing, product)
}

func TestProductService_ListProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	catalog := []*entity.Product{storedProduct()}

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(catalog, nil)

	products, err := fx.service.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
