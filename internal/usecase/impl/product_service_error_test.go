package impl

import (
	"context"
	"testing"

	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainservice "dashboard/internal/domain/service"
)

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateProductInput
		wantErr error
	}{
		{
			name: "missing name",
			input: &usecase.CreateProductInput{
				ProductType:         "apparel",
				ProductDescriptions: "d",
				ProductSKU:          "SKU",
				ProductImages:       []string{"https://example.com/a.jpg"},
			},
			wantErr: domainerrors.ErrInvalidProductInput,
		},
		{
			name: "negative price",
			input: &usecase.CreateProductInput{
				ProductName:         "P",
				ProductType:         "apparel",
				ProductPrice:        -1,
				ProductDescriptions: "d",
				ProductSKU:          "SKU",
				ProductImages:       []string{"https://example.com/a.jpg"},
			},
			wantErr: domainerrors.ErrInvalidProductInput,
		},
		{
			name: "discount above 100",
			input: &usecase.CreateProductInput{
				ProductName:         "P",
				ProductType:         "apparel",
				ProductDiscount:     float64Ptr(150),
				ProductDescriptions: "d",
				ProductSKU:          "SKU",
				ProductImages:       []string{"https://example.com/a.jpg"},
			},
			wantErr: domainerrors.ErrInvalidProductInput,
		},
		{
			name: "no images",
			input: &usecase.CreateProductInput{
				ProductName:         "P",
				ProductType:         "apparel",
				ProductDescriptions: "d",
				ProductSKU:          "SKU",
			},
			wantErr: domainerrors.ErrNoImages,
		},
		{
			name: "too many images",
			input: &usecase.CreateProductInput{
				ProductName:         "P",
				ProductType:         "apparel",
				ProductDescriptions: "d",
				ProductSKU:          "SKU",
				ProductImages: []string{
					"https://example.com/1.jpg",
					"https://example.com/2.jpg",
					"https://example.com/3.jpg",
					"https://example.com/4.jpg",
					"https://example.com/5.jpg",
					"https://example.com/6.jpg",
				},
			},
			wantErr: domainerrors.ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			product, err := fx.service.CreateProduct(context.Background(), tt.input)
			assert.Nil(t, product)
			assert.True(t, errors.Is(err, tt.wantErr))
			fx.mediaStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_CreateProduct_NameTaken(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductDescriptions: "d",
		ProductSKU:          "SKU",
		ProductImages:       []string{"https://example.com/a.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Trail Jacket").
		Return(storedProduct(), nil)

	product, err := fx.service.CreateProduct(ctx, input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNameTaken))
	fx.mediaStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_UploadFailureAborts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductDescriptions: "d",
		ProductSKU:          "SKU",
		ProductImages:       []string{"https://example.com/a.jpg", "https://example.com/b.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Trail Jacket").
		Return(nil, repository.ErrProductNotFound)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/a.jpg", mock.AnythingOfType("string")).
		Return(nil, errors.New("upstream timeout"))

	product, err := fx.service.CreateProduct(ctx, input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
	fx.productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_DuplicateOnInsert(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName:         "Trail Jacket",
		ProductType:         "apparel",
		ProductDescriptions: "d",
		ProductSKU:          "SKU",
		ProductImages:       []string{"https://example.com/a.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Trail Jacket").
		Return(nil, repository.ErrProductNotFound)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/a.jpg", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/a.jpg", PublicID: "product_images/a"}, nil)

	// Another writer won the race between the pre-check and the insert.
	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProductName)

	product, err := fx.service.CreateProduct(ctx, input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNameTaken))
}

func TestProductService_UpdateProduct_BlankID(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.UpdateProduct(context.Background(), "", &usecase.UpdateProductInput{})
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidProductInput))
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, "missing", &usecase.UpdateProductInput{})
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateProduct_RenameConflict(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	other := storedProduct()
	other.ProductID = "prod-2"
	other.ProductName = "Summit Jacket"

	input := &usecase.UpdateProductInput{
		ProductName:   stringPtr("Summit Jacket"),
		ProductImages: []string{"https://example.com/new.png"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil)

	fx.productRepo.EXPECT().
		FindProductByName(ctx, "Summit Jacket").
		Return(other, nil)

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNameTaken))
	// A rejected rename never reaches the media host.
	fx.mediaStore.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
	fx.mediaStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_NoOpRenameSkipsConflictCheck(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductName: stringPtr(existing.ProductName),
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
	assert.NoError(t, err)
	fx.productRepo.AssertNotCalled(t, "FindProductByName", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_TooManyImages(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductImages: []string{
			"https://example.com/1.jpg",
			"https://example.com/2.jpg",
			"https://example.com/3.jpg",
			"https://example.com/4.jpg",
			"https://example.com/5.jpg",
			"https://example.com/6.jpg",
		},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil)

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyImages))
	fx.mediaStore.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
	fx.mediaStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_DestroyFailureIsSwallowed(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductImages: []string{"https://example.com/new.png"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/a").
		Return(errors.New("already gone"))
	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/b").
		Return(nil)

	fx.mediaStore.EXPECT().
		Owns("https://example.com/new.png").
		Return(false)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/new.png", mock.AnythingOfType("string")).
		Return(&domainservice.StoredAsset{URL: "https://cdn/new.png", PublicID: "product_images/new"}, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Return(nil)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil).
		Once()

	_, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	assert.NoError(t, err)
}

func TestProductService_UpdateProduct_UploadFailureAborts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductImages: []string{"https://example.com/new.png"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil)

	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/a").
		Return(nil)
	fx.mediaStore.EXPECT().
		Destroy(ctx, "product_images/b").
		Return(nil)

	fx.mediaStore.EXPECT().
		Owns("https://example.com/new.png").
		Return(false)

	fx.mediaStore.EXPECT().
		Upload(ctx, "https://example.com/new.png", mock.AnythingOfType("string")).
		Return(nil, errors.New("upstream timeout"))

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaUploadFailed))
	fx.productRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_RaceWithDelete(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	existing := storedProduct()
	input := &usecase.UpdateProductInput{
		ProductStock: intPtr(3),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "prod-1").
		Return(existing, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, "prod-1", mock.AnythingOfType("*repository.ProductPatch")).
		Return(repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, "prod-1", input)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, "missing")
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListProducts_RepositoryFailure(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(nil, errors.New("database error"))

	products, err := fx.service.ListProducts(ctx)
	assert.Nil(t, products)
	assert.True(t, errors.Is(err, domainerrors.ErrProductPersistenceFailed))
}
