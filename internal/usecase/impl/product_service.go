package impl

import (
	"context"
	"log/slog"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"github.com/google/uuid"
)

type productService struct {
	productRepo repository.ProductRepository
	mediaStore  service.MediaStore
	logger      *slog.Logger
}

// NewProductService creates a new catalog service instance
func NewProductService(productRepo repository.ProductRepository, mediaStore service.MediaStore, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		mediaStore:  mediaStore,
		logger:      logger,
	}
}

// CreateProduct validates the full payload, uploads every image and persists
// a new product record. Validation happens before any remote call; an upload
// failure aborts the whole creation with no partial record written.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	// Duplicate-name pre-check. The unique index on product_name backstops
	// the race between this read and the insert below.
	if _, err := s.productRepo.FindProductByName(ctx, input.ProductName); err == nil {
		return nil, errors.Wrap(domainerrors.ErrProductNameTaken, "create product")
	} else if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	// No prior state exists, so every image is uploaded unconditionally.
	images := make([]entity.ProductImage, 0, len(input.ProductImages))
	for _, source := range input.ProductImages {
		asset, err := s.mediaStore.Upload(ctx, source, uuid.NewString())
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
		}
		images = append(images, entity.ProductImage{URL: asset.URL, PublicID: asset.PublicID})
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ProductID:           uuid.NewString(),
		ProductName:         input.ProductName,
		ProductType:         input.ProductType,
		ProductPrice:        input.ProductPrice,
		ProductDiscount:     input.ProductDiscount,
		ProductDescriptions: input.ProductDescriptions,
		ProductTags:         normalizeTags(input.ProductTags),
		ProductSKU:          input.ProductSKU,
		ProductStock:        input.ProductStock,
		ProductVariants:     normalizeVariants(input.ProductVariants),
		ProductImages:       images,
		Thumbnail:           images[0],
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProductName) {
			return nil, errors.Wrap(domainerrors.ErrProductNameTaken, "create product")
		}

		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	return product, nil
}

// UpdateProduct merges the sparse payload onto the stored record. The step
// order matters: the existence and name-conflict reads and all input
// validation run before any media side effect, so a rejected update never
// touches the remote host.
func (s *productService) UpdateProduct(ctx context.Context, productID string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if productID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidProductInput, "product ID is required")
	}

	existing, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		}

		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	// A no-op rename skips the conflict check entirely.
	if input.ProductName != nil && *input.ProductName != existing.ProductName {
		other, err := s.productRepo.FindProductByName(ctx, *input.ProductName)
		if err == nil && other.ProductID != productID {
			return nil, errors.Wrap(domainerrors.ErrProductNameTaken, "update product")
		}
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
		}
	}

	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	patch := &repository.ProductPatch{
		ProductName:         input.ProductName,
		ProductType:         input.ProductType,
		ProductPrice:        input.ProductPrice,
		ProductDiscount:     input.ProductDiscount,
		ProductDescriptions: input.ProductDescriptions,
		ProductTags:         input.ProductTags,
		ProductSKU:          input.ProductSKU,
		ProductStock:        input.ProductStock,
		ProductVariants:     input.ProductVariants,
		UpdatedAt:           time.Now().UTC(),
	}

	// Image reconciliation runs only when new images were supplied.
	if len(input.ProductImages) > 0 {
		images, err := s.reconcileImages(ctx, existing.ProductImages, input.ProductImages)
		if err != nil {
			return nil, err
		}

		patch.ProductImages = images
		patch.Thumbnail = &images[0]
	}

	if err := s.productRepo.UpdateProduct(ctx, productID, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			// Lost a race with a concurrent delete.
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "update product")
		case errors.Is(err, repository.ErrDuplicateProductName):
			return nil, errors.Wrap(domainerrors.ErrProductNameTaken, "update product")
		default:
			return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
		}
	}

	// Read-after-write: return the authoritative persisted state, not the
	// in-memory merge result.
	updated, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	return updated, nil
}

// reconcileImages diffs the stored image list against the submitted URLs.
// Every currently stored asset is destroyed best-effort first; a destroy
// failure only costs a stale remote asset and is never fatal. Submitted URLs
// that already point into our media folder AND appear in the stored list
// reuse the stored (url, public_id) pair; everything else is uploaded fresh.
// Any upload failure aborts so that a partial image set is never committed.
func (s *productService) reconcileImages(ctx context.Context, current []entity.ProductImage, submitted []string) ([]entity.ProductImage, error) {
	for _, image := range current {
		if image.PublicID == "" {
			continue
		}
		if err := s.mediaStore.Destroy(ctx, image.PublicID); err != nil {
			s.logger.Warn("failed to delete old product image",
				slog.String("public_id", image.PublicID),
				slog.Any("error", err),
			)
		}
	}

	images := make([]entity.ProductImage, 0, len(submitted))
	for _, source := range submitted {
		if s.mediaStore.Owns(source) {
			if stored := findImageByURL(current, source); stored != nil {
				images = append(images, *stored)

				continue
			}
		}

		asset, err := s.mediaStore.Upload(ctx, source, uuid.NewString())
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
		}
		images = append(images, entity.ProductImage{URL: asset.URL, PublicID: asset.PublicID})
	}

	return images, nil
}

// GetProduct retrieves a single product by its product_id
func (s *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidProductInput, "product ID is required")
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product")
		}

		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	return product, nil
}

// ListProducts retrieves the whole catalog
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProductPersistenceFailed, err.Error())
	}

	return products, nil
}

// validateCreateInput checks the full create payload. All checks run before
// any side effect.
func validateCreateInput(input *usecase.CreateProductInput) error {
	switch {
	case input.ProductName == "":
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_name is required")
	case input.ProductType == "":
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_type is required")
	case input.ProductDescriptions == "":
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_descriptions is required")
	case input.ProductSKU == "":
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_sku is required")
	case input.ProductPrice < 0:
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_price must be non-negative")
	case input.ProductStock < 0:
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_stock must be non-negative")
	}

	if err := validateDiscount(input.ProductDiscount); err != nil {
		return err
	}

	if len(input.ProductImages) == 0 {
		return errors.Wrap(domainerrors.ErrNoImages, "create product")
	}
	if len(input.ProductImages) > entity.MaxProductImages {
		return errors.Wrap(domainerrors.ErrTooManyImages, "create product")
	}

	return nil
}

// validateUpdateInput checks only the supplied fields of a sparse payload.
func validateUpdateInput(input *usecase.UpdateProductInput) error {
	if input.ProductPrice != nil && *input.ProductPrice < 0 {
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_price must be non-negative")
	}
	if input.ProductStock != nil && *input.ProductStock < 0 {
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_stock must be non-negative")
	}
	if err := validateDiscount(input.ProductDiscount); err != nil {
		return err
	}
	if len(input.ProductImages) > entity.MaxProductImages {
		return errors.Wrap(domainerrors.ErrTooManyImages, "update product")
	}

	return nil
}

func validateDiscount(discount *float64) error {
	if discount != nil && (*discount < 0 || *discount > 100) {
		return errors.Wrap(domainerrors.ErrInvalidProductInput, "product_discount must be between 0 and 100")
	}

	return nil
}

func findImageByURL(images []entity.ProductImage, url string) *entity.ProductImage {
	for i := range images {
		if images[i].URL == url {
			return &images[i]
		}
	}

	return nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}

func normalizeVariants(variants []entity.ProductVariant) []entity.ProductVariant {
	if variants == nil {
		return []entity.ProductVariant{}
	}

	return variants
}
