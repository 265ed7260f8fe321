package mongodb

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productRepository implements repository.ProductRepository on a mongo collection.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository is the constructor for productRepository. It ensures
// the unique index on product_name so name uniqueness is enforced by the
// storage layer itself rather than only by the check-then-write sequence in
// the use case.
func NewProductRepository(db *mongo.Database) (repository.ProductRepository, error) {
	collection := db.Collection(model.ProductModel{}.CollectionName())

	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "product_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product_name unique index")
	}

	return &productRepository{collection: collection}, nil
}

// CreateProduct inserts a new product document.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if _, err := repo.collection.InsertOne(ctx, fromProductDomain(product)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateProductName
		}

		return errors.Wrap(err, "failed to insert product")
	}

	return nil
}

// FindProductByID retrieves a single product by its opaque product_id.
func (repo *productRepository) FindProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.collection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&productM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductByName retrieves a single product by its unique name.
func (repo *productRepository) FindProductByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.collection.FindOne(ctx, bson.M{"product_name": name}).Decode(&productM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// UpdateProduct applies a targeted $set of only the supplied patch fields,
// keyed by product_id. The single-document write is the serialization point;
// no transaction spans the callers' reads and this write.
func (repo *productRepository) UpdateProduct(ctx context.Context, productID string, patch *repository.ProductPatch) error {
	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.ProductName != nil {
		set["product_name"] = *patch.ProductName
	}
	if patch.ProductType != nil {
		set["product_type"] = *patch.ProductType
	}
	if patch.ProductPrice != nil {
		set["product_price"] = *patch.ProductPrice
	}
	if patch.ProductDiscount != nil {
		set["product_discount"] = *patch.ProductDiscount
	}
	if patch.ProductDescriptions != nil {
		set["product_descriptions"] = *patch.ProductDescriptions
	}
	if patch.ProductTags != nil {
		set["product_tags"] = patch.ProductTags
	}
	if patch.ProductSKU != nil {
		set["product_sku"] = *patch.ProductSKU
	}
	if patch.ProductStock != nil {
		set["product_stock"] = *patch.ProductStock
	}
	if patch.ProductVariants != nil {
		set["product_variants"] = fromVariantsDomain(patch.ProductVariants)
	}
	if patch.ProductImages != nil {
		set["product_images"] = fromImagesDomain(patch.ProductImages)
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = model.ProductImageModel{URL: patch.Thumbnail.URL, PublicID: patch.Thumbnail.PublicID}
	}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"product_id": productID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateProductName
		}

		return errors.Wrap(err, "failed to update product")
	}

	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ListProducts retrieves every product document in insertion order.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	defer cursor.Close(ctx)

	var productsM []model.ProductModel
	if err := cursor.All(ctx, &productsM); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for i := range productsM {
		products = append(products, toProductDomain(&productsM[i]))
	}

	return products, nil
}

// toProductDomain maps the persistence document back to a pure domain entity.
func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ProductID:           productM.ProductID,
		ProductName:         productM.ProductName,
		ProductType:         productM.ProductType,
		ProductPrice:        productM.ProductPrice,
		ProductDiscount:     productM.ProductDiscount,
		ProductDescriptions: productM.ProductDescriptions,
		ProductTags:         productM.ProductTags,
		ProductSKU:          productM.ProductSKU,
		ProductStock:        productM.ProductStock,
		ProductVariants:     toVariantsDomain(productM.ProductVariants),
		ProductImages:       toImagesDomain(productM.ProductImages),
		Thumbnail:           entity.ProductImage{URL: productM.Thumbnail.URL, PublicID: productM.Thumbnail.PublicID},
		CreatedAt:           productM.CreatedAt,
		UpdatedAt:           productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ProductID:           product.ProductID,
		ProductName:         product.ProductName,
		ProductType:         product.ProductType,
		ProductPrice:        product.ProductPrice,
		ProductDiscount:     product.ProductDiscount,
		ProductDescriptions: product.ProductDescriptions,
		ProductTags:         product.ProductTags,
		ProductSKU:          product.ProductSKU,
		ProductStock:        product.ProductStock,
		ProductVariants:     fromVariantsDomain(product.ProductVariants),
		ProductImages:       fromImagesDomain(product.ProductImages),
		Thumbnail:           model.ProductImageModel{URL: product.Thumbnail.URL, PublicID: product.Thumbnail.PublicID},
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
}

func toImagesDomain(imagesM []model.ProductImageModel) []entity.ProductImage {
	images := make([]entity.ProductImage, 0, len(imagesM))
	for _, imageM := range imagesM {
		images = append(images, entity.ProductImage{URL: imageM.URL, PublicID: imageM.PublicID})
	}

	return images
}

func fromImagesDomain(images []entity.ProductImage) []model.ProductImageModel {
	imagesM := make([]model.ProductImageModel, 0, len(images))
	for _, image := range images {
		imagesM = append(imagesM, model.ProductImageModel{URL: image.URL, PublicID: image.PublicID})
	}

	return imagesM
}

func toVariantsDomain(variantsM []model.ProductVariantModel) []entity.ProductVariant {
	variants := make([]entity.ProductVariant, 0, len(variantsM))
	for _, variantM := range variantsM {
		variants = append(variants, entity.ProductVariant{Name: variantM.Name, Options: variantM.Options})
	}

	return variants
}

func fromVariantsDomain(variants []entity.ProductVariant) []model.ProductVariantModel {
	variantsM := make([]model.ProductVariantModel, 0, len(variants))
	for _, variant := range variants {
		variantsM = append(variantsM, model.ProductVariantModel{Name: variant.Name, Options: variant.Options})
	}

	return variantsM
}
