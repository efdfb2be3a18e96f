package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trends-shop/models"
	"trends-shop/utils"
)

const (
	productListCacheKey = "products:list"
	productListCacheTTL = 10 * time.Minute
)

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
	Images      []*multipart.FileHeader
}

type ProductService struct {
	store    ProductStore
	cache    *redis.Client
	uploader *CloudinaryService
}

// NewProductService wires the catalog. cache and uploader may be nil: the
// service then runs uncached and rejects image uploads.
func NewProductService(store ProductStore, cache *redis.Client, uploader *CloudinaryService) *ProductService {
	return &ProductService{store: store, cache: cache, uploader: uploader}
}

// List returns the catalog, served from the cache when warm.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, productListCacheKey).Bytes()
		if err == nil {
			products := []models.Product{}
			if err := json.Unmarshal(raw, &products); err == nil {
				return products, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Println("Product cache read failed:", err)
		}
	}

	products, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, productListCacheKey, raw, productListCacheTTL).Err(); err != nil {
				log.Println("Product cache write failed:", err)
			}
		}
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	imageURLs := []string{}
	if len(input.Images) > 0 {
		if s.uploader == nil {
			return nil, errors.New("image storage not configured")
		}
		for _, header := range input.Images {
			if err := utils.ValidateImageFile(header); err != nil {
				return nil, err
			}
			file, err := header.Open()
			if err != nil {
				return nil, err
			}
			url, _, err := s.uploader.UploadImage(ctx, file, header.Filename, "products")
			file.Close()
			if err != nil {
				return nil, err
			}
			imageURLs = append(imageURLs, url)
		}
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      imageURLs,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Sizes:       input.Sizes,
		Bestseller:  input.Bestseller,
		CreatedAt:   time.Now(),
	}

	if err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return product, nil
}

func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Println("Product cache invalidation failed:", err)
	}
}
