package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dbstarter/internal/dto"
	"dbstarter/internal/model"
	"dbstarter/internal/repository"
)

// ErrProductNotFound reports an unknown product id.
var ErrProductNotFound = errors.New("Product not found")

// ProductService is the inventory business interface.
type ProductService interface {
	// List returns products (optionally name-filtered) plus the total
	// inventory value, sum of quantity times price over the returned rows.
	List(ctx context.Context, search string) ([]model.Product, float64, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, form *dto.ProductForm) error
	Update(ctx context.Context, id uint, form *dto.ProductForm) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProductService creates a ProductService.
func NewProductService(repo *repository.Repository, logger *zap.Logger) ProductService {
	return &productService{repo: repo, logger: logger}
}

func (s *productService) List(ctx context.Context, search string) ([]model.Product, float64, error) {
	products, err := s.repo.Product.List(ctx, search)
	if err != nil {
		s.logger.Error("list products failed", zap.Error(err))
		return nil, 0, err
	}

	var totalValue float64
	for i := range products {
		totalValue += float64(products[i].Quantity) * products[i].Price
	}
	return products, totalValue, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.repo.Product.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("get product failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, form *dto.ProductForm) error {
	product := &model.Product{
		Name:     form.Name,
		Quantity: form.Quantity,
		Price:    form.Price,
	}
	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.logger.Error("create product failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *productService) Update(ctx context.Context, id uint, form *dto.ProductForm) error {
	product, err := s.repo.Product.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error("get product failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	product.Name = form.Name
	product.Quantity = form.Quantity
	product.Price = form.Price

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.logger.Error("update product failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	_, err := s.repo.Product.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error("get product failed", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.logger.Error("delete product failed", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
