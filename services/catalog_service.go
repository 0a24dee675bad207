package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
)

// ItemInput holds the editable fields of a menu item.
type ItemInput struct {
	Title        string          `form:"title" json:"title" validate:"required,max=150"`
	Slug         string          `form:"slug" json:"slug" validate:"required,max=150,slug"`
	Description  string          `form:"description" json:"description"`
	Price        decimal.Decimal `form:"price" json:"price"`
	Pieces       *int            `form:"pieces" json:"pieces" validate:"required,min=1"`
	Instructions string          `form:"instructions" json:"instructions"`
	Labels       string          `form:"labels" json:"labels" validate:"max=50"`
	LabelColour  string          `form:"label_colour" json:"label_colour" validate:"omitempty,oneof=danger success primary info warning secondary"`
	// Image is set by the caller after storing an upload; empty keeps the current image on update.
	Image string `form:"-" json:"-"`
}

func (in ItemInput) validate() *ValidationError {
	verr := validateStruct(in)
	if !in.Price.IsPositive() {
		verr.Add("price", "must be greater than zero")
	} else if !in.Price.Equal(in.Price.Round(2)) {
		verr.Add("price", "must have at most 2 decimal places")
	}
	return verr
}

func (in ItemInput) apply(item *models.Item) {
	item.Title = in.Title
	item.Slug = in.Slug
	item.Description = in.Description
	item.Price = in.Price
	item.Pieces = *in.Pieces
	item.Instructions = in.Instructions
	item.Labels = in.Labels
	item.LabelColour = in.LabelColour
	if in.Image != "" {
		item.Image = in.Image
	}
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Detail(ctx context.Context, slug string) (models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error
	return item, notFound(err, "find item by slug")
}

// ListByCreator returns the items authored by p.
func (s *CatalogService) ListByCreator(ctx context.Context, p Principal) ([]models.Item, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return nil, err
	}
	var items []models.Item
	if err := s.db.WithContext(ctx).Where("created_by_id = ?", p.UserID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items by creator: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Create(ctx context.Context, p Principal, in ItemInput) (models.Item, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return models.Item{}, err
	}
	if verr := in.validate(); !verr.Empty() {
		return models.Item{}, verr
	}

	var item models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Item{}).Where("slug = ?", in.Slug).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return errSlugTaken()
		}

		in.apply(&item)
		item.CreatedByID = p.UserID
		return tx.Create(&item).Error
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return models.Item{}, verr
		}
		// a concurrent create can pass the count and lose on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Item{}, errSlugTaken()
		}
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func errSlugTaken() *ValidationError {
	return NewValidationError("slug", "item with this slug already exists")
}

// ForEdit loads an item for its creator.
func (s *CatalogService) ForEdit(ctx context.Context, p Principal, itemID uint) (models.Item, error) {
	if err := Authorize(p, 0, Authenticated); err != nil {
		return models.Item{}, err
	}
	item, err := s.find(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}
	if err := Authorize(p, item.CreatedByID, OwnerOnly); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *CatalogService) Update(ctx context.Context, p Principal, itemID uint, in ItemInput) (models.Item, error) {
	item, err := s.ForEdit(ctx, p, itemID)
	if err != nil {
		return models.Item{}, err
	}

	verr := in.validate()
	if in.Slug != "" && in.Slug != item.Slug {
		verr.Add("slug", "slug cannot be changed once published")
	}
	if !verr.Empty() {
		return models.Item{}, verr
	}

	in.apply(&item)
	item.CreatedByID = p.UserID
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return models.Item{}, fmt.Errorf("update item %d: %w", itemID, err)
	}
	return item, nil
}

func (s *CatalogService) Delete(ctx context.Context, p Principal, itemID uint) error {
	item, err := s.ForEdit(ctx, p, itemID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&item).Error; err != nil {
		return fmt.Errorf("delete item %d: %w", itemID, err)
	}
	return nil
}

func (s *CatalogService) find(ctx context.Context, itemID uint) (models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, itemID).Error
	return item, notFound(err, "find item")
}

// notFound maps gorm's missing-record error to ErrNotFound and wraps everything else.
func notFound(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
