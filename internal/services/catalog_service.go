package services

import (
	"stockroom/internal/domain"
	"stockroom/internal/forms"
	"stockroom/internal/repos"
)

// Window turns 1-based page/limit query values into a LIMIT/OFFSET pair.
// Zero or negative values fall back: limit to the endpoint default, page to 1.
func Window(page, limit, fallback int) (int, int) {
	if limit <= 0 {
		limit = fallback
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

type CatalogService struct {
	Prods *repos.ProductRepo
	Attrs *repos.AttributeRepo
	Terms *repos.TermRepo
}

func NewCatalogService(prods *repos.ProductRepo, attrs *repos.AttributeRepo, terms *repos.TermRepo) *CatalogService {
	return &CatalogService{Prods: prods, Attrs: attrs, Terms: terms}
}

// CreateProduct inserts the demultiplexed form as-is. The plain product path
// performs no required-field validation; empty strings go straight to the
// store and the title uniqueness constraint is the only guard.
func (s *CatalogService) CreateProduct(f forms.ProductForm) (domain.Product, error) {
	return s.Prods.Insert(domain.Product{
		Title:              f.Title,
		Description:        f.Description,
		Category:           f.Category,
		Price:              f.Price,
		Sku:                f.Sku,
		ProductType:        f.ProductType,
		Stock:              f.Stock,
		AllowBackorders:    f.AllowBackorders,
		LowStockThreshold:  f.LowStockThreshold,
		ShippingWeight:     f.ShippingWeight,
		ProductGallery:     f.ProductGallery,
		Attributes:         f.Attributes,
		Variations:         f.Variations,
		ShippingDimensions: f.ShippingDimensions,
		ShippingClass:      f.ShippingClass,
		TaxStatus:          f.TaxStatus,
		TaxClass:           f.TaxClass,
	})
}

func (s *CatalogService) ListProducts(page, limit int) ([]domain.Product, error) {
	l, off := Window(page, limit, 10)
	return s.Prods.List(l, off)
}

// FeaturedProducts backs the templated product view, which pages wider than
// the JSON list.
func (s *CatalogService) FeaturedProducts(page, limit int) ([]domain.Product, error) {
	l, off := Window(page, limit, 14)
	return s.Prods.List(l, off)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) CreateAttribute(name, slug, orderBy string) (domain.ProductAttribute, error) {
	return s.Attrs.Insert(domain.ProductAttribute{Name: name, Slug: slug, OrderBy: orderBy})
}

func (s *CatalogService) ListAttributes(page, limit int) ([]domain.ProductAttribute, error) {
	l, off := Window(page, limit, 10)
	return s.Attrs.List(l, off)
}

func (s *CatalogService) GetAttribute(id string) (domain.ProductAttribute, error) {
	return s.Attrs.Get(id)
}

// CreateTerm trusts attributeID; only the foreign-key constraint checks it.
func (s *CatalogService) CreateTerm(attributeID, name, slug string, description *string) (domain.ProductTerm, error) {
	return s.Terms.Insert(domain.ProductTerm{ProductID: attributeID, Name: name, Slug: slug, Description: description})
}

func (s *CatalogService) ListTerms(page, limit int) ([]domain.ProductTerm, error) {
	l, off := Window(page, limit, 10)
	return s.Terms.List(l, off)
}

func (s *CatalogService) GetTerm(id string) (domain.ProductTerm, error) {
	return s.Terms.Get(id)
}
