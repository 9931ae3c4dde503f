package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/catalog"
)

// ProductModel maps products to the products table
type ProductModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	ImageURL    string          `gorm:"type:varchar(512)"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index"`
	Sizes       pq.StringArray  `gorm:"type:text[]"`
	Colors      pq.StringArray  `gorm:"type:text[]"`
	Featured    bool            `gorm:"not null;default:false;index"`
	Active      bool            `gorm:"not null;default:true;index"`
}

// TableName specifies the table name
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		ImageURL:    m.ImageURL,
		CategoryID:  m.CategoryID,
		Sizes:       []string(m.Sizes),
		Colors:      []string(m.Colors),
		Featured:    m.Featured,
		Active:      m.Active,
	}
}

// FromDomain populates the model from a domain product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.Stock = p.Stock
	m.ImageURL = p.ImageURL
	m.CategoryID = p.CategoryID
	m.Sizes = pq.StringArray(p.Sizes)
	m.Colors = pq.StringArray(p.Colors)
	m.Featured = p.Featured
	m.Active = p.Active
}

// CategoryModel maps categories to the categories table
type CategoryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(128);not null"`
	Slug string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName specifies the table name
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Slug:       m.Slug,
	}
}

// FromDomain populates the model from a domain category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Slug = c.Slug
}
