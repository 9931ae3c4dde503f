package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sunset/storefront/internal/domain/catalog"
)

const importCSV = `name,price,stock,category,sizes,featured
Bolso tejido,350.00,10,accesorios,S|M,true
Aretes de plata,120.50,4,accesorios,,
,99,1,accesorios,,
Collar de jade,not-a-price,2,accesorios,,
Pulsera,75,3,inexistente,,
`

func TestImportProductsCreatesValidRowsAndReportsBadOnes(t *testing.T) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	service := newTestProductService(products, categories)

	accesorios, err := catalog.NewCategory("Accesorios")
	require.NoError(t, err)
	categories.On("FindAll", mock.Anything).Return([]catalog.Category{*accesorios}, nil)

	var saved []*catalog.Product
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).
		Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(*catalog.Product))
		}).Return(nil)

	result, err := service.ImportProducts(t.Context(), strings.NewReader(importCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Failed)
	assert.Len(t, result.Errors, 3)
	assert.False(t, result.Truncated)

	require.Len(t, saved, 2)
	assert.Equal(t, "Bolso tejido", saved[0].Name)
	assert.Equal(t, []string{"S", "M"}, saved[0].Sizes)
	assert.True(t, saved[0].Featured)
	assert.Equal(t, accesorios.ID, saved[0].CategoryID)
	assert.Equal(t, "Aretes de plata", saved[1].Name)
	assert.False(t, saved[1].Featured)
}

func TestImportProductsRejectsMissingColumns(t *testing.T) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	service := newTestProductService(products, categories)

	_, err := service.ImportProducts(t.Context(), strings.NewReader("name,description\nCollar,bonito\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
	products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestImportProductsRejectsEmptyFile(t *testing.T) {
	service := newTestProductService(new(MockProductRepository), new(MockCategoryRepository))

	_, err := service.ImportProducts(t.Context(), strings.NewReader(""))

	assert.Error(t, err)
}

func TestImportProductsSkipsBlankLines(t *testing.T) {
	products := new(MockProductRepository)
	categories := new(MockCategoryRepository)
	service := newTestProductService(products, categories)

	categories.On("FindAll", mock.Anything).Return([]catalog.Category{}, nil)
	products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.ImportProducts(t.Context(),
		strings.NewReader("name,price,stock\nCollar,80,5\n,,\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Failed)
}
