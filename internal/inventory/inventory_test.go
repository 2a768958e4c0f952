package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/bestbuy-store/internal/domain/product"
	"github.com/xenking/bestbuy-store/internal/domain/promotion"
)

func TestDefault(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)
	require.Len(t, doc.Promotions, 3)
	require.Len(t, doc.Products, 5)

	products, err := doc.Build()
	require.NoError(t, err)

	want := []struct {
		name      string
		kind      product.Kind
		quantity  int
		promotion string
	}{
		{"MacBook Air M2", product.KindStandard, 100, "Second Half Price!"},
		{"Bose QuietComfort Earbuds", product.KindStandard, 500, "Third One Free!"},
		{"Google Pixel 7", product.KindStandard, 250, ""},
		{"Windows License", product.KindUnlimited, 0, "30% off!"},
		{"Shipping", product.KindLimited, 250, ""},
	}
	require.Len(t, products, len(want))
	for i, w := range want {
		p := products[i]
		assert.Equal(t, w.name, p.Name())
		assert.Equal(t, w.kind, p.Kind())
		assert.Equal(t, w.quantity, p.Quantity())
		assert.True(t, p.IsActive())
		if w.promotion == "" {
			assert.Nil(t, p.Promotion(), w.name)
		} else {
			require.NotNil(t, p.Promotion(), w.name)
			assert.Equal(t, w.promotion, p.Promotion().Name())
		}
	}

	shipping, ok := products[4].(*product.Limited)
	require.True(t, ok)
	assert.Equal(t, 1, shipping.Maximum())

	total, err := products[3].Buy(1)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("125").Equal(total), "got %s", total)
}

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(`{
		"version": 2,
		"promotions": [{"id": "half", "name": "Half off", "type": "percent", "percent": 50.5, "extra": {"a": [1]}}],
		"products": [{"name": "Lamp", "price": 19.99, "quantity": 3, "promotion": "half", "color": "red"}]
	}`))
	require.NoError(t, err)

	require.Len(t, doc.Promotions, 1)
	assert.Equal(t, "half", doc.Promotions[0].ID)
	assert.Equal(t, "Half off", doc.Promotions[0].Name)
	assert.Equal(t, promotion.TypePercent, doc.Promotions[0].Type)
	assert.True(t, decimal.RequireFromString("50.5").Equal(doc.Promotions[0].Percent))

	require.Len(t, doc.Products, 1)
	p := doc.Products[0]
	assert.Equal(t, "Lamp", p.Name)
	assert.Equal(t, product.Kind(""), p.Kind)
	assert.True(t, decimal.RequireFromString("19.99").Equal(p.Price))
	assert.Equal(t, 3, p.Quantity)
	assert.Equal(t, "half", p.Promotion)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "not an object", input: `[]`},
		{name: "truncated", input: `{"products": [`},
		{name: "string price", input: `{"products": [{"name": "x", "price": "ten"}]}`, wantErr: "price"},
		{name: "boolean quantity", input: `{"products": [{"name": "x", "quantity": true}]}`, wantErr: "quantity"},
		{name: "numeric name", input: `{"products": [{"name": 5}]}`, wantErr: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuild_SharesPromotions(t *testing.T) {
	doc := &Document{
		Promotions: []PromotionSpec{{ID: "free3", Name: "Third One Free!", Type: promotion.TypeThirdOneFree}},
		Products: []ProductSpec{
			{Name: "A", Price: decimal.NewFromInt(10), Quantity: 5, Promotion: "free3"},
			{Name: "B", Price: decimal.NewFromInt(20), Quantity: 5, Promotion: "free3"},
		},
	}

	products, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, products[0].Promotion(), products[1].Promotion())
}

func TestBuild_Errors(t *testing.T) {
	price := decimal.NewFromInt(10)

	tests := []struct {
		name    string
		doc     Document
		wantErr string
		is      error
	}{
		{
			name:    "unknown promotion reference",
			doc:     Document{Products: []ProductSpec{{Name: "A", Price: price, Promotion: "nope"}}},
			wantErr: `unknown promotion "nope"`,
		},
		{
			name:    "unknown kind",
			doc:     Document{Products: []ProductSpec{{Name: "A", Kind: "rental", Price: price}}},
			wantErr: "unsupported product kind",
		},
		{
			name:    "unlimited with quantity",
			doc:     Document{Products: []ProductSpec{{Name: "A", Kind: product.KindUnlimited, Price: price, Quantity: 3}}},
			wantErr: "cannot have a quantity",
		},
		{
			name: "invalid product",
			doc:  Document{Products: []ProductSpec{{Name: "", Price: price}}},
			is:   product.ErrInvalidProduct,
		},
		{
			name: "limited without maximum",
			doc:  Document{Products: []ProductSpec{{Name: "Ship", Kind: product.KindLimited, Price: price, Quantity: 1}}},
			is:   product.ErrInvalidProduct,
		},
		{
			name: "invalid promotion",
			doc: Document{Promotions: []PromotionSpec{
				{ID: "x", Name: "x", Type: promotion.TypePercent, Percent: decimal.NewFromInt(150)},
			}},
			is: promotion.ErrInvalidPercent,
		},
		{
			name: "duplicate promotion id",
			doc: Document{Promotions: []PromotionSpec{
				{ID: "x", Name: "x", Type: promotion.TypeThirdOneFree},
				{ID: "x", Name: "y", Type: promotion.TypeSecondHalfPrice},
			}},
			wantErr: "duplicate id",
		},
		{
			name:    "missing promotion id",
			doc:     Document{Promotions: []PromotionSpec{{Name: "x", Type: promotion.TypeThirdOneFree}}},
			wantErr: "id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Build()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeGzFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	promos := writeFile(t, dir, "promotions.json",
		`{"promotions": [{"id": "half", "name": "Second Half Price!", "type": "second_half_price"}]}`)
	laptops := writeGzFile(t, dir, "laptops.json.gz",
		`{"products": [{"name": "Laptop", "price": 1000, "quantity": 2, "promotion": "half"}]}`)
	extras := writeFile(t, dir, "extras.json",
		`{"products": [{"name": "Shipping", "kind": "limited", "price": 10, "quantity": 5, "maximum": 1}]}`)

	doc, err := Load(context.Background(), []string{promos, laptops, extras})
	require.NoError(t, err)

	products, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Laptop", products[0].Name())
	assert.Equal(t, "Second Half Price!", products[0].Promotion().Name())
	assert.Equal(t, "Shipping", products[1].Name())

	total, err := products[0].Buy(2)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(total), "got %s", total)
}

func TestLoad_Empty(t *testing.T) {
	doc, err := Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"products": []}`)
	bad := writeFile(t, dir, "bad.json", `{"products": [}`)
	notGzip := writeFile(t, dir, "plain.json.gz", `{"products": []}`)

	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{name: "missing file", paths: []string{good, filepath.Join(dir, "missing.json")}, want: "missing.json"},
		{name: "malformed file", paths: []string{bad}, want: "bad.json"},
		{name: "not gzip", paths: []string{notGzip}, want: "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.paths)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"products": []}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, []string{good})
	require.ErrorIs(t, err, context.Canceled)
}
