// Package inventory builds the initial product catalog from inventory
// documents.
//
// A document lists promotions and products:
//
//	{
//	  "promotions": [{"id": "p30", "name": "30% off!", "type": "percent", "percent": 30}],
//	  "products": [{"name": "Windows License", "kind": "unlimited", "price": 125, "promotion": "p30"}]
//	}
//
// Product kind defaults to "standard". Products reference promotions by id;
// one promotion instance is shared by every product referencing it.
package inventory

import (
	_ "embed"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/product"
	"github.com/xenking/bestbuy-store/internal/domain/promotion"
)

//go:embed default.json
var defaultDocument []byte

// Document is a decoded inventory document.
type Document struct {
	Promotions []PromotionSpec
	Products   []ProductSpec
}

// PromotionSpec describes a promotion and the id products use to refer to it.
type PromotionSpec struct {
	ID      string
	Name    string
	Type    promotion.Type
	Percent decimal.Decimal
}

// ProductSpec describes a single catalog entry.
type ProductSpec struct {
	Name      string
	Kind      product.Kind
	Price     decimal.Decimal
	Quantity  int
	Maximum   int
	Promotion string
}

// Default returns the built-in catalog document.
func Default() (*Document, error) {
	doc, err := Decode(defaultDocument)
	if err != nil {
		return nil, errors.Wrap(err, "decode default inventory")
	}
	return doc, nil
}

// Merge appends the promotions and products of other to d.
func (d *Document) Merge(other *Document) {
	d.Promotions = append(d.Promotions, other.Promotions...)
	d.Products = append(d.Products, other.Products...)
}

// Build creates the promotions and products described by d, in document
// order.
func (d *Document) Build() ([]product.Product, error) {
	promotions := make(map[string]promotion.Promotion, len(d.Promotions))
	for _, spec := range d.Promotions {
		if spec.ID == "" {
			return nil, errors.Errorf("promotion %q: id is required", spec.Name)
		}
		if _, ok := promotions[spec.ID]; ok {
			return nil, errors.Errorf("promotion %q: duplicate id", spec.ID)
		}
		p, err := promotion.New(promotion.Rule{
			Name:    spec.Name,
			Type:    spec.Type,
			Percent: spec.Percent,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "promotion %q", spec.ID)
		}
		promotions[spec.ID] = p
	}

	products := make([]product.Product, 0, len(d.Products))
	for i, spec := range d.Products {
		p, err := buildProduct(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "product #%d", i+1)
		}
		if spec.Promotion != "" {
			promo, ok := promotions[spec.Promotion]
			if !ok {
				return nil, errors.Errorf("product %q: unknown promotion %q", spec.Name, spec.Promotion)
			}
			p.SetPromotion(promo)
		}
		products = append(products, p)
	}

	return products, nil
}

func buildProduct(spec ProductSpec) (product.Product, error) {
	switch spec.Kind {
	case product.KindStandard, "":
		return product.NewStandard(spec.Name, spec.Price, spec.Quantity)
	case product.KindUnlimited:
		if spec.Quantity != 0 {
			return nil, errors.Errorf("non-stocked product %q cannot have a quantity", spec.Name)
		}
		return product.NewUnlimited(spec.Name, spec.Price)
	case product.KindLimited:
		return product.NewLimited(spec.Name, spec.Price, spec.Quantity, spec.Maximum)
	default:
		return nil, errors.Errorf("unsupported product kind: %q", spec.Kind)
	}
}
