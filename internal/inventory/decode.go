package inventory

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/product"
	"github.com/xenking/bestbuy-store/internal/domain/promotion"
)

// Decode parses an inventory document. Unknown fields are ignored.
func Decode(data []byte) (*Document, error) {
	var doc Document
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "promotions":
			return d.Arr(func(d *jx.Decoder) error {
				spec, err := decodePromotion(d)
				if err != nil {
					return errors.Wrapf(err, "promotion #%d", len(doc.Promotions)+1)
				}
				doc.Promotions = append(doc.Promotions, spec)
				return nil
			})
		case "products":
			return d.Arr(func(d *jx.Decoder) error {
				spec, err := decodeProduct(d)
				if err != nil {
					return errors.Wrapf(err, "product #%d", len(doc.Products)+1)
				}
				doc.Products = append(doc.Products, spec)
				return nil
			})
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode inventory")
	}
	return &doc, nil
}

func decodePromotion(d *jx.Decoder) (PromotionSpec, error) {
	var spec PromotionSpec
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			spec.ID, err = d.Str()
		case "name":
			spec.Name, err = d.Str()
		case "type":
			var s string
			s, err = d.Str()
			spec.Type = promotion.Type(s)
		case "percent":
			spec.Percent, err = decodeDecimal(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		return nil
	})
	return spec, err
}

func decodeProduct(d *jx.Decoder) (ProductSpec, error) {
	var spec ProductSpec
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			spec.Name, err = d.Str()
		case "kind":
			var s string
			s, err = d.Str()
			spec.Kind = product.Kind(s)
		case "price":
			spec.Price, err = decodeDecimal(d)
		case "quantity":
			spec.Quantity, err = d.Int()
		case "maximum":
			spec.Maximum, err = d.Int()
		case "promotion":
			spec.Promotion, err = d.Str()
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		return nil
	})
	return spec, err
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	n, err := d.Num()
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(n.String())
}
