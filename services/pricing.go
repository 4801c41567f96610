package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/shopspring/decimal"
)

// Client-input failures from order assembly. All of them fire before any
// write happens, so a failed order leaves nothing behind.
var (
	ErrEmptyOrder      = errors.New("el pedido debe contener al menos un item")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrItemUnavailable = errors.New("item no disponible")
	ErrMissingAddress  = errors.New("se requiere una dirección de envío")
)

// CatalogLookup is the menu side of order assembly. The repository
// implementation backs it in production; tests use an in-memory map.
type CatalogLookup interface {
	MenuItemByID(id uint) (*entity.MenuItem, error)
}

// CartLine is one storefront cart entry: a menu item reference plus the
// chosen size/extras. Prices are never trusted from the client.
type CartLine struct {
	MenuItemID uint     `json:"menuItemId" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required"`
	Size       string   `json:"size"`
	Extras     []string `json:"extras"`
	Notes      string   `json:"notes"`
}

// Pricing holds the tunables of the quote: tax rate, flat delivery fee and
// the subtotal above which delivery is free. Passed in explicitly, never
// read from globals.
type Pricing struct {
	TaxRate             decimal.Decimal
	DeliveryFee         decimal.Decimal
	FreeDeliveryMinimum decimal.Decimal
}

// Quote is the fully priced order before persistence.
type Quote struct {
	Lines        []entity.OrderLine
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
	PointsEarned int
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2) // half-up
}

// BuildQuote resolves authoritative prices for every cart line and computes
// subtotal, tax, delivery fee and total, rounding to 2 decimals at each
// stage.
//
// Two quirks are intentional and load-bearing for old storefront payloads:
// a size name that does not exist on the item falls back to the base price,
// and extra names that do not match anything are silently dropped.
func BuildQuote(lines []CartLine, orderType string, catalog CatalogLookup, cfg Pricing) (*Quote, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d", ErrInvalidQuantity, l.MenuItemID)
		}
	}

	q := &Quote{Lines: make([]entity.OrderLine, 0, len(lines))}
	subtotal := decimal.Zero

	for _, l := range lines {
		item, err := catalog.MenuItemByID(l.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || !item.IsAvailable {
			return nil, fmt.Errorf("%w: item %d", ErrItemUnavailable, l.MenuItemID)
		}

		unit := item.BasePrice
		var sizePrice *decimal.Decimal
		if l.Size != "" {
			if p, ok := item.SizePrice(l.Size); ok {
				unit = p
				sizePrice = &p
			}
		}

		extrasSum := decimal.Zero
		var selected []entity.ExtraSelection
		for _, name := range l.Extras {
			if extra, ok := item.Extra(name); ok {
				extrasSum = extrasSum.Add(extra.Price)
				selected = append(selected, entity.ExtraSelection{Name: extra.Name, Price: extra.Price})
			}
		}

		lineTotal := round2(unit.Add(extrasSum).Mul(decimal.NewFromInt(int64(l.Quantity))))
		subtotal = subtotal.Add(lineTotal)

		q.Lines = append(q.Lines, entity.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Image:      item.Image,
			BasePrice:  item.BasePrice,
			Size:       l.Size,
			SizePrice:  sizePrice,
			Extras:     selected,
			Quantity:   l.Quantity,
			Notes:      l.Notes,
			Total:      lineTotal,
		})
	}

	q.Subtotal = round2(subtotal)
	q.Tax = round2(q.Subtotal.Mul(cfg.TaxRate))

	q.DeliveryFee = decimal.Zero
	if orderType == entity.TypeDelivery && q.Subtotal.LessThan(cfg.FreeDeliveryMinimum) {
		q.DeliveryFee = round2(cfg.DeliveryFee)
	}

	q.Total = round2(q.Subtotal.Add(q.Tax).Add(q.DeliveryFee))
	q.PointsEarned = int(q.Total.IntPart()) // 1 punto por peso
	return q, nil
}

// NewOrderNumber builds LP + yymmdd + a 4-digit random suffix. Collisions
// are rare but real; the unique index on order_number plus the retry loop
// in OrderService.Create is the backstop.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("LP%s%04d", now.Format("060102"), rand.IntN(10000))
}

// NewReservationNumber builds RES + yymmdd + a 3-digit random suffix.
func NewReservationNumber(now time.Time) string {
	return fmt.Sprintf("RES%s%03d", now.Format("060102"), rand.IntN(1000))
}
