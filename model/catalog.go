package model

import "github.com/gosimple/slug"

type Pack struct {
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	PerPack  int    `json:"perPack"`
	Label    string `json:"label"`
	Slug     string `json:"slug"`
	Savings  int    `json:"savings"`
}

type PaymentOption struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Popular bool   `json:"popular,omitempty"`
}

type DeliveryTerms struct {
	Cost         string `json:"cost"`
	Time         string `json:"time"`
	FreeDelivery bool   `json:"freeDelivery"`
}

// PricingStructure is region-level configuration, not persisted
type PricingStructure struct {
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currencySymbol"`
	Packs          []Pack          `json:"packs"`
	Delivery       DeliveryTerms   `json:"delivery"`
	PaymentMethods []PaymentOption `json:"paymentMethods"`
}

func newPack(quantity, price, savings int, label string) Pack {
	return Pack{
		Quantity: quantity,
		Price:    price,
		PerPack:  price / quantity,
		Label:    label,
		Slug:     slug.Make(label),
		Savings:  savings,
	}
}

var domesticPricing = PricingStructure{
	Currency:       "BDT",
	CurrencySymbol: "৳",
	Packs: []Pack{
		newPack(1, 300, 0, "Single Pack"),
		newPack(3, 900, 0, "3 Packs"),
		newPack(5, 1500, 0, "5 Packs - Best Value"),
	},
	Delivery: DeliveryTerms{
		Cost:         "standard",
		Time:         "2-3 business days",
		FreeDelivery: false,
	},
	PaymentMethods: []PaymentOption{
		{ID: "cod", Name: "Cash on Delivery", Popular: true},
		{ID: "bkash", Name: "bKash"},
		{ID: "bank", Name: "Bank Transfer"},
	},
}

var internationalPricing = PricingStructure{
	Currency:       "USD",
	CurrencySymbol: "$",
	Packs: []Pack{
		newPack(1, 15, 0, "Single Pack"),
		newPack(3, 40, 5, "3 Packs - Save $5"),
		newPack(5, 60, 15, "5 Packs - Save $15 (Best Value)"),
	},
	Delivery: DeliveryTerms{
		Cost:         "calculated",
		Time:         "7-14 business days",
		FreeDelivery: false,
	},
	PaymentMethods: []PaymentOption{
		{ID: "paypal", Name: "PayPal"},
		{ID: "card", Name: "Credit/Debit Card"},
		{ID: "international-bank", Name: "International Bank Transfer"},
	},
}

// GetPricingStructure resolves the catalog for a market region.
// Checkout always prices against the domestic catalog; the international
// one is presentational.
func GetPricingStructure(isDomestic bool) PricingStructure {
	if isDomestic {
		return domesticPricing
	}
	return internationalPricing
}

// FindPack looks a pack up by quantity in the domestic catalog
func FindPack(quantity int) (Pack, bool) {
	for _, p := range domesticPricing.Packs {
		if p.Quantity == quantity {
			return p, true
		}
	}
	return Pack{}, false
}
