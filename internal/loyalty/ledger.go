// Package loyalty holds the points ledger arithmetic and the validation
// rules that gate it. Everything in this package is a pure function: no
// I/O, no hidden state.
package loyalty

import "puntos-store/internal/model"

// Exchange rates of the rewards program. Earning and redeeming are
// intentionally asymmetric: a point costs 1000 pesos of spend to earn but
// is worth only 100 pesos of discount when redeemed. The 10:1 spread is
// the program's margin and must not be collapsed into a single rate.
const (
	// PesosPerPoint is the net spend required to accrue one point.
	PesosPerPoint = 1000

	// PesosPerRedemption is the price reduction bought by one point.
	PesosPerRedemption = 100
)

// Quote is the priced outcome of applying a redemption to a purchase.
type Quote struct {
	// Discount is the price reduction in pesos from the redeemed points.
	Discount int

	// FinalPrice is the amount actually paid after the discount.
	FinalPrice int

	// PointsEarned is the accrual on the final price.
	PointsEarned int

	// NewBalance is the customer's balance after the purchase.
	NewBalance int
}

// PointsEarned returns the points accrued by paying the given amount.
// Accrual uses floor division: 999 pesos earns 0 points, 1000 earns 1,
// 1999 still earns 1.
func PointsEarned(amount int) int {
	return amount / PesosPerPoint
}

// Price computes the quote for buying a product at the given price with
// the given points balance, redeeming redeem points. Callers must have
// already validated 0 <= redeem <= balance (see ParseRedemption); the
// only failure left is a discount larger than the price itself, which is
// a business constraint rather than an input error and is therefore
// checked after the balance gate.
func Price(price, balance, redeem int) (Quote, error) {
	discount := redeem * PesosPerRedemption
	if discount > price {
		return Quote{}, model.ErrDiscountExceedsPrice
	}

	final := price - discount
	earned := PointsEarned(final)

	return Quote{
		Discount:     discount,
		FinalPrice:   final,
		PointsEarned: earned,
		NewBalance:   balance - redeem + earned,
	}, nil
}
