package services

import (
	"testing"

	"backend/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDerived asserts the invariant that the derived values always equal
// what the line list says.
func checkDerived(t *testing.T, svc *CartService, userID uint) *CartView {
	t.Helper()
	view, err := svc.Get(userID)
	require.NoError(t, err)

	var wantItems int
	var wantSubtotal int64
	for _, it := range view.Cart.Items {
		wantItems += it.Qty
		wantSubtotal += it.UnitPrice * int64(it.Qty)
	}
	assert.Equal(t, wantItems, view.TotalItems)
	assert.Equal(t, wantSubtotal, view.Subtotal)
	if len(view.Cart.Items) == 0 {
		assert.Zero(t, view.ActiveRestaurantID)
	}
	return view
}

func TestCartTotalsTrackLines(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, m2, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	svc := newCartService(db)

	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID}))
	v := checkDerived(t, svc, u.ID)
	assert.Equal(t, 1, v.TotalItems)
	assert.Equal(t, money.FromRupees(250), v.Subtotal)

	// same menu merges into one line
	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID, Qty: 2}))
	v = checkDerived(t, svc, u.ID)
	require.Len(t, v.Cart.Items, 1)
	assert.Equal(t, 3, v.Cart.Items[0].Qty)

	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m2.ID}))
	v = checkDerived(t, svc, u.ID)
	assert.Equal(t, 4, v.TotalItems)
	assert.Equal(t, money.FromRupees(250*3+60), v.Subtotal)
	assert.Equal(t, r1.ID, v.ActiveRestaurantID)

	require.NoError(t, svc.UpdateQty(u.ID, m1.ID, 1))
	v = checkDerived(t, svc, u.ID)
	assert.Equal(t, 2, v.TotalItems)

	require.NoError(t, svc.RemoveItem(u.ID, m2.ID))
	checkDerived(t, svc, u.ID)

	require.NoError(t, svc.Clear(u.ID))
	v = checkDerived(t, svc, u.ID)
	assert.Zero(t, v.TotalItems)
	assert.Zero(t, v.Subtotal)
}

func TestCartRejectsDifferentRestaurant(t *testing.T) {
	db := newTestDB(t)
	r1, r2, m1, _, m3 := seedCatalog(t, db)
	u := seedUser(t, db)
	svc := newCartService(db)

	// empty cart conflicts with nothing
	conflict, err := svc.IsItemFromDifferentRestaurant(u.ID, r2.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID}))

	conflict, err = svc.IsItemFromDifferentRestaurant(u.ID, r2.ID)
	require.NoError(t, err)
	assert.True(t, conflict)
	conflict, err = svc.IsItemFromDifferentRestaurant(u.ID, r1.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	// the store enforces the invariant itself, even without the pre-check
	err = svc.Add(u.ID, &AddToCartIn{RestaurantID: r2.ID, MenuID: m3.ID})
	assert.ErrorIs(t, err, ErrDifferentRestaurant)
	v := checkDerived(t, svc, u.ID)
	assert.Equal(t, r1.ID, v.ActiveRestaurantID)
	assert.Equal(t, 1, v.TotalItems)

	// clearing releases the lock; the other restaurant is accepted now
	require.NoError(t, svc.Clear(u.ID))
	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r2.ID, MenuID: m3.ID}))
	v = checkDerived(t, svc, u.ID)
	assert.Equal(t, r2.ID, v.ActiveRestaurantID)
}

func TestCartMenuMustBelongToRestaurant(t *testing.T) {
	db := newTestDB(t)
	r1, r2, _, _, m3 := seedCatalog(t, db)
	u := seedUser(t, db)
	svc := newCartService(db)

	// m3 belongs to r2; pairing it with r1 is rejected
	err := svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m3.ID})
	assert.ErrorIs(t, err, ErrMenuNotInRestaurant)

	// the rejected add must not have locked the cart to either restaurant
	v := checkDerived(t, svc, u.ID)
	assert.Empty(t, v.Cart.Items)
	assert.Zero(t, v.ActiveRestaurantID)
	conflict, err := svc.IsItemFromDifferentRestaurant(u.ID, r2.ID)
	require.NoError(t, err)
	assert.False(t, conflict)

	// the same menu under its real restaurant goes straight in
	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r2.ID, MenuID: m3.ID}))
	v = checkDerived(t, svc, u.ID)
	assert.Equal(t, r2.ID, v.ActiveRestaurantID)
	assert.Equal(t, 1, v.TotalItems)
}

func TestUpdateQtyIdempotent(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	svc := newCartService(db)

	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID}))

	require.NoError(t, svc.UpdateQty(u.ID, m1.ID, 5))
	v1 := checkDerived(t, svc, u.ID)

	require.NoError(t, svc.UpdateQty(u.ID, m1.ID, 5))
	v2 := checkDerived(t, svc, u.ID)

	assert.Equal(t, v1.TotalItems, v2.TotalItems)
	assert.Equal(t, v1.Subtotal, v2.Subtotal)
	assert.Equal(t, len(v1.Cart.Items), len(v2.Cart.Items))
}

func TestUpdateQtyZeroRemovesAndReleasesLock(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	svc := newCartService(db)

	require.NoError(t, svc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID, Qty: 2}))
	require.NoError(t, svc.UpdateQty(u.ID, m1.ID, 0))

	v := checkDerived(t, svc, u.ID)
	assert.Empty(t, v.Cart.Items)
	assert.Zero(t, v.ActiveRestaurantID)
}

func TestEmptyCartLoadIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	svc := newCartService(db)

	// no cart row exists yet; Get degrades to an empty cart
	v, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, v.Cart.Items)
	assert.Zero(t, v.Subtotal)
}
