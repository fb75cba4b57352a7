package services

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/pkg/money"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type decliningAuthorizer struct{}

func (decliningAuthorizer) Authorize(entity.PaymentMethod, int64) (string, error) {
	return "", errors.New("issuer declined")
}

func newCheckoutService(db *gorm.DB, auth PaymentAuthorizer) *CheckoutService {
	if auth == nil {
		auth = NewSimulatedAuthorizer()
	}
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		repository.NewAddressRepository(db),
		newPricingService(db),
		auth,
		nil,
	)
}

func TestCheckoutValidation(t *testing.T) {
	base := func() *CheckoutReq {
		return &CheckoutReq{AddressID: 1, PaymentMethod: entity.PayCard,
			Card: CardIn{Number: "4111111111111111", Name: "A Kumar", Expiry: "12/27", CVV: "123"}}
	}

	t.Run("no address", func(t *testing.T) {
		r := base()
		r.AddressID = 0
		assert.ErrorIs(t, r.Validate(), ErrNoAddressSelected)
	})

	t.Run("card number 15 digits rejected", func(t *testing.T) {
		r := base()
		r.Card.Number = "4111 1111 1111"
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "card.number", ve.Field)
	})

	t.Run("card number with spaces normalizes", func(t *testing.T) {
		r := base()
		r.Card.Number = "4111 1111 1111 1111"
		assert.NoError(t, r.Validate())
	})

	t.Run("card name required", func(t *testing.T) {
		r := base()
		r.Card.Name = "  "
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "card.name", ve.Field)
	})

	t.Run("expiry format", func(t *testing.T) {
		r := base()
		r.Card.Expiry = "13/27"
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "card.expiry", ve.Field)
	})

	t.Run("cvv three digits", func(t *testing.T) {
		r := base()
		r.Card.CVV = "12"
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "card.cvv", ve.Field)
	})

	t.Run("upi must contain at sign", func(t *testing.T) {
		r := &CheckoutReq{AddressID: 1, PaymentMethod: entity.PayUPI, UpiID: "nobody"}
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "upiId", ve.Field)

		r.UpiID = "nobody@upi"
		assert.NoError(t, r.Validate())
	})

	t.Run("wallet from fixed list", func(t *testing.T) {
		r := &CheckoutReq{AddressID: 1, PaymentMethod: entity.PayWallet, Wallet: "CoinPurse"}
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "wallet", ve.Field)

		r.Wallet = "Paytm"
		assert.NoError(t, r.Validate())
	})

	t.Run("bank from fixed list", func(t *testing.T) {
		r := &CheckoutReq{AddressID: 1, PaymentMethod: entity.PayNetBanking, Bank: "Acme Bank"}
		var ve *ValidationError
		require.ErrorAs(t, r.Validate(), &ve)
		assert.Equal(t, "bank", ve.Field)
	})

	t.Run("cod needs nothing extra", func(t *testing.T) {
		r := &CheckoutReq{AddressID: 1, PaymentMethod: entity.PayCashOnDelivery}
		assert.NoError(t, r.Validate())
	})
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	addr := seedAddress(t, db, u.ID)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, nil)

	require.NoError(t, cartSvc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID, Qty: 2}))

	order, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     addr.ID,
		PaymentMethod: entity.PayUPI,
		UpiID:         "someone@upi",
		Tip:           money.FromRupees(20),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPlaced, order.Status)
	assert.Equal(t, r1.Name, order.RestaurantName)
	assert.Equal(t, money.FromRupees(500), order.Subtotal)
	assert.Equal(t, int64(50000+4000+2500+2000), order.Total)
	assert.Contains(t, order.DeliveryAddress, "560001")

	items, err := repository.NewOrderRepository(db).GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, m1.MenuName, items[0].Name)
	assert.Equal(t, 2, items[0].Qty)

	var p entity.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&p).Error)
	assert.Equal(t, entity.PaymentAuthorized, p.Status)
	assert.NotEmpty(t, p.Reference)

	// cart cleared inside the same transaction
	view, err := cartSvc.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.Items)
	assert.Zero(t, view.ActiveRestaurantID)
}

func TestCheckoutCODSkipsAuthorization(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	addr := seedAddress(t, db, u.ID)
	cartSvc := newCartService(db)
	// a declining authorizer proves COD never reaches it
	svc := newCheckoutService(db, decliningAuthorizer{})

	require.NoError(t, cartSvc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID}))

	order, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     addr.ID,
		PaymentMethod: entity.PayCashOnDelivery,
	})
	require.NoError(t, err)

	var p entity.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&p).Error)
	assert.Equal(t, entity.PaymentPending, p.Status)
	assert.Empty(t, p.Reference)
}

func TestCheckoutPaymentFailureLeavesCart(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	addr := seedAddress(t, db, u.ID)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db, decliningAuthorizer{})

	require.NoError(t, cartSvc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID, Qty: 3}))

	_, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     addr.ID,
		PaymentMethod: entity.PayUPI,
		UpiID:         "someone@upi",
	})
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// nothing happened: no order, cart as it was
	var cnt int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&cnt).Error)
	assert.Zero(t, cnt)

	view, err := cartSvc.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalItems)
}

func TestCheckoutAddressMustBelongToUser(t *testing.T) {
	db := newTestDB(t)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	other := entity.User{Email: "other@example.com", Password: "x"}
	require.NoError(t, db.Create(&other).Error)
	otherAddr := seedAddress(t, db, other.ID)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db, nil)
	require.NoError(t, cartSvc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID}))

	_, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     otherAddr.ID,
		PaymentMethod: entity.PayCashOnDelivery,
	})
	assert.ErrorIs(t, err, ErrNoAddressSelected)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	addr := seedAddress(t, db, u.ID)
	svc := newCheckoutService(db, nil)

	_, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     addr.ID,
		PaymentMethod: entity.PayCashOnDelivery,
	})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutAppliesCartCoupon(t *testing.T) {
	db := newTestDB(t)
	seedCoupons(t, db)
	r1, _, m1, _, _ := seedCatalog(t, db)
	u := seedUser(t, db)
	addr := seedAddress(t, db, u.ID)
	cartSvc := newCartService(db)
	pricingSvc := newPricingService(db)
	svc := newCheckoutService(db, nil)

	require.NoError(t, cartSvc.Add(u.ID, &AddToCartIn{RestaurantID: r1.ID, MenuID: m1.ID, Qty: 2}))
	_, _, err := pricingSvc.ApplyToCart(u.ID, "SAVE100")
	require.NoError(t, err)

	order, err := svc.Checkout(u.ID, &CheckoutReq{
		AddressID:     addr.ID,
		PaymentMethod: entity.PayCashOnDelivery,
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE100", order.CouponCode)
	assert.Equal(t, money.FromRupees(100), order.Discount)
	assert.Equal(t, int64(50000+4000+2500-10000), order.Total)
}
