package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"backend/configs"
	"backend/entity"
	"backend/pkg/money"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory sqlite database. Each test gets its own
// named shared-cache DB so gorm's connection pool sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared&_busy_timeout=5000", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

// seedCatalog creates two restaurants with a couple of menus each and returns
// them for use in cart/checkout tests.
func seedCatalog(t *testing.T, db *gorm.DB) (r1, r2 entity.Restaurant, m1, m2, m3 entity.Menu) {
	t.Helper()
	r1 = entity.Restaurant{Name: "Spice Garden", DeliveryETA: "25-30 min", IsOpen: true}
	r2 = entity.Restaurant{Name: "Wok This Way", DeliveryETA: "30-35 min", IsOpen: true}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)

	m1 = entity.Menu{MenuName: "Paneer Butter Masala", Price: money.FromRupees(250), IsVeg: true, RestaurantID: r1.ID}
	m2 = entity.Menu{MenuName: "Garlic Naan", Price: money.FromRupees(60), IsVeg: true, RestaurantID: r1.ID}
	m3 = entity.Menu{MenuName: "Veg Hakka Noodles", Price: money.FromRupees(180), IsVeg: true, RestaurantID: r2.ID}
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)
	require.NoError(t, db.Create(&m3).Error)
	return
}

func seedCoupons(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, configs.SeedCoupons(db))
}

func seedUser(t *testing.T, db *gorm.DB) entity.User {
	t.Helper()
	u := entity.User{Email: fmt.Sprintf("user%d@example.com", testDBSeq.Load()), Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) entity.Address {
	t.Helper()
	a := entity.Address{
		UserID: userID, Label: "Home", Address: "12 MG Road",
		City: "Bengaluru", State: "Karnataka", Pincode: "560001", IsDefault: true,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewOrderRepository(db), nil)
}

func newPricingService(db *gorm.DB) *PricingService {
	return NewPricingService(db, repository.NewCouponRepository(db), repository.NewCartRepository(db))
}
