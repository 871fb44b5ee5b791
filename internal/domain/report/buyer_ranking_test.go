package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resinworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleBy(t *testing.T, ownerID uuid.UUID, buyer string, price int64) order.SaleItem {
	t.Helper()
	item, err := order.NewSaleItem(ownerID, "Figure", decimal.NewFromInt(price), order.SaleLocationWallapop, date(2024, time.March, 1), buyer)
	require.NoError(t, err)
	return *item
}

func TestBuyerRanking(t *testing.T) {
	ownerID := uuid.New()

	t.Run("totals per buyer sorted descending", func(t *testing.T) {
		items := []order.SaleItem{
			saleBy(t, ownerID, "Ana", 10),
			saleBy(t, ownerID, "Luis", 50),
			saleBy(t, ownerID, "Ana", 15),
		}

		rows := BuyerRanking(items)

		require.Len(t, rows, 2)
		assert.Equal(t, "Luis", rows[0].Name)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, "Ana", rows[1].Name)
		assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, 2, rows[1].Purchases)
	})

	t.Run("ignores missing buyers and non-positive prices", func(t *testing.T) {
		free, err := order.NewSaleItem(ownerID, "Giveaway", decimal.Zero, order.SaleLocationFriends, date(2024, time.March, 1), "Ana")
		require.NoError(t, err)

		items := []order.SaleItem{
			saleBy(t, ownerID, "", 10),
			saleBy(t, ownerID, "   ", 10),
			*free,
			saleBy(t, ownerID, "Ana", 5),
		}

		rows := BuyerRanking(items)

		require.Len(t, rows, 1)
		assert.Equal(t, "Ana", rows[0].Name)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(5)))
		assert.Equal(t, 1, rows[0].Purchases)
	})

	t.Run("matches buyers case insensitively keeping first spelling", func(t *testing.T) {
		items := []order.SaleItem{
			saleBy(t, ownerID, "Ana García", 10),
			saleBy(t, ownerID, "ana garcía", 20),
		}

		rows := BuyerRanking(items)

		require.Len(t, rows, 1)
		assert.Equal(t, "Ana García", rows[0].Name)
		assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(30)))
	})

	t.Run("equal totals are ordered by name", func(t *testing.T) {
		items := []order.SaleItem{
			saleBy(t, ownerID, "Luis", 20),
			saleBy(t, ownerID, "Ana", 20),
			saleBy(t, ownerID, "Berta", 20),
		}

		rows := BuyerRanking(items)

		require.Len(t, rows, 3)
		assert.Equal(t, "Ana", rows[0].Name)
		assert.Equal(t, "Berta", rows[1].Name)
		assert.Equal(t, "Luis", rows[2].Name)
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		assert.Empty(t, BuyerRanking(nil))
	})
}
