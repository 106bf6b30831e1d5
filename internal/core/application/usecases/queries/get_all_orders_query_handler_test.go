package queries_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should list orders with line items and totals", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		handler := queries.NewGetAllOrdersQueryHandler(gormDB)

		eatInID := kernel.NewUUID()
		deliveryID := kernel.NewUUID()
		tableID := kernel.NewUUID()
		cutletID := kernel.NewUUID()
		riceID := kernel.NewUUID()

		orderRows := sqlmock.NewRows([]string{"id", "order_type", "status", "delivery_address", "order_table_id"}).
			AddRow(eatInID.String(), int(order.TypeEatIn), int(order.Waiting), nil, tableID.String()).
			AddRow(deliveryID.String(), int(order.TypeDelivery), int(order.Accepted), "221B Baker Street", nil)
		mock.ExpectQuery(`FROM orders`).WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows([]string{"order_id", "menu_id", "quantity", "price"}).
			AddRow(eatInID.String(), cutletID.String(), int64(2), int64(120000)).
			AddRow(deliveryID.String(), cutletID.String(), int64(1), int64(120000)).
			AddRow(deliveryID.String(), riceID.String(), int64(3), int64(80000))
		mock.ExpectQuery(`FROM order_line_items`).WillReturnRows(itemRows)

		orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		require.NoError(t, err)
		require.Len(t, orders, 2)

		eatIn := orders[0]
		assert.True(t, eatInID.IsEqual(eatIn.ID))
		assert.Equal(t, "EAT_IN", eatIn.OrderType)
		assert.Equal(t, "WAITING", eatIn.Status)
		assert.Empty(t, eatIn.DeliveryAddress)
		require.NotNil(t, eatIn.OrderTableID)
		assert.True(t, tableID.IsEqual(*eatIn.OrderTableID))
		require.Len(t, eatIn.LineItems, 1)
		assert.True(t, cutletID.IsEqual(eatIn.LineItems[0].MenuID))
		assert.Equal(t, int64(2), eatIn.LineItems[0].Quantity)
		assert.Equal(t, int64(120000), eatIn.LineItems[0].Price)
		assert.Equal(t, int64(240000), eatIn.Total)

		delivery := orders[1]
		assert.True(t, deliveryID.IsEqual(delivery.ID))
		assert.Equal(t, "DELIVERY", delivery.OrderType)
		assert.Equal(t, "ACCEPTED", delivery.Status)
		assert.Equal(t, "221B Baker Street", delivery.DeliveryAddress)
		assert.Nil(t, delivery.OrderTableID)
		require.Len(t, delivery.LineItems, 2)
		assert.Equal(t, int64(360000), delivery.Total)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return an empty slice when no orders exist", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		handler := queries.NewGetAllOrdersQueryHandler(gormDB)

		mock.ExpectQuery(`FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_type", "status", "delivery_address", "order_table_id"}))
		mock.ExpectQuery(`FROM order_line_items`).
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "menu_id", "quantity", "price"}))

		orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		require.NoError(t, err)
		assert.Empty(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should fail for a zero-value query", func(t *testing.T) {
		gormDB, _ := newTestDB(t)
		handler := queries.NewGetAllOrdersQueryHandler(gormDB)

		var query queries.GetAllOrdersQuery
		_, err := handler.Handle(ctx, query)
		require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
	})

	t.Run("should propagate database errors", func(t *testing.T) {
		gormDB, mock := newTestDB(t)
		handler := queries.NewGetAllOrdersQueryHandler(gormDB)

		dbErr := errors.New("connection reset")
		mock.ExpectQuery(`FROM orders`).WillReturnError(dbErr)

		_, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		require.ErrorIs(t, err, dbErr)
	})
}
