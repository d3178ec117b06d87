package kv

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fixtures "github.com/vsinha/supplychain/pkg/infrastructure/testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Options{InMemory: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()
	want := fixtures.BuildSupplyChainTestData()

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Counts(), got.Counts())
	assert.Equal(t, want.Suppliers, got.Suppliers)
	assert.Equal(t, want.Products, got.Products)
	assert.Equal(t, want.Warehouses, got.Warehouses)
	assert.Equal(t, want.Shipments, got.Shipments)
	assert.True(t, got.Shipments[11].InTransit())
}

func TestStore_LoadOrdersByID(t *testing.T) {
	store := openMemory(t)
	ds := fixtures.BuildSupplyChainTestData()
	// insertion order differs from id order and ids 10 and 11 need padding to sort after 9
	ds.Shipments[0], ds.Shipments[10] = ds.Shipments[10], ds.Shipments[0]

	require.NoError(t, store.Save(context.Background(), ds))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	for i, s := range got.Shipments {
		assert.Equal(t, int64(i+1), s.ID)
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, fixtures.BuildSupplyChainTestData()))
	require.NoError(t, store.Save(ctx, fixtures.BuildSingleShipmentData()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Shipments, 1)
	assert.Len(t, got.Suppliers, 1)
}

func TestStore_FailedSaveKeepsPreviousSnapshot(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()
	want := fixtures.BuildSupplyChainTestData()
	require.NoError(t, store.Save(ctx, want))

	bad := fixtures.BuildSingleShipmentData()
	duplicate := *bad.Shipments[0]
	bad.Shipments = append(bad.Shipments, &duplicate)

	err := store.Save(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key shipment/")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Counts(), got.Counts())
	assert.Len(t, got.Shipments, 12)
	assert.Equal(t, want.Suppliers, got.Suppliers)
}

func TestStore_LoadEmpty(t *testing.T) {
	got, err := openMemory(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Shipments)
}

func TestStore_CorruptValue(t *testing.T) {
	store := openMemory(t)
	require.NoError(t, store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(ShipmentPrefix, 1), []byte(`{"shipment_id":1,"order_date":"01/01/2023"}`))
	}))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order_date")
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Options{}, nil)
	assert.Error(t, err)
}

func TestStore_PersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(Options{Path: dir}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, fixtures.BuildSingleShipmentData()))
	require.NoError(t, store.Close())

	reopened, err := Open(Options{Path: dir}, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Shipments, 1)
}
