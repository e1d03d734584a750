package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rescisao-engine/statement"
	"github.com/warp/rescisao-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id, employee string, createdAt time.Time) sqlite.CalculationRecord {
	return sqlite.CalculationRecord{
		ID:              id,
		EmployeeName:    employee,
		TerminationType: "sem_justa_causa",
		NetTotal:        13227.73,
		InputJSON:       `{"salary":3000}`,
		ResultJSON:      `{"net_total":13227.73}`,
		CreatedAt:       createdAt,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := record("calc-1", "Maria Souza", time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveCalculation(ctx, rec))

	got, err := store.GetCalculation(ctx, "calc-1")
	require.NoError(t, err)
	assert.Equal(t, rec.EmployeeName, got.EmployeeName)
	assert.Equal(t, rec.TerminationType, got.TerminationType)
	assert.Equal(t, rec.NetTotal, got.NetTotal)
	assert.Equal(t, rec.ResultJSON, got.ResultJSON)
	assert.True(t, got.CreatedAt.Equal(rec.CreatedAt))
}

func TestStore_GetMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCalculation(context.Background(), "nope")
	assert.True(t, statement.IsNotFound(err))
}

func TestStore_ListNewestFirstWithFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveCalculation(ctx, record("calc-1", "Maria Souza", base)))
	require.NoError(t, store.SaveCalculation(ctx, record("calc-2", "João Lima", base.Add(time.Hour))))
	require.NoError(t, store.SaveCalculation(ctx, record("calc-3", "Maria Souza", base.Add(2*time.Hour))))

	all, err := store.ListCalculations(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "calc-3", all[0].ID)
	assert.Equal(t, "calc-1", all[2].ID)

	maria, err := store.ListCalculations(ctx, "Maria Souza")
	require.NoError(t, err)
	require.Len(t, maria, 2)
	for _, rec := range maria {
		assert.Equal(t, "Maria Souza", rec.EmployeeName)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCalculation(ctx, record("calc-1", "Maria Souza", time.Now().UTC())))
	require.NoError(t, store.DeleteCalculation(ctx, "calc-1"))

	_, err := store.GetCalculation(ctx, "calc-1")
	assert.True(t, statement.IsNotFound(err))

	err = store.DeleteCalculation(ctx, "calc-1")
	assert.True(t, statement.IsNotFound(err))
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := record("calc-1", "Maria Souza", time.Now().UTC())
	require.NoError(t, store.SaveCalculation(ctx, rec))
	assert.Error(t, store.SaveCalculation(ctx, rec))
}
