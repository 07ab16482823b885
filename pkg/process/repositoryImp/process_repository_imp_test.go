package repositoryImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traza/database"
	"traza/entities"
	"traza/pkg/apperr"
)

func TestListByLotLatestWashFirst(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := New(db)
	ctx := context.Background()
	base := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	var ids []uint
	for _, off := range []time.Duration{0, 2 * time.Hour, time.Hour, 2 * time.Hour} {
		p := &entities.Process{LotID: 1, WashedAt: base.Add(off), PackagedAt: base.Add(off + time.Hour), Quantity: 1}
		require.NoError(t, repo.Create(ctx, p))
		ids = append(ids, p.ProcessID)
	}
	require.NoError(t, repo.Create(ctx, &entities.Process{LotID: 2, WashedAt: base, PackagedAt: base.Add(time.Hour), Quantity: 1}))

	out, err := repo.ListByLot(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 4)
	// same wash time: higher id first
	assert.Equal(t, ids[3], out[0].ProcessID)
	assert.Equal(t, ids[1], out[1].ProcessID)
	assert.Equal(t, ids[2], out[2].ProcessID)
	assert.Equal(t, ids[0], out[3].ProcessID)

	none, err := repo.ListByLot(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
