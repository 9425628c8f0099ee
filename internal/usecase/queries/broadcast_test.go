//go:build unit

package queries_test

import (
	"context"
	"testing"

	"zenithstays/internal/usecase/queries"
	"zenithstays/tests/common/builder"
	queriesmock "zenithstays/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListOpenForOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("resolves the owner's listing locations before querying broadcasts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		broadcasts := queriesmock.NewMockBroadcastReadStore(ctrl)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewBroadcastQueries(broadcasts, listings)

		locations := []string{"Santorini, Greece", "Lapland, Finland"}
		expected := []*queries.BroadcastView{builder.NewBroadcastBuilder().BuildView()}

		listings.EXPECT().DistinctLocationsByOwner(ctx, ownerID).Return(locations, nil)
		broadcasts.EXPECT().FindOpenByLocations(ctx, locations).Return(expected, nil)

		views, err := q.ListOpenForOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, expected, views)
	})

	t.Run("owner without listings gets an empty list without touching broadcasts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		broadcasts := queriesmock.NewMockBroadcastReadStore(ctrl)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewBroadcastQueries(broadcasts, listings)

		listings.EXPECT().DistinctLocationsByOwner(ctx, ownerID).Return([]string{}, nil)

		views, err := q.ListOpenForOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views)
	})

	t.Run("listing lookup failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		broadcasts := queriesmock.NewMockBroadcastReadStore(ctrl)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		q := queries.NewBroadcastQueries(broadcasts, listings)

		listings.EXPECT().DistinctLocationsByOwner(ctx, ownerID).Return(nil, errors.New("query failed"))

		_, err := q.ListOpenForOwner(ctx, ownerID)
		require.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	broadcasts := queriesmock.NewMockBroadcastReadStore(ctrl)
	listings := queriesmock.NewMockListingReadStore(ctrl)
	q := queries.NewBroadcastQueries(broadcasts, listings)

	expected := builder.NewBroadcastBuilder().BuildView()
	broadcasts.EXPECT().FindByID(ctx, expected.ID).Return(expected, nil)

	view, err := q.GetByID(ctx, expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected, view)
}
