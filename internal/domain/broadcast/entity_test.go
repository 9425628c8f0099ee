//go:build unit

package broadcast_test

import (
	"testing"
	"time"

	"zenithstays/internal/domain/broadcast"
	"zenithstays/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BroadcastBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBroadcastBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestBroadcast(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBroadcastBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, broadcast.StatusOpen, actual.Status())
		assert.True(t, actual.IsOpen())
		assert.Nil(t, actual.AcceptedBy())
		assert.Nil(t, actual.AcceptedAt())
		assert.Equal(t, "Santorini", actual.Location().Value())
		assert.Equal(t, 3, actual.Stay().Nights())
	})

	t.Run("location validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty location",
				mutate: func(b *builder.BroadcastBuilder) { b.Location = "" },
				errIs:  broadcast.ErrEmptyLocation,
			},
			{
				name:   "whitespace only location",
				mutate: func(b *builder.BroadcastBuilder) { b.Location = "   " },
				errIs:  broadcast.ErrEmptyLocation,
			},
			{
				name:   "location with surrounding whitespace",
				mutate: func(b *builder.BroadcastBuilder) { b.Location = "  Lapland  " },
			},
		})
	})

	t.Run("stay window validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "check-in equals check-out",
				mutate: func(b *builder.BroadcastBuilder) {
					b.CheckOutDate = b.CheckInDate
				},
				errIs: broadcast.ErrInvalidStay,
			},
			{
				name: "check-in after check-out",
				mutate: func(b *builder.BroadcastBuilder) {
					b.CheckInDate, b.CheckOutDate = b.CheckOutDate, b.CheckInDate
				},
				errIs: broadcast.ErrInvalidStay,
			},
			{
				name: "zero check-in date",
				mutate: func(b *builder.BroadcastBuilder) {
					b.CheckInDate = time.Time{}
				},
				errIs: broadcast.ErrMissingDates,
			},
			{
				name: "single night stay",
				mutate: func(b *builder.BroadcastBuilder) {
					b.CheckOutDate = b.CheckInDate.AddDate(0, 0, 1)
				},
			},
		})
	})

	t.Run("guest count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero guests",
				mutate: func(b *builder.BroadcastBuilder) { b.Guests = 0 },
				errIs:  broadcast.ErrInvalidGuests,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.BroadcastBuilder) { b.Guests = -2 },
				errIs:  broadcast.ErrInvalidGuests,
			},
			{
				name:   "single guest",
				mutate: func(b *builder.BroadcastBuilder) { b.Guests = 1 },
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty phone",
				mutate: func(b *builder.BroadcastBuilder) { b.Phone = "" },
				errIs:  broadcast.ErrMissingPhone,
			},
			{
				name:   "whitespace only phone",
				mutate: func(b *builder.BroadcastBuilder) { b.Phone = "  " },
				errIs:  broadcast.ErrMissingPhone,
			},
		})
	})
}

func TestBroadcastAccept(t *testing.T) {
	t.Run("accepting an open broadcast claims it", func(t *testing.T) {
		b, err := builder.NewBroadcastBuilder().BuildDomain()
		require.NoError(t, err)

		ownerID := uuid.New()
		now := time.Now()
		require.NoError(t, b.Accept(ownerID, now))

		assert.Equal(t, broadcast.StatusAccepted, b.Status())
		assert.False(t, b.IsOpen())
		require.NotNil(t, b.AcceptedBy())
		assert.Equal(t, ownerID, *b.AcceptedBy())
		require.NotNil(t, b.AcceptedAt())
		assert.Equal(t, now, *b.AcceptedAt())
	})

	t.Run("second accept loses", func(t *testing.T) {
		b, err := builder.NewBroadcastBuilder().BuildDomain()
		require.NoError(t, err)

		winner := uuid.New()
		require.NoError(t, b.Accept(winner, time.Now()))

		err = b.Accept(uuid.New(), time.Now())
		require.ErrorIs(t, err, broadcast.ErrAlreadyAccepted)
		assert.Equal(t, winner, *b.AcceptedBy())
	})
}
