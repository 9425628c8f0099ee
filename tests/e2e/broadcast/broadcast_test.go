//go:build e2e

package broadcast_test

import (
	"net/http"
	"sync"
	"testing"

	"zenithstays/internal/domain/user"
	"zenithstays/internal/handler/dto/response"
	"zenithstays/tests/common/authtest"
	"zenithstays/tests/common/builder"
	"zenithstays/tests/common/dbtest"
	"zenithstays/tests/common/httptest"
	"zenithstays/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	broadcastsURL = "/api/broadcasts"
	ownerFeedURL  = "/api/broadcasts/owner"
)

type BroadcastSuite struct {
	e2e.SharedSuite
}

func (s *BroadcastSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBroadcastSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BroadcastSuite))
}

func (s *BroadcastSuite) submitBroadcast(t *testing.T, token string, location string) response.BroadcastResponse {
	t.Helper()

	reqBody := builder.NewBroadcastBuilder().
		With(func(b *builder.BroadcastBuilder) {
			b.Location = location
		}).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, broadcastsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BroadcastResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

// =============================================================================
// TestSubmitBroadcast - Broadcast submission API tests
// =============================================================================

func (s *BroadcastSuite) TestSubmitBroadcast() {
	s.Run("Normal case: Customer can submit a broadcast request", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBroadcastBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, broadcastsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := response.BroadcastResponse{
			CustomerName: "guest@example.com",
			Location:     "Santorini",
			Guests:       2,
			Pets:         false,
			Phone:        "+306900000001",
			Status:       "open",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BroadcastResponse{},
				"ID", "CustomerID", "CheckInDate", "CheckOutDate", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Broadcast response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Missing phone falls back to the profile number", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest2@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBroadcastBuilder().
			With(func(b *builder.BroadcastBuilder) {
				b.Phone = ""
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, broadcastsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Equal(t, "+306900000099", actual.Phone, "should use the phone stored on the profile")
	})

	s.Run("Error case: Invalid guest count is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest3@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBroadcastBuilder().
			With(func(b *builder.BroadcastBuilder) {
				b.Guests = -1
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, broadcastsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Auth test: Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewBroadcastBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, broadcastsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestOwnerFeed - Owner-facing open broadcast listing
// =============================================================================

func (s *BroadcastSuite) TestOwnerFeed() {
	s.Run("Normal case: Owner sees open broadcasts matching their listings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleOwner))
		dbtest.CreateTestProperty(t, s.DB, ownerID, "Cliffside Villa", "Santorini, Greece")

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")
		s.submitBroadcast(t, customerToken, "Lisbon")

		ownerToken := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerFeedURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var feed []response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &feed)
		require.NoError(t, err)
		require.Len(t, feed, 1, "only the location-matching broadcast should appear")
		require.Equal(t, created.ID, feed[0].ID)
		require.Equal(t, "Santorini", feed[0].Location)
		require.Equal(t, "open", feed[0].Status)
	})

	s.Run("Normal case: Accepted broadcasts drop out of the feed", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleOwner))
		dbtest.CreateTestProperty(t, s.DB, ownerID, "Cliffside Villa", "Santorini, Greece")

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")

		ownerToken := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		aw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath(created.ID.String()), nil, ownerToken)
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerFeedURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var feed []response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &feed)
		require.NoError(t, err)
		require.Empty(t, feed)
	})

	s.Run("Normal case: Feed matches the same rule as the submit fan-out", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleOwner))
		dbtest.CreateTestProperty(t, s.DB, ownerID, "Cliffside Villa", "Santorini, Greece")

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		// Contained in the listing location: pushed at submit time, so it
		// must appear in the feed too.
		contained := s.submitBroadcast(t, customerToken, "Santorini")
		// Strictly wider than the listing location: never pushed, so the
		// feed must not resurface it either.
		s.submitBroadcast(t, customerToken, "Santorini, Greece and Crete")

		ownerToken := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerFeedURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var feed []response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &feed)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		require.Equal(t, contained.ID, feed[0].ID)
	})

	s.Run("Normal case: Owner without listings gets an empty array", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "host2@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerFeedURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("Authorization test: Customer role is rejected", func() {
		t := s.T()

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerFeedURL, nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestAcceptBroadcast - Atomic first-wins acceptance
// =============================================================================

func (s *BroadcastSuite) TestAcceptBroadcast() {
	s.Run("Normal case: Owner accepts an open broadcast", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleOwner))
		dbtest.CreateTestProperty(t, s.DB, ownerID, "Cliffside Villa", "Santorini, Greece")

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")

		ownerToken := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath(created.ID.String()), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var accepted response.BroadcastResponse
		err := httptest.DecodeResponseBody(t, w.Body, &accepted)
		require.NoError(t, err)
		require.Equal(t, "accepted", accepted.Status)
		require.NotNil(t, accepted.AcceptedBy)
		require.Equal(t, ownerID, *accepted.AcceptedBy)
		require.NotNil(t, accepted.AcceptedAt)
	})

	s.Run("Error case: Second accept of the same broadcast fails", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleOwner))
		dbtest.CreateTestUser(t, s.DB, "host2@example.com", string(user.RoleOwner))

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")

		firstToken := authtest.LoginUser(t, s.Router, "host@example.com", "password123")
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath(created.ID.String()), nil, firstToken)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		secondToken := authtest.LoginUser(t, s.Router, "host2@example.com", "password123")
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath(created.ID.String()), nil, secondToken)
		require.Equal(t, http.StatusBadRequest, w2.Code, "an already taken broadcast cannot be accepted again")
	})

	s.Run("Race test: Concurrent accepts yield exactly one winner", func() {
		t := s.T()

		const contenders = 8

		tokens := make([]string, contenders)
		for i := range contenders {
			email := "racer" + string(rune('a'+i)) + "@example.com"
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleOwner))
		}

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")

		results := make([]int, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPut,
					broadcastAcceptPath(created.ID.String()), nil, tokens[idx])
				results[idx] = w.Code
			}(i)
		}
		wg.Wait()

		wins, losses := 0, 0
		for _, code := range results {
			switch code {
			case http.StatusOK:
				wins++
			case http.StatusBadRequest:
				losses++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, wins, "exactly one contender should win")
		require.Equal(t, contenders-1, losses)
	})

	s.Run("Error case: Unknown broadcast returns not found", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath("b6fd31a2-7e3f-4f29-9f37-0f5a4f6f0c11"), nil, ownerToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Malformed broadcast id returns bad request", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath("not-a-uuid"), nil, ownerToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Authorization test: Customer role cannot accept", func() {
		t := s.T()

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleCustomer))
		created := s.submitBroadcast(t, customerToken, "Santorini")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			broadcastAcceptPath(created.ID.String()), nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func broadcastAcceptPath(id string) string {
	return broadcastsURL + "/" + id + "/accept"
}
