package accounts

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bravequest/quest-engine/pkg/api"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
	"github.com/bravequest/quest-engine/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		created := &models.Account{Id: "acct-1", DisplayName: "Alex", Version: 1}
		mockStore.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).Return(created, nil)

		handler := NewAccountsHandler(mockStore)
		body, _ := json.Marshal(api.NewAccount{DisplayName: "Alex"})
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateAccount(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got api.Account
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, "acct-1", got.Id)
		assert.Equal(t, 1, got.Level)
		assert.Equal(t, "Novice Adventurer", got.LevelTitle)
		mockStore.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("CreateAccount", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil, storage.ErrConflict)

		handler := NewAccountsHandler(mockStore)
		body, _ := json.Marshal(api.NewAccount{Id: "acct-1", DisplayName: "Alex"})
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreateAccount(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockStore := new(mocks.Storage)

		handler := NewAccountsHandler(mockStore)
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()

		handler.CreateAccount(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "CreateAccount")
	})
}

func TestGetAccountById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		account := &models.Account{Id: "acct-1", DisplayName: "Alex", XPTotal: 150, CoinBalance: 15}
		mockStore.On("GetAccount", mock.Anything, "acct-1").Return(account, nil)

		handler := NewAccountsHandler(mockStore)
		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1", nil)
		rr := httptest.NewRecorder()

		handler.GetAccountById(rr, req, "acct-1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var got api.Account
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(150), got.XPTotal)
		assert.Equal(t, int64(15), got.CoinBalance)
		assert.Equal(t, 2, got.Level)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetAccount", mock.Anything, "acct-1").Return(nil, storage.ErrNotFound)

		handler := NewAccountsHandler(mockStore)
		req := httptest.NewRequest(http.MethodGet, "/accounts/acct-1", nil)
		rr := httptest.NewRecorder()

		handler.GetAccountById(rr, req, "acct-1")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestLeaderboard(t *testing.T) {
	t.Run("Sorted By XP Descending", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		accounts := []models.Account{
			{Id: "acct-1", DisplayName: "Alex", XPTotal: 50},
			{Id: "acct-2", DisplayName: "Sam", XPTotal: 500},
			{Id: "acct-3", DisplayName: "Robin", XPTotal: 120},
		}
		mockStore.On("ListAccounts", mock.Anything).Return(accounts, nil)

		handler := NewAccountsHandler(mockStore)
		req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		rr := httptest.NewRecorder()

		handler.Leaderboard(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []api.LeaderboardEntry
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 3)
		assert.Equal(t, "acct-2", got[0].AccountId)
		assert.Equal(t, "acct-3", got[1].AccountId)
		assert.Equal(t, "acct-1", got[2].AccountId)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("ListAccounts", mock.Anything).Return(nil, errors.New("some storage error"))

		handler := NewAccountsHandler(mockStore)
		req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		rr := httptest.NewRecorder()

		handler.Leaderboard(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStore.AssertExpectations(t)
	})
}
