package rewards

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenmiles/odometer-rewards/pkg/api"
	"github.com/greenmiles/odometer-rewards/pkg/audit"
	"github.com/greenmiles/odometer-rewards/pkg/models"
	"github.com/greenmiles/odometer-rewards/pkg/storage"
	storage_mocks "github.com/greenmiles/odometer-rewards/pkg/storage/mocks"
)

type stubRecorder struct {
	events []string
	users  []string
}

func (s *stubRecorder) Record(ctx context.Context, event, userID string, payload any) error {
	s.events = append(s.events, event)
	s.users = append(s.users, userID)
	return nil
}

func newHandler(store storage.ApiStore) *RewardsHandler {
	return NewRewardsHandler(store, audit.NoOpRecorder{}, slog.Default())
}

func jsonDecode(rr *httptest.ResponseRecorder, out any) error {
	return json.NewDecoder(rr.Body).Decode(out)
}

func TestGetRewardById(t *testing.T) {
	rewardId := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := newHandler(mockStorage)

		reward := &models.Reward{
			Id:          rewardId.String(),
			UserId:      "user1",
			Amount:      "1.50750050",
			Status:      models.RewardFailed,
			ChainStatus: models.ChainFailed,
			Chain:       models.ChainData{RetryCount: 1},
		}
		mockStorage.On("GetReward", mock.Anything, rewardId.String()).Return(reward, nil)

		req := httptest.NewRequest(http.MethodGet, "/rewards/"+rewardId.String(), nil)
		rr := httptest.NewRecorder()

		handler.GetRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"can_retry":true`)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := newHandler(mockStorage)

		mockStorage.On("GetReward", mock.Anything, rewardId.String()).Return(nil, storage.ErrRewardNotFound)

		req := httptest.NewRequest(http.MethodGet, "/rewards/"+rewardId.String(), nil)
		rr := httptest.NewRecorder()

		handler.GetRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListRewardsByUserId(t *testing.T) {
	t.Run("With Status Filter", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := newHandler(mockStorage)

		mockStorage.On("ListRewardsByUserID", mock.Anything, "user1", storage.RewardFilter{Status: models.RewardPending}).
			Return([]models.Reward{{Id: "rew-1", Status: models.RewardPending}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/rewards?status=PENDING", nil)
		rr := httptest.NewRecorder()

		handler.ListRewardsByUserId(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)

		var rewards []*api.Reward
		assert.NoError(t, jsonDecode(rr, &rewards))
		assert.Len(t, rewards, 1)
		assert.Equal(t, "rew-1", rewards[0].Id)
		mockStorage.AssertExpectations(t)
	})

	t.Run("With Limit", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		handler := newHandler(mockStorage)

		mockStorage.On("ListRewardsByUserID", mock.Anything, "user1", storage.RewardFilter{Limit: 5}).
			Return([]models.Reward{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/rewards?limit=5", nil)
		rr := httptest.NewRecorder()

		handler.ListRewardsByUserId(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		handler := newHandler(new(storage_mocks.ApiStore))

		req := httptest.NewRequest(http.MethodGet, "/users/user1/rewards?limit=zero", nil)
		rr := httptest.NewRecorder()

		handler.ListRewardsByUserId(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRetryRewardById(t *testing.T) {
	rewardId := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		recorder := &stubRecorder{}
		handler := NewRewardsHandler(mockStorage, recorder, slog.Default())

		mockStorage.On("RetryReward", mock.Anything, rewardId.String()).Return(nil)
		mockStorage.On("GetReward", mock.Anything, rewardId.String()).
			Return(&models.Reward{Id: rewardId.String(), UserId: "user1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/rewards/"+rewardId.String()+"/retry", nil)
		rr := httptest.NewRecorder()

		handler.RetryRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, []string{audit.EventRewardRetried}, recorder.events)
		assert.Equal(t, []string{"user1"}, recorder.users)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not Retryable", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		recorder := &stubRecorder{}
		handler := NewRewardsHandler(mockStorage, recorder, slog.Default())

		mockStorage.On("RetryReward", mock.Anything, rewardId.String()).Return(storage.ErrRewardNotRetryable)

		req := httptest.NewRequest(http.MethodPost, "/rewards/"+rewardId.String()+"/retry", nil)
		rr := httptest.NewRecorder()

		handler.RetryRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Empty(t, recorder.events)
	})
}

func TestCancelRewardById(t *testing.T) {
	rewardId := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		recorder := &stubRecorder{}
		handler := NewRewardsHandler(mockStorage, recorder, slog.Default())

		mockStorage.On("CancelReward", mock.Anything, rewardId.String()).Return(nil)
		mockStorage.On("GetReward", mock.Anything, rewardId.String()).
			Return(&models.Reward{Id: rewardId.String(), UserId: "user1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/rewards/"+rewardId.String()+"/cancel", nil)
		rr := httptest.NewRecorder()

		handler.CancelRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, []string{audit.EventRewardCancelled}, recorder.events)
	})

	t.Run("Already Sent", func(t *testing.T) {
		mockStorage := new(storage_mocks.ApiStore)
		recorder := &stubRecorder{}
		handler := NewRewardsHandler(mockStorage, recorder, slog.Default())

		mockStorage.On("CancelReward", mock.Anything, rewardId.String()).Return(storage.ErrRewardNotCancellable)

		req := httptest.NewRequest(http.MethodPost, "/rewards/"+rewardId.String()+"/cancel", nil)
		rr := httptest.NewRecorder()

		handler.CancelRewardById(rr, req, rewardId)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Empty(t, recorder.events)
	})
}
