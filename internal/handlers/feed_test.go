package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/abhayrai8299/creator-assignment-backend/internal/jwt"
	"github.com/abhayrai8299/creator-assignment-backend/internal/middlewares"
	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
	"github.com/abhayrai8299/creator-assignment-backend/internal/services"
)

// authorized attaches user claims to a request the way the auth
// middleware would.
func authorized(req *http.Request, userID uuid.UUID) *http.Request {
	claims := &jwt.Claims{UserID: userID, Role: models.RoleUser}
	return req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
}

func TestFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedAggregator(ctrl)

	t.Run("success", func(t *testing.T) {
		feed := []models.FeedItem{
			{Title: "r1", URL: "https://reddit.example/1", Source: models.SourceReddit},
			{Title: "t1", URL: "https://img.example/1", Source: models.SourceTwitter},
		}
		mockSvc.EXPECT().Aggregate(gomock.Any()).Return(feed, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		w := httptest.NewRecorder()

		NewFeedHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.FeedItem
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, feed, got)
	})

	t.Run("upstream failure", func(t *testing.T) {
		mockSvc.EXPECT().Aggregate(gomock.Any()).Return(nil, services.ErrFeedUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		w := httptest.NewRecorder()

		NewFeedHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp FeedErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch feed", resp.Error)
	})
}

func TestFeedSaveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedSaver(ctrl)

	userID := uuid.New()
	item := models.FeedItem{Title: "A", URL: "https://example.com/a", Source: models.SourceReddit}

	t.Run("success", func(t *testing.T) {
		updated := &models.UserDB{
			UserID:         userID,
			Credits:        65,
			SavedFeeds:     []models.FeedItem{item},
			RecentActivity: []models.ActivityDB{{Action: models.ActionSaved, Title: "A"}},
		}
		mockSvc.EXPECT().Save(gomock.Any(), userID, item).Return(updated, nil)

		bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
		req := authorized(httptest.NewRequest(http.MethodPost, "/feed/save", bytes.NewReader(bodyBytes)), userID)
		w := httptest.NewRecorder()

		NewFeedSaveHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp FeedActionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Feed saved", resp.Message)
		assert.Equal(t, int64(65), resp.Credits)
		assert.Len(t, resp.SavedFeeds, 1)
		assert.Len(t, resp.RecentActivity, 1)
	})

	t.Run("missing claims", func(t *testing.T) {
		bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
		req := httptest.NewRequest(http.MethodPost, "/feed/save", bytes.NewReader(bodyBytes))
		w := httptest.NewRecorder()

		NewFeedSaveHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := authorized(httptest.NewRequest(http.MethodPost, "/feed/save", bytes.NewReader([]byte("{invalid"))), userID)
		w := httptest.NewRecorder()

		NewFeedSaveHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), userID, item).Return(nil, services.ErrUserNotFound)

		bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
		req := authorized(httptest.NewRequest(http.MethodPost, "/feed/save", bytes.NewReader(bodyBytes)), userID)
		w := httptest.NewRecorder()

		NewFeedSaveHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Save(gomock.Any(), userID, item).Return(nil, errors.New("database error"))

		bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
		req := authorized(httptest.NewRequest(http.MethodPost, "/feed/save", bytes.NewReader(bodyBytes)), userID)
		w := httptest.NewRecorder()

		NewFeedSaveHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestFeedShareHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedSharer(ctrl)

	userID := uuid.New()
	item := models.FeedItem{Title: "B", URL: "https://example.com/b", Source: models.SourceTwitter}

	updated := &models.UserDB{
		UserID:         userID,
		Credits:        68,
		RecentActivity: []models.ActivityDB{{Action: models.ActionShared, Title: "B"}},
	}
	mockSvc.EXPECT().Share(gomock.Any(), userID, item).Return(updated, nil)

	bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
	req := authorized(httptest.NewRequest(http.MethodPost, "/feed/share", bytes.NewReader(bodyBytes)), userID)
	w := httptest.NewRecorder()

	NewFeedShareHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FeedActionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feed shared", resp.Message)
	assert.Equal(t, int64(68), resp.Credits)
}

func TestFeedReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedReporter(ctrl)

	userID := uuid.New()
	item := models.FeedItem{Title: "C", URL: "https://example.com/c", Source: models.SourceReddit}

	updated := &models.UserDB{
		UserID:         userID,
		Credits:        -2,
		RecentActivity: []models.ActivityDB{{Action: models.ActionReported, Title: "C"}},
	}
	mockSvc.EXPECT().Report(gomock.Any(), userID, item).Return(updated, nil)

	bodyBytes, _ := json.Marshal(FeedActionRequest{FeedItem: item})
	req := authorized(httptest.NewRequest(http.MethodPost, "/feed/report", bytes.NewReader(bodyBytes)), userID)
	w := httptest.NewRecorder()

	NewFeedReportHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp FeedActionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feed reported successfully", resp.Message)
	assert.Equal(t, int64(-2), resp.Credits)
}
