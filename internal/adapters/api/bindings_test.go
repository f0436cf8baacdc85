package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func newServices(t *testing.T, router chi.Router, token string) *Services {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := New(server.URL+"/api", WithHTTPClient(server.Client()), WithTokenSource(StaticToken(token)))
	require.NoError(t, err)

	return NewServices(client)
}

func TestGetFoodByIDSendsBearerToken(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/Food/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", chi.URLParam(r, "id"))
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"id":42,"name":"Oatmeal","calories":389}`)
	})
	svc := newServices(t, router, "abc123")

	food, err := svc.Foods.GetFoodByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, food.ID)
}

func TestGetAllActiveCategoriesWithoutSession(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/FoodCategory/all-active-category", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "page=1", r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"items":[{"id":1},{"id":2}],"page":1,"pageSize":10,"totalCount":2}`)
	})
	svc := newServices(t, router, "")

	page, err := svc.FoodCategories.GetAllActiveCategories(context.Background(), ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalCount)
}

func TestGetReportByIDReturnsServerMessage(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/PostReport/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Not found"}`)
	})
	svc := newServices(t, router, "abc123")

	_, err := svc.PostReports.GetReportByID(context.Background(), 999)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not found", apiErr.Error())
}

func TestGetAllFoodsTimeoutUsesCallFallback(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/Food", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	svc := newServices(t, router, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Foods.GetAllFoods(ctx, ListQuery{})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to fetch foods.", apiErr.Message)
}

func TestMalformedSuccessBodyUsesCallFallback(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/Tag/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"not-a-number"`)
	})
	svc := newServices(t, router, "")

	_, err := svc.Tags.GetTagByID(context.Background(), 5)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to fetch tag.", apiErr.Message)
}

func TestValidationFailsBeforeAnyRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	router := chi.NewRouter()
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	svc := newServices(t, router, "abc123")
	ctx := context.Background()

	_, err := svc.PostReports.CheckUserReport(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.Foods.GetFoodByID(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.UserPayments.CancelPayment(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.TrainerRatings.RateTrainer(ctx, domain.TrainerRatingInput{TrainerID: "t-1", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.TrainerRatings.GetRatingSummary(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Profiles.GetProfileByUserID(ctx, "..")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.TrainerRatings.GetRatingsByTrainer(ctx, ".", ListQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.UserWaterLogs.AddWaterLog(ctx, domain.UserWaterLogInput{AmountInML: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.PostReports.UpdateReportStatus(ctx, 3, domain.ReportStatus("Escalated"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Zero(t, hits.Load())
}

func TestCheckUserReport(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/PostReport/check/{postId}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "17", chi.URLParam(r, "postId"))
		writeJSON(w, http.StatusOK, `{"postId":17,"hasReported":true}`)
	})
	svc := newServices(t, router, "abc123")

	check, err := svc.PostReports.CheckUserReport(context.Background(), 17)
	require.NoError(t, err)
	assert.True(t, check.HasReported)
}

func TestUpdateReportStatusSendsStatusBody(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Put("/api/PostReport/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, decodeBody(r, &body))
		assert.Equal(t, "Resolved", body["status"])
		writeJSON(w, http.StatusOK, `{"id":3,"status":"Resolved"}`)
	})
	svc := newServices(t, router, "abc123")

	report, err := svc.PostReports.UpdateReportStatus(context.Background(), 3, domain.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportResolved, report.Status)
}

func TestPaymentEndpoints(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/UserPayment/create-payment-link", func(w http.ResponseWriter, r *http.Request) {
		var in domain.PaymentLinkInput
		require.NoError(t, decodeBody(r, &in))
		assert.Equal(t, 2, in.SubscriptionID)
		writeJSON(w, http.StatusOK, `{"checkoutUrl":"https://pay.example.com/c/1","orderCode":900100}`)
	})
	router.Put("/api/UserPayment/cancel/{orderCode}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "900100", chi.URLParam(r, "orderCode"))
		writeJSON(w, http.StatusOK, `{"id":1,"orderCode":900100,"status":"Cancelled"}`)
	})
	svc := newServices(t, router, "abc123")
	ctx := context.Background()

	link, err := svc.UserPayments.CreatePaymentLink(ctx, domain.PaymentLinkInput{SubscriptionID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(900100), link.OrderCode)

	payment, err := svc.UserPayments.CancelPayment(ctx, link.OrderCode)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, payment.Status)
}

func TestTrainerEndpoints(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Put("/api/TrainerApplication/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, decodeBody(r, &body))
		assert.Equal(t, "missing certificate", body["reason"])
		writeJSON(w, http.StatusOK, `{"id":8,"status":"Rejected","rejectionReason":"missing certificate"}`)
	})
	router.Get("/api/TrainerRating/trainer/{id}/summary", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trainer-1", chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, `{"trainerId":"trainer-1","averageRating":4.5,"totalRatings":12}`)
	})
	svc := newServices(t, router, "abc123")
	ctx := context.Background()

	app, err := svc.TrainerApplications.RejectApplication(ctx, 8, "missing certificate")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationRejected, app.Status)

	summary, err := svc.TrainerRatings.GetRatingSummary(ctx, "trainer-1")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
}

func TestWaterSummarySendsDateParam(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/UserWaterLog/summary", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-03-05", r.URL.Query().Get("date"))
		writeJSON(w, http.StatusOK, `{"date":"2026-03-05","totalAmountInMl":1500,"targetAmountInMl":2000,"entriesCount":3}`)
	})
	svc := newServices(t, router, "abc123")

	summary, err := svc.UserWaterLogs.GetDailySummary(context.Background(), time.Date(2026, 3, 5, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 500, summary.Remaining())
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Delete("/api/Food/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	svc := newServices(t, router, "abc123")

	require.NoError(t, svc.Foods.DeleteFood(context.Background(), 9))
}

func TestCreateChatRoom(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/ChatSupport/create-room", func(w http.ResponseWriter, r *http.Request) {
		var in domain.ChatRoomInput
		require.NoError(t, decodeBody(r, &in))
		assert.Equal(t, "Billing", in.Subject)
		writeJSON(w, http.StatusOK, `{"roomId":"room-7","subject":"Billing"}`)
	})
	svc := newServices(t, router, "abc123")

	room, err := svc.ChatSupport.CreateRoom(context.Background(), domain.ChatRoomInput{Subject: "Billing"})
	require.NoError(t, err)
	assert.Equal(t, "room-7", room.RoomID)
}

func TestResourcePathEscapesSegments(t *testing.T) {
	t.Parallel()

	client, err := New("http://localhost:5000/api")
	require.NoError(t, err)

	r := client.Resource("/Profile/")
	assert.Equal(t, "Profile", r.Name())
	assert.Equal(t, "/Profile", r.Path())
	assert.Equal(t, "/Profile/a%20b", r.Path("a b"))
	assert.Equal(t, "/Profile/7/status", r.Path(7, "status"))
	assert.Equal(t, "/Profile/%2E%2E", r.Path(".."))
	assert.Equal(t, "/Profile/%2E", r.Path("."))
	assert.Equal(t, "/Profile/..a", r.Path("..a"))
}

func TestDotSegmentsStayInsideResource(t *testing.T) {
	t.Parallel()

	var got string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))

	r := client.Resource("Profile")
	_, err := client.Get(context.Background(), r.Path(".."))
	require.NoError(t, err)
	assert.Equal(t, "/Profile/%2E%2E", got)
}
