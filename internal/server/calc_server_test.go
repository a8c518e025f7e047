package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"gp_tracker/internal/domain"
	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/value"
	"gp_tracker/internal/server"
	"gp_tracker/pkg/errcodes"
	"gp_tracker/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type fakeCalculator struct {
	calculate func(ctx context.Context, kind value.ActivityKind, userID string, p value.ActivityParams) (entity.CalculationResult, error)
	breakdown func(ctx context.Context, masterID string, levels value.UserLevels, userID string) (entity.CalculationResult, error)
}

func (f fakeCalculator) Calculate(ctx context.Context, kind value.ActivityKind, userID string, p value.ActivityParams) (entity.CalculationResult, error) {
	return f.calculate(ctx, kind, userID, p)
}

func (f fakeCalculator) SlayerBreakdown(ctx context.Context, masterID string, levels value.UserLevels, userID string) (entity.CalculationResult, error) {
	return f.breakdown(ctx, masterID, levels, userID)
}

type fakeMasters []entity.SlayerMaster

func (f fakeMasters) Masters() []entity.SlayerMaster { return f }

func newTestRouter(calc fakeCalculator, masters fakeMasters) *chi.Mux {
	router := chi.NewRouter()
	server.NewServer(server.NewCalcServer(calc, masters)).RegisterRoutes(router)
	return router
}

func TestPostCalculate(t *testing.T) {
	rq := require.New(t)

	calc := fakeCalculator{
		calculate: func(_ context.Context, kind value.ActivityKind, userID string, p value.ActivityParams) (entity.CalculationResult, error) {
			rq.Equal(value.ActivityFarming, kind)
			rq.Equal("alice", userID)
			rq.NotNil(p.Farming)
			rq.InDelta(6.0, *p.Farming.NumPatches, 1e-9)

			return entity.CalculationResult{Activity: "farming", GPHour: 1234.5}, nil
		},
	}

	router := newTestRouter(calc, nil)

	body := `{"activity":"farming","user_id":"alice","farming":{"num_patches":6}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusOK, rec.Code)

	var result entity.CalculationResult
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	rq.Equal("farming", result.Activity)
	rq.InDelta(1234.5, result.GPHour, 1e-9)
}

func TestPostCalculateUnknownActivity(t *testing.T) {
	rq := require.New(t)

	router := newTestRouter(fakeCalculator{}, nil)

	body := `{"activity":"mining"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusBadRequest, rec.Code)

	var resp rest.Error
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	rq.Equal(errcodes.UnknownActivity.String(), resp.Code)
}

func TestPostCalculateValidationErrorListsFields(t *testing.T) {
	rq := require.New(t)

	calc := fakeCalculator{
		calculate: func(context.Context, value.ActivityKind, string, value.ActivityParams) (entity.CalculationResult, error) {
			return entity.CalculationResult{}, domain.NewValidationError([]string{"num_patches", "growth_time_minutes"})
		},
	}

	router := newTestRouter(calc, nil)

	body := `{"activity":"farming"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusBadRequest, rec.Code)

	var resp rest.Error
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	rq.Equal(errcodes.ValidationError.String(), resp.Code)
	rq.Equal([]string{"num_patches", "growth_time_minutes"}, resp.Fields)
}

func TestPostCalculateErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"master not found", domain.NewError(errcodes.MasterNotFound, "no such master"), http.StatusNotFound},
		{"requirements not met", domain.NewError(errcodes.MasterRequirementsNotMet, "too low"), http.StatusUnprocessableEntity},
		{"price unavailable", domain.NewError(errcodes.PriceUnavailable, "upstream down"), http.StatusServiceUnavailable},
		{"config load", domain.NewError(errcodes.ConfigLoadError, "store down"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			calc := fakeCalculator{
				calculate: func(context.Context, value.ActivityKind, string, value.ActivityParams) (entity.CalculationResult, error) {
					return entity.CalculationResult{}, tc.err
				},
			}

			router := newTestRouter(calc, nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/calculate", strings.NewReader(`{"activity":"slayer"}`))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			rq.Equal(tc.status, rec.Code)
		})
	}
}

func TestGetSlayerBreakdown(t *testing.T) {
	rq := require.New(t)

	calc := fakeCalculator{
		breakdown: func(_ context.Context, masterID string, levels value.UserLevels, userID string) (entity.CalculationResult, error) {
			rq.Equal("duradel", masterID)
			rq.Equal(87, levels.Slayer)
			rq.Equal(110, levels.Combat)
			rq.Equal("bob", userID)

			return entity.CalculationResult{
				Activity: "slayer",
				Slayer:   &entity.SlayerResult{Mode: "breakdown"},
			}, nil
		},
	}

	router := newTestRouter(calc, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/slayer/breakdown?master_id=duradel&slayer_level=87&combat_level=110&user_id=bob", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusOK, rec.Code)
}

func TestGetSlayerBreakdownRequiresMaster(t *testing.T) {
	rq := require.New(t)

	router := newTestRouter(fakeCalculator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/slayer/breakdown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusBadRequest, rec.Code)
}

func TestGetSlayerBreakdownRejectsBadLevel(t *testing.T) {
	rq := require.New(t)

	router := newTestRouter(fakeCalculator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/slayer/breakdown?master_id=duradel&slayer_level=high", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusBadRequest, rec.Code)
}

func TestGetSlayerMasters(t *testing.T) {
	rq := require.New(t)

	masters := fakeMasters{
		{ID: "spria", Name: "Spria", CombatReq: 3, SlayerReq: 1, TaskAssignments: map[string]entity.TaskAssignment{"crawler": {}}},
		{ID: "duradel", Name: "Duradel", CombatReq: 100, SlayerReq: 50},
	}

	router := newTestRouter(fakeCalculator{}, masters)

	req := httptest.NewRequest(http.MethodGet, "/v1/slayer/masters", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	rq.Equal(http.StatusOK, rec.Code)

	var summaries []rest.MasterSummary
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &summaries))
	rq.Len(summaries, 2)
	rq.Equal("duradel", summaries[0].ID)
	rq.Equal("spria", summaries[1].ID)
	rq.Equal(1, summaries[1].Tasks)
}
