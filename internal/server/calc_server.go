package server

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"gp_tracker/internal/domain/entity"
	"gp_tracker/internal/domain/value"
	"gp_tracker/pkg/errcodes"
	"gp_tracker/pkg/httpx/reply"
	"gp_tracker/pkg/httpx/req"
	"gp_tracker/pkg/rest"
)

type calculator interface {
	Calculate(ctx context.Context, kind value.ActivityKind, userID string, p value.ActivityParams) (entity.CalculationResult, error)
	SlayerBreakdown(ctx context.Context, masterID string, levels value.UserLevels, userID string) (entity.CalculationResult, error)
}

type masterCatalog interface {
	Masters() []entity.SlayerMaster
}

type CalcServer struct {
	calculator calculator
	catalog    masterCatalog
}

func NewCalcServer(calculator calculator, catalog masterCatalog) CalcServer {
	return CalcServer{
		calculator: calculator,
		catalog:    catalog,
	}
}

func (s CalcServer) postV1Calculate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CalculateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	kind, err := value.ParseActivityKind(request.Activity)
	if err != nil {
		return fmt.Errorf("value.ParseActivityKind: %w", err)
	}

	ctx = withUser(ctx, request.UserID)

	result, err := s.calculator.Calculate(ctx, kind, request.UserID, newDomainParams(request))
	if err != nil {
		return fmt.Errorf("calculator.Calculate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s CalcServer) getV1SlayerBreakdown(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	masterID := query.Get("master_id")
	if masterID == "" {
		return failure.NewInvalidArgumentError(
			"master_id query parameter is required",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("master_id query parameter is required"),
		)
	}

	var levels value.UserLevels

	for _, lvl := range []struct {
		name string
		dst  *int
	}{
		{"slayer_level", &levels.Slayer},
		{"combat_level", &levels.Combat},
	} {
		raw := query.Get(lvl.name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return failure.NewInvalidArgumentError(
				fmt.Sprintf("%s must be an integer", lvl.name),
				failure.WithCode(errcodes.ValidationError),
				failure.WithDescription(fmt.Sprintf("%s must be an integer", lvl.name)),
			)
		}
		*lvl.dst = v
	}

	userID := query.Get("user_id")
	ctx = withUser(ctx, userID)

	result, err := s.calculator.SlayerBreakdown(ctx, masterID, levels, userID)
	if err != nil {
		return fmt.Errorf("calculator.SlayerBreakdown: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s CalcServer) getV1SlayerMasters(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	masters := s.catalog.Masters()
	sort.Slice(masters, func(i, j int) bool { return masters[i].ID < masters[j].ID })

	summaries := make([]rest.MasterSummary, 0, len(masters))
	for _, m := range masters {
		summaries = append(summaries, newRESTMasterSummary(m))
	}

	reply.JSON(ctx, w, http.StatusOK, summaries)

	return nil
}
