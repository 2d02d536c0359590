package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"woodo-statistic/internal/domain"

	"connectrpc.com/connect"
)

const ScoutServicePath = "/scout.v1.ScoutService/"

const (
	CheckMatchProcedure     = ScoutServicePath + "CheckMatch"
	GetDemoMatchProcedure   = ScoutServicePath + "GetDemoMatch"
	GetPlayerStatsProcedure = ScoutServicePath + "GetPlayerStats"
)

type Scouter interface {
	Scout(ctx context.Context, battleTag string) (*domain.ScoutResult, error)
	Demo(ctx context.Context) (*domain.ScoutResult, error)
}

type PlayerStatsGetter interface {
	GetPlayerStats(ctx context.Context, battleTag string) (*domain.PlayerStats, error)
}

type CheckMatchRequest struct {
	BattleTag string `json:"battle_tag"`
}

type GetDemoMatchRequest struct{}

type GetPlayerStatsRequest struct {
	BattleTag string `json:"battle_tag"`
}

type ScoutServer struct {
	scout   Scouter
	players PlayerStatsGetter
}

func NewScoutServer(scout Scouter, players PlayerStatsGetter) *ScoutServer {
	return &ScoutServer{scout: scout, players: players}
}

func (s *ScoutServer) CheckMatch(ctx context.Context, req *connect.Request[CheckMatchRequest]) (*connect.Response[domain.ScoutResult], error) {
	result, err := s.scout.Scout(ctx, req.Msg.BattleTag)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(result), nil
}

func (s *ScoutServer) GetDemoMatch(ctx context.Context, req *connect.Request[GetDemoMatchRequest]) (*connect.Response[domain.ScoutResult], error) {
	result, err := s.scout.Demo(ctx)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(result), nil
}

func (s *ScoutServer) GetPlayerStats(ctx context.Context, req *connect.Request[GetPlayerStatsRequest]) (*connect.Response[domain.PlayerStats], error) {
	stats, err := s.players.GetPlayerStats(ctx, req.Msg.BattleTag)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(stats), nil
}

// NewScoutServiceHandler mounts the unary procedures. Messages are plain Go
// structs carried by a JSON codec, so clients post application/json.
func NewScoutServiceHandler(s *ScoutServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(CheckMatchProcedure, connect.NewUnaryHandler(CheckMatchProcedure, s.CheckMatch, opts...))
	mux.Handle(GetDemoMatchProcedure, connect.NewUnaryHandler(GetDemoMatchProcedure, s.GetDemoMatch, opts...))
	mux.Handle(GetPlayerStatsProcedure, connect.NewUnaryHandler(GetPlayerStatsProcedure, s.GetPlayerStats, opts...))
	return ScoutServicePath, mux
}

func connectError(err error) *connect.Error {
	switch {
	case domain.IsClientError(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, domain.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, domain.ErrUpstream):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal accepts an empty body as the zero message.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
