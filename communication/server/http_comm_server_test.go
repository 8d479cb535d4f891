package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"shogi/communication/client"
	"shogi/communication/server"
	"shogi/game"
	"shogi/gamemaster"
	"shogi/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.ClientCommunicator {
	t.Helper()
	ts := httptest.NewServer(server.NewHandler(gamemaster.NewManager()))
	t.Cleanup(ts.Close)
	return client.NewClientCommunicator(ts.URL, ts.Client())
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var statusErr *client.StatusError
	require.True(t, errors.As(err, &statusErr), "expected a status error, got %v", err)
	require.Equal(t, code, statusErr.Code)
}

func TestMatchRoundTrip(t *testing.T) {
	cc := newClient(t)

	state, err := cc.NewMatch(1)
	require.NoError(t, err)
	require.NotEmpty(t, state.ID)
	require.Equal(t, "home", state.Turn)
	require.Equal(t, game.NewStandardBoard().String(), state.Board)

	targets, err := cc.Select(state.ID, game.Coord{X: 4, Y: 8})
	require.NoError(t, err)
	require.Equal(t, []game.Coord{{X: 3, Y: 7}, {X: 4, Y: 7}, {X: 5, Y: 7}}, targets)

	state, err = cc.Play(state.ID, game.Move{From: game.Coord{X: 4, Y: 8}, To: game.Coord{X: 4, Y: 7}})
	require.NoError(t, err)
	require.Equal(t, "away", state.Turn)
	require.Equal(t, []string{"e9e8"}, state.History)

	ai, err := cc.AITurn(state.ID)
	require.NoError(t, err)
	require.True(t, ai.Found)
	require.Equal(t, "home", ai.Turn)
	require.Len(t, ai.History, 2)
	require.Equal(t, ai.Move, ai.History[1])
	require.Positive(t, ai.Nodes)

	fetched, err := cc.State(state.ID)
	require.NoError(t, err)
	require.Equal(t, ai.MatchState, fetched)
}

func TestErrorStatus(t *testing.T) {
	cc := newClient(t)
	state, err := cc.NewMatch(1)
	require.NoError(t, err)

	t.Run("unknown match", func(t *testing.T) {
		_, err := cc.State("missing")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("illegal move", func(t *testing.T) {
		_, err := cc.Play(state.ID, game.Move{From: game.Coord{X: 4, Y: 8}, To: game.Coord{X: 4, Y: 5}})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("depth above the limit", func(t *testing.T) {
		_, err := cc.NewMatch(meta.MAX_DEPTH + 1)
		requireStatus(t, err, http.StatusBadRequest)

		_, err = cc.NewMatch(-1)
		requireStatus(t, err, http.StatusBadRequest)

		_, err = cc.NewMatch(meta.MAX_DEPTH)
		require.NoError(t, err)
	})

	t.Run("ai out of turn", func(t *testing.T) {
		_, err := cc.AITurn(state.ID)
		requireStatus(t, err, http.StatusConflict)
	})
}
