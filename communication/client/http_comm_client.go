package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"shogi/communication"
	"shogi/game"
	"strings"
)

type ClientCommunicator struct {
	serverURL string
	http      *http.Client
}

var _ communication.Communicator = (*ClientCommunicator)(nil)

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string, httpClient *http.Client) *ClientCommunicator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ClientCommunicator{
		serverURL: serverURL,
		http:      httpClient,
	}
}

func (cc *ClientCommunicator) NewMatch(depth int) (communication.MatchState, error) {
	var state communication.MatchState
	err := cc.post("/api/new_match", communication.NewMatchRequest{Depth: depth}, &state)
	return state, err
}

func (cc *ClientCommunicator) State(id string) (communication.MatchState, error) {
	var state communication.MatchState
	resp, err := cc.http.Get(cc.serverURL + "/api/state?id=" + url.QueryEscape(id))
	if err != nil {
		return state, fmt.Errorf("failed to get state: %w", err)
	}
	err = decode(resp, &state)
	return state, err
}

func (cc *ClientCommunicator) Select(id string, square game.Coord) ([]game.Coord, error) {
	var resp communication.SelectResponse
	if err := cc.post("/api/select", communication.SelectRequest{ID: id, Square: square.String()}, &resp); err != nil {
		return nil, err
	}

	targets := make([]game.Coord, len(resp.Targets))
	for i, s := range resp.Targets {
		c, err := game.ParseCoord(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse target %q: %w", s, err)
		}
		targets[i] = c
	}
	return targets, nil
}

func (cc *ClientCommunicator) Play(id string, move game.Move) (communication.MatchState, error) {
	var state communication.MatchState
	err := cc.post("/api/play", communication.PlayRequest{ID: id, Move: move.String()}, &state)
	return state, err
}

func (cc *ClientCommunicator) AITurn(id string) (communication.AIMove, error) {
	var ai communication.AIMove
	err := cc.post("/api/ai_move", communication.MatchRequest{ID: id}, &ai)
	return ai, err
}

func (cc *ClientCommunicator) post(path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	resp, err := cc.http.Post(cc.serverURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to post %s: %w", path, err)
	}
	return decode(resp, out)
}

// StatusError carries a non-200 reply of the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage falls back to the raw body when the server did not answer
// with an ErrorResponse, e.g. a proxy error page.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read error body: %v", err)
	}
	var e communication.ErrorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(data))
}
