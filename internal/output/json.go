package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*engine.Game, cfg *config.Config, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jg, err := GameToJSON(game, cfg)
		if err != nil {
			return err
		}
		jsonGames[i] = jg
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game to JSON format.
func GameToJSON(game *engine.Game, cfg *config.Config) (*JSONGame, error) {
	plies, err := Replay(game)
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		InitialFEN: game.StartFEN(),
		Moves:      make([]JSONMove, 0, len(plies)),
		Result:     game.Outcome(),
		Status:     gameStatus(game),
		PlyCount:   len(plies),
	}
	for _, ply := range plies {
		jm := convertPly(ply, &cfg.Output)
		if cfg.Output.OutputFEN {
			jm.FEN = ply.FEN
		}
		jg.Moves = append(jg.Moves, jm)
	}

	// Final FEN if requested
	if cfg.Output.OutputFEN {
		jg.FinalFEN = game.FEN()
	}
	return jg, nil
}

// convertPly converts a single ply to JSON format.
func convertPly(ply Ply, out *config.OutputConfig) JSONMove {
	m := ply.Move
	jm := JSONMove{
		MoveNumber: ply.Number,
		Color:      strings.ToLower(ply.Colour.String()),
		SAN:        formatMove(ply, &config.OutputConfig{Format: config.SAN, KeepChecks: out.KeepChecks}),
		UCI:        m.UCI(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      pieceTypeName(m.Moved.Kind()),
	}
	if !m.Captured.IsEmpty() {
		jm.Captured = pieceTypeName(m.Captured.Kind())
	}
	if m.Promotion {
		jm.Promotion = pieceTypeName(m.PromotedTo)
	}
	return jm
}

// gameStatus describes how the game stands after its last move.
func gameStatus(g *engine.Game) string {
	switch {
	case g.Checkmate():
		return "checkmate"
	case g.Stalemate():
		return "stalemate"
	case g.InCheck():
		return "check"
	}
	return "in play"
}

// pieceTypeName returns the piece kind as a lowercase string.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
