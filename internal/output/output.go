// Package output writes a game's move transcript: movetext with move
// numbers, wrapped to a maximum line length and closed by the result
// marker, or the same record as JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Ply is one recorded move with the context needed to print it.
type Ply struct {
	Number int // Full move number the ply belongs to
	Colour chess.Colour
	Move   chess.Move
	SAN    string
	FEN    string // Position after the move
}

// Replay rebuilds the plies of g from its start position.
func Replay(g *engine.Game) ([]Ply, error) {
	replay, err := engine.NewGameFromFEN(g.StartFEN())
	if err != nil {
		return nil, errors.Wrap(err, "replaying game")
	}

	moves := g.Moves()
	plies := make([]Ply, 0, len(moves))
	for i, m := range moves {
		ply := Ply{
			Number: replay.FullmoveNumber(),
			Colour: replay.ToMove(),
			Move:   m,
			SAN:    engine.SAN(replay, m),
		}
		if err := replay.MakeMove(m, m.PromotedTo); err != nil {
			return nil, &errors.MoveError{Err: err, Ply: i + 1, MoveText: m.UCI()}
		}
		ply.FEN = replay.FEN()
		plies = append(plies, ply)
	}
	return plies, nil
}

// OutputGame writes g to cfg.OutputFile in movetext form.
func OutputGame(g *engine.Game, cfg *config.Config) error {
	plies, err := Replay(g)
	if err != nil {
		return err
	}
	w := cfg.OutputFile

	// A game that does not start from the initial position carries its
	// setup as tags.
	if g.StartFEN() != engine.InitialFEN {
		fmt.Fprintf(w, "[SetUp \"1\"]\n[FEN \"%s\"]\n\n", g.StartFEN())
	}

	WriteMovetext(w, plies, g.Outcome(), &cfg.Output)

	if cfg.Output.OutputFEN {
		fmt.Fprintf(w, "{ %s }\n", g.FEN())
	}
	return nil
}

// WriteMovetext writes plies as numbered movetext followed by result.
func WriteMovetext(w io.Writer, plies []Ply, result string, out *config.OutputConfig) {
	ow := NewOutputWriter(w, int(out.MaxLineLength))

	for i, ply := range plies {
		if out.KeepMoveNumbers {
			if ply.Colour == chess.White {
				ow.Write(fmt.Sprintf("%d.", ply.Number))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", ply.Number))
			}
		}
		ow.Write(formatMove(ply, out))
	}

	if out.KeepResults {
		ow.Write(result)
	}
	ow.NewLine()
}

// formatMove formats a ply in the configured notation.
func formatMove(ply Ply, out *config.OutputConfig) string {
	text := ply.SAN
	if out.Format == config.LALG {
		text = ply.Move.UCI()
	}
	if !out.KeepChecks {
		text = strings.TrimRight(text, "+#")
	}
	return text
}
