package term

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"boardroom/internal/domain"
	"boardroom/internal/ports"
)

// InputLoop reads line commands from the terminal and maps each to exactly
// one intent. No command touches game state; the server's reply events do.
type InputLoop struct {
	sink ports.IntentSink
	in   io.Reader
}

// NewInputLoop constructs the loop over the given reader, normally stdin.
func NewInputLoop(sink ports.IntentSink, in io.Reader) *InputLoop {
	return &InputLoop{sink: sink, in: in}
}

// Run consumes lines until EOF or context end. Unrecognized input prints a
// hint and is otherwise ignored.
func (l *InputLoop) Run(ctx context.Context) {
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		l.dispatch(strings.Fields(strings.TrimSpace(scanner.Text())))
	}
}

func (l *InputLoop) dispatch(fields []string) {
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "start":
		l.sink.RequestStartGame()
		return
	case "draw":
		if len(fields) < 2 {
			break
		}
		if kind, ok := domain.ParseCardKind(fields[1]); ok {
			l.sink.DrawCard(kind)
			return
		}
	case "play":
		if idx, ok := parseIndex(fields); ok {
			l.sink.PlayCard(idx)
			return
		}
	case "putback":
		if idx, ok := parseIndex(fields); ok {
			l.sink.DiscardCard(idx)
			return
		}
	case "pick":
		if len(fields) >= 2 {
			l.sink.SelectCharacter(fields[1])
			return
		}
	case "end":
		l.sink.EndTurn()
		return
	}
	pterm.Warning.Println("commands: start | draw asset|liability | play <idx> | putback <idx> | pick <key> | end")
}

func parseIndex(fields []string) (int, bool) {
	if len(fields) < 2 {
		return 0, false
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
