package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/formulafactory/challenge"
	"github.com/crillab/formulafactory/wff"
	"github.com/crillab/formulafactory/workshop"
)

const (
	historyFile = ".formulafactory_history"
	prompt      = "ff> "
)

const playHelp = `Commands:
  atom L...             create atomic tiles (letters: A B C D E P Q R S T)
  tiles                 list workspace tiles
  forges                show forges and their slots
  put FORGE [SLOT] ID   put tile ID in a forge slot (SLOT: left or right, omitted for negation)
  press FORGE           build a new tile from a full forge
  clear FORGE           empty a forge
  target                generate a new target formula
  answer ID             submit tile ID as the answer to the target
  classify ID           tell whether tile ID is a tautology, a contradiction or contingent
  help                  show this help
  quit                  leave
Forges: negation (not), conjunction (and), disjunction (or), conditional (implies), biconditional (iff)`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Build formulas interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newPlaySession(cmd.OutOrStdout(), logger)
		return runRepl(s)
	},
}

// playSession is an interactive formula factory session: a workshop and a challenge.
type playSession struct {
	w      io.Writer
	ws     *workshop.Workshop
	ch     *challenge.Session
	logger *zap.Logger
}

func newPlaySession(w io.Writer, logger *zap.Logger) *playSession {
	return &playSession{
		w:      w,
		ws:     workshop.New(wff.NewFactory(), logger),
		ch:     challenge.New(newGenerator(cfg, logger), cfg.Depth, logger),
		logger: logger,
	}
}

func runRepl(s *playSession) error {
	fmt.Fprintln(s.w, "Formula factory. Type help for the list of commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.w)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		quit, err := s.exec(line)
		if err != nil {
			failureStyle.Fprintln(s.w, err)
		}
		if quit {
			return nil
		}
	}
}

// forgeAliases are the short names of forges.
var forgeAliases = map[string]wff.Kind{
	"not":     wff.Negation,
	"and":     wff.Conjunction,
	"or":      wff.Disjunction,
	"implies": wff.Conditional,
	"iff":     wff.Biconditional,
}

func parseForge(name string) (wff.Kind, error) {
	name = strings.ToLower(name)
	if k, ok := forgeAliases[name]; ok {
		return k, nil
	}
	k, err := wff.ParseKind(name)
	if err != nil || k == wff.Atomic {
		return 0, fmt.Errorf("%w %q", workshop.ErrUnknownForge, name)
	}
	return k, nil
}

func parseSlot(name string) (int, error) {
	switch strings.ToLower(name) {
	case "left", "l":
		return workshop.Left, nil
	case "right", "r":
		return workshop.Right, nil
	}
	i, err := strconv.Atoi(name)
	if err != nil {
		return 0, fmt.Errorf("%w %q", workshop.ErrSlotRange, name)
	}
	return i, nil
}

// exec runs one command line. quit is true if the session must end.
func (s *playSession) exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.w, playHelp)
		return false, nil
	case "atom":
		return false, s.atoms(args)
	case "tiles":
		s.listTiles()
		return false, nil
	case "forges":
		s.listForges()
		return false, nil
	case "put":
		return false, s.put(args)
	case "press":
		return false, s.press(args)
	case "clear":
		if len(args) != 1 {
			return false, errors.New("usage: clear FORGE")
		}
		k, err := parseForge(args[0])
		if err != nil {
			return false, err
		}
		return false, s.ws.Clear(k)
	case "target":
		r := s.ch.NewTarget()
		fmt.Fprint(s.w, "Target: ")
		titleStyle.Fprintln(s.w, wff.Display(r.Target))
		return false, nil
	case "answer":
		return false, s.answer(args)
	case "classify":
		if len(args) != 1 {
			return false, errors.New("usage: classify ID")
		}
		t, err := s.ws.Tile(args[0])
		if err != nil {
			return false, err
		}
		return false, writeClassification(s.w, t.Formula)
	default:
		return false, fmt.Errorf("unknown command %q, type help for the list of commands", cmd)
	}
}

func (s *playSession) atoms(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: atom L...")
	}
	for _, arg := range args {
		t, err := s.ws.PickAtom(wff.Letter(strings.ToUpper(arg)))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.w, "%s  %s\n", t.ID, t.Display)
	}
	return nil
}

func (s *playSession) listTiles() {
	tiles := s.ws.Tiles()
	if len(tiles) == 0 {
		noteStyle.Fprintln(s.w, "no tiles yet: create some with atom")
		return
	}
	for _, t := range tiles {
		fmt.Fprintf(s.w, "%s  %s\n", t.ID, t.Display)
	}
}

func (s *playSession) listForges() {
	for _, f := range s.ws.Forges() {
		state := "empty"
		if f.Ready() {
			state = "ready"
		} else {
			for i := 0; i < f.Config.Slots; i++ {
				if f.Slot(i) != nil {
					state = "partial"
				}
			}
		}
		fmt.Fprintf(s.w, "%-13s %-24s %s\n", f.Config.Kind, f, state)
	}
}

func (s *playSession) put(args []string) error {
	var forge, slot, id string
	switch len(args) {
	case 2:
		forge, slot, id = args[0], "0", args[1]
	case 3:
		forge, slot, id = args[0], args[1], args[2]
	default:
		return errors.New("usage: put FORGE [SLOT] ID")
	}
	k, err := parseForge(forge)
	if err != nil {
		return err
	}
	i, err := parseSlot(slot)
	if err != nil {
		return err
	}
	if err := s.ws.Place(k, i, id); err != nil {
		return err
	}
	f, err := s.ws.Forge(k)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.w, f)
	return nil
}

func (s *playSession) press(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: press FORGE")
	}
	k, err := parseForge(args[0])
	if err != nil {
		return err
	}
	t, err := s.ws.Press(k)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.w, "%s  %s\n", t.ID, t.Display)
	return nil
}

func (s *playSession) answer(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: answer ID")
	}
	t, err := s.ws.Tile(args[0])
	if err != nil {
		return err
	}
	fb, err := s.ch.Submit(t.Formula)
	if err != nil {
		return fmt.Errorf("%w: generate one with target", err)
	}
	if fb.Correct {
		successStyle.Fprintln(s.w, fb.Message)
	} else {
		failureStyle.Fprintln(s.w, fb.Message)
	}
	return nil
}
