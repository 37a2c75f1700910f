package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ThinkIshdeep/Chatur-Bazar/cli/render"
	"github.com/ThinkIshdeep/Chatur-Bazar/journal"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// ReplaySummary is what the replay command reports about a session journal.
type ReplaySummary struct {
	Events   int      `json:"events"`
	Scans    int      `json:"scans"`
	Hotkeys  int      `json:"hotkeys"`
	Commands int      `json:"commands"`
	Text     int      `json:"text"`
	Codes    []string `json:"codes"`
}

// ReplayCommand returns the replay command, which decodes a session journal
// and summarizes the classified intents it holds. The same event sequence
// always yields the same summary; diffing two replays of one journal is the
// quickest way to spot a corrupted frame.
func ReplayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "Summarize a session journal",
		ArgsUsage: "<journal-file>",
		Flags:     ReadOnlyFlags(),
		Action:    replayAction,
	}
}

func replayAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("replay requires a journal file argument", 1)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	events, err := journal.Replay(f)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return r.Render(summarize(events))
}

func summarize(events []types.InputEvent) ReplaySummary {
	summary := ReplaySummary{Events: len(events), Codes: []string{}}
	for _, ev := range events {
		switch ev := ev.(type) {
		case types.ScanComplete:
			summary.Scans++
			summary.Codes = append(summary.Codes, ev.Code)
		case types.Hotkey:
			summary.Hotkeys++
		case types.Command:
			summary.Commands++
		case types.TextInput:
			summary.Text++
		}
	}
	return summary
}
