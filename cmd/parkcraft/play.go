package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zappabad/parkcraft/internal/audio"
	"github.com/zappabad/parkcraft/internal/game"
	"github.com/zappabad/parkcraft/internal/save"
	"github.com/zappabad/parkcraft/tui"
)

func newPlayCmd(gf *globalFlags) *cobra.Command {
	var (
		loadID   string
		autosave bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the park with the news ticker UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, gf)
			if err != nil {
				return err
			}

			var player audio.Player = audio.Silent{}
			if cfg.News.Sound {
				player = audio.NewBell(os.Stderr)
			}
			g := game.NewGame(cfg, player)
			defer g.Close()

			if loadID != "" || autosave {
				db, err := save.Open(cfg.SavePath)
				if err != nil {
					return err
				}
				if loadID != "" {
					slot, err := g.LoadFrom(db, loadID)
					if err != nil {
						return err
					}
					log.Printf("play: loaded slot %q (%d messages)", slot.Name, len(slot.Messages))
				}
				if autosave {
					defer func() {
						slot, err := g.SaveTo(db, "autosave")
						if err != nil {
							log.Printf("play: autosave failed: %v", err)
							return
						}
						fmt.Fprintf(cmd.OutOrStdout(), "Saved slot %s\n", slot.ID)
					}()
				}
			}

			runner := game.NewRunner(g, cfg.TickInterval)
			defer runner.Close()

			p := tea.NewProgram(tui.NewModel(g), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("play: run ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&loadID, "load", "", "save slot to load before starting")
	cmd.Flags().BoolVar(&autosave, "autosave", false, "save the message log to a new slot on exit")
	return cmd
}
