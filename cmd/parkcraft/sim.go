package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/zappabad/parkcraft/internal/game"
	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/save"
	"github.com/zappabad/parkcraft/internal/ui"
	"github.com/zappabad/parkcraft/tui/styles"
)

func newSimCmd(gf *globalFlags) *cobra.Command {
	var (
		ticks  int
		saveAs string
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the park headless and log its messages",
		Long:  "Runs the simulation as fast as possible, logging every message that reaches the ticker and every archival.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, gf)
			if err != nil {
				return err
			}

			g := game.NewGame(cfg, nil)
			defer g.Close()

			logger := log.New(cmd.OutOrStdout(), "", 0)
			runSim(g, ticks, logger)

			st := g.Snapshot()
			logger.Printf("sim: %d ticks, %s, %d recent, %d archived, %s",
				st.Ticks, st.Date, len(st.News.Recent), len(st.News.Archived), styles.FormatMoney(st.Cash))

			if saveAs != "" {
				db, err := save.Open(cfg.SavePath)
				if err != nil {
					return err
				}
				slot, err := g.SaveTo(db, saveAs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved slot %s\n", slot.ID)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 20000, "number of ticks to simulate")
	cmd.Flags().StringVar(&saveAs, "save-as", "", "save the message log to a new slot with this name")
	return cmd
}

// runSim ticks g n times. A message whose age is 1 after a tick has just
// reached the ticker.
func runSim(g *game.Game, n int, logger *log.Logger) {
	for i := 0; i < n; i++ {
		g.Tick()
		drainEvents(g, logger)

		st := g.Snapshot()
		if cur, ok := st.News.Current(); ok && cur.Record.Ticks == 1 {
			rec := cur.Record
			logger.Printf("%-22s %-18s %s", park.FormatDate(rec.MonthYear, rec.Day), news.KindName(rec.Kind), rec.Text)
		}
	}
}

func drainEvents(g *game.Game, logger *log.Logger) {
	for {
		select {
		case ev, ok := <-g.Events():
			if !ok {
				return
			}
			if ev.Intent == ui.IntentInvalidateRecentNews {
				logger.Printf("%-22s archived", "")
			}
		default:
			return
		}
	}
}
