package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/zappabad/parkcraft/internal/game"
	"github.com/zappabad/parkcraft/internal/park"
	"github.com/zappabad/parkcraft/internal/save"
	"github.com/zappabad/parkcraft/internal/script"
)

func newMessagesCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage saved message logs",
	}

	cmd.AddCommand(newMessagesListCmd(gf))
	cmd.AddCommand(newMessagesShowCmd(gf))
	cmd.AddCommand(newMessagesExportCmd(gf))
	cmd.AddCommand(newMessagesImportCmd(gf))
	cmd.AddCommand(newMessagesDeleteCmd(gf))
	return cmd
}

// openStore loads the config and opens its save database.
func openStore(cmd *cobra.Command, gf *globalFlags) (game.Config, *gorm.DB, error) {
	cfg, err := loadConfig(cmd, gf)
	if err != nil {
		return game.Config{}, nil, err
	}
	db, err := save.Open(cfg.SavePath)
	if err != nil {
		return game.Config{}, nil, err
	}
	return cfg, db, nil
}

// quietGame is a game with no feed, used to edit message logs offline.
func quietGame(cfg game.Config) *game.Game {
	cfg.Feed.Enabled = false
	return game.NewGame(cfg, nil)
}

// describeSlot loads a slot into a fresh game and exports its messages.
func describeSlot(cfg game.Config, db *gorm.DB, id string) ([]script.MessageDesc, error) {
	g := quietGame(cfg)
	defer g.Close()

	if _, err := g.LoadFrom(db, id); err != nil {
		return nil, err
	}
	var out []script.MessageDesc
	err := g.Script(func(p *script.Park) error {
		out = p.Describe()
		return nil
	})
	return out, err
}

func newMessagesListCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save slots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd, gf)
			if err != nil {
				return err
			}
			slots, err := save.List(db)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No save slots.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPARK\tCREATED")
			for _, s := range slots {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Park, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newMessagesShowCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slot-id>",
		Short: "Print the messages of a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openStore(cmd, gf)
			if err != nil {
				return err
			}
			msgs, err := describeSlot(cfg, db, args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ARCHIVED\tDATE\tTYPE\tSUBJECT\tAGE\tTEXT")
			for _, m := range msgs {
				fmt.Fprintf(w, "%t\t%s\t%s\t%#x\t%d\t%s\n",
					m.IsArchived, park.FormatDate(m.Month, m.Day), m.Type, m.Subject, m.TickCount, m.Text)
			}
			return w.Flush()
		},
	}
}

func newMessagesExportCmd(gf *globalFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <slot-id>",
		Short: "Export the messages of a save slot as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openStore(cmd, gf)
			if err != nil {
				return err
			}
			msgs, err := describeSlot(cfg, db, args[0])
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(msgs)
			if err != nil {
				return fmt.Errorf("export: encode: %w", err)
			}
			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("export: write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d messages to %s\n", len(msgs), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newMessagesImportCmd(gf *globalFlags) *cobra.Command {
	var (
		name  string
		queue bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a YAML message log into a new save slot",
		Long: "Reads a list of messages and stores them in a new save slot. By default the list " +
			"replaces the whole log, split by each entry's isArchived flag. With --queue every " +
			"entry is queued as a new message in order, so older entries get archived as the log fills.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openStore(cmd, gf)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("import: read %s: %w", args[0], err)
			}
			var msgs []script.MessageDesc
			if err := yaml.Unmarshal(data, &msgs); err != nil {
				return fmt.Errorf("import: parse %s: %w", args[0], err)
			}

			g := quietGame(cfg)
			defer g.Close()

			err = g.Script(func(p *script.Park) error {
				if !queue {
					return p.SetMessages(msgs)
				}
				for _, m := range msgs {
					if err := p.Import(m); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			if name == "" {
				name = args[0]
			}
			slot, err := g.SaveTo(db, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d messages into slot %s\n", len(slot.Messages), slot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "slot name (default the file name)")
	cmd.Flags().BoolVar(&queue, "queue", false, "queue entries as new messages instead of replacing the log")
	return cmd
}

func newMessagesDeleteCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot-id>",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore(cmd, gf)
			if err != nil {
				return err
			}
			if err := save.Delete(db, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %s\n", args[0])
			return nil
		},
	}
}
