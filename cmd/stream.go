package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"auto_blog_generator/generator"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4"))

func newStreamCmd(opts *rootOptions) *cobra.Command {
	var topic string
	c := &cobra.Command{
		Use:   "stream",
		Short: "Print the title, then the post body as it is generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel, cmd.ErrOrStderr(), true)

			agent, err := buildAgent(cfg, logger)
			if err != nil {
				logger.Error().Err(err).Msg("startup failed")
				return err
			}

			out := cmd.OutOrStdout()
			for ev := range agent.StreamRun(cmd.Context(), topic) {
				switch ev.Name {
				case generator.EventTitle:
					fmt.Fprintf(out, "%s\n\n", titleStyle.Render(ev.Data))
				case generator.EventData:
					fmt.Fprint(out, ev.Data)
				case generator.EventEnd:
					fmt.Fprintln(out)
					return nil
				case generator.EventError:
					return errors.New(ev.Data)
				}
			}
			return nil
		},
	}
	c.Flags().StringVarP(&topic, "topic", "t", "", "topic to write about")
	_ = c.MarkFlagRequired("topic")
	return c
}
