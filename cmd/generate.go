package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"auto_blog_generator/generator"
	"auto_blog_generator/render"
)

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var topic, format string
	c := &cobra.Command{
		Use:   "generate",
		Short: "Run the full pipeline once and print the post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatJSON, formatMarkdown, formatHTML:
			default:
				return fmt.Errorf("unknown --format %q (json, markdown, html)", format)
			}
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
			state, err := agent.Run(cmd.Context(), topic)
			if err != nil {
				logger.Error().Err(err).Msg("generation failed")
				return err
			}
			return writeState(cmd.OutOrStdout(), state, format)
		},
	}
	c.Flags().StringVarP(&topic, "topic", "t", "", "topic to write about")
	c.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format: json, markdown, html")
	_ = c.MarkFlagRequired("topic")
	return c
}

func writeState(w io.Writer, state generator.GenerationState, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(state)
	case formatHTML:
		page, err := render.HTML(state)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	default:
		_, err := io.WriteString(w, render.Markdown(state))
		return err
	}
}
