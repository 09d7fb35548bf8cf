package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"auto_blog_generator/config"
	"auto_blog_generator/generator"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	provider   string
	model      string
	baseURL    string
	logLevel   string
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "blogen",
		Short: "Generate blog posts with an LLM",
		Long: `blogen turns a topic into a blog post: title, outline, Markdown body,
SEO summary and tags. It can run once from the command line or serve
an HTTP API with a streaming endpoint.

Supported providers:
  groq     - Groq OpenAI-compatible API (default, requires GROQ_API_KEY)
  openai   - OpenAI API (requires OPENAI_API_KEY)
  mock     - offline canned answers, no network`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "config/config.json", "path to config.json")
	pf.StringVarP(&opts.provider, "provider", "p", "", "LLM provider (groq, openai, mock)")
	pf.StringVarP(&opts.model, "model", "m", "", "model id (provider-specific)")
	pf.StringVar(&opts.baseURL, "base-url", "", "OpenAI-compatible endpoint base URL")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(opts),
		newGenerateCmd(opts),
		newStreamCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// load resolves defaults, the config file, BLOG_* env and then the flags the user set.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	fileCfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	var ov config.Overrides
	if flags.Changed("provider") {
		ov.Provider = &o.provider
	}
	if flags.Changed("model") {
		ov.Model = &o.model
	}
	if flags.Changed("base-url") {
		ov.BaseURL = &o.baseURL
	}
	if flags.Changed("log-level") {
		ov.LogLevel = &o.logLevel
	}
	return config.Resolve(fileCfg, ov), nil
}

// newLogger writes JSON lines for the server and human-readable lines for one-shot commands.
func newLogger(level string, w io.Writer, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	switch cfg.LLM.Provider {
	case generator.ProviderMock:
		return generator.MockLLM{}, nil
	case generator.ProviderGroq, generator.ProviderOpenAI:
		llm, err := generator.NewOpenAILLM(cfg.Settings())
		if err != nil {
			return nil, err
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func buildAgent(cfg config.Config, logger zerolog.Logger) (*generator.Agent, error) {
	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}
	return generator.NewAgent(llm, cfg.LLM.Model, &logger)
}
