package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SAP-F-2025/surveyor-service/internal/cache"
	"github.com/SAP-F-2025/surveyor-service/internal/config"
	"github.com/SAP-F-2025/surveyor-service/internal/events"
	"github.com/SAP-F-2025/surveyor-service/internal/instruments"
	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"github.com/SAP-F-2025/surveyor-service/internal/responders"
	"github.com/SAP-F-2025/surveyor-service/internal/scenarios"
	"github.com/SAP-F-2025/surveyor-service/internal/services"
	"github.com/SAP-F-2025/surveyor-service/internal/utils"
	"github.com/SAP-F-2025/surveyor-service/internal/validator"
	"github.com/SAP-F-2025/surveyor-service/pkg"
	"github.com/spf13/cobra"
)

type administerOptions struct {
	script string
	out    string
	prefix string
}

func newAdministerCmd() *cobra.Command {
	var opts administerOptions

	cmd := &cobra.Command{
		Use:   "administer",
		Short: "Run a scripted administration and save its results",
		Long: `Run a scripted administration described by a YAML file and write
{prefix}_answers.json, {prefix}_results.csv and {prefix}_results.json.

Example script:

  label: pilot
  instruments: [GSE, SPIN]
  scenario: cheating_dilemma     # or roster: [Alice, Bob]
  fallback_answer: "Moderately true"
  answers:
    Emma Walsh: ["Exactly true", "Hardly true"]
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.out == "" {
				opts.out = cfg.OutputDir
			}

			logger := newLogger(cfg)
			publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
			if err != nil {
				return fmt.Errorf("failed to create event publisher: %w", err)
			}
			defer publisher.Close()

			var store cache.CacheService
			if cfg.RedisURL != "" {
				client, err := pkg.NewRedisClient(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer client.Close()
				store = cache.NewRedisCache(client, "surveyor", logger.Slog())
			}

			env := administerEnv{
				logger:    logger,
				publisher: publisher,
				cache:     store,
				cacheTTL:  cfg.CacheTTL,
				stdout:    cmd.OutOrStdout(),
			}
			return env.run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "YAML script describing the administration")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory (default OUTPUT_DIR)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "output file prefix (default the script label)")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// administerEnv carries the infrastructure an administer run uses. cache is
// optional; when set, responses are memoized across runs.
type administerEnv struct {
	logger    utils.Logger
	publisher events.EventPublisher
	cache     cache.CacheService
	cacheTTL  time.Duration
	stdout    io.Writer
}

func (e administerEnv) run(ctx context.Context, opts administerOptions) error {
	script, err := loadScript(opts.script)
	if err != nil {
		return err
	}
	req := script.Request()

	v := validator.New()
	if err := v.Validate(req); err != nil {
		return err
	}

	questionnaires, err := instruments.DefaultRegistry().Resolve(req.Instruments)
	if err != nil {
		return err
	}
	roster := req.Roster
	if len(roster) == 0 {
		catalog, err := scenarios.Builtin()
		if err != nil {
			return err
		}
		scenario, err := catalog.Get(req.Scenario)
		if err != nil {
			return err
		}
		roster = scenario.Roster()
	}

	surveyor, err := services.NewSurveyor(services.SurveyorConfig{
		Label:          req.Label,
		Questionnaires: questionnaires,
		Roster:         roster,
		Validator:      v,
		Logger:         e.logger.Slog(),
	})
	if err != nil {
		return err
	}

	results, err := surveyor.RunOnce(ctx, e.responder(req))
	if errors.Is(err, responders.ErrScriptExhausted) {
		e.logger.Warn("Script ran out, saving partial results", "error", err)
		results, err = surveyor.Results(), nil
	}
	if err != nil {
		return err
	}

	prefix := opts.prefix
	if prefix == "" {
		prefix = req.Label
	}
	files, err := surveyor.SaveResults(results, opts.out, prefix)
	if err != nil {
		return err
	}

	if err := e.publisher.PublishSurveyEvent(ctx, events.NewResultsSavedEvent(req.Label, opts.out, files)); err != nil {
		e.logger.LogError(err, "Failed to publish results event")
	}

	answered, parsed := models.CountAnswers(surveyor.Answers())
	fmt.Fprintf(e.stdout, "%s: %d answers (%d parsed) from %d respondents\n", req.Label, answered, parsed, len(roster))
	for _, f := range files {
		fmt.Fprintln(e.stdout, f)
	}
	return nil
}

func (e administerEnv) responder(req *models.AdministrationRequest) responders.Responder {
	scripted := responders.NewScripted(req.Answers)
	if req.FallbackAnswer != "" {
		scripted = scripted.WithFallback(req.FallbackAnswer)
	}
	if e.cache == nil {
		return scripted
	}
	return responders.NewCached(scripted, e.cache, e.cacheTTL, e.logger.Slog())
}
