package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"FoodTechScanner/internal/aggregate"
	"FoodTechScanner/internal/config"
	"FoodTechScanner/internal/curation"
	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/feed"
	"FoodTechScanner/internal/infrastructure/llm"
	"FoodTechScanner/internal/logging"
	"FoodTechScanner/internal/session"
	"FoodTechScanner/internal/ui"
)

// Application wires configuration into the aggregation core and the
// terminal surface.
type Application struct {
	cfg   config.Config
	model ui.Model
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, nil)
	}

	retriever := feed.NewRetriever(nil, baseLogger.With("component", "retriever"))
	collector := aggregate.New(retriever, sourceRegistration(cfg.Sources), baseLogger.With("component", "aggregator"))
	curator := curation.NewBuilder(llm.NewChatGPTClient(cfg.ChatGPT), baseLogger.With("component", "curation"))

	model := ui.New(ui.Deps{
		Collector:    collector,
		Curator:      curator,
		Store:        session.NewMemoryStore(),
		PageSize:     cfg.Browse.PageSize,
		DefaultLabel: domain.Agriculture,
		Logger:       baseLogger.With("component", "ui"),
	})

	return &Application{cfg: cfg, model: model}
}

// Run blocks on the surface's event loop until the user quits.
func (a *Application) Run(ctx context.Context) error {
	program := tea.NewProgram(a.model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run surface: %w", err)
	}
	return nil
}

// sourceRegistration converts config entries into the ordered registration.
func sourceRegistration(cfg []config.SourceConfig) []domain.Source {
	sources := make([]domain.Source, 0, len(cfg))
	for _, sc := range cfg {
		sources = append(sources, domain.Source{URL: sc.URL, Domain: domain.Label(sc.Domain)})
	}
	return sources
}
