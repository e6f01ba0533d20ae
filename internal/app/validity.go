package app

import (
	"context"
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/engine/validity"
)

// ConfigurationWindow is the validity window of one calculation configuration.
type ConfigurationWindow struct {
	Name   string
	Window domain.ValidityWindow
}

// ValidityReport is the outcome of Validity.
type ValidityReport struct {
	View           string
	At             time.Time
	Window         domain.ValidityWindow
	Valid          bool
	Configurations []ConfigurationWindow
}

// Validity reports the window over which the view can be executed and whether the
// instant falls inside it. A zero instant means now.
func (a *App) Validity(ctx context.Context, configPath string, at time.Time) (*ValidityReport, error) {
	_, span := a.tracer.Start(ctx, "validity")
	defer span.End()

	ws, err := a.load(configPath)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if at.IsZero() {
		at = a.now()
	}

	report := &ValidityReport{
		View:   ws.View.Name(),
		At:     at,
		Window: a.validity.Window(ws.View),
		Valid:  a.validity.IsValidFor(ws.View, at),
	}
	for _, config := range ws.View.Configurations() {
		g, _ := ws.View.Graph(config)
		report.Configurations = append(report.Configurations, ConfigurationWindow{
			Name:   config,
			Window: validity.WindowOf(g),
		})
	}

	span.SetAttribute("view", report.View)
	span.SetAttribute("nodes", ws.View.Size())
	span.SetAttribute("valid", report.Valid)
	if report.Window.IsEmpty() {
		a.logger.Warn("view has no valid instant", "view", report.View)
	}
	return report, nil
}
