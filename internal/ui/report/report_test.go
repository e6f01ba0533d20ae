package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/ui/report"
)

var (
	security = domain.NewTargetType("SECURITY")
	portType = domain.NewTargetType("PORTFOLIO_NODE")

	secV0  = domain.NewVersionedUniqueID("Sec", "AAPL", "0")
	secV1  = domain.NewVersionedUniqueID("Sec", "AAPL", "1")
	secV2  = domain.NewVersionedUniqueID("Sec", "AAPL", "2")
	msftV3 = domain.NewVersionedUniqueID("Sec", "MSFT", "3")
	portID = domain.NewUniqueID("Port", "Root")

	ticker  = domain.NewTargetRequirement(security, domain.NewExternalID("Ticker", "AAPL"))
	msft    = domain.NewTargetRequirement(security, domain.NewExternalID("Ticker", "MSFT"))
	portRef = domain.NewTargetSpecification(portType, portID)
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
}

func pruneReport() *app.PruneReport {
	usd := domain.NewValueProperties(map[string][]string{"Currency": {"USD"}})
	return &app.PruneReport{
		View:    "equity-risk",
		Invalid: []domain.UniqueID{secV1, msftV3},
		Configurations: []app.ConfigurationReport{
			{
				Name: "default", Total: 3, Retained: 0,
				Missing: []domain.ValueRequirement{
					domain.NewValueRequirement("Present Value", portRef, domain.EmptyProperties),
					domain.NewValueRequirement("Present Value", ticker, usd),
				},
			},
			{
				Name: "hedges", Total: 3, Retained: 2,
				Missing: []domain.ValueRequirement{
					domain.NewValueRequirement("Delta", domain.NewTargetSpecification(security, msftV3), domain.EmptyProperties),
				},
			},
			{Name: "stress", Total: 1, Retained: 1},
		},
	}
}

func validityReport() *app.ValidityReport {
	window := domain.NewValidityWindow(domain.BoundAt(at(8, 0)), domain.BoundAt(at(17, 30)))
	return &app.ValidityReport{
		View:   "equity-risk",
		At:     at(12, 0),
		Window: window,
		Valid:  true,
		Configurations: []app.ConfigurationWindow{
			{Name: "default", Window: window},
			{Name: "stress", Window: domain.UnboundedWindow()},
		},
	}
}

func resolveReport() *app.ResolveReport {
	return &app.ResolveReport{
		View:              "equity-risk",
		VersionCorrection: domain.VersionCorrection{VersionAsOf: at(8, 0)},
		Entries: []domain.LedgerEntry{
			{Reference: portRef, Resolved: portID},
			{Reference: ticker, Resolved: secV2},
		},
		Changed:    []app.Change{{Reference: ticker, Compiled: secV1, Current: secV2}},
		Unresolved: []domain.TargetReference{msft},
		Expired:    []domain.UniqueID{secV0},
		Touched:    2,
	}
}

func TestRenderer(t *testing.T) {
	tests := []struct {
		name   string
		render func(r *report.Renderer) error
	}{
		{name: "prune", render: func(r *report.Renderer) error { return r.Prune(pruneReport()) }},
		{name: "prune_empty", render: func(r *report.Renderer) error {
			return r.Prune(&app.PruneReport{View: "empty"})
		}},
		{name: "validity_valid", render: func(r *report.Renderer) error { return r.Validity(validityReport()) }},
		{name: "validity_invalid", render: func(r *report.Renderer) error {
			return r.Validity(&app.ValidityReport{
				View:   "broken",
				At:     at(18, 0),
				Window: domain.EmptyWindow(),
				Configurations: []app.ConfigurationWindow{
					{Name: "default", Window: domain.EmptyWindow()},
				},
			})
		}},
		{name: "resolve", render: func(r *report.Renderer) error { return r.Resolve(resolveReport()) }},
		{name: "resolve_empty", render: func(r *report.Renderer) error {
			return r.Resolve(&app.ResolveReport{View: "empty"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			require.NoError(t, tt.render(report.New(buf)))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name   string
		render func(j *report.JSON) error
	}{
		{name: "prune_json", render: func(j *report.JSON) error { return j.Prune(pruneReport()) }},
		{name: "validity_json", render: func(j *report.JSON) error { return j.Validity(validityReport()) }},
		{name: "resolve_json", render: func(j *report.JSON) error { return j.Resolve(resolveReport()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, tt.render(report.NewJSON(buf)))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}
