package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/viewgraph/internal/adapters/resolver"
	"go.trai.ch/viewgraph/internal/adapters/telemetry"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports/mocks"
	"go.trai.ch/viewgraph/internal/engine/validity"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"viewgraph": func() int {
			return run(context.Background(), os.Args[1:], os.Stderr, graftProvider)
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func newComponents(t *testing.T) (*app.Components, *mocks.MockViewLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockViewLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	calc, err := validity.NewCalculator(validity.DefaultCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	tracer := telemetry.NewNoOpTracer()
	application := app.New(loader, resolver.Factory{}, mocks.NewMockLedgerStore(ctrl), log, tracer, calc)
	return app.NewComponents(application, log, tracer), loader, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newComponents(t)
	provider := func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, loader, log := newComponents(t)
	loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigReadFailed)
	log.EXPECT().Error(gomock.Any())

	provider := func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(t.Context(), []string{"validity", "-c", "missing.yaml"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
