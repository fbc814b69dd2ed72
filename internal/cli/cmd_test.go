package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/llm"
	"github.com/Sgowda7697/Dream2Reality/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App with no plan backend and no flight provider, so
// every command runs against the built-in plan and estimated flights.
func testApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	logs := new(bytes.Buffer)
	sink := NewLogSink(logs)
	observer := service.NewLogUseCaseObserver(sink)

	return &App{
		Plans:   service.NewPlanService(llm.BackendAvailability{}, nil, observer),
		Flights: service.NewFlightService(nil, observer),
		Logs:    sink,
	}, logs
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestPlanCmd_RendersPlan(t *testing.T) {
	a, logs := testApp(t)

	out, err := executeCmd(t, a, "plan", "Beach", "vacation", "with", "water", "sports")
	require.NoError(t, err)
	assert.Contains(t, out, "TRIP TO GOA")
	assert.Contains(t, out, "Mysore")
	assert.Contains(t, out, "Calangute Beach")
	assert.Contains(t, logs.String(), "generate-plan")
}

func TestPlanCmd_JSON(t *testing.T) {
	a, _ := testApp(t)

	out, err := executeCmd(t, a, "plan", "--json", "Royal palaces and culture, 3 days")
	require.NoError(t, err)

	var plan domain.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Goa", plan.ChosenDestination)
	assert.Equal(t, "Royal palaces and culture, 3 days", plan.UserQuery)
	assert.Len(t, plan.DestinationOptions, 2)
}

func TestPlanCmd_RequiresDescription(t *testing.T) {
	a, _ := testApp(t)

	_, err := executeCmd(t, a, "plan")
	require.Error(t, err)
}

func TestQuietFlag_MutesServiceLogs(t *testing.T) {
	a, logs := testApp(t)

	_, err := executeCmd(t, a, "--quiet", "plan", "Beach vacation, 5 days")
	require.NoError(t, err)
	assert.Empty(t, logs.String())
	assert.True(t, a.Logs.Muted())
}

func TestFlightsCmd_HelpListsKnownCities(t *testing.T) {
	a, _ := testApp(t)

	out, err := executeCmd(t, a, "flights", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Bangalore, Bhubaneswar, Chandigarh")
	assert.Contains(t, out, "Varanasi.")
	assert.Contains(t, out, "Delhi (DEL)")
}

func TestFlightsCmd_EstimatedResult(t *testing.T) {
	a, logs := testApp(t)

	out, err := executeCmd(t, a, "flights",
		"--from", "Bangalore", "--to", "Goa",
		"--start", "2025-03-01", "--end", "2025-03-05",
		"--preference", "cheapest")
	require.NoError(t, err)

	assert.Contains(t, out, "BLR → GOI")
	assert.Contains(t, out, "ESTIMATED")
	assert.Contains(t, out, "lowest price")
	assert.Less(t, strings.Index(out, "SpiceJet"), strings.Index(out, "IndiGo"))
	assert.Contains(t, logs.String(), "search-flights")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestFlightsCmd_JSON(t *testing.T) {
	a, _ := testApp(t)

	out, err := executeCmd(t, a, "flights", "--json",
		"--from", "Delhi", "--to", "Mysore",
		"--start", "2025-03-01", "--end", "2025-03-04")
	require.NoError(t, err)

	var got struct {
		Flights    []domain.Flight `json:"flights"`
		IsFallback bool            `json:"isFallback"`
		Preference string          `json:"preference"`
		Source     string          `json:"source"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.IsFallback)
	assert.Equal(t, "estimated", got.Source)
	assert.Equal(t, "good_timing", got.Preference)
	assert.Len(t, got.Flights, 3)
}

func TestFlightsCmd_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing flags without a terminal",
			args:    []string{"flights", "--from", "Bangalore", "--to", "Goa"},
			wantErr: "missing --start, --end",
		},
		{
			name:    "end before start",
			args:    []string{"flights", "--from", "Bangalore", "--to", "Goa", "--start", "2025-03-05", "--end", "2025-03-01"},
			wantErr: "end date must be after",
		},
		{
			name:    "bad date",
			args:    []string{"flights", "--from", "Bangalore", "--to", "Goa", "--start", "03/01/2025", "--end", "2025-03-05"},
			wantErr: "start date",
		},
		{
			name:    "unknown preference",
			args:    []string{"flights", "--from", "Bangalore", "--to", "Goa", "--start", "2025-03-01", "--end", "2025-03-05", "--preference", "fastest"},
			wantErr: "unknown preference",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := testApp(t)
			_, err := executeCmd(t, a, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestExportCmd_WritesPDF(t *testing.T) {
	a, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "goa.pdf")

	out, err := executeCmd(t, a, "export", "Beach vacation, 5 days",
		"--out", path, "--from", "Bangalore", "--start", "2025-03-01", "--end", "2025-03-05")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved Goa trip to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportCmd_FlightsNeedOrigin(t *testing.T) {
	a, _ := testApp(t)

	_, err := executeCmd(t, a, "export", "Beach vacation, 5 days",
		"--out", filepath.Join(t.TempDir(), "x.pdf"), "--start", "2025-03-01", "--end", "2025-03-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}

func TestExportCmd_ExistingFile(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		input       string
		force       bool
		wantErr     bool
		wantOut     string
		overwritten bool
	}{
		{name: "refuses without a terminal", wantErr: true},
		{name: "force overwrites", force: true, wantOut: "Saved", overwritten: true},
		{name: "prompt declined", interactive: true, input: "n\n", wantOut: "Export cancelled."},
		{name: "prompt accepted", interactive: true, input: "y\n", wantOut: "Saved", overwritten: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := testApp(t)
			a.IsInteractive = func() bool { return tc.interactive }
			a.In = strings.NewReader(tc.input)

			path := filepath.Join(t.TempDir(), "trip.pdf")
			require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

			args := []string{"export", "Beach vacation, 5 days", "--out", path}
			if tc.force {
				args = append(args, "--force")
			}
			out, err := executeCmd(t, a, args...)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already exists")
			} else {
				require.NoError(t, err)
				assert.Contains(t, out, tc.wantOut)
			}

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.overwritten, bytes.HasPrefix(data, []byte("%PDF")))
		})
	}
}

func TestChatCmd_RequiresTerminal(t *testing.T) {
	a, _ := testApp(t)

	_, err := executeCmd(t, a)
	assert.ErrorIs(t, err, errNotInteractive)

	_, err = executeCmd(t, a, "chat")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSink(&buf)

	_, _ = s.Write([]byte("a"))
	s.Mute()
	n, err := s.Write([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	s.Unmute()
	_, _ = s.Write([]byte("c"))
	assert.Equal(t, "ac", buf.String())

	var nilSink *LogSink
	n, err = nilSink.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, nilSink.Muted())
}
