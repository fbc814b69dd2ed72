package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/Sgowda7697/Dream2Reality/internal/conversation"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/export"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// opDoneMsg reports the outcome of a controller operation.
type opDoneMsg struct{ err error }

// updateMsg signals that the controller changed outside an operation, such
// as a scheduled prompt firing.
type updateMsg struct{}

type exportDoneMsg struct {
	path string
	err  error
}

// chatModel is the bubbletea Model for the conversational planner. Turns
// are printed above the program as they arrive; View only renders the
// input line and its hints.
type chatModel struct {
	app  *App
	ctrl *conversation.Controller
	ctx  context.Context

	input   textinput.Model
	spinner spinner.Model
	width   int

	printed   int
	lastStage conversation.Stage
	working   string
	notice    string

	// watch listens on the controller's update channel between operations.
	watch    bool
	quitting bool
}

func newChatModel(ctx context.Context, a *App, ctrl *conversation.Controller) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader

	return chatModel{
		app:       a,
		ctrl:      ctrl,
		ctx:       ctx,
		input:     ti,
		spinner:   sp,
		lastStage: ctrl.Stage(),
		watch:     true,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatChatWelcome(conversation.Greeting)),
		m.waitForUpdate(),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case spinner.TickMsg:
		if m.working == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.working = ""
		if msg.err != nil {
			m.notice = describeError(msg.err)
		}
		cmd := m.flush()
		return m, cmd

	case updateMsg:
		cmd := m.flush()
		return m, tea.Batch(cmd, m.waitForUpdate())

	case exportDoneMsg:
		m.working = ""
		if msg.err != nil {
			m.notice = describeError(msg.err)
			return m, nil
		}
		return m, tea.Println(formatter.Dim("Saved " + msg.path))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Happy travels.") + "\n"
	}

	var b strings.Builder
	if m.working != "" {
		b.WriteString(m.spinner.View() + " " + formatter.Dim(m.working+"...") + "\n")
	} else if hint := stageChoices(m.ctrl.State()); hint != "" {
		b.WriteString(hint + "\n")
	}
	if m.notice != "" {
		b.WriteString(formatter.FormatNotice(m.notice) + "\n")
	}
	b.WriteString(formatter.StylePurple.Render("trip") + " " + formatter.Dim("❯") + " ")
	b.WriteString(m.input.View())
	return b.String()
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	if m.working != "" {
		m.notice = "Still working on your last request"
		return m, nil
	}
	m.notice = ""

	if strings.HasPrefix(line, "/") {
		return m.runCommand(line)
	}

	act, err := parseChatInput(m.ctrl.State(), line)
	if err != nil {
		m.notice = describeError(err)
		return m, nil
	}

	ctrl, ctx := m.ctrl, m.ctx
	run := func() tea.Msg { return opDoneMsg{err: act.run(ctx, ctrl)} }
	if !act.slow {
		return m, run
	}
	m.working = act.message
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m chatModel) runCommand(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit

	case "/samples":
		return m, tea.Println(formatter.FormatSamples(conversation.SamplePrompts))

	case "/reset":
		if err := m.ctrl.Reset(); err != nil {
			m.notice = describeError(err)
			return m, nil
		}
		m.printed = 0
		m.lastStage = m.ctrl.Stage()
		m.working = ""
		return m, tea.Println("\n" + formatter.FormatChatWelcome(conversation.Greeting))

	case "/export":
		plan := m.ctrl.Plan()
		if plan == nil {
			m.notice = "Nothing to export yet"
			return m, nil
		}
		path := export.FileName(plan)
		if len(fields) > 1 {
			path = fields[1]
		}
		doc := documentFor(m.ctrl)
		m.working = "Exporting"
		write := func() tea.Msg {
			return exportDoneMsg{path: path, err: writePDF(doc, path)}
		}
		return m, tea.Batch(write, m.spinner.Tick)

	case "/help":
		return m, tea.Println(formatter.Dim(chatHelp))
	}

	m.notice = fmt.Sprintf("Unknown command %s, try /help", fields[0])
	return m, nil
}

const chatHelp = `/samples         show sample trip descriptions
/reset           start a new conversation
/export [path]   save the planned trip as a PDF
/quit            leave the planner`

// flush prints turns added since the last flush, followed by a panel for
// the new stage when it has something to show.
func (m *chatModel) flush() tea.Cmd {
	turns := m.ctrl.Turns()
	if m.printed > len(turns) {
		m.printed = 0
	}
	var lines []string
	for _, t := range turns[m.printed:] {
		lines = append(lines, formatter.FormatTurn(t))
	}
	m.printed = len(turns)

	stage := m.ctrl.Stage()
	if stage != m.lastStage {
		m.lastStage = stage
		if panel := stagePanel(m.ctrl); panel != "" {
			lines = append(lines, panel)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return tea.Println(strings.Join(lines, "\n"))
}

func (m chatModel) waitForUpdate() tea.Cmd {
	if !m.watch {
		return nil
	}
	updates := m.ctrl.Updates()
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return updateMsg{}
	}
}

// stagePanel renders the data that goes with the controller's stage.
func stagePanel(ctrl *conversation.Controller) string {
	plan := ctrl.Plan()
	switch st := ctrl.State().(type) {
	case conversation.DestinationsState:
		chosen := ""
		if plan != nil {
			chosen = plan.ChosenDestination
		}
		return formatter.FormatDestinations(st.Visible(), chosen)
	case conversation.ItineraryState:
		var b strings.Builder
		if plan != nil {
			b.WriteString(formatter.FormatPlan(plan))
		}
		if r := ctrl.Flights(); r != nil {
			b.WriteString("\n" + formatter.FormatFlightResult(r))
		}
		return b.String()
	case conversation.BookingFlightsState:
		return formatter.SourceBadge(st.IsFallback) + "\n" + formatter.FormatFlights(st.Offers)
	case conversation.BookingHotelsState:
		return formatter.FormatHotels(st.Hotels)
	}
	return ""
}

// documentFor collects the export document from the conversation so far.
func documentFor(ctrl *conversation.Controller) export.Document {
	in := ctrl.Inputs()
	doc := export.Document{
		Plan:        ctrl.Plan(),
		Origin:      in.OriginCity,
		GeneratedAt: time.Now(),
	}
	if in.StartDate != nil {
		doc.StartDate = in.StartDate.Format(domain.DateLayout)
	}
	if in.EndDate != nil {
		doc.EndDate = in.EndDate.Format(domain.DateLayout)
	}
	if r := ctrl.Flights(); r != nil {
		doc.Flights = r.Offers
		doc.IsEstimated = r.IsFallback
	}
	return doc
}

func writePDF(doc export.Document, path string) error {
	data, err := export.PDF(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// describeError turns controller errors into a one-line notice.
func describeError(err error) string {
	var verr *conversation.ValidationError
	switch {
	case errors.As(err, &verr) && verr.Message != "":
		return strings.ToUpper(verr.Message[:1]) + verr.Message[1:]
	case errors.Is(err, conversation.ErrBusy):
		return "Still working on your last request"
	case errors.Is(err, conversation.ErrWrongStage):
		return "That doesn't apply right now"
	case errors.Is(err, conversation.ErrSessionEnded):
		return "That request was cancelled"
	}
	return err.Error()
}
