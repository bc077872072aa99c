package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cag-dev/ndcube"
)

var playShuffle int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive puzzle session",
	Long: `Start an interactive session: the cube is scrambled and rendered, and
rotations typed in four-digit notation are applied as you enter them.

Keyboard shortcuts:
  enter   - apply the typed rotation(s)
  s       - scramble with 10 random rotations
  r       - reset to a solved cube
  g       - run the randomized solver (bounded)
  q/Esc   - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playShuffle, "shuffle", 0, "Initial scramble size (default from NDCUBE_SHUFFLE)")
}

// solveBudget bounds the in-session solver so the UI always comes back.
const solveBudget = 2_000_000

// Messages
type solveDoneMsg struct {
	res *ndcube.SolveResult
	err error
}

// Model
type playModel struct {
	cube    *ndcube.Cube
	input   string
	status  string
	err     error
	solving bool

	quitting bool
}

func newPlayModel() (*playModel, error) {
	c, err := newCube()
	if err != nil {
		return nil, err
	}
	shuffle := playShuffle
	if shuffle <= 0 {
		shuffle = defaults.Shuffle
	}
	c.Shuffle(shuffle)
	return &playModel{
		cube:   c,
		status: fmt.Sprintf("scrambled with %d rotations", shuffle),
	}, nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case solveDoneMsg:
		m.solving = false
		// The solver ran on a clone; its net effect is exactly the
		// retained moves, so replaying them brings the real cube to the
		// same state.
		for _, r := range msg.res.Moves {
			m.cube.Rotate(r)
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("solver gave up after %d iterations (unsolvedness %d)",
				msg.res.Steps, msg.res.Stats.Final)
		} else {
			m.status = fmt.Sprintf("solved in %d rotations", len(msg.res.Moves))
		}
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case "enter":
		if m.solving || m.input == "" {
			return m, nil
		}
		return m.applyInput()

	case "s":
		if m.solving {
			return m, nil
		}
		m.cube.Shuffle(10)
		m.status = "scrambled with 10 rotations"
		m.err = nil
		return m, nil

	case "r":
		if m.solving {
			return m, nil
		}
		c, err := newCube()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cube = c
		m.status = "reset to solved"
		m.err = nil
		return m, nil

	case "g":
		if m.solving {
			return m, nil
		}
		m.solving = true
		m.status = "solving..."
		m.err = nil
		clone := m.cube.Clone()
		return m, func() tea.Msg {
			res, err := clone.Solve(ndcube.WithMaxSteps(solveBudget))
			return solveDoneMsg{res: res, err: err}
		}

	default:
		s := msg.String()
		if len(s) == 1 && (s == "," || (s[0] >= '0' && s[0] <= '9')) {
			m.input += s
		}
		return m, nil
	}
}

func (m *playModel) applyInput() (tea.Model, tea.Cmd) {
	rots, err := ndcube.ParseRotations(m.input, m.cube.Dims())
	if err != nil {
		m.err = err
		return m, nil
	}
	for _, r := range rots {
		m.cube.Rotate(r)
	}
	m.status = fmt.Sprintf("applied %s", ndcube.FormatRotations(rots))
	m.err = nil
	m.input = ""
	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("The %d-D Cube", m.cube.Dims())))
	b.WriteString("\n\n")
	b.WriteString(renderState(m.cube))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Enter a rotation:"), m.input)

	if m.err != nil {
		b.WriteString(badStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("four digits per rotation (axis from to side), comma-separate for sequences • enter: apply • s: scramble • r: reset • g: solve • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, err := newPlayModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play session failed: %w", err)
	}
	return nil
}
