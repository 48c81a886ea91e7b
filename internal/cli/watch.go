package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	progressbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/repel"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// watchInterval limits how often iteration updates reach the view.
const watchInterval = 50 * time.Millisecond

type iterMsg struct {
	n       int
	overlap bool
}

type doneMsg struct {
	result *pipeline.Result
	err    error
}

// watchModel is the bubbletea model behind repel --watch.
type watchModel struct {
	title    string
	total    int
	iter     int
	overlap  bool
	bar      progressbar.Model
	result   *pipeline.Result
	err      error
	cancel   context.CancelFunc
	quitting bool
}

func newWatchModel(title string, total int, cancel context.CancelFunc) watchModel {
	return watchModel{
		title:  title,
		total:  total,
		bar:    progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(40)),
		cancel: cancel,
	}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case iterMsg:
		m.iter, m.overlap = msg.n, msg.overlap
	case doneMsg:
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// Wait for the run to notice and report back.
			m.quitting = true
			m.cancel()
		}
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-4, 60))
	}
	return m, nil
}

func (m watchModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(1, float64(m.iter)/float64(m.total))
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n\n  ")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n\n")

	status := StyleSuccess.Render("clear")
	if m.overlap {
		status = StyleWarning.Render("overlapping")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  iteration %d/%d · ", m.iter, m.total)))
	b.WriteString(status)
	b.WriteString("\n")

	if m.quitting {
		b.WriteString(StyleDim.Render("  stopping…"))
	} else {
		b.WriteString(StyleDim.Render("  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// throttle forwards at most one iteration per interval, plus every
// iteration that ends without overlap.
func throttle(interval time.Duration, fn func(repel.Iteration)) func(repel.Iteration) {
	var last time.Time
	return func(it repel.Iteration) {
		now := time.Now()
		if !it.Overlap || now.Sub(last) >= interval {
			last = now
			fn(it)
		}
	}
}

// runWatch solves the scene while a bubbletea view tracks the iterations.
func runWatch(ctx context.Context, runner *pipeline.Runner, s *scene.Scene, opts pipeline.Options) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	title := fmt.Sprintf("Repelling %d labels", len(s.Labels))
	p := tea.NewProgram(newWatchModel(title, opts.MaxIter, cancel), tea.WithOutput(os.Stderr))

	opts.Observer = throttle(watchInterval, func(it repel.Iteration) {
		p.Send(iterMsg{n: it.N, overlap: it.Overlap})
	})
	go func() {
		res, err := runner.Execute(ctx, s, opts)
		p.Send(doneMsg{result: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	m := final.(watchModel)
	return m.result, m.err
}
