package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/repel"
)

func TestWatchModelTracksIterations(t *testing.T) {
	m := newWatchModel("Repelling 2 labels", 100, func() {})

	next, cmd := m.Update(iterMsg{n: 25, overlap: true})
	m = next.(watchModel)
	if cmd != nil {
		t.Error("iteration update should not issue a command")
	}
	if m.iter != 25 || !m.overlap {
		t.Errorf("iter=%d overlap=%v, want 25 true", m.iter, m.overlap)
	}
	if p := m.percent(); p != 0.25 {
		t.Errorf("percent() = %v, want 0.25", p)
	}

	view := m.View()
	for _, want := range []string{"Repelling 2 labels", "iteration 25/100", "overlapping"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestWatchModelDoneQuits(t *testing.T) {
	m := newWatchModel("x", 10, func() {})
	res := &pipeline.Result{}
	next, cmd := m.Update(doneMsg{result: res, err: errors.New("boom")})
	m = next.(watchModel)

	if cmd == nil {
		t.Fatal("done should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done should return tea.Quit")
	}
	if m.result != res || m.err == nil {
		t.Error("done should record the result and error")
	}
}

func TestWatchModelQuitCancels(t *testing.T) {
	canceled := false
	m := newWatchModel("x", 10, func() { canceled = true })

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(watchModel)
	if !canceled {
		t.Error("ctrl+c should cancel the run")
	}
	if !strings.Contains(m.View(), "stopping") {
		t.Error("view should show that the run is stopping")
	}
}

func TestWatchModelPercentClamps(t *testing.T) {
	tests := []struct {
		iter, total int
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{50, 10, 1},
		{5, 10, 0.5},
	}
	for _, tt := range tests {
		m := watchModel{iter: tt.iter, total: tt.total}
		if got := m.percent(); got != tt.want {
			t.Errorf("percent(%d/%d) = %v, want %v", tt.iter, tt.total, got, tt.want)
		}
	}
}

func TestThrottle(t *testing.T) {
	var got []int
	fn := throttle(time.Hour, func(it repel.Iteration) { got = append(got, it.N) })

	fn(repel.Iteration{N: 1, Overlap: true})
	fn(repel.Iteration{N: 2, Overlap: true})
	fn(repel.Iteration{N: 3, Overlap: true})
	fn(repel.Iteration{N: 4, Overlap: false})

	// The first call passes, the next two fall inside the interval, and the
	// final clean iteration is always forwarded.
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("forwarded %v, want [1 4]", got)
	}
}
