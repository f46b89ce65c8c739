package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/PabRod/pendulum/solver"
)

const (
	canvasWidth  = 60
	canvasHeight = 24
	trailLength  = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Skeleton maps a state and time to the chain of joint coordinates to draw,
// pivot first. Both pendulum models expose a compatible Positions method.
type Skeleton func(i int) [][2]float64

type tickMsg time.Time

// Player replays a solved trajectory as a terminal animation.
type Player struct {
	title  string
	traj   *solver.Trajectory
	joints Skeleton
	fps    int

	frame   int
	playing bool
	canvas  *Canvas
	trail   [][2]float64
}

// NewPlayer sizes the world window to contain the whole animation.
func NewPlayer(title string, traj *solver.Trajectory, joints Skeleton, fps int) *Player {
	reach := 1.0
	for i := 0; i < traj.Len(); i++ {
		for _, j := range joints(i) {
			reach = math.Max(reach, math.Max(math.Abs(j[0]), math.Abs(j[1])))
		}
	}
	reach *= 1.1

	return &Player{
		title:   title,
		traj:    traj,
		joints:  joints,
		fps:     fps,
		playing: true,
		canvas:  NewCanvas(canvasWidth, canvasHeight, -reach, reach, -reach, reach),
	}
}

// RunLive blocks until the user quits the animation.
func RunLive(title string, traj *solver.Trajectory, joints Skeleton, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	_, err := tea.NewProgram(NewPlayer(title, traj, joints, fps)).Run()
	return err
}

func (p *Player) Init() tea.Cmd {
	return p.tick()
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "r":
			p.frame = 0
			p.trail = p.trail[:0]
		case "[":
			p.scrub(-1)
		case "]":
			p.scrub(1)
		}
	case tickMsg:
		if p.playing && p.frame < p.traj.Len()-1 {
			p.frame++
			p.pushTrail()
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) scrub(delta int) {
	p.playing = false
	p.frame += delta
	if p.frame < 0 {
		p.frame = 0
	}
	if p.frame >= p.traj.Len() {
		p.frame = p.traj.Len() - 1
	}
	p.trail = p.trail[:0]
}

func (p *Player) pushTrail() {
	joints := p.joints(p.frame)
	tip := joints[len(joints)-1]
	p.trail = append(p.trail, tip)
	if len(p.trail) > trailLength {
		p.trail = p.trail[1:]
	}
}

func (p *Player) View() string {
	p.canvas.Clear()

	for _, pt := range p.trail {
		p.canvas.Mark(pt[0], pt[1])
	}

	joints := p.joints(p.frame)
	for i := 1; i < len(joints); i++ {
		p.canvas.Segment(joints[i-1][0], joints[i-1][1], joints[i][0], joints[i][1])
	}

	left := canvasStyle.Render(p.canvas.String())
	right := statsStyle.Render(p.stats())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("space pause · [ ] scrub · r restart · q quit")

	return headerStyle.Render(p.title) + "\n" + body + help + "\n"
}

func (p *Player) stats() string {
	x := p.traj.States[p.frame]

	var b strings.Builder
	row := func(label string, v float64) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%9.4f", v)))
		b.WriteByte('\n')
	}

	row("t", p.traj.Times[p.frame])
	labels := SeriesLabels(len(x))
	for i, v := range x {
		name := fmt.Sprintf("x%d", i)
		if i < len(labels) {
			name = strings.Fields(labels[i])[0]
		}
		row(name, v)
	}

	// Sparkline of the leading angle up to the current frame.
	if p.frame > 1 {
		theta := p.traj.Col(0)[:p.frame+1]
		b.WriteByte('\n')
		b.WriteString(asciigraph.Plot(theta,
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("theta history"),
		))
	}

	return b.String()
}
