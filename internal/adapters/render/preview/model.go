package preview

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/slack-go/slack"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	blocks []slack.Block
	opts   RenderOptions
	styles styles
	output string
}

func newModel(blocks []slack.Block, opts RenderOptions) model {
	return model{
		blocks: blocks,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderBlocks(m.blocks, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws a home view the way it would roughly appear in Slack.
func Render(home slack.HomeTabViewRequest, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(home.Blocks.BlockSet, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
