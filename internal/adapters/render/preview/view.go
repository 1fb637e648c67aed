package preview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/slack-go/slack"
)

const defaultWidth = 72

type RenderOptions struct {
	Width int
}

var (
	boldPattern   = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicPattern = regexp.MustCompile(`(^|\s)_([^_\n]+)_`)
	codePattern   = regexp.MustCompile("`([^`\n]+)`")
)

func renderBlocks(blocks []slack.Block, opts RenderOptions, s styles) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if line := renderBlock(block, width, s); line != "" {
			lines = append(lines, line)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBlock(block slack.Block, width int, s styles) string {
	switch b := block.(type) {
	case *slack.HeaderBlock:
		return s.header.Render(textOf(b.Text, s))
	case *slack.SectionBlock:
		return renderSection(b, width, s)
	case *slack.ActionBlock:
		if b.Elements == nil {
			return ""
		}
		controls := make([]string, 0, len(b.Elements.ElementSet))
		for _, element := range b.Elements.ElementSet {
			controls = append(controls, renderElement(element, s))
		}
		return strings.Join(controls, " ")
	case *slack.ContextBlock:
		parts := make([]string, 0, len(b.ContextElements.Elements))
		for _, element := range b.ContextElements.Elements {
			if text, ok := element.(*slack.TextBlockObject); ok {
				parts = append(parts, textOf(text, s))
			}
		}
		return s.context.Render(strings.Join(parts, " "))
	case *slack.DividerBlock:
		return s.divider.Render(strings.Repeat("─", width))
	default:
		return fmt.Sprintf("[%s]", block.BlockType())
	}
}

func renderSection(b *slack.SectionBlock, width int, s styles) string {
	body := s.text.Render(textOf(b.Text, s))
	for _, field := range b.Fields {
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.field.Render(textOf(field, s)))
	}

	if b.Accessory == nil {
		return body
	}

	control := renderAccessory(b.Accessory, s)
	if control == "" {
		return body
	}

	gap := width - lipgloss.Width(body) - lipgloss.Width(control)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, strings.Repeat(" ", gap), control)
}

func renderAccessory(accessory *slack.Accessory, s styles) string {
	switch {
	case accessory.ButtonElement != nil:
		return renderElement(accessory.ButtonElement, s)
	case accessory.OverflowElement != nil:
		return renderElement(accessory.OverflowElement, s)
	case accessory.ImageElement != nil:
		return renderElement(accessory.ImageElement, s)
	default:
		return ""
	}
}

func renderElement(element slack.BlockElement, s styles) string {
	switch e := element.(type) {
	case *slack.ButtonBlockElement:
		label := textOf(e.Text, s)
		if e.Style == slack.StylePrimary {
			return s.primary.Render(label)
		}
		return s.button.Render(label)
	case *slack.OverflowBlockElement:
		options := make([]string, 0, len(e.Options))
		for _, option := range e.Options {
			options = append(options, textOf(option.Text, s))
		}
		return s.overflow.Render("⋯ " + strings.Join(options, " | "))
	case *slack.ImageBlockElement:
		return s.image.Render("(" + e.AltText + ")")
	default:
		return ""
	}
}

func textOf(text *slack.TextBlockObject, s styles) string {
	if text == nil {
		return ""
	}
	if text.Type != slack.MarkdownType {
		return text.Text
	}

	out := codePattern.ReplaceAllStringFunc(text.Text, func(match string) string {
		return s.code.Render(strings.Trim(match, "`"))
	})
	out = boldPattern.ReplaceAllStringFunc(out, func(match string) string {
		return s.bold.Render(strings.Trim(match, "*"))
	})
	out = italicPattern.ReplaceAllStringFunc(out, func(match string) string {
		groups := italicPattern.FindStringSubmatch(match)
		return groups[1] + s.italic.Render(groups[2])
	})

	return out
}
