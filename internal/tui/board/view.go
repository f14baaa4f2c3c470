package board

import (
	"fmt"
	"strings"
)

// View renders the board.
func (m Model) View() string {
	if m.tooSmall {
		return m.styles.banner.Render(
			fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight),
		)
	}

	var content strings.Builder
	content.WriteString(m.styles.appTitle.Render(m.boardName))
	content.WriteString("\n")

	for i, r := range m.rows {
		if r.header {
			content.WriteString(m.styles.goalHeader.Render(r.title))
			content.WriteString("\n")
			continue
		}

		view := r.cell.View()
		if i == m.cursor {
			content.WriteString(m.styles.rowActive.Render(view))
		} else {
			content.WriteString(m.styles.rowBase.Render(view))
		}
		content.WriteString("\n")
	}

	if m.status != "" {
		content.WriteString(m.styles.status.Render(m.status))
		content.WriteString("\n")
	}

	footer := m.summary + "\n"
	if m.showHelp {
		footer += m.help.FullHelpView(m.keys.FullHelp())
	} else {
		footer += m.help.ShortHelpView(m.keys.ShortHelp())
	}
	content.WriteString(m.styles.footer.Render(footer))

	return content.String()
}
