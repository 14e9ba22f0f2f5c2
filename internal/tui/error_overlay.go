package tui

type alertOverlayModel struct {
	message string
}

func (m alertOverlayModel) View() string {
	content := titleStyle.Render("Alert") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
