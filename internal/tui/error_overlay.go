package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Erro") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc fechar")
	return overlayBoxStyle.Render(content)
}
