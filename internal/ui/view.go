package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"FoodTechScanner/internal/browse"
	"FoodTechScanner/internal/domain"
)

const previewRunes = 500

// View renders the current mode.
func (m Model) View() string {
	switch m.mode {
	case modePrompt:
		return m.promptView()
	case modeCuration:
		return m.curationView()
	default:
		return m.browseView()
	}
}

func (m Model) browseView() string {
	sections := []string{titleStyle.Render("🍜🔬 Singapore Food Tech Scanner 🌾🐠")}

	switch {
	case m.fetching:
		sections = append(sections, m.spin.View()+" Fetching articles... 🕵️")
	case m.curating:
		sections = append(sections, m.spin.View()+" Processing articles... 🤖")
	case m.status != "":
		sections = append(sections, statusStyle.Render(m.status))
	}

	if !m.state.Fetched {
		sections = append(sections, welcomeView())
	} else {
		sections = append(sections,
			summaryStyle.Render(m.state.Summary+"\n"+m.state.DateRange),
			m.domainTabs(),
			m.articlesView(),
		)
	}

	sections = append(sections, helpStyle.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func welcomeView() string {
	lines := []string{
		"Welcome to the Singapore Food Tech Scanner! 🇸🇬🚀",
		"",
		"This tool helps stakeholders in Singapore's food safety and security",
		"ecosystem stay updated on technological advancements in four domains:",
		"",
		"  🌾 Agriculture",
		"  🐠 Aquaculture",
		"  🍽️ Future Foods",
		"  🧪 Food Safety",
		"",
		"Press f to fetch articles from the registered sources.",
	}
	return welcomeStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) domainTabs() string {
	labels := m.state.Articles.Labels()
	if len(labels) == 0 {
		return ""
	}

	tabs := make([]string, 0, len(labels))
	for _, label := range labels {
		tab := fmt.Sprintf("%s %s (%d)", label.Emoji(), label, m.state.Articles.Count(label))
		if label == m.state.Domain {
			tabs = append(tabs, activeTabStyle.Render(tab))
		} else {
			tabs = append(tabs, tabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) articlesView() string {
	articles := m.state.Articles.Articles(m.state.Domain)
	page, total := browse.Page(articles, m.deps.PageSize, m.state.Page)

	var b strings.Builder
	if len(page) == 0 {
		b.WriteString(emptyStyle.Render("No articles in this domain."))
		b.WriteString("\n")
	}

	start := (m.state.Page - 1) * m.deps.PageSize
	for i, art := range page {
		b.WriteString(renderArticle(start+i+1, art))
		b.WriteString("\n")
	}

	b.WriteString(pagerStyle.Render(fmt.Sprintf("Page %d of %d", m.state.Page, total)))
	return b.String()
}

func renderArticle(n int, art domain.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", articleTitleStyle.Render(fmt.Sprintf("Article %d: %s", n, art.Title)))
	fmt.Fprintf(&b, "  📅 Date: %s\n", art.PublishedRaw)
	fmt.Fprintf(&b, "  🔗 Source: %s\n", art.SourceURL)
	fmt.Fprintf(&b, "  🔗 Link: %s\n", art.Link)
	fmt.Fprintf(&b, "  📝 %s\n", fieldStyle.Render(preview(art.Content)))

	return b.String()
}

// preview flattens and truncates content for the list view.
func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	runes := []rune(content)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes]) + "..."
	}
	return content
}

func (m Model) promptView() string {
	sections := []string{
		titleStyle.Render("🎛️ Customize Prompt"),
		"Edit the prompt sent ahead of the article listing:",
		m.prompt.View(),
		helpStyle.Render("esc done editing"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) curationView() string {
	sections := []string{
		titleStyle.Render("🏅 Top 5 Articles for Each Domain"),
		m.result.View(),
		helpStyle.Render("↑/↓ scroll · esc back"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) helpLine() string {
	if !m.state.Fetched {
		return "f fetch articles · q quit"
	}
	return "f fetch · tab/shift+tab domain · ←/→ page · e edit prompt · g top articles · q quit"
}
