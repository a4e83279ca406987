package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/nexus/internal/tui/styles"
)

// ThemePaletteItem is one selectable theme.
type ThemePaletteItem struct {
	ID   string
	Dark bool
}

// ThemePalette stores state for the theme picker overlay.
type ThemePalette struct {
	Query  string
	Index  int
	Active string
	Items  []ThemePaletteItem
}

// NewThemePalette lists the catalog themes in registration order.
func NewThemePalette(catalog *styles.Catalog) *ThemePalette {
	p := &ThemePalette{}
	for _, id := range catalog.IDs() {
		theme := catalog.Lookup(id)
		p.Items = append(p.Items, ThemePaletteItem{ID: theme.ID, Dark: theme.IsDark})
	}
	return p
}

// Reset clears the query and points the cursor at the active theme.
func (p *ThemePalette) Reset(active string) {
	p.Query = ""
	p.Active = active
	p.Index = 0
	for idx, item := range p.Items {
		if item.ID == active {
			p.Index = idx
			break
		}
	}
}

// SetQuery updates the filter and clamps the cursor.
func (p *ThemePalette) SetQuery(query string) {
	p.Query = query
	p.Index = 0
	p.ClampIndex()
}

// Move shifts the selection, wrapping at both ends.
func (p *ThemePalette) Move(delta int) {
	items := p.filteredItems()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := p.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	p.Index = idx
}

// ClampIndex ensures the selection index stays in bounds.
func (p *ThemePalette) ClampIndex() {
	items := p.filteredItems()
	if len(items) == 0 {
		p.Index = 0
		return
	}
	if p.Index < 0 {
		p.Index = 0
	}
	if p.Index >= len(items) {
		p.Index = len(items) - 1
	}
}

// SelectedItem returns the highlighted theme.
func (p *ThemePalette) SelectedItem() *ThemePaletteItem {
	items := p.filteredItems()
	if p.Index < 0 || p.Index >= len(items) {
		return nil
	}
	selected := items[p.Index]
	return &selected
}

// Render renders the palette lines.
func (p *ThemePalette) Render(styleSet styles.Styles) []string {
	lines := []string{
		styleSet.Accent.Render("Themes"),
		styleSet.Muted.Render("Type to filter. Enter to apply. Esc to close."),
		styleSet.Text.Render(fmt.Sprintf("> %s", p.Query)),
	}

	items := p.filteredItems()
	if len(items) == 0 {
		return append(lines, EmptyThemesFiltered(p.Query).RenderCompact(styleSet))
	}

	for idx, item := range items {
		label := item.ID
		if item.Dark {
			label += " (dark)"
		}
		if item.ID == p.Active {
			label += " *"
		}
		if idx == p.Index {
			lines = append(lines, styleSet.Title.Render("> "+label))
			continue
		}
		lines = append(lines, styleSet.Muted.Render("  "+label))
	}
	return lines
}

func (p *ThemePalette) filteredItems() []ThemePaletteItem {
	query := strings.TrimSpace(strings.ToLower(p.Query))
	if query == "" {
		return p.Items
	}
	tokens := strings.Fields(query)
	filtered := make([]ThemePaletteItem, 0, len(p.Items))
	for _, item := range p.Items {
		if matchesTokens(strings.ToLower(item.ID), tokens) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchesTokens(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}
