package tui

import "github.com/charmbracelet/lipgloss"

// palette is one named color scheme. Colors are truecolor hex values;
// lipgloss degrades them for terminals with smaller profiles.
type palette struct {
	name   string
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	selBg  lipgloss.Color
	selFg  lipgloss.Color
	warn   lipgloss.Color
}

// palettes in cycle order. The first entry is the fallback for unknown
// theme names.
var palettes = []palette{
	{
		name:   "dracula",
		accent: lipgloss.Color("#bd93f9"),
		text:   lipgloss.Color("#f8f8f2"),
		muted:  lipgloss.Color("#6272a4"),
		selBg:  lipgloss.Color("#44475a"),
		selFg:  lipgloss.Color("#f8f8f2"),
		warn:   lipgloss.Color("#f1fa8c"),
	},
	{
		name:   "nord",
		accent: lipgloss.Color("#88c0d0"),
		text:   lipgloss.Color("#d8dee9"),
		muted:  lipgloss.Color("#4c566a"),
		selBg:  lipgloss.Color("#434c5e"),
		selFg:  lipgloss.Color("#eceff4"),
		warn:   lipgloss.Color("#ebcb8b"),
	},
	{
		name:   "gruvbox",
		accent: lipgloss.Color("#fabd2f"),
		text:   lipgloss.Color("#ebdbb2"),
		muted:  lipgloss.Color("#928374"),
		selBg:  lipgloss.Color("#504945"),
		selFg:  lipgloss.Color("#fbf1c7"),
		warn:   lipgloss.Color("#fe8019"),
	},
	{
		name:   "solarized",
		accent: lipgloss.Color("#268bd2"),
		text:   lipgloss.Color("#839496"),
		muted:  lipgloss.Color("#586e75"),
		selBg:  lipgloss.Color("#073642"),
		selFg:  lipgloss.Color("#93a1a1"),
		warn:   lipgloss.Color("#b58900"),
	},
}

// paletteFor resolves a theme name, falling back to the first palette.
func paletteFor(name string) palette {
	for _, p := range palettes {
		if p.name == name {
			return p
		}
	}
	return palettes[0]
}

// nextThemeName returns the theme after name in cycle order, wrapping at
// the end. Unknown names restart the cycle.
func nextThemeName(name string) string {
	for i, p := range palettes {
		if p.name == name {
			return palettes[(i+1)%len(palettes)].name
		}
	}
	return palettes[0].name
}

// ThemeNames lists the available themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.name
	}
	return names
}

// Styles contains the visual styling for the board.
type Styles struct {
	Title         lipgloss.Style
	Column        lipgloss.Style
	FocusedColumn lipgloss.Style
	ColumnHeader  lipgloss.Style
	Card          lipgloss.Style
	SelectedCard  lipgloss.Style
	Meta          lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
}

// DefaultStyles returns the default board styling.
func DefaultStyles() Styles {
	return stylesFor(palettes[0])
}

// stylesFor builds the style set for one palette.
func stylesFor(p palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			MarginBottom(1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		FocusedColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		ColumnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),
		Card: lipgloss.NewStyle().
			Foreground(p.text),
		SelectedCard: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.selFg).
			Background(p.selBg),
		Meta: lipgloss.NewStyle().
			Foreground(p.muted),
		Status: lipgloss.NewStyle().
			Foreground(p.warn),
		Help: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}
