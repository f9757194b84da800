package theme

import "github.com/thenoetrevino/tareas/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Delete         string
	ColumnBorder   string
	DropTarget     string
	TaskBorder     string
	TaskBg         string
	SelectedBorder string
	SelectedBg     string
	ButtonFg       string
	ButtonBg       string
	InfoFg         string
	ErrorFg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	DropTarget = colors.DropTarget
	TaskBorder = colors.TaskBorder
	TaskBg = colors.TaskBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	ButtonFg = colors.ButtonFg
	ButtonBg = colors.ButtonBg
	InfoFg = colors.InfoFg
	ErrorFg = colors.ErrorFg
}
