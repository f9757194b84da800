package colors

// Default returns the default color scheme (indigo theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#4F46E5",

		// Semantic
		Create: "#5FD75F",
		Delete: "#FF5F5F",

		// UI elements
		ColumnBorder:   "#5F87D7",
		DropTarget:     "#5FD75F",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		ButtonFg:       "#FFFFFF",
		ButtonBg:       "#4F46E5",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Status line
		InfoFg:  "#00AFFF",
		ErrorFg: "#FF5F5F",
	}
}
