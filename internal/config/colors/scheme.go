package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add task dialog, forward transitions
	Delete string `yaml:"delete"` // Red - errors, sign-out confirmation

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	DropTarget     string `yaml:"drop_target"` // Column border while a card is dragged over it
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	ButtonFg       string `yaml:"button_fg"`
	ButtonBg       string `yaml:"button_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status line colors
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(preset, true)
}

// MergeFrom overrides this scheme with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.fillFrom(&other, false)
}

// fillFrom copies fields from src. With onlyEmpty, existing values are kept;
// otherwise non-empty src values win.
func (c *ColorScheme) fillFrom(src *ColorScheme, onlyEmpty bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Create, src.Create},
		{&c.Delete, src.Delete},
		{&c.ColumnBorder, src.ColumnBorder},
		{&c.DropTarget, src.DropTarget},
		{&c.TaskBorder, src.TaskBorder},
		{&c.TaskBackground, src.TaskBackground},
		{&c.SelectedBorder, src.SelectedBorder},
		{&c.SelectedBg, src.SelectedBg},
		{&c.ButtonFg, src.ButtonFg},
		{&c.ButtonBg, src.ButtonBg},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.InfoFg, src.InfoFg},
		{&c.ErrorFg, src.ErrorFg},
	}

	for _, p := range pairs {
		if p.src == "" {
			continue
		}
		if onlyEmpty && *p.dst != "" {
			continue
		}
		*p.dst = p.src
	}
}
