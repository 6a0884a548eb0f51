package menuconfig

// Builtin returns the static menu list the add-on shipped with before the configuration file existed.
func Builtin() Literal {
	return Literal{Categories: []MenuCategory{
		{
			Label: "RPG",
			Path:  "~/models/rpg",
			Entries: []MenuEntry{
				{Label: "A", File: "a"},
				{Label: "B", File: "b"},
			},
		},
		{
			Label: "Example",
			Path:  "~/models/pcb",
			Entries: []MenuEntry{
				{Label: "Something", File: "example"},
			},
		},
	}}
}
