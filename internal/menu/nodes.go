package menu

import (
	"custom-meshes/internal/host"
	"custom-meshes/internal/menuconfig"
)

// CategoryMenu is the submenu for one configured category. Each entry becomes an import button bound to
// the entry's asset path.
type CategoryMenu struct {
	category  menuconfig.MenuCategory
	extension string
}

// NewCategoryMenu returns the submenu for c. Asset paths use ext, or menuconfig.DefaultExtension when
// ext is empty.
func NewCategoryMenu(c menuconfig.MenuCategory, ext string) *CategoryMenu {
	return &CategoryMenu{category: c, extension: ext}
}

func (m *CategoryMenu) ID() string    { return CategoryMenuID(m.category.Label) }
func (m *CategoryMenu) Label() string { return m.category.Label }

// Draw adds one operator button per entry in configuration order.
func (m *CategoryMenu) Draw(_ *host.Context, layout host.Layout) {
	for _, e := range m.category.Entries {
		props := layout.Operator(OperatorID, e.Label, Icon)
		props[PathProp] = m.category.AssetPath(e, m.extension)
	}
}

// AggregatorMenu is the "Custom Meshes" menu linking to every category submenu.
type AggregatorMenu struct {
	ids []string
}

// NewAggregatorMenu links the categories in configuration order.
func NewAggregatorMenu(categories []menuconfig.MenuCategory) *AggregatorMenu {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, CategoryMenuID(c.Label))
	}
	return &AggregatorMenu{ids: ids}
}

func (m *AggregatorMenu) ID() string    { return AggregatorID }
func (m *AggregatorMenu) Label() string { return AggregatorLabel }

func (m *AggregatorMenu) Draw(_ *host.Context, layout host.Layout) {
	for _, id := range m.ids {
		layout.Menu(id)
	}
}

// aggregatorHook is appended to the host's add-mesh menu.
func aggregatorHook(_ *host.Context, layout host.Layout) {
	layout.Menu(AggregatorID)
}
