package tiles

import "github.com/onabhani/SimpleDashboard/pkg/model"

const (
	defaultIcon   = "grid"
	defaultShadow = "shadow-gray-500/25"
)

var icons = []model.Option{
	{Value: "home", Label: "Home"},
	{Value: "users", Label: "Users"},
	{Value: "chart", Label: "Chart"},
	{Value: "chart-bar", Label: "Chart Bar"},
	{Value: "cart", Label: "Cart"},
	{Value: "document", Label: "Document"},
	{Value: "grid", Label: "Grid"},
	{Value: "settings", Label: "Settings"},
	{Value: "bell", Label: "Bell"},
	{Value: "calendar", Label: "Calendar"},
	{Value: "mail", Label: "Mail"},
	{Value: "search", Label: "Search"},
	{Value: "user", Label: "User"},
	{Value: "team", Label: "Team"},
	{Value: "factory", Label: "Factory"},
	{Value: "warehouse", Label: "Warehouse"},
	{Value: "truck", Label: "Truck"},
	{Value: "tool", Label: "Tool"},
	{Value: "wrench", Label: "Wrench"},
	{Value: "ruler", Label: "Ruler"},
	{Value: "pencil", Label: "Pencil"},
	{Value: "external-link", Label: "External Link"},
	{Value: "tasks", Label: "Tasks"},
	{Value: "trending", Label: "Trending"},
}

var gradientColors = []string{"blue", "purple", "green", "orange", "pink", "cyan", "red", "yellow", "indigo", "teal"}

func gradient(color string) string {
	return "from-" + color + "-500 to-" + color + "-600"
}

func shadow(color string) string {
	return "shadow-" + color + "-500/25"
}

// shadows maps every catalog gradient to its matching drop shadow.
var shadows = func() map[string]string {
	m := make(map[string]string, len(gradientColors))
	for _, c := range gradientColors {
		m[gradient(c)] = shadow(c)
	}
	return m
}()

// ShadowFor returns the shadow class paired with g.
func ShadowFor(g string) string {
	if s, ok := shadows[g]; ok {
		return s
	}
	return defaultShadow
}

// Catalog lists the icons and gradients an admin can pick from.
func Catalog() model.TileCatalog {
	gradients := make([]model.Option, 0, len(gradientColors))
	for _, c := range gradientColors {
		gradients = append(gradients, model.Option{Value: gradient(c), Label: title(c)})
	}
	out := model.TileCatalog{Icons: make([]model.Option, len(icons)), Gradients: gradients}
	copy(out.Icons, icons)
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
