package model

type TileSet string

const (
	TileSetQuickAccess  TileSet = "quick_access"
	TileSetQuickActions TileSet = "quick_actions"
	TileSetServices     TileSet = "services"
)

// OptionName is the settings key a tile set is persisted under.
func (s TileSet) OptionName() string {
	return "dofs_" + string(s) + "_items"
}

func (s TileSet) Valid() bool {
	switch s {
	case TileSetQuickAccess, TileSetQuickActions, TileSetServices:
		return true
	}
	return false
}

type Tile struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Gradient string `json:"gradient,omitempty"`
	Color    string `json:"color,omitempty"`
	Shadow   string `json:"shadow,omitempty"`
	Image    string `json:"image,omitempty"`
	Enabled  bool   `json:"enabled"`
}

type SaveTilesRequest struct {
	Items []Tile `json:"items"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TileCatalog struct {
	Icons     []Option `json:"icons"`
	Gradients []Option `json:"gradients"`
}
