package config

// LoopConfig is the root config for loop.json
type LoopConfig struct {
	Ticks     int          `json:"ticks" env:"SCREENS_TICKS"`
	Separator string       `json:"separator" env:"SCREENS_SEPARATOR"`
	Window    WindowConfig `json:"window"`
}

// WindowConfig configures the optional ebiten window
type WindowConfig struct {
	ScreenWidth    int    `json:"screenWidth"`
	ScreenHeight   int    `json:"screenHeight"`
	Scale          int    `json:"scale"`
	Framerate      int    `json:"framerate"`
	UpdatesPerTick int    `json:"updatesPerTick" env:"SCREENS_UPDATES_PER_TICK"` // Engine updates between loop ticks
	Title          string `json:"title"`
}

// PresetConfig is the root config for presets/<name>.json
type PresetConfig struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Menu MenuConfig `json:"menu"`
	Game GameConfig `json:"game"`
}

// MenuConfig holds the menu screen rules
type MenuConfig struct {
	Threshold int `json:"threshold" env:"SCREENS_MENU_THRESHOLD"`
}

// GameConfig holds the game screen rules
type GameConfig struct {
	Step      int `json:"step" env:"SCREENS_GAME_STEP"`
	Threshold int `json:"threshold" env:"SCREENS_GAME_THRESHOLD"`
}
