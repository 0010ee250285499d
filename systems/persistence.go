package systems

import (
	"encoding/json"

	cfg "github.com/automoto/sensorbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	WindowWidth  int  `json:"windowWidth"`
	WindowHeight int  `json:"windowHeight"`
	Fullscreen   bool `json:"fullscreen"`
	DebugRender  bool `json:"debugRender"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		zap.L().Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return gdataManager.SaveItem(settingsKey, data)
}

// CurrentSettings snapshots the window and debug state for saving.
func CurrentSettings() *SavedSettings {
	w, h := ebiten.WindowSize()
	return &SavedSettings{
		WindowWidth:  w,
		WindowHeight: h,
		Fullscreen:   ebiten.IsFullscreen(),
		DebugRender:  cfg.C.Debug.Render,
	}
}

// ApplySavedSettings restores window size, fullscreen and the debug overlay.
// Call it before ebiten.RunGame.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.C.Debug.Render = saved.DebugRender
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.WindowWidth > 0 && saved.WindowHeight > 0 {
		ebiten.SetWindowSize(saved.WindowWidth, saved.WindowHeight)
	}
}
