package game

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/snapshot"
)

func (g *Game) saveSnapshot() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("particle-field.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	if err := snapshot.Save(g.renderer.Field(), path, g.settings.BackgroundColor(), g.settings.Opacity); err != nil {
		return err
	}
	g.log.Info("snapshot saved", "path", path)
	return nil
}
