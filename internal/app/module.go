package app

import (
	"github.com/shandysiswandi/gostamp/internal/stamp"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.stamp.enabled") {
		stamp.New(stamp.Dependency{
			Router: a.router,
		})
	}
}
