package cmd

import (
	"context"

	"github.com/anchore/fmri/internal"
	"github.com/anchore/fmri/internal/log"
	"github.com/anchore/fmri/internal/version"
)

func checkForApplicationUpdate(ctx context.Context) {
	log.Debugf("checking if new version of %s is available", internal.ApplicationName)
	isAvailable, newVersion, err := version.IsUpdateAvailable(ctx)
	if err != nil {
		// this should never stop the application
		log.Errorf("unable to check for an application update: %+v", err)
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s (current version is %s)", internal.ApplicationName, newVersion, version.FromBuild().Version)
		if !appConfig.Quiet {
			_ = stderrPrintLnf("A newer version of %s is available for download: %s (installed version is %s)", internal.ApplicationName, newVersion, version.FromBuild().Version)
		}
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
