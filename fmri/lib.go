package fmri

import (
	"github.com/anchore/fmri/fmri/logger"
	"github.com/anchore/fmri/internal/log"
)

// SetLogger installs the logger used by the library. By default nothing is logged.
func SetLogger(l logger.Logger) {
	log.Log = l
}
