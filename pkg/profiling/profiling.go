package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoCPUProfiling starts a CPU profile written to filePath.
// The returned func stops profiling; it is never nil.
func DoCPUProfiling(filePath string, log logrus.FieldLogger) func() {
	f, err := osCreate(filePath)
	if err != nil {
		log.WithError(err).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Error("could not start CPU profile")
		closeFile(f, log)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f, log)
	}
}

// DoMemProfiling returns a func that writes a heap profile to filePath,
// meant to be deferred until the application exits.
func DoMemProfiling(filePath string, log logrus.FieldLogger) func() {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.WithError(err).Error("could not create memory profile")
			return
		}
		defer closeFile(f, log)
		runtime.GC() // get up-to-date statistics
		if err = pprofWriteHeapProfile(f); err != nil {
			log.WithError(err).Error("could not write memory profile")
		}
	}
}

func closeFile(f io.Closer, log logrus.FieldLogger) {
	if err := f.Close(); err != nil {
		log.WithError(err).Warn("failed to close profile file")
	}
}
