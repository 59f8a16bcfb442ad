package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// appKey identifies cxcalc for locating configuration and logs.
const appKey = "CXCALC"

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate cxcalc configuration with an application-key of 'CXCALC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appKey, []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		cxcalc.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		cxcalc.Exit(1)
	}
	cxcalc.Configuration = k // push the configuration to app-global scope
}

// mergeFlags loads the persistent flags into the configuration. A log file
// given by name only is placed into the log directory of the application.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", logDestination(logname, locatePaths()))
	}
	return nil
}

func logDestination(logname string, paths AppPaths) string {
	switch {
	case strings.Contains(logname, ":/"):
		return logname
	case filepath.IsAbs(logname) || paths == nil || paths.LogDir() == "":
		return "file://" + logname
	}
	return "file://" + filepath.Join(paths.LogDir(), logname)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("tracing to %q", konf.GetString("tracing.destination"))
	return nil
}

func locatePaths() AppPaths {
	paths, err := DefaultAppPaths(appKey)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
