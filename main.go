package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"smpptime/receipt"
	"smpptime/sqlog"
	"smpptime/timeformat"
)

var (
	appName        = "SMPPTime"    // application name
	version        = "0.7.0"       // version
	date           = "2024-09-18"  // build date
	build          = ""            // build number in the git repository
	detailedLog    = false         // output detailed information to the log
	configFileName = "config.yaml" // configuration file name
)

var config *Config // loaded and parsed configuration

func init() {
	// print the application version to the log
	fmt.Fprintf(os.Stderr, "### %s %s", appName, version)
	if build != "" { // add the build to the version number
		fmt.Fprintf(os.Stderr, " [#%s]", build)
	}
	if date != "" { // add the build date to the version
		fmt.Fprintf(os.Stderr, " (%s)", date)
	}
	fmt.Fprintln(os.Stderr)

	flag.StringVar(&configFileName, "config", configFileName, "configuration `fileName`")
	flag.BoolVar(&detailedLog, "debug", detailedLog, "log output full messages")
}

func main() {
	flag.Parse() // parse the application launch parameters
	logrus.Infof("Loading %q...", configFileName)
	var err error
	config, err = LoadConfig(configFileName)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading config")
	}
	setupLogging(config)
	in := &Ingest{
		Parser: receipt.Parser{Codec: timeformat.Codec{Location: config.location}},
		Zabbix: config.Zabbix,
		Logger: logrus.StandardLogger().WithField("app", "dlr"),
	}
	if config.MySQL != "" {
		db, err := sqlog.Connect(config.MySQL)
		if err != nil {
			logrus.WithError(err).Fatal("Error connecting to the receipt store")
		}
		defer db.Close()
		in.DB = db
	}
	// a receipt stream piped in may never end, so report the counters
	// even when interrupted
	go func() {
		monitorSignals(os.Interrupt, syscall.SIGTERM)
		in.Summary()
		os.Exit(1)
	}()
	// read receipts from the files given as arguments or from stdin
	files := flag.Args()
	if len(files) == 0 {
		if err := in.Run(os.Stdin); err != nil {
			logrus.WithError(err).Fatal("Error processing receipts")
		}
		return
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			logrus.WithError(err).Fatal("Error opening receipts file")
		}
		err = in.Run(f)
		f.Close()
		if err != nil {
			logrus.WithError(err).WithField("file", name).Fatal("Error processing receipts")
		}
	}
}

// setupLogging applies the log level and attaches per-level log files
// from the configuration.
func setupLogging(c *Config) {
	if detailedLog {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if len(c.LogFiles) == 0 {
		return
	}
	pathMap := make(lfshook.PathMap, len(c.LogFiles))
	for name, path := range c.LogFiles {
		level, err := logrus.ParseLevel(name)
		if err != nil {
			logrus.WithError(err).Warningf("Unknown log level %q", name)
			continue
		}
		pathMap[level] = path
	}
	logrus.AddHook(lfshook.NewHook(pathMap, &logrus.TextFormatter{DisableColors: true}))
}

// monitorSignals starts monitoring signals and returns a value when it receives one.
// The list of signals to track is passed as parameters.
func monitorSignals(signals ...os.Signal) os.Signal {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, signals...)
	return <-signalChan
}
