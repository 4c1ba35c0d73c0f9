package cmd

import (
	"os"
	"runtime/pprof"
	"strings"

	"github.com/eernst/contigtable/coverage"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:   "contigtable",
	Short: "contigtable builds per-contig feature tables for genome binning.",
	Long: `contigtable joins contig length and GC content, taxonomic assignments and
per-sample read coverage into one tab-delimited table, one row per contig.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		if f := viper.ConfigFileUsed(); f != "" {
			log.Debugf("using config file %s", f)
		}
		return StartProfiling()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return StopProfiling()
	},
}

var cfgFile string

var (
	MemProfileFileName string
	CpuProfileFileName string
	cpuProfileFile     *os.File
)

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.contigtable.yaml)")
	flags.BoolP("verbose", "", false, "Enable verbose output.")
	flags.StringP("loglevel", "", "warn", "Logging level (debug, info, warn, error).")
	flags.StringP("coverage-cmd", "", coverage.DefaultGenomeCovCmd, "Program computing genome coverage histograms from BAM files.")
	flags.StringVarP(&MemProfileFileName, "memprofile", "", "", "Write a memory profile to this file.")
	flags.StringVarP(&CpuProfileFileName, "cpuprofile", "", "", "Write a CPU profile to this file.")

	for _, key := range []string{"verbose", "loglevel", "coverage-cmd"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
	RootCmd.Flags().BoolP("help", "h", false, "Show this help message.")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".contigtable") // name of config file (without extension)
		viper.AddConfigPath("$HOME")        // adding home directory as first search path
	}
	viper.SetEnvPrefix("contigtable")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		log.Warnf("could not read config file %s: %v", cfgFile, err)
	}
}

func setupLogging() error {
	level, err := log.ParseLevel(viper.GetString("loglevel"))
	if err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		level = log.DebugLevel
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func StartProfiling() error {
	if MemProfileFileName != "" || CpuProfileFileName != "" {
		log.Debugf("profiling: cpu=%q mem=%q", CpuProfileFileName, MemProfileFileName)
	}
	if CpuProfileFileName != "" {
		f, err := os.Create(CpuProfileFileName)
		if err != nil {
			return errors.Wrap(err, "cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return errors.Wrap(err, "cpu profile")
		}
		cpuProfileFile = f
	}
	return nil
}

func StopProfiling() error {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
		cpuProfileFile = nil
	}
	if MemProfileFileName != "" {
		f, err := os.Create(MemProfileFileName)
		if err != nil {
			return errors.Wrap(err, "memory profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return errors.Wrap(err, "memory profile")
		}
	}
	return nil
}
