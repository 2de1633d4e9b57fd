package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	humanize "github.com/dustin/go-humanize"
	explorer "github.com/hilux-exp/explorer_go/pkg"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	configFilename string
	directory      string
	rangeArgs      []string
	showPlots      bool
	savePDF        bool
	verbosity      int
)

var logger Logger

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

var rootCmd = &cobra.Command{
	Use:   "hilux-explore",
	Short: "Explore HiLUX ToF-MSI data in a directory tree",
	Long: `Explore HiLUX data in a directory path. Provide a directory containing
sub-directories with HDF5 data files; the tool concatenates the tof/xpos/ypos
datasets across all files, calibrates ToF to m/z from two reference peaks and
renders the diagnostic histograms.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.Flags().StringVar(&configFilename, "config", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&directory, "directory", "d", "", "Path to the directory")
	rootCmd.Flags().StringArrayVarP(&rangeArgs, "ranges", "r", nil, "TOF ranges e.g. (10000,10400) (8450,8850) ...")
	rootCmd.Flags().BoolVar(&showPlots, "show", false, "Display plots after processing")
	rootCmd.Flags().BoolVar(&savePDF, "savepdf", false, "Save all plots into a single PDF file")
	rootCmd.Flags().IntVarP(&verbosity, "verbosity", "v", 0, "Verbosity level")
}

func run(cmd *cobra.Command, args []string) error {
	config, err := explorer.LoadConfiguration(configFilename)
	if err != nil {
		return fmt.Errorf("error reading configuration file: %w", err)
	}

	// Command-line flags override the configuration file
	if directory != "" {
		config.Directory = directory
	}
	if len(rangeArgs) > 0 {
		config.Ranges = rangeArgs
	}
	if cmd.Flags().Changed("show") {
		config.Show = showPlots
	}
	if cmd.Flags().Changed("savepdf") {
		config.SavePDF = savePDF
	}
	if cmd.Flags().Changed("verbosity") {
		config.Verbosity = verbosity
	}
	if config.Directory == "" {
		return fmt.Errorf("required flag \"directory\" not set")
	}

	explorer.SetConfiguration(config)
	explorer.SetLogger(logger)
	if config.Verbosity > 0 {
		explorer.PrintConfiguration(config)
	}

	// Ranges are parsed before any data is loaded
	var ranges []explorer.ToFRange
	if len(config.Ranges) > 0 {
		ranges, err = explorer.BuildRanges(config.Ranges)
		if err != nil {
			return err
		}
	} else {
		logger.Info("TOF Ranges: using defaults", "main")
		ranges = explorer.DefaultRanges()
	}

	info, err := os.Stat(config.Directory)
	if err != nil || !info.IsDir() {
		return &explorer.ErrInvalidDirectory{Path: config.Directory}
	}
	logger.Info(fmt.Sprintf("Directory exists: %s", config.Directory), "main")

	data, err := explorer.LoadDirectory(config.Directory)
	if err != nil {
		return err
	}
	logger.Info("Loaded arrays:", "main")
	logger.Info(fmt.Sprintf("ToF: %s events, ns", humanize.Comma(int64(len(data.ToF)))), "main")
	logger.Info(fmt.Sprintf("x: %s events, mm", humanize.Comma(int64(len(data.X)))), "main")
	logger.Info(fmt.Sprintf("y: %s events, mm", humanize.Comma(int64(len(data.Y)))), "main")

	peak1, peak2, err := explorer.GetRefPeaks(config)
	if err != nil {
		return err
	}
	cal, err := explorer.NewCalibration(peak1, peak2)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Calibration coefficients: a = %v, b = %v", cal.A, cal.B), "main")

	for _, report := range explorer.ConvertRanges(ranges, cal) {
		message := fmt.Sprintf("%s: ToF %d-%d ns -> m/z %.1f-%.1f",
			report.Label, report.ToFMin, report.ToFMax, report.MzMin, report.MzMax)
		logger.Info(message, "main")
	}

	figures, err := explorer.BuildFigures(data, ranges, config.BinsToF, config.Bins2D)
	if err != nil {
		return err
	}

	if config.Show {
		dir, err := os.MkdirTemp("", "hilux_plots")
		if err != nil {
			return err
		}
		paths, err := explorer.WritePNGs(figures, dir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			if err := browser.OpenFile(path); err != nil {
				logger.Error(fmt.Errorf("error displaying %s: %w", path, err).Error())
			}
		}
	}

	if config.SavePDF {
		pdfPath := filepath.Join(config.Directory, explorer.PDFFileName(time.Now()))
		if err := explorer.WritePDF(figures, pdfPath); err != nil {
			return err
		}
		logger.Info(fmt.Sprintf("Saved all plots to %s", pdfPath), "main")
	}
	return nil
}

// exitCodeFor maps each failure class to a distinct exit status.
func exitCodeFor(err error) int {
	var (
		invalidDir     *explorer.ErrInvalidDirectory
		parseRange     *explorer.ErrParseRange
		openFile       *explorer.ErrOpenFile
		missingDataset *explorer.ErrMissingDataset
		emptyInput     *explorer.ErrEmptyInput
		calibration    *explorer.ErrCalibration
	)
	switch {
	case errors.As(err, &invalidDir):
		return 2
	case errors.As(err, &parseRange):
		return 3
	case errors.As(err, &openFile), errors.As(err, &missingDataset):
		return 4
	case errors.As(err, &emptyInput):
		return 5
	case errors.As(err, &calibration):
		return 6
	}
	return 1
}
