package explorer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// EventData holds the per-event arrays concatenated over every data file.
// Index i refers to the same detected event in all three arrays.
type EventData struct {
	ToF []float64 // time of flight (ns)
	X   []float64 // x position (mm)
	Y   []float64 // y position (mm)
}

func (d EventData) Len() int {
	return len(d.ToF)
}

// Dataset names as written by the beamline DAQ, with their units.
var datasetUnits = map[string]string{
	"tof":  "ns",
	"xpos": "mm",
	"ypos": "mm",
}

func expectedDatasets() []string {
	names := maps.Keys(datasetUnits)
	sort.Strings(names)
	return names
}

func isDataFile(name string) bool {
	return strings.HasSuffix(name, ".h5") || strings.HasSuffix(name, ".hdf5")
}

// FindDataFiles walks the directory tree under root and returns every
// file with a recognized data extension.
func FindDataFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isDataFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// LoadDirectory loads and concatenates the event datasets from every data
// file found under root. Files are opened, read in full and closed one at
// a time.
func LoadDirectory(root string) (EventData, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return EventData{}, &ErrInvalidDirectory{Path: root}
	}

	files, err := FindDataFiles(root)
	if err != nil {
		return EventData{}, err
	}
	if len(files) == 0 {
		return EventData{}, &ErrEmptyInput{Path: root}
	}

	var data EventData
	for _, path := range files {
		fileData, err := readDataFile(path)
		if err != nil {
			return EventData{}, err
		}
		if configuration.Verbosity > 0 {
			message := fmt.Sprintf("Read %d events from %s", fileData.Len(), path)
			logger.Info(message, "loader")
		}
		data.ToF = append(data.ToF, fileData.ToF...)
		data.X = append(data.X, fileData.X...)
		data.Y = append(data.Y, fileData.Y...)
	}
	return data, nil
}

func readDataFile(path string) (EventData, error) {
	f, err := openDataFile(path)
	if err != nil {
		return EventData{}, err
	}
	defer f.Close()

	var data EventData
	data.ToF, err = readFloatDataset(f, path, "tof")
	if err != nil {
		return EventData{}, err
	}
	data.X, err = readFloatDataset(f, path, "xpos")
	if err != nil {
		return EventData{}, err
	}
	data.Y, err = readFloatDataset(f, path, "ypos")
	if err != nil {
		return EventData{}, err
	}

	if len(data.X) != len(data.ToF) || len(data.Y) != len(data.ToF) {
		return EventData{}, fmt.Errorf("file %q: datasets %v have different lengths (%d, %d, %d)",
			path, expectedDatasets(), len(data.ToF), len(data.X), len(data.Y))
	}
	return data, nil
}
