package explorer

import (
	"gonum.org/v1/hdf5"
)

func openDataFile(fname string) (*hdf5.File, error) {
	f, err := hdf5.OpenFile(fname, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	return f, nil
}

// readFloatDataset reads a 1-D numeric dataset in full. The HDF5 library
// converts the stored type (float32 in older beamline files) to float64.
func readFloatDataset(f *hdf5.File, fname string, name string) ([]float64, error) {
	dset, err := f.OpenDataset(name)
	if err != nil {
		return nil, &ErrMissingDataset{Filename: fname, Dataset: name, Err: err}
	}
	defer dset.Close()

	space := dset.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, &ErrMissingDataset{Filename: fname, Dataset: name, Err: err}
	}
	nPoints := uint(1)
	for _, d := range dims {
		nPoints *= d
	}

	data := make([]float64, nPoints)
	if nPoints == 0 {
		return data, nil
	}
	err = dset.Read(&data)
	if err != nil {
		return nil, &ErrMissingDataset{Filename: fname, Dataset: name, Err: err}
	}
	return data, nil
}
