package explorer

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// GetRefPeaksFromDB loads the two calibration reference peaks valid for
// the given run from the beamline runs database.
func GetRefPeaksFromDB(db *sqlx.DB, runNumber int) (RefPeak, RefPeak, error) {
	query := fmt.Sprintf(
		"SELECT Species, ToF, Mz from RefPeaks WHERE MinRun <= %d and MaxRun >= %d ORDER BY ToF DESC",
		runNumber, runNumber)
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		logger.Error(errMessage.Error())
		return RefPeak{}, RefPeak{}, errMessage
	}
	defer rows.Close()

	peaks := make([]RefPeak, 0, 2)
	for rows.Next() {
		var peak RefPeak
		if err := rows.StructScan(&peak); err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			logger.Error(errMessage.Error())
			return RefPeak{}, RefPeak{}, errMessage
		}
		peaks = append(peaks, peak)
	}
	if len(peaks) != 2 {
		err := &ErrCalibration{Reason: fmt.Sprintf("run %d has %d reference peaks in the database, need exactly 2", runNumber, len(peaks))}
		return RefPeak{}, RefPeak{}, err
	}
	return peaks[0], peaks[1], nil
}

// GetRefPeaks resolves the calibration anchors: the built-in peaks when
// running without a database, the run-specific ones otherwise.
func GetRefPeaks(config Configuration) (RefPeak, RefPeak, error) {
	if config.NoDB {
		p1, p2 := DefaultRefPeaks()
		return p1, p2, nil
	}

	db, err := ConnectToDatabase(config.User, config.Passwd, config.Host, config.DBName)
	if err != nil {
		errMessage := fmt.Errorf("error connecting to database: %w", err)
		logger.Error(errMessage.Error())
		return RefPeak{}, RefPeak{}, errMessage
	}
	defer db.Close()
	return GetRefPeaksFromDB(db, config.RunNumber)
}
