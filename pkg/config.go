package explorer

import (
	"encoding/json"
	"fmt"
	"os"
)

type Configuration struct {
	Directory string   `json:"directory"`
	Ranges    []string `json:"ranges"`
	Show      bool     `json:"show"`
	SavePDF   bool     `json:"save_pdf"`
	Verbosity int      `json:"verbosity"`
	BinsToF   int      `json:"bins_tof"`
	Bins2D    int      `json:"bins_2d"`
	NoDB      bool     `json:"no_db"`
	Host      string   `json:"host"`
	User      string   `json:"user"`
	Passwd    string   `json:"pass"`
	DBName    string   `json:"dbname"`
	RunNumber int      `json:"run_number"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.Verbosity = 0
	config.BinsToF = 500
	config.Bins2D = 200
	config.NoDB = true
	config.Host = "hilux.daq.lund.se"
	config.User = "hiluxreader"
	config.Passwd = "readonly"
	config.DBName = "HILUXRUNS"
	config.RunNumber = 0

	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func PrintConfiguration(config Configuration) {
	logger.Info(fmt.Sprintf("Directory: %s", config.Directory), "config")
	logger.Info(fmt.Sprintf("Ranges: %v", config.Ranges), "config")
	logger.Info(fmt.Sprintf("Show: %t", config.Show), "config")
	logger.Info(fmt.Sprintf("Save PDF: %t", config.SavePDF), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("ToF bins: %d", config.BinsToF), "config")
	logger.Info(fmt.Sprintf("2D bins: %d", config.Bins2D), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
}
