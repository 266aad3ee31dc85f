package data

import (
	"encoding/json"
	"os"

	"github.com/xhd2015/habits/internal/config"
	"github.com/xhd2015/habits/models"
)

func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return nil, err
	}

	configData, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(configData) == 0 {
		return nil, nil
	}

	var conf models.Config
	err = json.Unmarshal(configData, &conf)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}

	data, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0644)
}
