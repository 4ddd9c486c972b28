// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed data/towers.json
var defaultTowers []byte

//go:embed data/enemies.json
var defaultEnemies []byte

func init() {
	if err := LoadDefaults(); err != nil {
		panic(err)
	}
}

// LoadDefaults (re)loads the definitions compiled into the binary.
func LoadDefaults() error {
	if err := ParseTowerDefinitions(defaultTowers); err != nil {
		return fmt.Errorf("embedded towers: %w", err)
	}
	if err := ParseEnemyDefinitions(defaultEnemies); err != nil {
		return fmt.Errorf("embedded enemies: %w", err)
	}
	return nil
}

// LoadTowerDefinitions reads the tower configuration file and populates the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	if err := ParseTowerDefinitions(file); err != nil {
		return err
	}
	log.Printf("Loaded %d tower definitions from %s", len(TowerLibrary), path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	if err := ParseEnemyDefinitions(file); err != nil {
		return err
	}
	log.Printf("Loaded %d enemy definitions from %s", len(EnemyLibrary), path)
	return nil
}

// ParseTowerDefinitions replaces the tower library with the JSON array in data.
func ParseTowerDefinitions(data []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := make(map[TowerType]TowerDefinition, len(towerDefs))
	order := make([]TowerType, 0, len(towerDefs))
	for _, def := range towerDefs {
		if def.ID == "" {
			return fmt.Errorf("tower definition without id")
		}
		if def.FireRate <= 0 {
			return fmt.Errorf("tower %s: fire_rate must be positive", def.ID)
		}
		if def.Cost <= 0 {
			return fmt.Errorf("tower %s: cost must be positive", def.ID)
		}
		if _, dup := library[def.ID]; dup {
			return fmt.Errorf("duplicate tower definition %s", def.ID)
		}
		library[def.ID] = def
		order = append(order, def.ID)
	}

	TowerLibrary = library
	TowerOrder = order
	return nil
}

// ParseEnemyDefinitions replaces the enemy library with the JSON array in data.
func ParseEnemyDefinitions(data []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyType]EnemyDefinition, len(enemyDefs))
	order := make([]EnemyType, 0, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy definition without id")
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive", def.ID)
		}
		if _, dup := library[def.ID]; dup {
			return fmt.Errorf("duplicate enemy definition %s", def.ID)
		}
		if def.UnlockWave < 1 {
			def.UnlockWave = 1
		}
		library[def.ID] = def
		order = append(order, def.ID)
	}

	EnemyLibrary = library
	EnemyOrder = order
	return nil
}
