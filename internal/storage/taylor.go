package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TaylorRunMetadata is RunMetadata's counterpart for a Taylor engine
// run: no integrator/controller, but the engine's own hyperparameters
// and the warning (if any) the driver returned.
type TaylorRunMetadata struct {
	ID       string    `json:"id"`
	Model    string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
	Order    int       `json:"order"`
	AbsTol   float64   `json:"abstol"`
	MaxSteps int       `json:"max_steps"`
	ParseEqs bool      `json:"parse_eqs"`
	Warning  string    `json:"warning,omitempty"`
	Steps    int       `json:"steps"`
}

// SaveTaylor persists a Taylor engine run the way Save persists a
// classical-baseline run, minus the control-channel columns a
// dynamo.Result carries and this driver's contract does not.
func (s *Store) SaveTaylor(model string, order int, abstol float64, maxSteps int, parseEqs bool, warning string, times []float64, states [][]float64) (string, error) {
	runID := fmt.Sprintf("%s_taylor_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := TaylorRunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Order:     order,
		AbsTol:    abstol,
		MaxSteps:  maxSteps,
		ParseEqs:  parseEqs,
		Warning:   warning,
		Steps:     len(times) - 1,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "states.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(states) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', -1, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) LoadTaylorMetadata(runID string) (*TaylorRunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta TaylorRunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
