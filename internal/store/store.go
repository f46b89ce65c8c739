// Package store persists simulation runs under a data directory, one
// subdirectory per run with metadata.json and states.csv, and loads
// empirical pivot recordings.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/PabRod/pendulum/solver"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Model       string    `json:"model"`
	Timestamp   time.Time `json:"timestamp"`
	T0          float64   `json:"t0"`
	T1          float64   `json:"t1"`
	Samples     int       `json:"samples"`
	Integrator  string    `json:"integrator"`
	PivotPreset string    `json:"pivot_preset,omitempty"`
	EnergyDrift float64   `json:"energy_drift"`
}

// Save writes a run's metadata and trajectory, returning the run id.
func (s *Store) Save(meta RunMetadata, traj *solver.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Samples = traj.Len()
	meta.EnergyDrift = traj.EnergyDrift
	if traj.Len() > 0 {
		meta.T0 = traj.Times[0]
		meta.T1 = traj.Times[traj.Len()-1]
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if traj.Len() == 0 {
		return runID, nil
	}

	header := []string{"time"}
	if len(traj.States[0]) == 4 {
		header = append(header, "theta1", "omega1", "theta2", "omega2")
	} else {
		for i := range traj.States[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
		if len(traj.States[0]) == 2 {
			header = []string{"time", "theta", "omega"}
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, x := range traj.States {
		row := make([]string, 0, 1+len(x))
		row = append(row, strconv.FormatFloat(traj.Times[i], 'g', -1, 64))
		for _, v := range x {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, w.Error()
}

// List returns the metadata of every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

// Load returns a single run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a stored run back into memory.
func (s *Store) LoadTrajectory(runID string) (*solver.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &solver.Trajectory{}, nil
	}

	traj := &solver.Trajectory{}
	for _, record := range records[1:] {
		vals := make([]float64, len(record))
		ok := true
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		traj.Times = append(traj.Times, vals[0])
		traj.States = append(traj.States, vals[1:])
	}

	return traj, nil
}
