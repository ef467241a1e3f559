package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// JSONStore handles run persistence using a local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	runs     []state.RunRecord
}

// NewJSONStore loads an existing file or creates an empty one.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{filePath: filePath}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else if err := store.saveToFile(); err != nil {
		return nil, fmt.Errorf("failed to create JSON store file: %w", err)
	}
	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	data, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &js.runs)
}

// saveToFile пишет во временный файл и переименовывает его. Вызывать под mutex.
func (js *JSONStore) saveToFile() error {
	runs := js.runs
	if runs == nil {
		runs = []state.RunRecord{}
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(js.filePath), ".runs-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), js.filePath)
}

func (js *JSONStore) SaveRun(ctx context.Context, rec state.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	js.mutex.Lock()
	defer js.mutex.Unlock()

	js.runs = append(js.runs, rec)
	if err := js.saveToFile(); err != nil {
		js.runs = js.runs[:len(js.runs)-1]
		return fmt.Errorf("failed to save run %s: %w", rec.ID, err)
	}
	return nil
}

func (js *JSONStore) RecentRuns(ctx context.Context, limit int) ([]state.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mutex.RLock()
	out := make([]state.RunRecord, len(js.runs))
	copy(out, js.runs)
	js.mutex.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].EndedAt.After(out[j].EndedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (js *JSONStore) Close() error {
	return nil
}
