package provider

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/akyairhashvil/conciergerie/internal/models"
	"gopkg.in/yaml.v3"
)

// DataSet holds all four lists, as found in a YAML data file.
type DataSet struct {
	Tasks       []models.Task       `yaml:"tasks"`
	Suggestions []models.Suggestion `yaml:"suggestions"`
	Today       []models.TodayTask  `yaml:"today"`
	Connections []models.Connection `yaml:"connections"`
}

// LoadYAML reads and validates a data file.
func LoadYAML(path string) (DataSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DataSet{}, fmt.Errorf("read data file: %w", err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (DataSet, error) {
	var ds DataSet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return DataSet{}, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	ds.applyDefaults()
	if err := ds.Validate(); err != nil {
		return DataSet{}, err
	}
	return ds, nil
}

// Encode renders the data set in the data file format.
func (ds DataSet) Encode() ([]byte, error) {
	return yaml.Marshal(ds)
}

func (ds *DataSet) applyDefaults() {
	for i := range ds.Tasks {
		if ds.Tasks[i].Status == "" {
			ds.Tasks[i].Status = models.TaskPending
		}
	}
	for i := range ds.Today {
		if ds.Today[i].Status == "" {
			ds.Today[i].Status = models.TodayTodo
		}
	}
	for i := range ds.Connections {
		if ds.Connections[i].Status == "" {
			ds.Connections[i].Status = models.ConnectionDisconnected
		}
	}
}

// Validate requires unique, non-empty ids and titles within each list.
func (ds DataSet) Validate() error {
	check := func(list string, items []models.Item) error {
		seen := make(map[string]bool, len(items))
		for i, it := range items {
			id := strings.TrimSpace(it.ItemID())
			if id == "" {
				return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidData, list, i)
			}
			if seen[id] {
				return fmt.Errorf("%w: %s has duplicate id %q", ErrInvalidData, list, id)
			}
			seen[id] = true
			if strings.TrimSpace(it.ItemTitle()) == "" {
				return fmt.Errorf("%w: %s %q has no title", ErrInvalidData, list, id)
			}
		}
		return nil
	}
	if err := check("tasks", asItems(ds.Tasks)); err != nil {
		return err
	}
	if err := check("suggestions", asItems(ds.Suggestions)); err != nil {
		return err
	}
	if err := check("today", asItems(ds.Today)); err != nil {
		return err
	}
	return check("connections", asItems(ds.Connections))
}

func asItems[T models.Item](in []T) []models.Item {
	out := make([]models.Item, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
