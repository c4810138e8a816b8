package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RequestFile describes one API call to perform: the operation name and its
// parameters, keyed exactly as the endpoint methods expect them.
type RequestFile struct {
	Operation string         `yaml:"operation"`
	Params    map[string]any `yaml:"params"`
}

func loadRequestFile(path string) (*RequestFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}

	var rf RequestFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("parse request file: %w", err)
	}
	if rf.Operation == "" {
		return nil, fmt.Errorf("request file %q has no operation", path)
	}
	return &rf, nil
}

func stringParam(params map[string]any, key string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return ""
}

func intParam(params map[string]any, key string) int {
	return int(int64Param(params, key))
}

func int64Param(params map[string]any, key string) int64 {
	switch n := params[key].(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func floatParam(params map[string]any, key string) float64 {
	switch n := params[key].(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func mapParam(params map[string]any, key string) map[string]any {
	if m, ok := params[key].(map[string]any); ok {
		return m
	}
	return nil
}

func itemsParam(params map[string]any, key string) []map[string]any {
	raw, ok := params[key].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
