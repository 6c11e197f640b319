package model

import "fmt"

var DefaultPresets = []Duration{
	{Minutes: 1}, {Minutes: 1, Seconds: 30}, {Minutes: 2}, {Minutes: 2, Seconds: 30}, {Minutes: 3}, {Minutes: 5},
	{Minutes: 6}, {Minutes: 7}, {Minutes: 7, Seconds: 30}, {Minutes: 8}, {Minutes: 8, Seconds: 30}, {Minutes: 10},
}

func ParsePresets(labels []string) ([]Duration, error) {
	out := make([]Duration, 0, len(labels))
	for i, label := range labels {
		d, err := ParseDuration(label)
		if err != nil {
			return nil, fmt.Errorf("preset %d: %w", i+1, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func PresetLabels(presets []Duration) []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Label())
	}
	return out
}
